package migration

import "github.com/gocql/gocql"

type FirstMigration struct{}

func (m FirstMigration) Name() string {
	return "12_08_2026_First_Migration"
}

func (m FirstMigration) Up(session *gocql.Session) error {
	cql := []string{
		// ------------------------------------------------------------
		// 0. Journal des migrations
		// ------------------------------------------------------------
		`CREATE TABLE IF NOT EXISTS migrations_applied (
            name TEXT PRIMARY KEY,
            applied_at TIMESTAMP
        );`,

		// ------------------------------------------------------------
		// 1. Messages (une partition par canal, ordre TIMEUUID décroissant)
		// ------------------------------------------------------------
		`CREATE TABLE IF NOT EXISTS messages (
            channel_id TEXT,
            message_id TIMEUUID,   /* ordre logique + horodatage précis */
            user_id    TEXT,
            content    TEXT,
            PRIMARY KEY ((channel_id), message_id)
        ) WITH CLUSTERING ORDER BY (message_id DESC);`,

		// ------------------------------------------------------------
		// 2. Clés d'idempotence (existence = message déjà accepté)
		// ------------------------------------------------------------
		`CREATE TABLE IF NOT EXISTS message_dedup (
            channel_id TEXT,
            client_key TEXT,
            PRIMARY KEY ((channel_id), client_key)
        );`,
	}

	for _, q := range cql {
		if err := session.Query(q).Exec(); err != nil {
			return err
		}
	}
	return nil
}
