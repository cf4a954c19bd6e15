package db

import (
	"strconv"
	"time"

	"github.com/Lucas-Veillard/KanalBack/config"
	"github.com/Lucas-Veillard/KanalBack/db/migration"
	"github.com/Lucas-Veillard/KanalBack/utils"
	"github.com/gocql/gocql"
)

// Connect ouvre la session ScyllaDB et la rend à l'appelant.
// Pas de global ici : la session est un handle explicite, injecté
// dans le store, fermé par main au shutdown.
func Connect(cfg *config.Config) (*gocql.Session, error) {
	cluster := gocql.NewCluster(cfg.ScyllaHost)
	cluster.Port = getPort(cfg.ScyllaPort)
	cluster.Keyspace = cfg.ScyllaKeyspace
	cluster.Consistency = gocql.Quorum

	if cfg.ScyllaUser != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.ScyllaUser,
			Password: cfg.ScyllaPass,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, err
	}

	utils.Success("ScyllaDB connected successfully.")
	return session, nil
}

func getPort(portStr string) int {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		utils.Fatal("Invalid port", "error", err)
	}
	return port
}

func ApplyMigrations(session *gocql.Session) {
	for _, m := range migration.AllMigrations {
		// Check si migration déjà faite
		var name string
		if err := session.Query(`SELECT name FROM migrations_applied WHERE name = ? LIMIT 1`, m.Name()).Scan(&name); err == nil {
			utils.Info("⏭️ Migration already applied", "name", m.Name())
			continue
		}

		utils.Info("⏳ Applying migration", "name", m.Name())
		if err := m.Up(session); err != nil {
			utils.Fatal("Migration failed", "name", m.Name(), "error", err)
		}

		// On log la migration comme faite
		if err := session.Query(
			`INSERT INTO migrations_applied (name, applied_at) VALUES (?, ?)`,
			m.Name(), time.Now(),
		).Exec(); err != nil {
			utils.Fatal("Failed to record migration", "name", m.Name(), "error", err)
		}

		utils.Success("Migration applied", "name", m.Name())
	}
}
