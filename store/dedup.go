package store

import (
	"context"

	"github.com/gocql/gocql"
)

// tryClaim tente de poser la clé d'idempotence (channel_id, client_key) via
// une LWT "insert-if-absent". Un seul appelant parmi N concurrents sur la
// même clé obtient true ; tous les autres, y compris les retries tardifs,
// obtiennent false et NE DOIVENT PAS créer de message.
//
// La force de la garantie suit le niveau fourni : à QUORUM/ALL c'est un
// compare-and-set linéarisable ; à ONE/ANY il existe une fenêtre où deux
// claims concurrents passent tous les deux. C'est le compromis
// disponibilité/consistance choisi par l'appelant via son niveau, on ne le
// masque pas ici.
//
// Attention : pas de transaction entre le claim et l'insert du message. Un
// crash entre les deux laisse une clé orpheline qui bloquera les renvois
// légitimes jusqu'à libération manuelle (cf. releaseClaim).
func (s *Store) tryClaim(ctx context.Context, channelID, clientKey string, level gocql.Consistency) (bool, error) {
	session, err := s.session()
	if err != nil {
		return false, err
	}

	applied, err := session.Query(
		`INSERT INTO message_dedup (channel_id, client_key) VALUES (?, ?) IF NOT EXISTS`,
		channelID, clientKey,
	).WithContext(ctx).Consistency(level).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return false, wrapStorageError(level, err)
	}
	return applied, nil
}

// releaseClaim supprime une clé orpheline. Chemin de maintenance uniquement
// (route debug) : jamais appelé dans le cycle de vie normal d'une requête.
func (s *Store) releaseClaim(ctx context.Context, channelID, clientKey string, level gocql.Consistency) error {
	session, err := s.session()
	if err != nil {
		return err
	}

	err = session.Query(
		`DELETE FROM message_dedup WHERE channel_id = ? AND client_key = ?`,
		channelID, clientKey,
	).WithContext(ctx).Consistency(level).Exec()
	return wrapStorageError(level, err)
}
