package store

import (
	"context"

	"github.com/Lucas-Veillard/KanalBack/models"
	"github.com/gocql/gocql"
)

// appendMessage persiste un message. Aucune vérification d'unicité ici :
// l'unicité de message_id est garantie par le générateur, pas revalidée par
// la table.
func (s *Store) appendMessage(ctx context.Context, msg models.Message, level gocql.Consistency) error {
	session, err := s.session()
	if err != nil {
		return err
	}

	err = session.Query(
		`INSERT INTO messages (channel_id, message_id, user_id, content) VALUES (?, ?, ?, ?)`,
		msg.ChannelID, msg.MessageID, msg.UserID, msg.Content,
	).WithContext(ctx).Consistency(level).Exec()
	return wrapStorageError(level, err)
}

// readPage lit une page d'un canal, toujours rendue en ordre message_id
// décroissant. Les bornes de curseur sont des inégalités strictes sur le
// TIMEUUID, jamais des offsets : les pages successives ne se recouvrent pas
// même si des insertions arrivent entre deux appels.
//
// Cas "after" : on veut les entrées les plus proches du curseur en remontant
// vers le présent, donc on interroge en ordre ASC (inversion du clustering)
// puis on retourne la tranche pour rester newest-first.
func (s *Store) readPage(ctx context.Context, channelID string, limit int, before, after *gocql.UUID, level gocql.Consistency) ([]models.Message, error) {
	session, err := s.session()
	if err != nil {
		return nil, err
	}

	stmt := `SELECT message_id, user_id, content FROM messages WHERE channel_id = ?`
	args := []interface{}{channelID}
	reversed := false

	switch {
	case before != nil:
		stmt += ` AND message_id < ?`
		args = append(args, *before)
	case after != nil:
		stmt += ` AND message_id > ? ORDER BY message_id ASC`
		args = append(args, *after)
		reversed = true
	}
	stmt += ` LIMIT ?`
	args = append(args, limit)

	iter := session.Query(stmt, args...).WithContext(ctx).Consistency(level).Iter()

	messages := make([]models.Message, 0, limit)
	var messageID gocql.UUID
	var userID, content string
	for iter.Scan(&messageID, &userID, &content) {
		messages = append(messages, decodeMessage(channelID, messageID, userID, content))
	}
	if err := iter.Close(); err != nil {
		return nil, wrapStorageError(level, err)
	}

	if reversed {
		for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
			messages[i], messages[j] = messages[j], messages[i]
		}
	}
	return messages, nil
}

// decodeMessage est l'unique point où une ligne storage devient un
// models.Message typé. created_at est dérivé du TIMEUUID, pas d'une colonne.
func decodeMessage(channelID string, messageID gocql.UUID, userID, content string) models.Message {
	return models.Message{
		ChannelID: channelID,
		MessageID: messageID,
		UserID:    userID,
		Content:   content,
		CreatedAt: Timestamp(messageID),
	}
}
