package models

import (
	"github.com/gocql/gocql"
	"time"
)

// Message est une ligne de la table messages, décodée à la frontière du store.
// CreatedAt est toujours dérivé du TIMEUUID (jamais stocké en colonne) : l'id
// reste la seule autorité sur l'horodatage.
type Message struct {
	ChannelID string     `json:"channel_id" validate:"required"`
	MessageID gocql.UUID `json:"message_id" validate:"required"`
	UserID    string     `json:"user_id" validate:"required"`
	Content   string     `json:"content" validate:"required"`
	CreatedAt time.Time  `json:"created_at" validate:"required"`
}

// DedupRecord n'a pas de payload : son existence signifie "un message a déjà
// été accepté pour ce couple (canal, clé client)". Jamais modifié, jamais
// expiré.
type DedupRecord struct {
	ChannelID string `json:"channel_id" validate:"required"`
	ClientKey string `json:"client_key" validate:"required"`
}
