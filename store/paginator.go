package store

import (
	"fmt"

	"github.com/Lucas-Veillard/KanalBack/models"
	"github.com/gocql/gocql"
)

const (
	// Bornes de pagination : limit doit être dans [1, MaxPageSize].
	MinPageSize = 1
	MaxPageSize = 100
)

// pageQuery est une ListRequest validée, prête pour le storage.
type pageQuery struct {
	limit  int
	before *gocql.UUID
	after  *gocql.UUID
}

// validateListRequest applique toutes les règles du protocole de pagination
// AVANT tout appel storage : limit dans [1,100], curseurs syntaxiquement
// valides, et jamais before et after en même temps (aucune règle de
// précédence, c'est une erreur de l'appelant).
func validateListRequest(req ListRequest) (*pageQuery, error) {
	if req.Limit < MinPageSize || req.Limit > MaxPageSize {
		return nil, &ValidationError{
			Field:  "limit",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", MinPageSize, MaxPageSize, req.Limit),
		}
	}
	if req.Before != "" && req.After != "" {
		return nil, &ValidationError{
			Field:  "cursor",
			Reason: "'before' and 'after' cannot be combined",
		}
	}

	q := &pageQuery{limit: req.Limit}
	if req.Before != "" {
		cursor, err := gocql.ParseUUID(req.Before)
		if err != nil {
			return nil, &ValidationError{Field: "before", Reason: "not a valid message id"}
		}
		q.before = &cursor
	}
	if req.After != "" {
		cursor, err := gocql.ParseUUID(req.After)
		if err != nil {
			return nil, &ValidationError{Field: "after", Reason: "not a valid message id"}
		}
		q.after = &cursor
	}
	return q, nil
}

// nextBefore rend le curseur de continuation : l'id du dernier (plus ancien)
// message de la page, nil si la page est vide. Le repasser en 'before' donne
// la page strictement plus ancienne, disjointe de celle-ci.
func nextBefore(page []models.Message) *gocql.UUID {
	if len(page) == 0 {
		return nil
	}
	id := page[len(page)-1].MessageID
	return &id
}
