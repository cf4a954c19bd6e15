package store

import (
	"testing"

	"github.com/Lucas-Veillard/KanalBack/models"
	"github.com/stretchr/testify/require"
)

func TestValidateListRequest_LimitBounds(t *testing.T) {
	req := require.New(t)

	for _, limit := range []int{0, -1, 101, 1000} {
		_, err := validateListRequest(ListRequest{ChannelID: "c1", Limit: limit})
		var validationErr *ValidationError
		req.ErrorAs(err, &validationErr, "limit=%d doit être rejeté", limit)
		req.Equal("limit", validationErr.Field)
	}

	for _, limit := range []int{1, 50, 100} {
		q, err := validateListRequest(ListRequest{ChannelID: "c1", Limit: limit})
		req.NoError(err, "limit=%d doit passer", limit)
		req.Equal(limit, q.limit)
	}
}

func TestValidateListRequest_BothCursorsRejected(t *testing.T) {
	req := require.New(t)
	gen := NewGenerator()
	x, y := gen.Next(), gen.Next()

	_, err := validateListRequest(ListRequest{
		ChannelID: "c1",
		Limit:     5,
		Before:    x.String(),
		After:     y.String(),
	})
	var validationErr *ValidationError
	req.ErrorAs(err, &validationErr)
	req.Equal("cursor", validationErr.Field)
}

func TestValidateListRequest_MalformedCursor(t *testing.T) {
	req := require.New(t)

	_, err := validateListRequest(ListRequest{ChannelID: "c1", Limit: 5, Before: "pas-un-uuid"})
	var validationErr *ValidationError
	req.ErrorAs(err, &validationErr)
	req.Equal("before", validationErr.Field)

	_, err = validateListRequest(ListRequest{ChannelID: "c1", Limit: 5, After: "zzz"})
	req.ErrorAs(err, &validationErr)
	req.Equal("after", validationErr.Field)
}

func TestValidateListRequest_ValidCursors(t *testing.T) {
	req := require.New(t)
	gen := NewGenerator()
	cursor := gen.Next()

	q, err := validateListRequest(ListRequest{ChannelID: "c1", Limit: 10, Before: cursor.String()})
	req.NoError(err)
	req.NotNil(q.before)
	req.Nil(q.after)
	req.Equal(cursor, *q.before)

	q, err = validateListRequest(ListRequest{ChannelID: "c1", Limit: 10, After: cursor.String()})
	req.NoError(err)
	req.Nil(q.before)
	req.NotNil(q.after)
}

func TestNextBefore(t *testing.T) {
	req := require.New(t)
	gen := NewGenerator()

	req.Nil(nextBefore(nil), "page vide → pas de curseur")
	req.Nil(nextBefore([]models.Message{}))

	first, second := gen.Next(), gen.Next()
	// Page rendue newest-first : le curseur est l'id du dernier (plus ancien).
	page := []models.Message{
		{MessageID: second},
		{MessageID: first},
	}
	cursor := nextBefore(page)
	req.NotNil(cursor)
	req.Equal(first, *cursor)
}
