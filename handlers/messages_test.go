package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lucas-Veillard/KanalBack/api"
	"github.com/Lucas-Veillard/KanalBack/handlers"
	"github.com/Lucas-Veillard/KanalBack/store"
	"github.com/Lucas-Veillard/KanalBack/utils"
	"github.com/gocql/gocql"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.InitLogger(true)
	m.Run()
}

// newTestApp monte l'app sur un store SANS session : toute requête qui tente
// réellement le storage finit en 500 (NotInitialized). Obtenir un 400 prouve
// donc que le rejet a eu lieu avant tout appel storage.
func newTestApp() *fiber.App {
	app := fiber.New()
	s := store.New(nil, store.Options{
		WriteConsistency: gocql.Quorum,
		ReadConsistency:  gocql.One,
	})
	api.SetupRoutes(app, handlers.New(s))
	return app
}

func TestGetMessages_BothCursorsRejectedBeforeStorage(t *testing.T) {
	req := require.New(t)
	app := newTestApp()
	gen := store.NewGenerator()
	x, y := gen.Next(), gen.Next()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/channels/c3/messages?limit=5&before="+x.String()+"&after="+y.String(), nil))
	req.NoError(err)
	req.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestGetMessages_LimitBounds(t *testing.T) {
	req := require.New(t)
	app := newTestApp()

	for _, limit := range []string{"0", "101", "-3"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet,
			"/api/channels/c1/messages?limit="+limit, nil))
		req.NoError(err)
		req.Equal(http.StatusBadRequest, resp.StatusCode, "limit=%s", limit)
	}

	// limit=1 et limit=100 passent la validation ; sans session derrière, la
	// requête atteint le storage et tombe en 500, pas en 400.
	for _, limit := range []string{"1", "100"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet,
			"/api/channels/c1/messages?limit="+limit, nil))
		req.NoError(err)
		req.Equal(http.StatusInternalServerError, resp.StatusCode, "limit=%s", limit)
	}
}

func TestGetMessages_MalformedCursor(t *testing.T) {
	req := require.New(t)
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/channels/c1/messages?limit=5&before=pas-un-uuid", nil))
	req.NoError(err)
	req.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestGetMessages_ChannelIDTooLong(t *testing.T) {
	req := require.New(t)
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/channels/"+strings.Repeat("x", 101)+"/messages", nil))
	req.NoError(err)
	req.Equal(http.StatusBadRequest, resp.StatusCode)
}

func postJSON(app *fiber.App, target, body string) (*http.Response, error) {
	httpReq := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	return app.Test(httpReq)
}

func TestPostMessage_StructuralValidation(t *testing.T) {
	req := require.New(t)
	app := newTestApp()

	cases := []struct {
		name string
		body string
	}{
		{"user_id manquant", `{"content":"hello"}`},
		{"content manquant", `{"user_id":"u1"}`},
		{"content trop long", `{"user_id":"u1","content":"` + strings.Repeat("a", 2001) + `"}`},
		{"user_id trop long", `{"user_id":"` + strings.Repeat("u", 101) + `","content":"hello"}`},
		{"client_key trop long", `{"user_id":"u1","content":"hello","client_key":"` + strings.Repeat("k", 101) + `"}`},
		{"corps illisible", `{pas du json`},
	}
	for _, tc := range cases {
		resp, err := postJSON(app, "/api/channels/c1/messages", tc.body)
		req.NoError(err, tc.name)
		req.Equal(http.StatusBadRequest, resp.StatusCode, tc.name)
	}
}

func TestPostMessage_NotInitializedMapsTo500(t *testing.T) {
	req := require.New(t)
	app := newTestApp()

	resp, err := postJSON(app, "/api/channels/c1/messages", `{"user_id":"u1","content":"hello"}`)
	req.NoError(err)
	req.Equal(http.StatusInternalServerError, resp.StatusCode)
}
