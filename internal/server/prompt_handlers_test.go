package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeeklyPrompt(t *testing.T) {
	newApp := func(gen *recordGenerator) *fiber.App {
		s := &Server{generator: gen}
		app := fiber.New()
		app.Get("/api/weekly-prompt", s.GetWeeklyPrompt)
		return app
	}

	t.Run("passes query parameters to the generator", func(t *testing.T) {
		gen := &recordGenerator{text: "Which debut impressed you?"}
		app := newApp(gen)

		req := httptest.NewRequest(http.MethodGet, "/api/weekly-prompt?groupName=K-Pop+Fans&category=Music", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "Which debut impressed you?", body["prompt"])
		assert.Equal(t, "Music", gen.category)
		assert.Equal(t, "K-Pop Fans", gen.groupName)
	})

	t.Run("defaults for anonymous widgets", func(t *testing.T) {
		gen := &recordGenerator{text: "A question"}
		app := newApp(gen)

		req := httptest.NewRequest(http.MethodGet, "/api/weekly-prompt", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Your Group", gen.groupName)
		assert.Equal(t, "General", gen.category)
	})

	t.Run("response is open to any origin", func(t *testing.T) {
		app := newApp(&recordGenerator{text: "Q"})

		req := httptest.NewRequest(http.MethodGet, "/api/weekly-prompt", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}
