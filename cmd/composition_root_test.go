package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skiservice/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("rejects a short secret", func(t *testing.T) {
		_, err := cmd.NewCompositionRoot(cmd.Config{JWTSecret: "short", JWTTTL: time.Hour}, nil, logger)

		require.Error(t, err)
	})

	t.Run("router serves health and guards privileged routes", func(t *testing.T) {
		app, err := cmd.NewCompositionRoot(cmd.Config{JWTSecret: testSecret, JWTTTL: time.Hour}, nil, logger)
		require.NoError(t, err)

		e, err := app.CreateRouter()
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/registrations", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
