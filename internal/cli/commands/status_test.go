package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCmd(t *testing.T) {
	t.Run("server up", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		cfg := testCfg(t, srv)
		out := captureOut(t)

		cmd, ok := Get("status")
		assert.True(t, ok)
		assert.NoError(t, cmd.Run(context.Background(), cfg, nil))
		assert.Contains(t, out.String(), "is up")
	})

	t.Run("server degraded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "database is unavailable", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		cfg := testCfg(t, srv)
		captureOut(t)

		cmd, _ := Get("status")
		err := cmd.Run(context.Background(), cfg, nil)
		assert.ErrorContains(t, err, "unhealthy")
	})
}
