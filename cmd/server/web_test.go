package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retropad/server/internal/catalog"
	"github.com/retropad/server/internal/config"
	"github.com/retropad/server/internal/room"
	"github.com/retropad/server/internal/ws"
)

func setupMux(t *testing.T) (*config.Config, *room.Store, http.Handler) {
	t.Helper()
	cfg := config.Default()
	cfg.RomsDir = t.TempDir()
	cfg.ImagesDir = t.TempDir()

	store := room.NewStore()
	scanner := &catalog.Scanner{RomsDir: cfg.RomsDir, ImagesDir: cfg.ImagesDir}
	return cfg, store, newMux(cfg, ws.NewHub(), store, scanner)
}

func get(t *testing.T, mux http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	_, _, mux := setupMux(t)

	rec := get(t, mux, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGamesEndpoint_DescriptorImageURLResolves(t *testing.T) {
	cfg, _, mux := setupMux(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.RomsDir, "mslug.zip"), []byte("stub"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ImagesDir, "mslug.png"), []byte("png"), 0o644))

	rec := get(t, mux, "/api/games")
	require.Equal(t, http.StatusOK, rec.Code)

	var games []catalog.Game
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &games))
	require.Len(t, games, 1)
	require.Equal(t, "/image/mslug.png", games[0].Image)

	// The advertised URL must be served by this process, not a proxy.
	img := get(t, mux, games[0].Image)
	assert.Equal(t, http.StatusOK, img.Code)
	assert.Equal(t, "png", img.Body.String())
}

func TestRoomQR(t *testing.T) {
	_, store, mux := setupMux(t)

	rec := get(t, mux, "/rooms/NOSUCH/qr")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	r := store.Create("host")
	rec = get(t, mux, "/rooms/"+r.Code+"/qr")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}
