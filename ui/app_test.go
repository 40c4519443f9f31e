package ui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statlib/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	dir := t.TempDir()
	source := "// Package demo is fixture material.\npackage demo\n\n// Double doubles x.\nfunc Double(x float64) float64 { return 2 * x }\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.go"), []byte(source), 0o644))

	cfg := &config.Config{
		Server: config.ServerConfig{Addr: ":0"},
		Docs:   config.DocsConfig{SourceDir: dir, Title: "demo reference"},
	}

	app, err := NewApp(cfg, []string{dir})
	require.NoError(t, err)
	return app
}

func TestIndexServesHTML(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "demo reference")
	assert.Contains(t, rec.Body.String(), "Double")
}

func TestMarkdownEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reference.md", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "### `demo.Double`")
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRequestIDMinted(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "caller-supplied")
	app.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "caller-supplied", rec.Header().Get(requestIDHeader))
}
