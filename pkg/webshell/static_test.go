package webshell_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"autobuilder/pkg/webshell"

	"github.com/stretchr/testify/require"
)

func newStatic(t *testing.T) *webshell.StaticHandler {
	t.Helper()
	m, err := webshell.NewMatcher(webshell.DefaultConfig())
	require.NoError(t, err)

	return webshell.NewStaticHandler(fstest.MapFS{
		"index.html":                 {Data: []byte("<html>app</html>")},
		"sw.js":                      {Data: []byte("self.skipWaiting()")},
		"static/js/main.1a2b3c4d.js": {Data: []byte("console.log(1)")},
		"static/media/logo.png":      {Data: []byte("png")},
		"static/fonts/a.woff2":       {Data: []byte("font")},
		"manifest.json":              {Data: []byte("{}")},
	}, m)
}

func get(h http.Handler, method, path string) *http.Response {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	return rec.Result()
}

func TestStaticHandler_ShellRoutes(t *testing.T) {
	h := newStatic(t)
	for _, p := range []string{"/", "/repositories", "/builds/", "/settings", "/builds/42"} {
		res := get(h, http.MethodGet, p)
		require.Equal(t, http.StatusOK, res.StatusCode, p)
		require.Equal(t, "no-cache", res.Header.Get("Cache-Control"), p)
		require.Contains(t, res.Header.Get("Content-Type"), "text/html", p)
	}
}

func TestStaticHandler_AssetCaching(t *testing.T) {
	h := newStatic(t)
	tests := []struct {
		path  string
		cache string
	}{
		{"/static/js/main.1a2b3c4d.js", "public, max-age=604800"},
		{"/static/media/logo.png", "public, max-age=2592000"},
		{"/static/fonts/a.woff2", "public, max-age=31536000"},
		{"/sw.js", "no-cache"},
		{"/manifest.json", "no-cache"},
	}
	for _, tt := range tests {
		res := get(h, http.MethodGet, tt.path)
		require.Equal(t, http.StatusOK, res.StatusCode, tt.path)
		require.Equal(t, tt.cache, res.Header.Get("Cache-Control"), tt.path)
	}
}

func TestStaticHandler_APIAndMethods(t *testing.T) {
	h := newStatic(t)
	require.Equal(t, http.StatusNotFound, get(h, http.MethodGet, "/api/unknown").StatusCode)
	require.Equal(t, http.StatusMethodNotAllowed, get(h, http.MethodPost, "/").StatusCode)
	require.Equal(t, http.StatusOK, get(h, http.MethodHead, "/builds").StatusCode)
}

func TestCheckStaticDir(t *testing.T) {
	require.NoError(t, webshell.CheckStaticDir(fstest.MapFS{"index.html": {Data: []byte("x")}}))
	require.ErrorIs(t, webshell.CheckStaticDir(fstest.MapFS{}), webshell.ErrNoIndex)
}
