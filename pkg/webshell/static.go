package webshell

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"
)

const (
	indexFile   = "index.html"
	noCache     = "no-cache"
	serviceWork = "sw.js"
)

// StaticHandler serves a built single-page app from fsys. Shell routes and
// unknown non-API paths fall back to index.html. Assets get a Cache-Control
// header derived from the matching cache rule.
type StaticHandler struct {
	fsys    fs.FS
	matcher *Matcher
}

// NewStaticHandler returns a handler serving fsys.
func NewStaticHandler(fsys fs.FS, matcher *Matcher) *StaticHandler {
	return &StaticHandler{fsys: fsys, matcher: matcher}
}

// CacheControl returns the Cache-Control value for an asset path.
func (h *StaticHandler) CacheControl(name string) string {
	if name == indexFile || name == serviceWork || strings.HasSuffix(name, ".html") {
		return noCache
	}

	rule, ok := h.matcher.Match("/" + name)
	if !ok {
		return noCache
	}
	switch rule.Handler {
	case NetworkFirst, NetworkOnly:
		return noCache
	default:
		return "public, max-age=" + strconv.Itoa(rule.Expiration.MaxAgeSeconds)
	}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)

		return
	}

	urlPath := cleanPath(r.URL.Path)
	if strings.HasPrefix(urlPath, "/api/") || urlPath == "/api" {
		http.NotFound(w, r)

		return
	}

	name := strings.TrimPrefix(urlPath, "/")
	if _, ok := Resolve(urlPath); ok || name == "" {
		name = indexFile
	}

	if !h.serve(w, r, name) {
		// client-side routing handles everything else
		if !h.serve(w, r, indexFile) {
			http.NotFound(w, r)
		}
	}
}

// serve writes the file and reports whether it existed.
func (h *StaticHandler) serve(w http.ResponseWriter, r *http.Request, name string) bool {
	if !fs.ValidPath(name) {
		return false
	}

	f, err := h.fsys.Open(name)
	if err != nil {
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		b, err := io.ReadAll(f)
		if err != nil {
			return false
		}
		content = bytes.NewReader(b)
	}

	w.Header().Set("Cache-Control", h.CacheControl(name))
	http.ServeContent(w, r, path.Base(name), info.ModTime(), content)

	return true
}

// ErrNoIndex is returned by CheckStaticDir when the app has no index.html.
var ErrNoIndex = errors.New("static directory has no index.html")

// CheckStaticDir verifies fsys looks like a built app.
func CheckStaticDir(fsys fs.FS) error {
	info, err := fs.Stat(fsys, indexFile)
	if err != nil {
		return errors.Join(ErrNoIndex, err)
	}
	if info.IsDir() {
		return ErrNoIndex
	}

	return nil
}
