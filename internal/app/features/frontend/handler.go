// internal/app/features/frontend/handler.go
package frontend

import (
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// indexPage is the file served for the bare root path.
const indexPage = "frontpage.html"

// Handler serves the static front end for paths no API route claims.
// Files are served verbatim from Dir, with frontpage.html at the root.
type Handler struct {
	Dir string
	Log *zap.Logger
}

func NewHandler(dir string, logger *zap.Logger) *Handler {
	return &Handler{Dir: dir, Log: logger}
}

// Serve handles GET / and GET /<path> for front-end files.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" {
		name = indexPage
	}
	// fs.ValidPath rejects "..", absolute paths, and empty segments, so a
	// request can never escape Dir.
	if !fs.ValidPath(name) {
		http.NotFound(w, r)
		return
	}

	full := filepath.Join(h.Dir, filepath.FromSlash(name))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, full)
}
