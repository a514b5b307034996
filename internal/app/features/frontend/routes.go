// internal/app/features/frontend/routes.go
package frontend

import "github.com/go-chi/chi/v5"

// Register installs the front end as the router's fallback, so any path
// not claimed by an API route serves a file from the static directory.
func Register(r chi.Router, h *Handler) {
	r.NotFound(h.Serve)
}
