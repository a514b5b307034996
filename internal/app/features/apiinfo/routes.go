// internal/app/features/apiinfo/routes.go
package apiinfo

import "github.com/go-chi/chi/v5"

// Register mounts the API info endpoint on the root router.
func Register(r chi.Router, h *Handler) {
	r.Get("/test", h.Serve)
}
