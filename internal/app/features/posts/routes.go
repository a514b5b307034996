// internal/app/features/posts/routes.go
package posts

import "github.com/go-chi/chi/v5"

// Register mounts the feed endpoints on the root router.
func Register(r chi.Router, h *Handler) {
	r.Post("/createpost", h.ServeCreatePost)
	r.Get("/getposts", h.ServeGetPosts)
}
