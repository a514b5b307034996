// internal/app/features/discussions/routes.go
package discussions

import "github.com/go-chi/chi/v5"

// Register mounts the discussion endpoints on the root router.
func Register(r chi.Router, h *Handler) {
	r.Get("/getdiscussions", h.ServeGetDiscussions)
	r.Post("/creatediscussion", h.ServeCreateDiscussion)
	r.Get("/getmessages/{discussionID}", h.ServeGetMessages)
	r.Post("/sendmessage", h.ServeSendMessage)
}
