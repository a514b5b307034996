// internal/app/features/chatlog/routes.go
package chatlog

import "github.com/go-chi/chi/v5"

// Register mounts the chat log endpoints on the root router.
func Register(r chi.Router, h *Handler) {
	r.Post("/chat", h.ServeSaveChat)
	r.Get("/chats", h.ServeGetChats)
}
