// internal/app/features/notifications/routes.go
package notifications

import "github.com/go-chi/chi/v5"

// Register mounts the notification endpoint on the root router.
func Register(r chi.Router, h *Handler) {
	r.Get("/getnotifications", h.ServeGetNotifications)
}
