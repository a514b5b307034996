// internal/app/features/groups/routes.go
package groups

import "github.com/go-chi/chi/v5"

// Register mounts the group endpoints on the root router.
func Register(r chi.Router, h *Handler) {
	r.Get("/getavailablegroups", h.ServeAvailableGroups)
	r.Post("/getavailablegroups", h.ServeAvailableGroups)
	r.Post("/creategroup", h.ServeCreateGroup)
	r.Post("/joingroup", h.ServeJoinGroup)
	r.Post("/leavegroup", h.ServeLeaveGroup)
	r.Get("/getmygroups", h.ServeMyGroups)
}
