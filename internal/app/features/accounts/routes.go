// internal/app/features/accounts/routes.go
package accounts

import "github.com/go-chi/chi/v5"

// Register mounts the account endpoints on the root router. The paths are
// flat because that is what the deployed clients call.
func Register(r chi.Router, h *Handler) {
	r.Post("/signup", h.ServeSignup)
	r.Post("/login", h.ServeLogin)
	r.Post("/logout", h.ServeLogout)
	r.Get("/me", h.ServeMe)
	r.Post("/updateprofile", h.ServeUpdateProfile)
	r.Get("/getuser/{userID}", h.ServeGetUser)
}
