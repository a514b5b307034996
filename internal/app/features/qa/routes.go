// internal/app/features/qa/routes.go
package qa

import "github.com/go-chi/chi/v5"

// Register mounts the Q&A board endpoints on the root router.
func Register(r chi.Router, h *Handler) {
	r.Post("/createquestion", h.ServeCreateQuestion)
	r.Get("/getquestions", h.ServeGetQuestions)
	r.Post("/addanswer", h.ServeAddAnswer)
	r.Post("/votequestion", h.ServeVoteQuestion)
	r.Post("/acceptanswer", h.ServeAcceptAnswer)
	r.Post("/voteanswer", h.ServeVoteAnswer)
}
