package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(s.identityMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errNoRoute)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errMethodNotAllowed)
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", s.handleProfiles)
		r.Post("/", s.handleCreateProfile)
		r.Post("/guest", s.handleGuest)
		r.Post("/logout", s.handleLogout)
		r.Post("/{id}/select", s.handleSelectProfile)
		r.Post("/{id}/delete", s.handleDeleteProfile)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/algorithms", s.handleAlgorithms)
		r.Get("/levels/{algorithm}/{difficulty}/{levelID}", s.handleLevel)
		r.Get("/puzzles/{algorithm}/{difficulty}/{levelID}", s.handlePuzzle)
		r.Get("/hints/{algorithm}", s.handleHint)
		r.Get("/quiz/{algorithm}", s.handleQuiz)
		r.Post("/submissions", s.handleSubmit)
		r.Get("/progress", s.handleProgress)
		r.Get("/scores", s.handleScores)
		r.Get("/leaderboard", s.handleLeaderboard)
	})
	return r
}
