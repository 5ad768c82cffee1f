package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Post("/auth/signup", s.handleSignup)
	r.Post("/auth/login", s.handleLogin)
	r.Get("/auth/verify", s.handleVerify)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Get("/puzzle/today", s.handleDailyPuzzle)
		r.Get("/puzzle/{date}", s.handleDailyPuzzle)
		r.Post("/puzzle/submit", s.handleSubmitAnswer)
		r.Get("/completions", s.handleCompletions)
		r.Get("/progress", s.handleProgress)
	})

	return r
}
