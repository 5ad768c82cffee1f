package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nmoreira/puzzleday/internal/logger"
	"github.com/nmoreira/puzzleday/internal/models"
)

func (s *Server) handleDailyPuzzle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	date := chi.URLParam(r, "date") // empty on /puzzle/today
	kind := models.Kind(r.URL.Query().Get("kind"))
	log.Debug("fetching daily puzzle: date=%s, kind=%s", date, kind)

	p, err := s.PuzzleService.DailyPuzzle(r.Context(), date, kind)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, p)
}

type submitRequest struct {
	Date             string `json:"date"`
	Kind             string `json:"kind"`
	Answer           string `json:"answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID := userFromContext(r.Context())

	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug("submitting answer: user_id=%s, date=%s, kind=%s", userID, req.Date, req.Kind)

	result, err := s.PuzzleService.SubmitAnswer(r.Context(), userID, req.Date, models.Kind(req.Kind), req.Answer, req.TimeSpentSeconds)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleCompletions(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	filter := models.CompletionFilter{
		Date:          r.URL.Query().Get("date"),
		CompletedOnly: r.URL.Query().Get("completed") == "true",
	}

	records, err := s.PuzzleService.ListCompletions(r.Context(), userID, filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"data": records})
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	prog, err := s.PuzzleService.GetProgress(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, prog)
}
