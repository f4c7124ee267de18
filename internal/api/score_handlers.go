package api

import (
	"net/http"

	"github.com/vytor/algogame/internal/errors"
	"github.com/vytor/algogame/internal/logger"
	"github.com/vytor/algogame/internal/models"
)

var errNoIdentity = errors.NewUnauthorizedError("select a profile or play as guest")

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	identity, ok := identityFromContext(r.Context())
	if !ok {
		log.Warn("submission without identity")
		handleError(w, r, errNoIdentity)
		return
	}

	var sub models.Submission
	if err := decodeJSON(w, r, &sub); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.ScoreService.Submit(r.Context(), identity, sub)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		handleError(w, r, errNoIdentity)
		return
	}

	records, err := s.ScoreService.Progress(r.Context(), identity)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, records)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		handleError(w, r, errNoIdentity)
		return
	}
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		handleError(w, r, err)
		return
	}

	alg := models.Algorithm(r.URL.Query().Get("algorithm"))
	scores, err := s.ScoreService.History(r.Context(), identity, alg, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, scores)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}

	q := r.URL.Query()
	entries, err := s.ScoreService.Leaderboard(r.Context(), models.LeaderboardFilter{
		Algorithm:  models.Algorithm(q.Get("algorithm")),
		Difficulty: models.Difficulty(q.Get("difficulty")),
		Limit:      limit,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entries)
}
