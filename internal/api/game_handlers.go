package api

import (
	"net/http"
	"strconv"

	"github.com/vytor/algogame/internal/errors"
	"github.com/vytor/algogame/internal/models"
)

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		identity = models.GuestIdentity
	}

	overview, err := s.GameService.Overview(r.Context(), identity)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, overview)
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	levelID, err := intParam(r, "levelID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	level, err := s.GameService.Level(r.Context(), algorithmParam(r), difficultyParam(r), levelID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, level)
}

func (s *Server) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	levelID, err := intParam(r, "levelID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var seed *int64
	if raw := r.URL.Query().Get("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handleError(w, r, errors.NewBadRequestError("invalid seed: "+raw))
			return
		}
		seed = &v
	}

	p, err := s.GameService.Puzzle(r.Context(), algorithmParam(r), difficultyParam(r), levelID, seed)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

type hintResponse struct {
	Hint string `json:"hint"`
}

// handleHint takes the element count from n, or from the length of array.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	array, err := queryInts(r, "array")
	if err != nil {
		handleError(w, r, err)
		return
	}
	n, err := queryInt(r, "n", len(array))
	if err != nil {
		handleError(w, r, err)
		return
	}
	steps, err := queryInt(r, "steps", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}

	text := s.GameService.Hint(r.Context(), algorithmParam(r), n, steps)
	writeJSON(w, r, http.StatusOK, hintResponse{Hint: text})
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	q, err := s.GameService.Quiz(r.Context(), algorithmParam(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, q)
}
