package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/algogame/internal/errors"
	"github.com/vytor/algogame/internal/logger"
	"github.com/vytor/algogame/internal/models"
)

// maxBodyBytes bounds request bodies; submissions carry at most a few dozen numbers.
const maxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.NewBadRequestError("malformed JSON body: " + err.Error())
	}
	return nil
}

// intParam parses a numeric chi URL parameter.
func intParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid " + name + ": " + raw)
	}
	return v, nil
}

// queryInt parses an optional integer query value, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid " + name + ": " + raw)
	}
	return v, nil
}

// queryInts parses a comma separated list such as "4,2,3,1".
func queryInts(r *http.Request, name string) ([]int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.NewBadRequestError("invalid " + name + ": " + raw)
		}
		out = append(out, v)
	}
	return out, nil
}

func algorithmParam(r *http.Request) models.Algorithm {
	return models.Algorithm(chi.URLParam(r, "algorithm"))
}

func difficultyParam(r *http.Request) models.Difficulty {
	return models.Difficulty(chi.URLParam(r, "difficulty"))
}
