package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/algogame/internal/errors"
	"github.com/vytor/algogame/internal/logger"
	"github.com/vytor/algogame/internal/models"
)

type profilesResponse struct {
	Profiles []models.Profile `json:"profiles"`
	Current  *models.Profile  `json:"current"`
	Guest    bool             `json:"guest"`
}

type createProfileRequest struct {
	Username string `json:"username"`
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("listing profiles")

	profiles, err := s.ProfileService.ListProfiles(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	identity, _ := identityFromContext(r.Context())
	writeJSON(w, r, http.StatusOK, profilesResponse{
		Profiles: profiles,
		Current:  profileFromContext(r.Context()),
		Guest:    identity.Guest,
	})
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var username string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req createProfileRequest
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}
		username = req.Username
	} else {
		username = r.FormValue("username")
	}

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		log.Warn("create profile with empty username")
		handleError(w, r, errors.NewBadRequestError("username required"))
		return
	}

	profile, err := s.ProfileService.CreateProfile(r.Context(), username)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.setProfileCookie(w, profile.ID)
	writeJSON(w, r, http.StatusOK, profile)
}

func (s *Server) handleSelectProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Warn("invalid profile id: %s", idStr)
		handleError(w, r, errors.NewBadRequestError("invalid profile id"))
		return
	}

	profile, err := s.ProfileService.GetProfile(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.setProfileCookie(w, profile.ID)
	writeJSON(w, r, http.StatusOK, profile)
}

func (s *Server) handleGuest(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Debug("switching to guest identity")
	s.setIdentityCookie(w, guestCookieValue)
	writeJSON(w, r, http.StatusOK, map[string]bool{"guest": true})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Debug("clearing identity")
	s.clearProfileCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Warn("invalid profile id for delete: %s", idStr)
		handleError(w, r, errors.NewBadRequestError("invalid profile id"))
		return
	}

	if err := s.ProfileService.DeleteProfile(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	if current := profileFromContext(r.Context()); current != nil && current.ID == id {
		s.clearProfileCookie(w)
	}
	w.WriteHeader(http.StatusNoContent)
}
