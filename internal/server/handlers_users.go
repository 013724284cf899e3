package server

import (
	"encoding/json"
	"net/http"

	"github.com/shopmeco/backend/internal/storage"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)

	users, err := s.storage.ListUsers(r.Context(), mustActor(r), page, limit)
	if err != nil {
		s.handleError(w, "listUsers", err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := s.storage.GetUser(r.Context(), id)
	if err != nil {
		s.handleError(w, "getUser", err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.storage.GetUser(r.Context(), mustActor(r).UserID)
	if err != nil {
		s.handleError(w, "getProfile", err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var input storage.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.storage.UpdateProfile(r.Context(), mustActor(r), input)
	if err != nil {
		s.handleError(w, "updateProfile", err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := s.storage.DeleteUser(r.Context(), mustActor(r), id); err != nil {
		s.handleError(w, "deleteUser", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}
