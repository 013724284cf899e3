package server

import (
	"encoding/json"
	"net/http"

	"github.com/shopmeco/backend/internal/auth"
	"github.com/shopmeco/backend/internal/lifecycle"
	"github.com/shopmeco/backend/internal/storage"
)

type authResponse struct {
	Token string        `json:"token"`
	User  *storage.User `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var input storage.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.storage.RegisterUser(r.Context(), input)
	if err != nil {
		s.handleError(w, "register", err)
		return
	}

	token, err := s.tokens.BuildToken(user.ID, lifecycle.Role(user.Role))
	if err != nil {
		s.handleError(w, "register", err)
		return
	}

	w.Header().Set(auth.AuthHeader, "Bearer "+token)
	respondJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.storage.AuthenticateUser(r.Context(), input.Email, input.Password)
	if err != nil {
		s.handleError(w, "login", err)
		return
	}

	token, err := s.tokens.BuildToken(user.ID, lifecycle.Role(user.Role))
	if err != nil {
		s.handleError(w, "login", err)
		return
	}

	w.Header().Set(auth.AuthHeader, "Bearer "+token)
	respondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}
