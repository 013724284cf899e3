package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/metrics"
	"github.com/shopmeco/backend/internal/storage"
)

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var input storage.CreateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := s.storage.CreateReview(r.Context(), mustActor(r), input)
	if err != nil {
		s.handleError(w, "createReview", err)
		return
	}

	metrics.ReviewsCreatedTotal.Inc()
	if input.TargetType == storage.TargetProduct {
		s.productCache.Delete(input.TargetID)
	}
	respondJSON(w, http.StatusCreated, review)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	targetType := r.URL.Query().Get("targetType")
	if !storage.ValidTargetType(targetType) {
		respondError(w, http.StatusBadRequest, "invalid or missing targetType")
		return
	}
	targetID, err := uuid.Parse(r.URL.Query().Get("targetId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid or missing targetId")
		return
	}

	reviews, err := s.storage.ListReviews(r.Context(), targetType, targetID,
		queryInt(r, "page", 1), queryInt(r, "limit", 20))
	if err != nil {
		s.handleError(w, "listReviews", err)
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}

func (s *Server) handleGetReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	review, err := s.storage.GetReview(r.Context(), id)
	if err != nil {
		s.handleError(w, "getReview", err)
		return
	}
	respondJSON(w, http.StatusOK, review)
}

func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	var input storage.UpdateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := s.storage.UpdateReview(r.Context(), mustActor(r), id, input)
	if err != nil {
		s.handleError(w, "updateReview", err)
		return
	}

	if review.TargetType == storage.TargetProduct {
		s.productCache.Delete(review.TargetID)
	}
	respondJSON(w, http.StatusOK, review)
}

func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	review, err := s.storage.GetReview(r.Context(), id)
	if err != nil {
		s.handleError(w, "deleteReview", err)
		return
	}

	if err := s.storage.DeleteReview(r.Context(), mustActor(r), id); err != nil {
		s.handleError(w, "deleteReview", err)
		return
	}

	if review.TargetType == storage.TargetProduct {
		s.productCache.Delete(review.TargetID)
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}

func (s *Server) handleRespondToReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	var input struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Response == "" {
		respondError(w, http.StatusBadRequest, "response is required")
		return
	}

	review, err := s.storage.RespondToReview(r.Context(), mustActor(r), id, input.Response)
	if err != nil {
		s.handleError(w, "respondToReview", err)
		return
	}
	respondJSON(w, http.StatusOK, review)
}
