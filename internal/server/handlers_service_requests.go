package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/shopmeco/backend/internal/lifecycle"
	"github.com/shopmeco/backend/internal/metrics"
	"github.com/shopmeco/backend/internal/storage"
)

func (s *Server) handleCreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	var input storage.CreateServiceRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := s.storage.CreateServiceRequest(r.Context(), mustActor(r), input)
	if err != nil {
		s.handleError(w, "createServiceRequest", err)
		return
	}
	respondJSON(w, http.StatusCreated, request)
}

func (s *Server) handleListServiceRequests(w http.ResponseWriter, r *http.Request) {
	filter := storage.ServiceRequestFilter{
		Status: r.URL.Query().Get("status"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}

	requests, err := s.storage.ListServiceRequests(r.Context(), mustActor(r), filter)
	if err != nil {
		s.handleError(w, "listServiceRequests", err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (s *Server) handleGetServiceRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid service request id")
		return
	}

	request, err := s.storage.GetServiceRequest(r.Context(), mustActor(r), id)
	if err != nil {
		s.handleError(w, "getServiceRequest", err)
		return
	}
	respondJSON(w, http.StatusOK, request)
}

func (s *Server) handleUpdateServiceRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid service request id")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	update, err := decodeServiceRequestUpdate(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := s.storage.UpdateServiceRequest(r.Context(), mustActor(r), id, update)
	if err != nil {
		s.handleError(w, "updateServiceRequest", err)
		return
	}

	if request.Status == lifecycle.ServiceCompleted {
		metrics.ServiceRequestsCompletedTotal.Inc()
	}
	respondJSON(w, http.StatusOK, request)
}

func (s *Server) handleCompleteServiceRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid service request id")
		return
	}

	var input storage.CompletionInput
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	request, err := s.storage.CompleteServiceRequest(r.Context(), mustActor(r), id, input)
	if err != nil {
		s.handleError(w, "completeServiceRequest", err)
		return
	}

	metrics.ServiceRequestsCompletedTotal.Inc()
	respondJSON(w, http.StatusOK, request)
}

func (s *Server) handleCancelServiceRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid service request id")
		return
	}

	request, err := s.storage.CancelServiceRequest(r.Context(), mustActor(r), id)
	if err != nil {
		s.handleError(w, "cancelServiceRequest", err)
		return
	}
	respondJSON(w, http.StatusOK, request)
}

func decodeServiceRequestUpdate(body []byte) (storage.ServiceRequestUpdate, error) {
	var update storage.ServiceRequestUpdate
	if err := json.Unmarshal(body, &update); err != nil {
		return storage.ServiceRequestUpdate{}, err
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&raw); err != nil {
		return storage.ServiceRequestUpdate{}, err
	}
	update.Keys = make(map[string]bool, len(raw))
	for key := range raw {
		update.Keys[key] = true
	}
	return update, nil
}
