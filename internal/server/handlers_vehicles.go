package server

import (
	"encoding/json"
	"net/http"

	"github.com/shopmeco/backend/internal/storage"
)

func (s *Server) handleCreateVehicle(w http.ResponseWriter, r *http.Request) {
	var input storage.CreateVehicleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vehicle, err := s.storage.CreateVehicle(r.Context(), mustActor(r), input)
	if err != nil {
		s.handleError(w, "createVehicle", err)
		return
	}
	respondJSON(w, http.StatusCreated, vehicle)
}

func (s *Server) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.storage.ListVehicles(r.Context(), mustActor(r))
	if err != nil {
		s.handleError(w, "listVehicles", err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (s *Server) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	vehicle, err := s.storage.GetVehicle(r.Context(), mustActor(r), id)
	if err != nil {
		s.handleError(w, "getVehicle", err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (s *Server) handleUpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	var input storage.UpdateVehicleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vehicle, err := s.storage.UpdateVehicle(r.Context(), mustActor(r), id, input)
	if err != nil {
		s.handleError(w, "updateVehicle", err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (s *Server) handleDeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	if err := s.storage.DeleteVehicle(r.Context(), mustActor(r), id); err != nil {
		s.handleError(w, "deleteVehicle", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "vehicle deleted"})
}

func (s *Server) handleVehicleMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	records, err := s.storage.GetVehicleMaintenance(r.Context(), mustActor(r), id)
	if err != nil {
		s.handleError(w, "vehicleMaintenance", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}
