package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/lifecycle"
	"github.com/shopmeco/backend/internal/metrics"
	"github.com/shopmeco/backend/internal/storage"
)

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var input storage.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := s.storage.CreateOrder(r.Context(), mustActor(r), input)
	if err != nil {
		s.handleError(w, "createOrder", err)
		return
	}

	metrics.OrdersCreatedTotal.Inc()
	s.invalidateOrderProducts(order)
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	filter := storage.OrderFilter{
		OrderStatus:   r.URL.Query().Get("orderStatus"),
		PaymentStatus: r.URL.Query().Get("paymentStatus"),
		Page:          queryInt(r, "page", 1),
		Limit:         queryInt(r, "limit", 20),
	}
	if raw := r.URL.Query().Get("startDate"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid startDate, use RFC3339")
			return
		}
		filter.StartDate = &start
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid endDate, use RFC3339")
			return
		}
		filter.EndDate = &end
	}

	orders, err := s.storage.ListOrders(r.Context(), mustActor(r), filter)
	if err != nil {
		s.handleError(w, "listOrders", err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := s.storage.GetOrder(r.Context(), mustActor(r), id)
	if err != nil {
		s.handleError(w, "getOrder", err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	update, err := decodeOrderUpdate(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := s.storage.UpdateOrder(r.Context(), mustActor(r), id, update)
	if err != nil {
		s.handleError(w, "updateOrder", err)
		return
	}

	if order.OrderStatus == lifecycle.OrderCancelled {
		metrics.OrdersCancelledTotal.Inc()
		s.invalidateOrderProducts(order)
	}
	respondJSON(w, http.StatusOK, order)
}

// decodeOrderUpdate decodes the body twice: once into the typed update
// and once into a raw map, so the update knows which keys the client
// actually sent. Field permissions depend on key presence, not on
// whether a value happens to be zero.
func decodeOrderUpdate(body []byte) (storage.OrderUpdate, error) {
	var update storage.OrderUpdate
	if err := json.Unmarshal(body, &update); err != nil {
		return storage.OrderUpdate{}, err
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&raw); err != nil {
		return storage.OrderUpdate{}, err
	}
	update.Keys = make(map[string]bool, len(raw))
	for key := range raw {
		update.Keys[key] = true
	}
	return update, nil
}

// Stock changed, drop cached copies of the affected products.
func (s *Server) invalidateOrderProducts(order *storage.Order) {
	seen := make(map[uuid.UUID]bool, len(order.Items))
	for _, item := range order.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			s.productCache.Delete(item.ProductID)
		}
	}
}
