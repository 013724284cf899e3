package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/storage"
)

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var input storage.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := s.storage.CreateProduct(r.Context(), mustActor(r), input)
	if err != nil {
		s.handleError(w, "createProduct", err)
		return
	}
	s.productCache.Set(product)
	respondJSON(w, http.StatusCreated, product)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter := storage.ProductFilter{
		Category:  r.URL.Query().Get("category"),
		Make:      r.URL.Query().Get("make"),
		Model:     r.URL.Query().Get("model"),
		Condition: r.URL.Query().Get("condition"),
		Year:      queryInt(r, "year", 0),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}
	if raw := r.URL.Query().Get("sellerId"); raw != "" {
		sellerID, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid sellerId")
			return
		}
		filter.SellerID = &sellerID
	}

	products, err := s.storage.ListProducts(r.Context(), filter)
	if err != nil {
		s.handleError(w, "listProducts", err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if product, found := s.productCache.Get(id); found {
		respondJSON(w, http.StatusOK, product)
		return
	}

	product, err := s.storage.GetProduct(r.Context(), id)
	if err != nil {
		s.handleError(w, "getProduct", err)
		return
	}
	s.productCache.Set(product)
	respondJSON(w, http.StatusOK, product)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var input storage.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := s.storage.UpdateProduct(r.Context(), mustActor(r), id, input)
	if err != nil {
		s.handleError(w, "updateProduct", err)
		return
	}
	s.productCache.Set(product)
	respondJSON(w, http.StatusOK, product)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := s.storage.DeleteProduct(r.Context(), mustActor(r), id); err != nil {
		s.handleError(w, "deleteProduct", err)
		return
	}
	s.productCache.Delete(id)
	respondJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}
