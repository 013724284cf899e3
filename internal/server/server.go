//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/shopmeco/backend/internal/auth"
	"github.com/shopmeco/backend/internal/cache"
	"github.com/shopmeco/backend/internal/metrics"
	"github.com/shopmeco/backend/internal/storage"
)

type Storage interface {
	RegisterUser(ctx context.Context, input storage.RegisterInput) (*storage.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (*storage.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*storage.User, error)
	UpdateProfile(ctx context.Context, actor storage.Actor, input storage.UpdateProfileInput) (*storage.User, error)
	ListUsers(ctx context.Context, actor storage.Actor, page, limit int) ([]storage.User, error)
	DeleteUser(ctx context.Context, actor storage.Actor, id uuid.UUID) error

	CreateVehicle(ctx context.Context, actor storage.Actor, input storage.CreateVehicleInput) (*storage.Vehicle, error)
	GetVehicle(ctx context.Context, actor storage.Actor, id uuid.UUID) (*storage.Vehicle, error)
	ListVehicles(ctx context.Context, actor storage.Actor) ([]storage.Vehicle, error)
	UpdateVehicle(ctx context.Context, actor storage.Actor, id uuid.UUID, input storage.UpdateVehicleInput) (*storage.Vehicle, error)
	DeleteVehicle(ctx context.Context, actor storage.Actor, id uuid.UUID) error
	GetVehicleMaintenance(ctx context.Context, actor storage.Actor, vehicleID uuid.UUID) ([]storage.MaintenanceRecord, error)

	CreateProduct(ctx context.Context, actor storage.Actor, input storage.CreateProductInput) (*storage.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*storage.Product, error)
	ListProducts(ctx context.Context, filter storage.ProductFilter) ([]storage.Product, error)
	UpdateProduct(ctx context.Context, actor storage.Actor, id uuid.UUID, input storage.UpdateProductInput) (*storage.Product, error)
	DeleteProduct(ctx context.Context, actor storage.Actor, id uuid.UUID) error

	CreateOrder(ctx context.Context, actor storage.Actor, input storage.CreateOrderInput) (*storage.Order, error)
	GetOrder(ctx context.Context, actor storage.Actor, id uuid.UUID) (*storage.Order, error)
	ListOrders(ctx context.Context, actor storage.Actor, filter storage.OrderFilter) ([]storage.Order, error)
	UpdateOrder(ctx context.Context, actor storage.Actor, id uuid.UUID, update storage.OrderUpdate) (*storage.Order, error)

	CreateServiceRequest(ctx context.Context, actor storage.Actor, input storage.CreateServiceRequestInput) (*storage.ServiceRequest, error)
	GetServiceRequest(ctx context.Context, actor storage.Actor, id uuid.UUID) (*storage.ServiceRequest, error)
	ListServiceRequests(ctx context.Context, actor storage.Actor, filter storage.ServiceRequestFilter) ([]storage.ServiceRequest, error)
	UpdateServiceRequest(ctx context.Context, actor storage.Actor, id uuid.UUID, update storage.ServiceRequestUpdate) (*storage.ServiceRequest, error)
	CompleteServiceRequest(ctx context.Context, actor storage.Actor, id uuid.UUID, input storage.CompletionInput) (*storage.ServiceRequest, error)
	CancelServiceRequest(ctx context.Context, actor storage.Actor, id uuid.UUID) (*storage.ServiceRequest, error)

	CreateReview(ctx context.Context, actor storage.Actor, input storage.CreateReviewInput) (*storage.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*storage.Review, error)
	ListReviews(ctx context.Context, targetType string, targetID uuid.UUID, page, limit int) ([]storage.Review, error)
	UpdateReview(ctx context.Context, actor storage.Actor, id uuid.UUID, input storage.UpdateReviewInput) (*storage.Review, error)
	DeleteReview(ctx context.Context, actor storage.Actor, id uuid.UUID) error
	RespondToReview(ctx context.Context, actor storage.Actor, id uuid.UUID, response string) (*storage.Review, error)
}

type Server struct {
	storage      Storage
	tokens       *auth.Manager
	productCache *cache.ProductCache
	server       *http.Server
	AuditManager *AuditManager
}

func New(storage Storage, tokens *auth.Manager, productCache *cache.ProductCache, auditSink AuditSink) *Server {
	return &Server{
		storage:      storage,
		tokens:       tokens,
		productCache: productCache,
		AuditManager: NewAuditManager(2, 5, 500*time.Millisecond, auditSink),
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	zap.L().Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	zap.L().Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.AuditManager.Shutdown(ctx)
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()
	router.Use(s.auditLogMiddleware)

	router.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	router.HandleFunc("/products", s.handleListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/{id}", s.handleGetProduct).Methods(http.MethodGet)
	router.HandleFunc("/reviews", s.handleListReviews).Methods(http.MethodGet)
	router.HandleFunc("/reviews/{id}", s.handleGetReview).Methods(http.MethodGet)

	private := router.PathPrefix("/").Subrouter()
	private.Use(s.authMiddleware)

	private.HandleFunc("/users", s.handleListUsers).Methods(http.MethodGet)
	private.HandleFunc("/users/me", s.handleGetProfile).Methods(http.MethodGet)
	private.HandleFunc("/users/me", s.handleUpdateProfile).Methods(http.MethodPut)
	private.HandleFunc("/users/{id}", s.handleGetUser).Methods(http.MethodGet)
	private.HandleFunc("/users/{id}", s.handleDeleteUser).Methods(http.MethodDelete)

	private.HandleFunc("/vehicles", s.handleCreateVehicle).Methods(http.MethodPost)
	private.HandleFunc("/vehicles", s.handleListVehicles).Methods(http.MethodGet)
	private.HandleFunc("/vehicles/{id}", s.handleGetVehicle).Methods(http.MethodGet)
	private.HandleFunc("/vehicles/{id}", s.handleUpdateVehicle).Methods(http.MethodPut)
	private.HandleFunc("/vehicles/{id}", s.handleDeleteVehicle).Methods(http.MethodDelete)
	private.HandleFunc("/vehicles/{id}/maintenance", s.handleVehicleMaintenance).Methods(http.MethodGet)

	private.HandleFunc("/products", s.handleCreateProduct).Methods(http.MethodPost)
	private.HandleFunc("/products/{id}", s.handleUpdateProduct).Methods(http.MethodPut)
	private.HandleFunc("/products/{id}", s.handleDeleteProduct).Methods(http.MethodDelete)

	private.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	private.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet)
	private.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	private.HandleFunc("/orders/{id}", s.handleUpdateOrder).Methods(http.MethodPut)

	private.HandleFunc("/service-requests", s.handleCreateServiceRequest).Methods(http.MethodPost)
	private.HandleFunc("/service-requests", s.handleListServiceRequests).Methods(http.MethodGet)
	private.HandleFunc("/service-requests/{id}", s.handleGetServiceRequest).Methods(http.MethodGet)
	private.HandleFunc("/service-requests/{id}", s.handleUpdateServiceRequest).Methods(http.MethodPut)
	private.HandleFunc("/service-requests/{id}/complete", s.handleCompleteServiceRequest).Methods(http.MethodPost)
	private.HandleFunc("/service-requests/{id}/cancel", s.handleCancelServiceRequest).Methods(http.MethodPost)
	private.HandleFunc("/service-requests/{id}", s.handleCancelServiceRequest).Methods(http.MethodDelete)

	private.HandleFunc("/reviews", s.handleCreateReview).Methods(http.MethodPost)
	private.HandleFunc("/reviews/{id}", s.handleUpdateReview).Methods(http.MethodPut)
	private.HandleFunc("/reviews/{id}", s.handleDeleteReview).Methods(http.MethodDelete)
	private.HandleFunc("/reviews/{id}/respond", s.handleRespondToReview).Methods(http.MethodPost)

	return router
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			zap.L().Error("failed to encode response", zap.Error(err))
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// handleError maps domain sentinels onto HTTP status codes. Anything
// unrecognized is a 500 and gets logged with the operation name.
func (s *Server) handleError(w http.ResponseWriter, operation string, err error) {
	metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()

	switch {
	case errors.Is(err, storage.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrForbidden):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrConflict):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrValidation), errors.Is(err, storage.ErrInvalidTransition):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		zap.L().Error("operation failed", zap.String("operation", operation), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return def
	}
	return value
}
