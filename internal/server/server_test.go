package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shopmeco/backend/internal/auth"
	"github.com/shopmeco/backend/internal/cache"
	"github.com/shopmeco/backend/internal/lifecycle"
	mock_server "github.com/shopmeco/backend/internal/server/mocks"
	"github.com/shopmeco/backend/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *mock_server.MockStorage) {
	ctrl := gomock.NewController(t)
	st := mock_server.NewMockStorage(ctrl)
	srv := New(st, auth.NewManager("test-secret", time.Hour), cache.NewProductCache(), ConsoleAuditSink{})
	return srv, st
}

func withActor(r *http.Request, actor storage.Actor) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), actorCtxKey{}, actor))
}

func TestHandleRegister(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		srv, st := newTestServer(t)
		st.EXPECT().RegisterUser(gomock.Any(), storage.RegisterInput{
			Email:    "jordan@example.com",
			Password: "hunter2hunter2",
			Name:     "Jordan",
			Role:     "customer",
		}).Return(&storage.User{ID: userID, Email: "jordan@example.com", Name: "Jordan", Role: "customer"}, nil)

		body := `{"email":"jordan@example.com","password":"hunter2hunter2","name":"Jordan","role":"customer"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		srv.handleRegister(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp authResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)
		claims, err := srv.tokens.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, lifecycle.RoleCustomer, claims.Role)
		assert.Equal(t, "Bearer "+resp.Token, w.Header().Get(auth.AuthHeader))
	})

	t.Run("validation failure", func(t *testing.T) {
		srv, st := newTestServer(t)
		st.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: role must be customer, seller or repairer", storage.ErrValidation))

		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{"role":"admin"}`))
		w := httptest.NewRecorder()

		srv.handleRegister(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		srv, st := newTestServer(t)
		st.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: email already registered", storage.ErrConflict))

		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{"email":"jordan@example.com"}`))
		w := httptest.NewRecorder()

		srv.handleRegister(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error": "conflict: email already registered"}`, w.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		srv, _ := newTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{`))
		w := httptest.NewRecorder()

		srv.handleRegister(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv, st := newTestServer(t)
		userID := uuid.New()
		st.EXPECT().AuthenticateUser(gomock.Any(), "jordan@example.com", "hunter2hunter2").
			Return(&storage.User{ID: userID, Email: "jordan@example.com", Role: "seller"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"jordan@example.com","password":"hunter2hunter2"}`))
		w := httptest.NewRecorder()

		srv.handleLogin(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp authResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		claims, err := srv.tokens.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.RoleSeller, claims.Role)
		assert.Equal(t, "Bearer "+resp.Token, w.Header().Get(auth.AuthHeader))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		srv, st := newTestServer(t)
		st.EXPECT().AuthenticateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"jordan@example.com","password":"wrong"}`))
		w := httptest.NewRecorder()

		srv.handleLogin(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	srv, _ := newTestServer(t)
	userID := uuid.New()

	var seen storage.Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = mustActor(r)
		w.WriteHeader(http.StatusNoContent)
	})
	handler := srv.authMiddleware(next)

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "authorization header is required"}`, w.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set(auth.AuthHeader, "Bearer not-a-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token puts the actor in context", func(t *testing.T) {
		token, err := srv.tokens.BuildToken(userID, lifecycle.RoleRepairer)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set(auth.AuthHeader, "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, userID, seen.UserID)
		assert.Equal(t, lifecycle.RoleRepairer, seen.Role)
	})
}

func TestHandleGetProduct(t *testing.T) {
	srv, st := newTestServer(t)
	productID := uuid.New()
	product := &storage.Product{ID: productID, Name: "brake pads", Price: 40}

	// The second request must be served from the cache.
	st.EXPECT().GetProduct(gomock.Any(), productID).Return(product, nil).Times(1)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/products/"+productID.String(), nil)
		req = mux.SetURLVars(req, map[string]string{"id": productID.String()})
		w := httptest.NewRecorder()

		srv.handleGetProduct(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got storage.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, productID, got.ID)
	}
}

func TestHandleGetProductInvalidID(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/products/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	w := httptest.NewRecorder()

	srv.handleGetProduct(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdateOrder(t *testing.T) {
	orderID := uuid.New()
	sellerID := uuid.New()
	actor := storage.Actor{UserID: sellerID, Role: lifecycle.RoleSeller}

	t.Run("keys reflect the body", func(t *testing.T) {
		srv, st := newTestServer(t)
		st.EXPECT().UpdateOrder(gomock.Any(), actor, orderID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ storage.Actor, _ uuid.UUID, update storage.OrderUpdate) (*storage.Order, error) {
				assert.Equal(t, map[string]bool{"orderStatus": true, "trackingNumber": true}, update.Keys)
				require.NotNil(t, update.OrderStatus)
				assert.Equal(t, lifecycle.OrderShipped, *update.OrderStatus)
				return &storage.Order{ID: orderID, OrderStatus: lifecycle.OrderShipped}, nil
			})

		body := `{"orderStatus":"shipped","trackingNumber":"TRK-1042"}`
		req := httptest.NewRequest(http.MethodPut, "/orders/"+orderID.String(), bytes.NewBufferString(body))
		req = mux.SetURLVars(req, map[string]string{"id": orderID.String()})
		w := httptest.NewRecorder()

		srv.handleUpdateOrder(w, withActor(req, actor))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbidden transition", func(t *testing.T) {
		srv, st := newTestServer(t)
		st.EXPECT().UpdateOrder(gomock.Any(), actor, orderID, gomock.Any()).
			Return(nil, fmt.Errorf("%w: cannot move order from shipped to cancelled", storage.ErrInvalidTransition))

		req := httptest.NewRequest(http.MethodPut, "/orders/"+orderID.String(), bytes.NewBufferString(`{"orderStatus":"cancelled"}`))
		req = mux.SetURLVars(req, map[string]string{"id": orderID.String()})
		w := httptest.NewRecorder()

		srv.handleUpdateOrder(w, withActor(req, actor))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv, _ := newTestServer(t)
		req := httptest.NewRequest(http.MethodPut, "/orders/"+orderID.String(), bytes.NewBufferString(`{`))
		req = mux.SetURLVars(req, map[string]string{"id": orderID.String()})
		w := httptest.NewRecorder()

		srv.handleUpdateOrder(w, withActor(req, actor))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cancellation evicts the order's products from the cache", func(t *testing.T) {
		srv, st := newTestServer(t)
		productID := uuid.New()
		customer := storage.Actor{UserID: uuid.New(), Role: lifecycle.RoleCustomer}

		srv.productCache.Set(&storage.Product{ID: productID, Name: "brake pads", StockQuantity: 8})
		st.EXPECT().UpdateOrder(gomock.Any(), customer, orderID, gomock.Any()).
			Return(&storage.Order{
				ID:          orderID,
				OrderStatus: lifecycle.OrderCancelled,
				Items:       []storage.OrderItem{{ProductID: productID, Quantity: 2, UnitPrice: 40}},
			}, nil)

		req := httptest.NewRequest(http.MethodPut, "/orders/"+orderID.String(), bytes.NewBufferString(`{"orderStatus":"cancelled"}`))
		req = mux.SetURLVars(req, map[string]string{"id": orderID.String()})
		w := httptest.NewRecorder()

		srv.handleUpdateOrder(w, withActor(req, customer))

		require.Equal(t, http.StatusOK, w.Code)
		_, found := srv.productCache.Get(productID)
		assert.False(t, found)
	})
}

func TestHandleCompleteServiceRequest(t *testing.T) {
	requestID := uuid.New()
	repairerID := uuid.New()
	actor := storage.Actor{UserID: repairerID, Role: lifecycle.RoleRepairer}

	t.Run("with payload", func(t *testing.T) {
		srv, st := newTestServer(t)
		finalCost := 240.0
		st.EXPECT().CompleteServiceRequest(gomock.Any(), actor, requestID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ storage.Actor, _ uuid.UUID, input storage.CompletionInput) (*storage.ServiceRequest, error) {
				require.NotNil(t, input.FinalCost)
				assert.Equal(t, finalCost, *input.FinalCost)
				return &storage.ServiceRequest{ID: requestID, Status: lifecycle.ServiceCompleted}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/service-requests/"+requestID.String()+"/complete", bytes.NewBufferString(`{"finalCost":240}`))
		req = mux.SetURLVars(req, map[string]string{"id": requestID.String()})
		w := httptest.NewRecorder()

		srv.handleCompleteServiceRequest(w, withActor(req, actor))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("empty body is allowed", func(t *testing.T) {
		srv, st := newTestServer(t)
		st.EXPECT().CompleteServiceRequest(gomock.Any(), actor, requestID, storage.CompletionInput{}).
			Return(&storage.ServiceRequest{ID: requestID, Status: lifecycle.ServiceCompleted}, nil)

		req := httptest.NewRequest(http.MethodPost, "/service-requests/"+requestID.String()+"/complete", nil)
		req = mux.SetURLVars(req, map[string]string{"id": requestID.String()})
		w := httptest.NewRecorder()

		srv.handleCompleteServiceRequest(w, withActor(req, actor))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestErrorMapping(t *testing.T) {
	orderID := uuid.New()
	actor := storage.Actor{UserID: uuid.New(), Role: lifecycle.RoleCustomer}

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			err:      fmt.Errorf("%w: order", storage.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantBody: `{"error": "not found: order"}`,
		},
		{
			name:     "forbidden",
			err:      storage.ErrForbidden,
			wantCode: http.StatusForbidden,
			wantBody: `{"error": "forbidden"}`,
		},
		{
			name:     "unexpected errors are not leaked",
			err:      errors.New("pq: connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error": "internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, st := newTestServer(t)
			st.EXPECT().GetOrder(gomock.Any(), actor, orderID).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.String(), nil)
			req = mux.SetURLVars(req, map[string]string{"id": orderID.String()})
			w := httptest.NewRecorder()

			srv.handleGetOrder(w, withActor(req, actor))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHandleListProducts(t *testing.T) {
	t.Run("filter from query", func(t *testing.T) {
		srv, st := newTestServer(t)
		sellerID := uuid.New()
		st.EXPECT().ListProducts(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter storage.ProductFilter) ([]storage.Product, error) {
				assert.Equal(t, "brakes", filter.Category)
				assert.Equal(t, 2019, filter.Year)
				assert.Equal(t, 2, filter.Page)
				assert.Equal(t, 20, filter.Limit)
				require.NotNil(t, filter.SellerID)
				assert.Equal(t, sellerID, *filter.SellerID)
				return []storage.Product{}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/products?category=brakes&year=2019&page=2&sellerId="+sellerID.String(), nil)
		w := httptest.NewRecorder()

		srv.handleListProducts(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad seller id", func(t *testing.T) {
		srv, _ := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/products?sellerId=nope", nil)
		w := httptest.NewRecorder()

		srv.handleListProducts(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleDeleteProductInvalidatesCache(t *testing.T) {
	srv, st := newTestServer(t)
	productID := uuid.New()
	actor := storage.Actor{UserID: uuid.New(), Role: lifecycle.RoleSeller}

	srv.productCache.Set(&storage.Product{ID: productID, Name: "brake pads"})
	st.EXPECT().DeleteProduct(gomock.Any(), actor, productID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/products/"+productID.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": productID.String()})
	w := httptest.NewRecorder()

	srv.handleDeleteProduct(w, withActor(req, actor))

	require.Equal(t, http.StatusOK, w.Code)
	_, found := srv.productCache.Get(productID)
	assert.False(t, found)
}
