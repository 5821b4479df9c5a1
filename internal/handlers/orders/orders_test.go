package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/internal/dto"
	"github.com/alexhernandez-git/freelanium/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

// newRequest builds an authenticated request carrying the orderID route param.
func newRequest(method, target, body, orderID string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderID", orderID)

	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, 10)
	return r.WithContext(ctx)
}

func TestSubmitDeliveryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		orderID       string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:    "Successful submission",
			orderID: "1",
			body:    `{"response":"all done","source_file":"final.zip"}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitDelivery(gomock.Any(), 1, 10, "all done", "final.zip").
					Return(nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:          "Invalid order id",
			orderID:       "abc",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid order id",
		},
		{
			name:          "Invalid request body",
			orderID:       "1",
			body:          `{"response":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:    "Not the seller",
			orderID: "1",
			body:    `{"response":"all done"}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitDelivery(gomock.Any(), 1, 10, "all done", "").
					Return(domain.ErrValidation)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "Order is not active",
			orderID: "1",
			body:    `{"response":"all done"}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitDelivery(gomock.Any(), 1, 10, "all done", "").
					Return(domain.ErrInvalidState)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:    "Order not found",
			orderID: "1",
			body:    `{"response":"all done"}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitDelivery(gomock.Any(), 1, 10, "all done", "").
					Return(domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Order not found",
		},
		{
			name:    "Internal server error",
			orderID: "1",
			body:    `{"response":"all done"}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitDelivery(gomock.Any(), 1, 10, "all done", "").
					Return(errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/orders/"+tt.orderID+"/deliveries", tt.body, tt.orderID)
			w := httptest.NewRecorder()

			handler.SubmitDelivery(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestAcceptDeliveryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		orderID       string
		deliveryID    string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:       "Successful acceptance",
			orderID:    "1",
			deliveryID: "5",
			prepareMock: func() {
				service.EXPECT().
					AcceptDelivery(gomock.Any(), 1, 5, 10).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid order id",
			orderID:       "0",
			deliveryID:    "5",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid order id",
		},
		{
			name:          "Invalid delivery id",
			orderID:       "1",
			deliveryID:    "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid delivery id",
		},
		{
			name:       "Delivery is not the pending one",
			orderID:    "1",
			deliveryID: "6",
			prepareMock: func() {
				service.EXPECT().
					AcceptDelivery(gomock.Any(), 1, 6, 10).
					Return(domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Order not found",
		},
		{
			name:       "Already delivered",
			orderID:    "1",
			deliveryID: "5",
			prepareMock: func() {
				service.EXPECT().
					AcceptDelivery(gomock.Any(), 1, 5, 10).
					Return(domain.ErrAlreadyDelivered)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:       "Second payment charge fails",
			orderID:    "1",
			deliveryID: "5",
			prepareMock: func() {
				service.EXPECT().
					AcceptDelivery(gomock.Any(), 1, 5, 10).
					Return(domain.ErrGateway)
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "Payment provider unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			target := "/api/orders/" + tt.orderID + "/deliveries/" + tt.deliveryID + "/accept"
			r := newRequest(http.MethodPost, target, "", tt.orderID)
			chi.RouteContext(r.Context()).URLParams.Add("deliveryID", tt.deliveryID)
			w := httptest.NewRecorder()

			handler.AcceptDelivery(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestRequestRevisionHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		orderID       string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:    "Successful revision request",
			orderID: "1",
			body:    `{"reason":"wrong color scheme"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestRevision(gomock.Any(), 1, 10, "wrong color scheme").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing reason",
			orderID:       "1",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Revision reason is required",
		},
		{
			name:    "No pending delivery",
			orderID: "1",
			body:    `{"reason":"wrong color scheme"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestRevision(gomock.Any(), 1, 10, "wrong color scheme").
					Return(domain.ErrInvalidState)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/orders/"+tt.orderID+"/revisions", tt.body, tt.orderID)
			w := httptest.NewRecorder()

			handler.RequestRevision(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		orderID       string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:    "Successful cancellation",
			orderID: "1",
			body:    `{"reason":"no longer needed"}`,
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), 1, 10, "no longer needed").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Not a party to the order",
			orderID: "1",
			body:    `{"reason":"no longer needed"}`,
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), 1, 10, "no longer needed").
					Return(domain.ErrValidation)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "Order already delivered",
			orderID: "1",
			body:    `{"reason":"no longer needed"}`,
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), 1, 10, "no longer needed").
					Return(domain.ErrInvalidState)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/orders/"+tt.orderID+"/cancel", tt.body, tt.orderID)
			w := httptest.NewRecorder()

			handler.Cancel(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetActivitiesHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now().UTC().Truncate(time.Second)

	tests := []struct {
		name          string
		orderID       string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  []dto.ActivityResponseDTO
	}{
		{
			name:    "Successful retrieval",
			orderID: "1",
			prepareMock: func() {
				service.EXPECT().
					GetActivities(gomock.Any(), 1).
					Return([]domain.Activity{
						{ID: 1, Type: domain.OfferActivity, OrderID: 1, CreatedAt: now},
						{ID: 2, Type: domain.DeliveryActivityType, OrderID: 1, CreatedAt: now},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.ActivityResponseDTO{
				{ID: 1, Type: domain.OfferActivity, CreatedAt: now},
				{ID: 2, Type: domain.DeliveryActivityType, CreatedAt: now},
			},
		},
		{
			name:    "Order not found",
			orderID: "1",
			prepareMock: func() {
				service.EXPECT().
					GetActivities(gomock.Any(), 1).
					Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Order not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/api/orders/"+tt.orderID+"/activities", "", tt.orderID)
			w := httptest.NewRecorder()

			handler.GetActivities(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.ActivityResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, len(tt.expectedBody), len(body))
				for i := range tt.expectedBody {
					assert.Equal(t, tt.expectedBody[i].ID, body[i].ID)
					assert.Equal(t, tt.expectedBody[i].Type, body[i].Type)
					assert.True(t, tt.expectedBody[i].CreatedAt.Equal(body[i].CreatedAt))
				}
			}
		})
	}
}
