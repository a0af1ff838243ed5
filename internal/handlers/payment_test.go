package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCreatePaymentHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockPaymentService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful payment",
			requestBody: CreatePaymentRequest{
				TransactionID: 1,
				ListingID:     10,
				PaymentMethod: "card",
				Amount:        120.0,
			},
			setupMocks: func(mockSvc *MockPaymentService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), int64(10), "card", 120.0).
					Return(&models.PaymentDB{ID: 1, Status: models.PaymentStatusPending}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "id",
		},
		{
			name: "transaction does not match listing",
			requestBody: CreatePaymentRequest{
				TransactionID: 1,
				ListingID:     11,
				PaymentMethod: "card",
				Amount:        120.0,
			},
			setupMocks: func(mockSvc *MockPaymentService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), int64(11), "card", 120.0).
					Return(nil, errs.ErrConflict)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "error",
		},
		{
			name: "missing payment method",
			requestBody: CreatePaymentRequest{
				TransactionID: 1,
				ListingID:     10,
				Amount:        120.0,
			},
			setupMocks: func(mockSvc *MockPaymentService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), int64(10), "", 120.0).
					Return(nil, errs.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "invalid request body",
			requestBody:        "not-json",
			setupMocks:         func(mockSvc *MockPaymentService) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockPaymentService(ctrl)
			tt.setupMocks(mockSvc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewCreatePaymentHandler(mockSvc)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestRequestRefundHandler(t *testing.T) {
	tests := []struct {
		name               string
		paymentID          string
		setupMocks         func(mockSvc *MockPaymentService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:      "refund requested for completed payment",
			paymentID: "1",
			setupMocks: func(mockSvc *MockPaymentService) {
				mockSvc.EXPECT().
					RequestRefund(gomock.Any(), int64(1)).
					Return(&models.PaymentDB{ID: 1, Status: models.PaymentStatusRefundRequested}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "status",
		},
		{
			name:      "payment not completed",
			paymentID: "1",
			setupMocks: func(mockSvc *MockPaymentService) {
				mockSvc.EXPECT().
					RequestRefund(gomock.Any(), int64(1)).
					Return(nil, errs.ErrConflict)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "error",
		},
		{
			name:      "payment missing",
			paymentID: "42",
			setupMocks: func(mockSvc *MockPaymentService) {
				mockSvc.EXPECT().
					RequestRefund(gomock.Any(), int64(42)).
					Return(nil, errs.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:               "invalid id",
			paymentID:          "x",
			setupMocks:         func(mockSvc *MockPaymentService) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockPaymentService(ctrl)
			tt.setupMocks(mockSvc)

			router := chi.NewRouter()
			router.Post("/payments/{id}/refund", NewRequestRefundHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/payments/"+tt.paymentID+"/refund", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestUpdatePaymentStatusHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockPaymentService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "settle payment",
			requestBody: UpdatePaymentStatusRequest{Status: "completed"},
			setupMocks: func(mockSvc *MockPaymentService) {
				mockSvc.EXPECT().
					UpdateStatus(gomock.Any(), int64(1), "completed").
					Return(&models.PaymentDB{ID: 1, Status: models.PaymentStatusCompleted}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "status",
		},
		{
			name:        "refunded is terminal",
			requestBody: UpdatePaymentStatusRequest{Status: "pending"},
			setupMocks: func(mockSvc *MockPaymentService) {
				mockSvc.EXPECT().
					UpdateStatus(gomock.Any(), int64(1), "pending").
					Return(nil, errs.ErrConflict)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockPaymentService(ctrl)
			tt.setupMocks(mockSvc)

			bodyBytes, _ := json.Marshal(tt.requestBody)

			router := chi.NewRouter()
			router.Put("/payments/{id}/status", NewUpdatePaymentStatusHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPut, "/payments/1/status", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestListUserPaymentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPaymentService(ctrl)
	mockSvc.EXPECT().
		ListByUser(gomock.Any(), int64(2)).
		Return([]models.PaymentDB{{ID: 1}}, nil)

	router := chi.NewRouter()
	router.Get("/users/{id}/payments", NewListUserPaymentsHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/users/2/payments", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var payments []models.PaymentDB
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&payments))
	assert.Len(t, payments, 1)
}
