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

func TestCreateShippingHandler(t *testing.T) {
	days := 3

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockShippingService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful create",
			requestBody: CreateShippingRequest{
				UserID:                1,
				ListingID:             10,
				ShippingMethod:        "postnl",
				ShippingCost:          6.95,
				EstimatedDeliveryDays: &days,
			},
			setupMocks: func(mockSvc *MockShippingService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), int64(10), "postnl", 6.95, gomock.Any(), gomock.Nil()).
					Return(&models.ShippingDetailDB{ID: 1, ListingID: 10, ShippingMethod: "postnl"}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "id",
		},
		{
			name: "listing already has shipping details",
			requestBody: CreateShippingRequest{
				UserID:         1,
				ListingID:      10,
				ShippingMethod: "postnl",
				ShippingCost:   6.95,
			},
			setupMocks: func(mockSvc *MockShippingService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), int64(10), "postnl", 6.95, gomock.Nil(), gomock.Nil()).
					Return(nil, errs.ErrConflict)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "error",
		},
		{
			name: "negative cost",
			requestBody: CreateShippingRequest{
				UserID:         1,
				ListingID:      10,
				ShippingMethod: "postnl",
				ShippingCost:   -1.0,
			},
			setupMocks: func(mockSvc *MockShippingService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), int64(10), "postnl", -1.0, gomock.Nil(), gomock.Nil()).
					Return(nil, errs.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "invalid request body",
			requestBody:        "not-json",
			setupMocks:         func(mockSvc *MockShippingService) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockShippingService(ctrl)
			tt.setupMocks(mockSvc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/shipping", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewCreateShippingHandler(mockSvc)
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

func TestGetShippingForListingHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockShippingService(ctrl)
		mockSvc.EXPECT().
			GetByListing(gomock.Any(), int64(10)).
			Return(&models.ShippingDetailDB{ID: 1, ListingID: 10}, nil)

		router := chi.NewRouter()
		router.Get("/listings/{id}/shipping", NewGetShippingForListingHandler(mockSvc))

		req := httptest.NewRequest(http.MethodGet, "/listings/10/shipping", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("no shipping details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockShippingService(ctrl)
		mockSvc.EXPECT().GetByListing(gomock.Any(), int64(10)).Return(nil, errs.ErrNotFound)

		router := chi.NewRouter()
		router.Get("/listings/{id}/shipping", NewGetShippingForListingHandler(mockSvc))

		req := httptest.NewRequest(http.MethodGet, "/listings/10/shipping", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateShippingTrackingHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        string
		setupMocks         func(mockSvc *MockShippingService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "set tracking number",
			requestBody: `{"tracking_number":"3SABC123","status":"shipped"}`,
			setupMocks: func(mockSvc *MockShippingService) {
				mockSvc.EXPECT().
					UpdateTracking(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ interface{}, _ int64, upd models.ShippingUpdate) (*models.ShippingDetailDB, error) {
						assert.True(t, upd.TrackingNumber.Set)
						assert.Equal(t, "3SABC123", upd.TrackingNumber.Value)
						assert.True(t, upd.Status.Set)
						return &models.ShippingDetailDB{ID: 1}, nil
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "id",
		},
		{
			name:        "clear tracking number",
			requestBody: `{"tracking_number":null}`,
			setupMocks: func(mockSvc *MockShippingService) {
				mockSvc.EXPECT().
					UpdateTracking(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ interface{}, _ int64, upd models.ShippingUpdate) (*models.ShippingDetailDB, error) {
						assert.True(t, upd.TrackingNumber.Set)
						assert.False(t, upd.TrackingNumber.Valid)
						return &models.ShippingDetailDB{ID: 1}, nil
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "id",
		},
		{
			name:        "null status rejected",
			requestBody: `{"status":null}`,
			setupMocks: func(mockSvc *MockShippingService) {
				mockSvc.EXPECT().
					UpdateTracking(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, errs.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockShippingService(ctrl)
			tt.setupMocks(mockSvc)

			router := chi.NewRouter()
			router.Patch("/shipping/{id}", NewUpdateShippingTrackingHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPatch, "/shipping/1", bytes.NewReader([]byte(tt.requestBody)))
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
