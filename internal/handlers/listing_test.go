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

func TestCreateListingHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockListingService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful create",
			requestBody: CreateListingRequest{
				UserID:      1,
				CategoryID:  2,
				Title:       "Mountain bike",
				ListingType: "selling",
				Price:       250.0,
				Region:      "Leiden",
				Description: "Barely used",
			},
			setupMocks: func(mockSvc *MockListingService) {
				mockSvc.EXPECT().
					CreateListing(gomock.Any(), int64(1), int64(2), "Mountain bike", "selling", 250.0, "Leiden", "Barely used", gomock.Nil()).
					Return(&models.ListingDB{ID: 10, Title: "Mountain bike", Status: models.ListingStatusActive}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "id",
		},
		{
			name:               "invalid request body",
			requestBody:        "not-json",
			setupMocks:         func(mockSvc *MockListingService) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "unknown listing type",
			requestBody: CreateListingRequest{
				UserID:      1,
				CategoryID:  2,
				Title:       "Mountain bike",
				ListingType: "renting",
				Price:       250.0,
			},
			setupMocks: func(mockSvc *MockListingService) {
				mockSvc.EXPECT().
					CreateListing(gomock.Any(), int64(1), int64(2), "Mountain bike", "renting", 250.0, "", "", gomock.Nil()).
					Return(nil, errs.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "internal server error",
			requestBody: CreateListingRequest{
				UserID:      1,
				CategoryID:  2,
				Title:       "Mountain bike",
				ListingType: "selling",
				Price:       250.0,
			},
			setupMocks: func(mockSvc *MockListingService) {
				mockSvc.EXPECT().
					CreateListing(gomock.Any(), int64(1), int64(2), "Mountain bike", "selling", 250.0, "", "", gomock.Nil()).
					Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockListingService(ctrl)
			tt.setupMocks(mockSvc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewCreateListingHandler(mockSvc)
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

func TestListListingsHandler(t *testing.T) {
	t.Run("plain list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockListingService(ctrl)
		mockSvc.EXPECT().ListListings(gomock.Any()).Return([]models.ListingDB{{ID: 1}, {ID: 2}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/listings", nil)
		rr := httptest.NewRecorder()
		NewListListingsHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var listings []models.ListingDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&listings))
		assert.Len(t, listings, 2)
	})

	t.Run("search term routes to search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockListingService(ctrl)
		mockSvc.EXPECT().SearchListings(gomock.Any(), "bike").Return([]models.ListingDB{{ID: 1, Title: "Mountain bike"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/listings?search=bike", nil)
		rr := httptest.NewRecorder()
		NewListListingsHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var listings []models.ListingDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&listings))
		assert.Len(t, listings, 1)
	})
}

func TestGetListingHandler(t *testing.T) {
	tests := []struct {
		name               string
		listingID          string
		setupMocks         func(mockSvc *MockListingService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:      "found",
			listingID: "10",
			setupMocks: func(mockSvc *MockListingService) {
				mockSvc.EXPECT().
					GetListing(gomock.Any(), int64(10)).
					Return(&models.ListingDB{ID: 10, Title: "Mountain bike"}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "title",
		},
		{
			name:      "not found",
			listingID: "999",
			setupMocks: func(mockSvc *MockListingService) {
				mockSvc.EXPECT().
					GetListing(gomock.Any(), int64(999)).
					Return(nil, errs.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:               "invalid id",
			listingID:          "zero",
			setupMocks:         func(mockSvc *MockListingService) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockListingService(ctrl)
			tt.setupMocks(mockSvc)

			router := chi.NewRouter()
			router.Get("/listings/{id}", NewGetListingHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/listings/"+tt.listingID, nil)
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

func TestUpdateListingHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        string
		setupMocks         func(mockSvc *MockListingService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "patch price",
			requestBody: `{"price":199.99}`,
			setupMocks: func(mockSvc *MockListingService) {
				mockSvc.EXPECT().
					UpdateListing(gomock.Any(), int64(10), gomock.Any()).
					DoAndReturn(func(_ interface{}, _ int64, upd models.ListingUpdate) (*models.ListingDB, error) {
						assert.True(t, upd.Price.Set)
						assert.Equal(t, 199.99, upd.Price.Value)
						assert.False(t, upd.Title.Set)
						return &models.ListingDB{ID: 10, Price: 199.99}, nil
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "price",
		},
		{
			name:        "clear image url",
			requestBody: `{"image_url":null}`,
			setupMocks: func(mockSvc *MockListingService) {
				mockSvc.EXPECT().
					UpdateListing(gomock.Any(), int64(10), gomock.Any()).
					DoAndReturn(func(_ interface{}, _ int64, upd models.ListingUpdate) (*models.ListingDB, error) {
						assert.True(t, upd.ImageURL.Set)
						assert.False(t, upd.ImageURL.Valid)
						return &models.ListingDB{ID: 10}, nil
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "id",
		},
		{
			name:        "null title rejected",
			requestBody: `{"title":null}`,
			setupMocks: func(mockSvc *MockListingService) {
				mockSvc.EXPECT().
					UpdateListing(gomock.Any(), int64(10), gomock.Any()).
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

			mockSvc := NewMockListingService(ctrl)
			tt.setupMocks(mockSvc)

			router := chi.NewRouter()
			router.Patch("/listings/{id}", NewUpdateListingHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPatch, "/listings/10", bytes.NewReader([]byte(tt.requestBody)))
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

func TestUpdateListingStatusHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockListingService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "mark sold",
			requestBody: UpdateListingStatusRequest{Status: "sold"},
			setupMocks: func(mockSvc *MockListingService) {
				mockSvc.EXPECT().
					UpdateListingStatus(gomock.Any(), int64(10), "sold").
					Return(&models.ListingDB{ID: 10, Status: models.ListingStatusSold}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "status",
		},
		{
			name:        "reviving a sold listing",
			requestBody: UpdateListingStatusRequest{Status: "active"},
			setupMocks: func(mockSvc *MockListingService) {
				mockSvc.EXPECT().
					UpdateListingStatus(gomock.Any(), int64(10), "active").
					Return(nil, errs.ErrConflict)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "error",
		},
		{
			name:        "unknown status",
			requestBody: UpdateListingStatusRequest{Status: "archived"},
			setupMocks: func(mockSvc *MockListingService) {
				mockSvc.EXPECT().
					UpdateListingStatus(gomock.Any(), int64(10), "archived").
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

			mockSvc := NewMockListingService(ctrl)
			tt.setupMocks(mockSvc)

			bodyBytes, _ := json.Marshal(tt.requestBody)

			router := chi.NewRouter()
			router.Put("/listings/{id}/status", NewUpdateListingStatusHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPut, "/listings/10/status", bytes.NewReader(bodyBytes))
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

func TestDeleteListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListingService(ctrl)
	mockSvc.EXPECT().DeleteListing(gomock.Any(), int64(10)).Return(nil)

	router := chi.NewRouter()
	router.Delete("/listings/{id}", NewDeleteListingHandler(mockSvc))

	req := httptest.NewRequest(http.MethodDelete, "/listings/10", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestListListingsByCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListingService(ctrl)
	mockSvc.EXPECT().
		ListListingsByCategory(gomock.Any(), int64(2)).
		Return([]models.ListingDB{{ID: 1, CategoryID: 2}}, nil)

	router := chi.NewRouter()
	router.Get("/categories/{id}/listings", NewListListingsByCategoryHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/categories/2/listings", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var listings []models.ListingDB
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&listings))
	assert.Len(t, listings, 1)
}
