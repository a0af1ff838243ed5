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

func TestCreateImageHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockImageService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful attach",
			requestBody: CreateImageRequest{UserID: 1, ImageURL: "https://img.example.com/bike.jpg"},
			setupMocks: func(mockSvc *MockImageService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), int64(10), "https://img.example.com/bike.jpg").
					Return(&models.ImageDB{ID: 1, ListingID: 10}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "id",
		},
		{
			name:        "empty url",
			requestBody: CreateImageRequest{UserID: 1},
			setupMocks: func(mockSvc *MockImageService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), int64(10), "").
					Return(nil, errs.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "listing missing",
			requestBody: CreateImageRequest{UserID: 1, ImageURL: "https://img.example.com/bike.jpg"},
			setupMocks: func(mockSvc *MockImageService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), int64(10), "https://img.example.com/bike.jpg").
					Return(nil, errs.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockImageService(ctrl)
			tt.setupMocks(mockSvc)

			bodyBytes, _ := json.Marshal(tt.requestBody)

			router := chi.NewRouter()
			router.Post("/listings/{id}/images", NewCreateImageHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/listings/10/images", bytes.NewReader(bodyBytes))
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

func TestListImagesForListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockImageService(ctrl)
	mockSvc.EXPECT().
		ListByListing(gomock.Any(), int64(10)).
		Return([]models.ImageDB{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

	router := chi.NewRouter()
	router.Get("/listings/{id}/images", NewListImagesForListingHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/listings/10/images", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var images []models.ImageDB
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&images))
	assert.Len(t, images, 3)
}

func TestDeleteImageHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockImageService(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), int64(9)).Return(errs.ErrNotFound)

	router := chi.NewRouter()
	router.Delete("/images/{id}", NewDeleteImageHandler(mockSvc))

	req := httptest.NewRequest(http.MethodDelete, "/images/9", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
