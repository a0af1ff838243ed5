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

func TestCreateReportHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockReportService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful report",
			requestBody: CreateReportRequest{UserID: 2, ReportReason: "counterfeit goods"},
			setupMocks: func(mockSvc *MockReportService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(2), int64(10), "counterfeit goods").
					Return(&models.ReportDB{ID: 1, ListingID: 10}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "id",
		},
		{
			name:        "empty reason",
			requestBody: CreateReportRequest{UserID: 2},
			setupMocks: func(mockSvc *MockReportService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(2), int64(10), "").
					Return(nil, errs.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "listing missing",
			requestBody: CreateReportRequest{UserID: 2, ReportReason: "spam"},
			setupMocks: func(mockSvc *MockReportService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(2), int64(10), "spam").
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

			mockSvc := NewMockReportService(ctrl)
			tt.setupMocks(mockSvc)

			bodyBytes, _ := json.Marshal(tt.requestBody)

			router := chi.NewRouter()
			router.Post("/listings/{id}/reports", NewCreateReportHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/listings/10/reports", bytes.NewReader(bodyBytes))
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

func TestListReportsForListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReportService(ctrl)
	mockSvc.EXPECT().
		ListByListing(gomock.Any(), int64(10)).
		Return([]models.ReportDB{{ID: 1}}, nil)

	router := chi.NewRouter()
	router.Get("/listings/{id}/reports", NewListReportsForListingHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/listings/10/reports", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var reports []models.ReportDB
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&reports))
	assert.Len(t, reports, 1)
}

func TestDeleteReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReportService(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	router := chi.NewRouter()
	router.Delete("/reports/{id}", NewDeleteReportHandler(mockSvc))

	req := httptest.NewRequest(http.MethodDelete, "/reports/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
