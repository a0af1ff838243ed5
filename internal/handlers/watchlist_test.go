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

func TestAddToWatchListHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockWatchListService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful add",
			requestBody: WatchListRequest{ListingID: 10},
			setupMocks: func(mockSvc *MockWatchListService) {
				mockSvc.EXPECT().
					Add(gomock.Any(), int64(2), int64(10)).
					Return(&models.WatchListEntryDB{ID: 1, UserID: 2, ListingID: 10}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "id",
		},
		{
			name:        "already watching",
			requestBody: WatchListRequest{ListingID: 10},
			setupMocks: func(mockSvc *MockWatchListService) {
				mockSvc.EXPECT().
					Add(gomock.Any(), int64(2), int64(10)).
					Return(nil, errs.ErrConflict)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "error",
		},
		{
			name:               "invalid request body",
			requestBody:        "not-json",
			setupMocks:         func(mockSvc *MockWatchListService) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockWatchListService(ctrl)
			tt.setupMocks(mockSvc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			router := chi.NewRouter()
			router.Post("/users/{id}/watchlist", NewAddToWatchListHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/users/2/watchlist", bytes.NewReader(bodyBytes))
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

func TestListWatchListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWatchListService(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), int64(2)).
		Return([]models.WatchListEntryDB{{ID: 1, UserID: 2, ListingID: 10}}, nil)

	router := chi.NewRouter()
	router.Get("/users/{id}/watchlist", NewListWatchListHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/users/2/watchlist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var entries []models.WatchListEntryDB
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&entries))
	assert.Len(t, entries, 1)
}

func TestRemoveFromWatchListHandler(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockWatchListService(ctrl)
		mockSvc.EXPECT().Remove(gomock.Any(), int64(2), int64(10)).Return(nil)

		router := chi.NewRouter()
		router.Delete("/users/{id}/watchlist/{listingID}", NewRemoveFromWatchListHandler(mockSvc))

		req := httptest.NewRequest(http.MethodDelete, "/users/2/watchlist/10", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not watching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockWatchListService(ctrl)
		mockSvc.EXPECT().Remove(gomock.Any(), int64(2), int64(10)).Return(errs.ErrNotFound)

		router := chi.NewRouter()
		router.Delete("/users/{id}/watchlist/{listingID}", NewRemoveFromWatchListHandler(mockSvc))

		req := httptest.NewRequest(http.MethodDelete, "/users/2/watchlist/10", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
