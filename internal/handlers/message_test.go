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

func TestCreateMessageHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockMessageService)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful send",
			requestBody: CreateMessageRequest{
				SenderID:    2,
				RecipientID: 1,
				ListingID:   10,
				MessageText: "Still available?",
			},
			setupMocks: func(mockSvc *MockMessageService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(2), int64(1), int64(10), "Still available?").
					Return(&models.MessageDB{ID: 1, SenderID: 2, RecipientID: 1}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "id",
		},
		{
			name: "messaging yourself",
			requestBody: CreateMessageRequest{
				SenderID:    2,
				RecipientID: 2,
				ListingID:   10,
				MessageText: "hello me",
			},
			setupMocks: func(mockSvc *MockMessageService) {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(2), int64(2), int64(10), "hello me").
					Return(nil, errs.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "invalid request body",
			requestBody:        "not-json",
			setupMocks:         func(mockSvc *MockMessageService) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockMessageService(ctrl)
			tt.setupMocks(mockSvc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewCreateMessageHandler(mockSvc)
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

func TestListUserMessagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMessageService(ctrl)
	mockSvc.EXPECT().
		ListByUser(gomock.Any(), int64(2)).
		Return([]models.MessageDB{{ID: 1}, {ID: 2}}, nil)

	router := chi.NewRouter()
	router.Get("/users/{id}/messages", NewListUserMessagesHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/users/2/messages", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var messages []models.MessageDB
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&messages))
	assert.Len(t, messages, 2)
}

func TestDeleteMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMessageService(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	router := chi.NewRouter()
	router.Delete("/messages/{id}", NewDeleteMessageHandler(mockSvc))

	req := httptest.NewRequest(http.MethodDelete, "/messages/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
