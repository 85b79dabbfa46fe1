package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/sbilibin2017/fraud-monitor/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []models.Transaction {
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	return []models.Transaction{
		{Timestamp: day, Amount: 120.5, Category: models.Purchase, Location: models.SP, TimeOfDay: "02:15", IsFraud: true},
		{Timestamp: day, Amount: 80, Category: models.Transfer, Location: models.RJ, TimeOfDay: "14:00"},
		{Timestamp: day.AddDate(0, 0, -1), Amount: 999, Category: models.Withdrawal, Location: models.MG, TimeOfDay: "03:40", IsFraud: true},
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockTransactionsReader(ctrl)

	tests := []struct {
		name           string
		url            string
		setupMocks     func()
		expectedStatus int
		expectedKey    string
	}{
		{
			name: "defaults",
			url:  "/api/v1/transactions",
			setupMocks: func() {
				mockReader.EXPECT().
					Transactions(gomock.Any(), services.Query{Days: 7, Limit: 5000}).
					Return(sampleTransactions(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "transactions",
		},
		{
			name: "explicit controls",
			url:  "/api/v1/transactions?days=3&limit_value=2500.5",
			setupMocks: func() {
				mockReader.EXPECT().
					Transactions(gomock.Any(), services.Query{Days: 3, Limit: 2500.5}).
					Return(sampleTransactions(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "transactions",
		},
		{
			name:           "days not a number",
			url:            "/api/v1/transactions?days=abc",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name:           "limit not a number",
			url:            "/api/v1/transactions?limit_value=lots",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name: "days out of range",
			url:  "/api/v1/transactions?days=31",
			setupMocks: func() {
				mockReader.EXPECT().
					Transactions(gomock.Any(), services.Query{Days: 31, Limit: 5000}).
					Return(nil, fmt.Errorf("%w: too many", services.ErrInvalidDays))
			},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name: "service failure",
			url:  "/api/v1/transactions",
			setupMocks: func() {
				mockReader.EXPECT().
					Transactions(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewGetTransactionsHandler(mockReader)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)

			_, ok := body[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestGetTransactionsHandler_Body(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockTransactionsReader(ctrl)
	mockReader.EXPECT().
		Transactions(gomock.Any(), services.Query{Days: 2, Limit: 5000}).
		Return(sampleTransactions(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?days=2", nil)
	rr := httptest.NewRecorder()
	NewGetTransactionsHandler(mockReader).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.TransactionsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Days)
	require.Len(t, resp.Transactions, 3)
	assert.Equal(t, models.Purchase, resp.Transactions[0].Category)
	assert.Equal(t, "02:15", resp.Transactions[0].TimeOfDay)
	assert.True(t, bool(resp.Transactions[0].IsFraud))
	assert.False(t, bool(resp.Transactions[1].IsFraud))
}

func TestGetTransactionsHandler_HidesInternalErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockTransactionsReader(ctrl)
	mockReader.EXPECT().
		Transactions(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis: connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rr := httptest.NewRecorder()
	NewGetTransactionsHandler(mockReader).ServeHTTP(rr, req)

	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Internal server error", resp.Error)
}

func TestGetSuspiciousHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockSuspiciousReader(ctrl)

	tests := []struct {
		name           string
		url            string
		setupMocks     func()
		expectedStatus int
		expectedKey    string
	}{
		{
			name: "flagged records",
			url:  "/api/v1/transactions/suspicious?days=5&limit_value=1000",
			setupMocks: func() {
				mockReader.EXPECT().
					Suspicious(gomock.Any(), services.Query{Days: 5, Limit: 1000}).
					Return(sampleTransactions()[:1], nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "transactions",
		},
		{
			name: "limit out of range",
			url:  "/api/v1/transactions/suspicious?limit_value=50",
			setupMocks: func() {
				mockReader.EXPECT().
					Suspicious(gomock.Any(), services.Query{Days: 7, Limit: 50}).
					Return(nil, fmt.Errorf("%w: too low", services.ErrInvalidLimit))
			},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name:           "malformed days",
			url:            "/api/v1/transactions/suspicious?days=1.5",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewGetSuspiciousHandler(mockReader)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)

			_, ok := body[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
