package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/sbilibin2017/fraud-monitor/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAlertsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockAlertsReader(ctrl)
	alert := models.Alert{
		ID:       "a1",
		DateTime: "18/10/2026 02:15",
		Value:    "R$ 120.50",
		Category: "Purchase",
		Location: "SP",
	}

	tests := []struct {
		name           string
		url            string
		setupMocks     func()
		expectedStatus int
		expectedAlerts int
	}{
		{
			name: "default top",
			url:  "/api/v1/alerts",
			setupMocks: func() {
				mockReader.EXPECT().
					Alerts(gomock.Any(), services.Query{Days: 7, Limit: 5000}, 3).
					Return([]models.Alert{alert, alert, alert}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedAlerts: 3,
		},
		{
			name: "explicit top",
			url:  "/api/v1/alerts?top=1&days=2",
			setupMocks: func() {
				mockReader.EXPECT().
					Alerts(gomock.Any(), services.Query{Days: 2, Limit: 5000}, 1).
					Return([]models.Alert{alert}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedAlerts: 1,
		},
		{
			name:           "malformed top",
			url:            "/api/v1/alerts?top=many",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "non positive top",
			url:  "/api/v1/alerts?top=0",
			setupMocks: func() {
				mockReader.EXPECT().
					Alerts(gomock.Any(), gomock.Any(), 0).
					Return(nil, fmt.Errorf("%w: must be positive", services.ErrInvalidTop))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			NewGetAlertsHandler(mockReader).ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.AlertsResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Len(t, resp.Alerts, tt.expectedAlerts)
			assert.Equal(t, "R$ 120.50", resp.Alerts[0].Value)
		})
	}
}
