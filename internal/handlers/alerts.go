package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/sbilibin2017/fraud-monitor/internal/services"
)

//go:generate mockgen -source=alerts.go -destination=alerts_mock.go -package=handlers

// AlertsReader defines the interface that the service must implement.
type AlertsReader interface {
	Alerts(ctx context.Context, q services.Query, top int) ([]models.Alert, error)
}

// NewGetAlertsHandler returns an HTTP handler with alerts for the newest flagged transactions.
// @Summary Real-time alerts
// @Description Alerts for the newest suspicious transactions, also published to Kafka when configured
// @Tags dashboard
// @Produce json
// @Param days query int false "Number of days to analyse (1-30)" default(7)
// @Param limit_value query number false "Suspicious value limit (1000-10000)" default(5000)
// @Param top query int false "Number of alerts" default(3)
// @Success 200 {object} models.AlertsResponse "Alerts"
// @Failure 400 {object} models.ErrorResponse "Invalid query"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /alerts [get]
func NewGetAlertsHandler(svc AlertsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		top, err := parseTop(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		alerts, err := svc.Alerts(r.Context(), q, top)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.AlertsResponse{Alerts: alerts})
	}
}
