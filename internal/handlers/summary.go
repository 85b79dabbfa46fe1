package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/sbilibin2017/fraud-monitor/internal/services"
)

//go:generate mockgen -source=summary.go -destination=summary_mock.go -package=handlers

// SummaryReader defines the interface that the service must implement.
type SummaryReader interface {
	Summary(ctx context.Context, q services.Query) (*models.Summary, error)
}

// NewGetSummaryHandler returns an HTTP handler with the dashboard headline metrics.
// @Summary Dashboard summary
// @Description Total and suspicious counts, fraud rate, suspicious value and fraud counts per category and location
// @Tags dashboard
// @Produce json
// @Param days query int false "Number of days to analyse (1-30)" default(7)
// @Param limit_value query number false "Suspicious value limit (1000-10000)" default(5000)
// @Success 200 {object} models.Summary "Summary"
// @Failure 400 {object} models.ErrorResponse "Invalid query"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /summary [get]
func NewGetSummaryHandler(svc SummaryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		sum, err := svc.Summary(r.Context(), q)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, sum)
	}
}
