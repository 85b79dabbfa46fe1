package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/sbilibin2017/fraud-monitor/internal/charts"
	"github.com/sbilibin2017/fraud-monitor/internal/models"
)

type renderFunc func(w io.Writer, txs []models.Transaction) error

// NewCategoryChartHandler returns an HTTP handler serving the fraud-by-category pie chart.
// @Summary Fraud by category chart
// @Tags charts
// @Produce png
// @Param days query int false "Number of days to analyse (1-30)" default(7)
// @Param limit_value query number false "Suspicious value limit (1000-10000)" default(5000)
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} models.ErrorResponse "Invalid query"
// @Failure 404 {object} models.ErrorResponse "No suspicious transactions"
// @Router /charts/category.png [get]
func NewCategoryChartHandler(svc TransactionsReader) http.HandlerFunc {
	return newChartHandler(svc, charts.RenderCategoryPie)
}

// NewLocationChartHandler returns an HTTP handler serving the fraud-by-location bar chart.
// @Summary Fraud by location chart
// @Tags charts
// @Produce png
// @Param days query int false "Number of days to analyse (1-30)" default(7)
// @Param limit_value query number false "Suspicious value limit (1000-10000)" default(5000)
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} models.ErrorResponse "Invalid query"
// @Failure 404 {object} models.ErrorResponse "No suspicious transactions"
// @Router /charts/location.png [get]
func NewLocationChartHandler(svc TransactionsReader) http.HandlerFunc {
	return newChartHandler(svc, charts.RenderLocationBar)
}

func newChartHandler(svc TransactionsReader, render renderFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		txs, err := svc.Transactions(r.Context(), q)
		if err != nil {
			writeError(w, r, err)
			return
		}

		// render fully before writing so failures can still set the status
		var buf bytes.Buffer
		if err := render(&buf, txs); err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}
