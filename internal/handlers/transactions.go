package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/sbilibin2017/fraud-monitor/internal/services"
)

//go:generate mockgen -source=transactions.go -destination=transactions_mock.go -package=handlers

// TransactionsReader defines the interface that the service must implement.
type TransactionsReader interface {
	Transactions(ctx context.Context, q services.Query) ([]models.Transaction, error)
}

// SuspiciousReader defines the interface that the service must implement.
type SuspiciousReader interface {
	Suspicious(ctx context.Context, q services.Query) ([]models.Transaction, error)
}

// NewGetTransactionsHandler returns an HTTP handler listing every generated transaction.
// @Summary List transactions
// @Description Generates days*100 synthetic transactions, newest day first
// @Tags transactions
// @Produce json
// @Param days query int false "Number of days to analyse (1-30)" default(7)
// @Param limit_value query number false "Suspicious value limit (1000-10000)" default(5000)
// @Success 200 {object} models.TransactionsResponse "Generated transactions"
// @Failure 400 {object} models.ErrorResponse "Invalid query"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /transactions [get]
func NewGetTransactionsHandler(svc TransactionsReader) http.HandlerFunc {
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

		writeJSON(w, http.StatusOK, models.TransactionsResponse{
			Days:         q.Days,
			Transactions: txs,
		})
	}
}

// NewGetSuspiciousHandler returns an HTTP handler listing flagged transactions.
// @Summary List suspicious transactions
// @Description Flagged transactions sorted by date, newest first
// @Tags transactions
// @Produce json
// @Param days query int false "Number of days to analyse (1-30)" default(7)
// @Param limit_value query number false "Suspicious value limit (1000-10000)" default(5000)
// @Success 200 {object} models.TransactionsResponse "Suspicious transactions"
// @Failure 400 {object} models.ErrorResponse "Invalid query"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /transactions/suspicious [get]
func NewGetSuspiciousHandler(svc SuspiciousReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		txs, err := svc.Suspicious(r.Context(), q)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.TransactionsResponse{
			Days:         q.Days,
			Transactions: txs,
		})
	}
}
