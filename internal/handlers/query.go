package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/fraud-monitor/internal/charts"
	"github.com/sbilibin2017/fraud-monitor/internal/logger"
	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/sbilibin2017/fraud-monitor/internal/services"
)

// ErrBadQuery is returned for query parameters that are not numbers.
var ErrBadQuery = errors.New("malformed query parameter")

// parseQuery reads days and limit_value, falling back to the dashboard defaults.
func parseQuery(r *http.Request) (services.Query, error) {
	q := services.Query{Days: services.DefaultDays, Limit: services.DefaultLimit}

	if v := r.URL.Query().Get("days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("%w: days=%q", ErrBadQuery, v)
		}
		q.Days = days
	}
	if v := r.URL.Query().Get("limit_value"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, fmt.Errorf("%w: limit_value=%q", ErrBadQuery, v)
		}
		q.Limit = limit
	}
	return q, nil
}

// parseTop reads the alert count, defaulting to services.DefaultTopAlerts.
func parseTop(r *http.Request) (int, error) {
	v := r.URL.Query().Get("top")
	if v == "" {
		return services.DefaultTopAlerts, nil
	}
	top, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: top=%q", ErrBadQuery, v)
	}
	return top, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadQuery),
		errors.Is(err, services.ErrInvalidDays),
		errors.Is(err, services.ErrInvalidLimit),
		errors.Is(err, services.ErrInvalidTop):
		return http.StatusBadRequest
	case errors.Is(err, charts.ErrNothingToChart):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError logs err and writes it as models.ErrorResponse. Internal errors
// are not echoed back to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("request failed", "uri", r.RequestURI, "error", err)
		msg = "Internal server error"
	} else {
		logger.Log.Debugw("request rejected", "uri", r.RequestURI, "status", status, "error", err)
	}
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
