package handlers

import (
	"net/http"

	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/sbilibin2017/fraud-monitor/internal/services"
)

//go:generate mockgen -source=rules.go -destination=rules_mock.go -package=handlers

// RulesReader defines the interface that the service must implement.
type RulesReader interface {
	Rules(q services.Query) (*models.RulesResponse, error)
}

// NewGetRulesHandler returns an HTTP handler describing the active detection rules.
// @Summary Detection rules
// @Tags dashboard
// @Produce json
// @Param limit_value query number false "Suspicious value limit (1000-10000)" default(5000)
// @Success 200 {object} models.RulesResponse "Rules"
// @Failure 400 {object} models.ErrorResponse "Invalid query"
// @Router /rules [get]
func NewGetRulesHandler(svc RulesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		rules, err := svc.Rules(q)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, rules)
	}
}
