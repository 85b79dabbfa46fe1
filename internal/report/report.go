// Package report prints dashboard data as console tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/sbilibin2017/fraud-monitor/internal/services"
	"github.com/shopspring/decimal"
)

// WriteSummary prints the headline metrics followed by the per-group fraud counts.
func WriteSummary(w io.Writer, sum *models.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Total Transactions", "Suspicious Transactions", "Fraud Rate", "Total Suspicious Value"})
	table.Append([]string{
		strconv.Itoa(sum.Total),
		strconv.Itoa(sum.Suspicious),
		fmt.Sprintf("%.2f%%", sum.FraudRate),
		sum.SuspiciousValueDisplay,
	})
	table.Render()

	groups := tablewriter.NewWriter(w)
	groups.SetHeader([]string{"Group", "Value", "Suspicious"})
	for _, c := range models.Categories {
		groups.Append([]string{"Category", c.String(), strconv.Itoa(sum.ByCategory[c.String()])})
	}
	for _, l := range models.Locations {
		groups.Append([]string{"Location", l.String(), strconv.Itoa(sum.ByLocation[l.String()])})
	}
	groups.Render()
}

// WriteSuspicious prints up to limit flagged transactions; limit <= 0 prints all.
func WriteSuspicious(w io.Writer, txs []models.Transaction, limit int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Time", "Value", "Category", "Location"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, tx := range txs {
		if limit > 0 && i >= limit {
			break
		}
		table.Append([]string{
			tx.Timestamp.Format("02/01/2006"),
			tx.TimeOfDay,
			services.FormatBRL(decimal.NewFromFloat(tx.Amount)),
			tx.Category.String(),
			tx.Location.String(),
		})
	}
	table.Render()
}

// WriteAlerts prints each alert message separated by a blank line.
func WriteAlerts(w io.Writer, alerts []models.Alert) {
	for _, a := range alerts {
		fmt.Fprintf(w, "%s\n\n", a.Message)
	}
}

// WriteRules prints the active detection rules as a bullet list.
func WriteRules(w io.Writer, rules *models.RulesResponse) {
	fmt.Fprintf(w, "Detection rules (%s):\n", rules.Strategy)
	for _, r := range rules.Rules {
		fmt.Fprintf(w, "- %s\n", r)
	}
}
