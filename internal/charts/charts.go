// Package charts renders fraud distributions as PNG images.
package charts

import (
	"errors"
	"fmt"
	"io"

	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNothingToChart is returned when a dataset has no flagged transactions.
var ErrNothingToChart = errors.New("no suspicious transactions to chart")

const (
	width   = 800
	height  = 400
	pieSize = 400
)

// Different colors for each slice or bar
var palette = []drawing.Color{
	{R: 77, G: 184, B: 255, A: 255},  // Blue
	{R: 250, G: 134, B: 94, A: 255},  // Orange
	{R: 165, G: 235, B: 91, A: 255},  // Green
	{R: 252, G: 201, B: 100, A: 255}, // Yellow
	{R: 208, G: 134, B: 255, A: 255}, // Purple
}

// CategoryCounts counts flagged transactions per category, in declaration order.
func CategoryCounts(txs []models.Transaction) []chart.Value {
	counts := make([]int, len(models.Categories))
	for _, tx := range txs {
		if tx.IsFraud {
			counts[tx.Category]++
		}
	}
	values := make([]chart.Value, 0, len(counts))
	for i, c := range models.Categories {
		values = append(values, chart.Value{Label: c.String(), Value: float64(counts[i])})
	}
	return values
}

// LocationCounts counts flagged transactions per region code, in declaration order.
func LocationCounts(txs []models.Transaction) []chart.Value {
	counts := make([]int, len(models.Locations))
	for _, tx := range txs {
		if tx.IsFraud {
			counts[tx.Location]++
		}
	}
	values := make([]chart.Value, 0, len(counts))
	for i, l := range models.Locations {
		values = append(values, chart.Value{Label: l.String(), Value: float64(counts[i])})
	}
	return values
}

// RenderCategoryPie writes a pie chart of flagged transactions by category.
func RenderCategoryPie(w io.Writer, txs []models.Transaction) error {
	var parts []chart.Value
	for i, v := range CategoryCounts(txs) {
		if v.Value == 0 {
			continue
		}
		v.Label = fmt.Sprintf("%s (%.0f)", v.Label, v.Value)
		v.Style = chart.Style{FillColor: palette[i%len(palette)]}
		parts = append(parts, v)
	}
	if len(parts) == 0 {
		return ErrNothingToChart
	}

	pie := chart.PieChart{
		Title:  "Fraud Distribution by Category",
		Width:  pieSize,
		Height: pieSize,
		Values: parts,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render category chart: %w", err)
	}
	return nil
}

// RenderLocationBar writes a bar chart of flagged transactions by region code.
func RenderLocationBar(w io.Writer, txs []models.Transaction) error {
	bars := LocationCounts(txs)

	peak := 0.0
	for i := range bars {
		bars[i].Style = chart.Style{
			FillColor:   palette[i%len(palette)],
			StrokeColor: palette[i%len(palette)],
			StrokeWidth: 0,
		}
		if bars[i].Value > peak {
			peak = bars[i].Value
		}
	}
	if peak == 0 {
		return ErrNothingToChart
	}

	barChart := chart.BarChart{
		Title: "Fraud by Location",
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    width,
		Height:   height,
		BarWidth: 60,
		Bars:     bars,
	}
	// y axis starts at zero and always spans at least one unit
	barChart.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: peak + 1}
	barChart.YAxis.ValueFormatter = func(v interface{}) string {
		if vf, isFloat := v.(float64); isFloat {
			return fmt.Sprintf("%.0f", vf)
		}
		return ""
	}

	if err := barChart.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render location chart: %w", err)
	}
	return nil
}
