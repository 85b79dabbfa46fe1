// Command report prints the fraud dashboard for one generated dataset as
// console tables and writes its charts as PNG files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/fraud-monitor/internal/charts"
	"github.com/sbilibin2017/fraud-monitor/internal/generator"
	"github.com/sbilibin2017/fraud-monitor/internal/logger"
	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/sbilibin2017/fraud-monitor/internal/report"
	"github.com/sbilibin2017/fraud-monitor/internal/services"
)

type options struct {
	Days     int
	Limit    float64
	Seed     uint64
	Rule     string
	Top      int
	Out      string // empty skips the charts
	LogLevel string
}

func main() {
	opts := parseFlags(os.Args[1:])

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		log.Fatalf("report failed: %v", err)
	}
}

func parseFlags(args []string) options {
	fs := flag.NewFlagSet("report", flag.ExitOnError)

	var opts options
	fs.IntVar(&opts.Days, "days", services.DefaultDays, "Number of days to analyse (1-30)")
	fs.Float64Var(&opts.Limit, "limit", services.DefaultLimit, "Suspicious value limit (1000-10000)")
	fs.Uint64Var(&opts.Seed, "seed", generator.DefaultSeed, "Generator seed")
	fs.StringVar(&opts.Rule, "rule", generator.RulePercentile, "Labeling rule: percentile or threshold")
	fs.IntVar(&opts.Top, "top", services.DefaultTopAlerts, "Number of alerts to print")
	fs.StringVar(&opts.Out, "out", "", "Directory for chart PNGs")
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "Log level")
	_ = fs.Parse(args)

	return opts
}

func run(ctx context.Context, opts options, w io.Writer) error {
	if err := logger.Initialize(opts.LogLevel, "console"); err != nil {
		return err
	}
	defer logger.Sync()

	svc := services.NewDashboardService(services.DashboardConfig{
		Seed: opts.Seed,
		Rule: opts.Rule,
	}, nil, nil, nil)
	q := services.Query{Days: opts.Days, Limit: opts.Limit}

	sum, err := svc.Summary(ctx, q)
	if err != nil {
		return err
	}
	flagged, err := svc.Suspicious(ctx, q)
	if err != nil {
		return err
	}
	alerts, err := svc.Alerts(ctx, q, opts.Top)
	if err != nil {
		return err
	}
	rules, err := svc.Rules(q)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Fraud monitoring report: last %d days, seed %d\n\n", opts.Days, opts.Seed)
	report.WriteSummary(w, sum)
	fmt.Fprintln(w, "\nSuspicious transactions:")
	report.WriteSuspicious(w, flagged, 0)
	fmt.Fprintln(w, "\nReal-time alerts:")
	report.WriteAlerts(w, alerts)
	report.WriteRules(w, rules)

	if opts.Out == "" {
		return nil
	}

	txs, err := svc.Transactions(ctx, q)
	if err != nil {
		return err
	}
	return writeCharts(opts.Out, txs, w)
}

func writeCharts(dir string, txs []models.Transaction, w io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	renders := []struct {
		name   string
		render func(io.Writer, []models.Transaction) error
	}{
		{"category.png", charts.RenderCategoryPie},
		{"location.png", charts.RenderLocationBar},
	}

	for _, r := range renders {
		path := filepath.Join(dir, r.name)
		if err := writeChart(path, txs, r.render); err != nil {
			if errors.Is(err, charts.ErrNothingToChart) {
				fmt.Fprintf(w, "skipped %s: %v\n", path, err)
				continue
			}
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", path)
	}
	return nil
}

func writeChart(path string, txs []models.Transaction, render func(io.Writer, []models.Transaction) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return render(f, txs)
}
