package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/fraud-monitor/internal/generator"
	"github.com/sbilibin2017/fraud-monitor/internal/logger"
	"github.com/sbilibin2017/fraud-monitor/internal/metrics"
	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=services

// Bounds of the dashboard controls.
const (
	MinDays = 1
	MaxDays = 30

	MinLimit = 1000.0
	MaxLimit = 10000.0

	DefaultDays          = 7
	DefaultLimit         = 5000.0
	DefaultRecordsPerDay = 100
	DefaultTopAlerts     = 3
)

var (
	ErrInvalidDays  = errors.New("invalid days")
	ErrInvalidLimit = errors.New("invalid suspicious value limit")
	ErrInvalidTop   = errors.New("invalid alert count")
)

// DatasetCache caches generated datasets.
type DatasetCache interface {
	GetDataset(ctx context.Context, key models.DatasetKey) ([]models.Transaction, error)
	SetDataset(ctx context.Context, key models.DatasetKey, txs []models.Transaction) error
}

// AlertPublisher forwards alerts to downstream consumers.
type AlertPublisher interface {
	PublishAlerts(ctx context.Context, alerts []models.Alert) error
}

// Query carries the two dashboard controls.
type Query struct {
	Days  int     `validate:"min=1,max=30"`
	Limit float64 `validate:"gte=1000,lte=10000"`
}

// DashboardConfig holds generation settings shared by every request.
type DashboardConfig struct {
	Seed          uint64
	RecordsPerDay int
	Rule          string // generator.RulePercentile or generator.RuleThreshold
}

// DashboardService turns dashboard controls into generated datasets and the
// reductions shown on the dashboard.
type DashboardService struct {
	cfg       DashboardConfig
	cache     DatasetCache
	publisher AlertPublisher
	metrics   *metrics.Metrics
	validate  *validator.Validate
	now       func() time.Time
}

// NewDashboardService creates a new DashboardService. cache, publisher and m may be nil.
func NewDashboardService(
	cfg DashboardConfig,
	cache DatasetCache,
	publisher AlertPublisher,
	m *metrics.Metrics,
) *DashboardService {
	if cfg.RecordsPerDay <= 0 {
		cfg.RecordsPerDay = DefaultRecordsPerDay
	}
	if cfg.Rule == "" {
		cfg.Rule = generator.RulePercentile
	}
	return &DashboardService{
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		metrics:   m,
		validate:  validator.New(),
		now:       time.Now,
	}
}

func (s *DashboardService) check(q Query) error {
	err := s.validate.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Days":
			return fmt.Errorf("%w: days must be between %d and %d, got %d", ErrInvalidDays, MinDays, MaxDays, q.Days)
		case "Limit":
			return fmt.Errorf("%w: limit must be between %.0f and %.0f, got %v", ErrInvalidLimit, MinLimit, MaxLimit, q.Limit)
		}
	}
	return err
}

// Rule returns the labeling rule used for q.
func (s *DashboardService) Rule(q Query) (generator.Rule, error) {
	return generator.NewRule(s.cfg.Rule, q.Limit)
}

// Transactions returns days*RecordsPerDay records, newest day first.
func (s *DashboardService) Transactions(ctx context.Context, q Query) ([]models.Transaction, error) {
	if err := s.check(q); err != nil {
		return nil, err
	}

	rule, err := s.Rule(q)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := models.DatasetKey{
		Day:   now.Format("2006-01-02"),
		Count: q.Days * s.cfg.RecordsPerDay,
		Seed:  s.cfg.Seed,
		Rule:  rule.Name(),
	}
	// the percentile rule ignores the limit, so all limits share one dataset
	if rule.Name() == generator.RuleThreshold {
		key.Limit = q.Limit
	}

	if s.cache != nil {
		txs, err := s.cache.GetDataset(ctx, key)
		if err == nil {
			s.metrics.ObserveCache(metrics.CacheHit)
			return txs, nil
		}
		s.metrics.ObserveCache(metrics.CacheMiss)
	}

	start := time.Now()
	txs, err := generator.Generate(key.Count,
		generator.WithSeed(s.cfg.Seed),
		generator.WithNow(now),
		generator.WithRule(rule),
	)
	if err != nil {
		logger.Log.Errorw("failed to generate transactions", "count", key.Count, "error", err)
		return nil, err
	}
	s.metrics.ObserveGeneration(rule.Name(), len(txs), countFlagged(txs), time.Since(start))

	if s.cache != nil {
		if err := s.cache.SetDataset(ctx, key, txs); err != nil {
			s.metrics.ObserveCache(metrics.CacheError)
			logger.Log.Errorw("failed to cache transactions", "count", key.Count, "error", err)
		}
	}

	return txs, nil
}

// Suspicious returns the flagged records sorted newest first.
func (s *DashboardService) Suspicious(ctx context.Context, q Query) ([]models.Transaction, error) {
	txs, err := s.Transactions(ctx, q)
	if err != nil {
		return nil, err
	}
	return suspicious(txs), nil
}

// Summary computes the headline metrics and per-group fraud counts.
func (s *DashboardService) Summary(ctx context.Context, q Query) (*models.Summary, error) {
	txs, err := s.Transactions(ctx, q)
	if err != nil {
		return nil, err
	}
	return summarize(txs), nil
}

// Alerts builds alerts for the top newest flagged records and publishes them.
// Publishing failures are logged and do not fail the call.
func (s *DashboardService) Alerts(ctx context.Context, q Query, top int) ([]models.Alert, error) {
	if top <= 0 {
		return nil, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTop, top)
	}

	flagged, err := s.Suspicious(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(flagged) > top {
		flagged = flagged[:top]
	}

	alerts := make([]models.Alert, 0, len(flagged))
	for _, tx := range flagged {
		alerts = append(alerts, newAlert(tx))
	}

	if s.publisher != nil {
		if err := s.publisher.PublishAlerts(ctx, alerts); err != nil {
			logger.Log.Errorw("failed to publish alerts", "alerts", len(alerts), "error", err)
		}
	}

	return alerts, nil
}

// Rules describes the detection rules active for q.
func (s *DashboardService) Rules(q Query) (*models.RulesResponse, error) {
	if err := s.check(q); err != nil {
		return nil, err
	}
	rule, err := s.Rule(q)
	if err != nil {
		return nil, err
	}
	return &models.RulesResponse{
		Strategy:             rule.Name(),
		SuspiciousValueLimit: q.Limit,
		Rules:                rule.Describe(),
	}, nil
}

func countFlagged(txs []models.Transaction) int {
	n := 0
	for _, tx := range txs {
		if tx.IsFraud {
			n++
		}
	}
	return n
}

func suspicious(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, countFlagged(txs))
	for _, tx := range txs {
		if tx.IsFraud {
			out = append(out, tx)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Transaction) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}

func summarize(txs []models.Transaction) *models.Summary {
	sum := &models.Summary{
		Total:      len(txs),
		ByCategory: make(map[string]int, len(models.Categories)),
		ByLocation: make(map[string]int, len(models.Locations)),
	}

	value := decimal.Zero
	for _, tx := range txs {
		if !tx.IsFraud {
			continue
		}
		sum.Suspicious++
		value = value.Add(decimal.NewFromFloat(tx.Amount))
		sum.ByCategory[tx.Category.String()]++
		sum.ByLocation[tx.Location.String()]++
	}

	if sum.Total > 0 {
		sum.FraudRate = decimal.NewFromInt(int64(sum.Suspicious)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(sum.Total))).
			Round(2).
			InexactFloat64()
	}
	value = value.Round(2)
	sum.SuspiciousValue = value.InexactFloat64()
	sum.SuspiciousValueDisplay = FormatBRL(value)

	return sum
}

func newAlert(tx models.Transaction) models.Alert {
	dateTime := tx.Timestamp.Format("02/01/2006") + " " + tx.TimeOfDay
	value := FormatBRL(decimal.NewFromFloat(tx.Amount))
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%s|%s|%.6f",
		tx.Timestamp.Format(time.RFC3339), tx.TimeOfDay, tx.Amount)))

	return models.Alert{
		ID:       id.String(),
		DateTime: dateTime,
		Value:    value,
		Category: tx.Category.String(),
		Location: tx.Location.String(),
		Message: fmt.Sprintf("Suspicious transaction detected:\n- Date/Time: %s\n- Value: %s\n- Category: %s\n- Location: %s",
			dateTime, value, tx.Category, tx.Location),
	}
}
