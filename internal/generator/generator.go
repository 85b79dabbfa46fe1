// Package generator synthesizes reproducible transaction datasets and labels
// them with a fraud heuristic.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/sbilibin2017/fraud-monitor/internal/logger"
	"github.com/sbilibin2017/fraud-monitor/internal/models"
)

const (
	// DefaultSeed makes every call with the same count return the same dataset.
	DefaultSeed uint64 = 42

	// MinStableCount is the sample size below which the percentile cutoff,
	// and therefore the labels, swing a lot between counts.
	MinStableCount = 20

	amountMu    = 4.0
	amountSigma = 1.0

	suspiciousHourRate = 0.10
	suspiciousHourEnd  = 5
	regularHourStart   = 6
	regularHourEnd     = 23

	day = 24 * time.Hour
)

// ErrInvalidCount is returned for non-positive record counts.
var ErrInvalidCount = errors.New("invalid argument: count must be positive")

type options struct {
	seed uint64
	now  time.Time
	rule Rule
}

// Option customizes a Generate call.
type Option func(*options)

// WithSeed replaces DefaultSeed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithNow fixes the reference time record 0 is stamped with.
func WithNow(now time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRule replaces the default percentile rule.
func WithRule(rule Rule) Option {
	return func(o *options) {
		if rule != nil {
			o.rule = rule
		}
	}
}

// sample holds the raw draws for a dataset, column by column.
type sample struct {
	amounts    []float64
	categories []models.Category
	locations  []models.Location
	hours      []int
	minutes    []int
	noise      []float64
}

// Generate returns count synthetic transactions, record i stamped i days
// before now. The random source is private to the call and seeded from the
// options, so equal inputs give equal output.
func Generate(count int, opts ...Option) ([]models.Transaction, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	o := options{
		seed: DefaultSeed,
		rule: DefaultPercentileRule(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.now.IsZero() {
		o.now = time.Now()
	}

	if count < MinStableCount {
		logger.Log.Debugw("small sample, fraud labels may be unstable",
			"count", count, "min_stable_count", MinStableCount)
	}

	s := draw(newSource(o.seed), count)

	flags, err := o.rule.Label(s.amounts, s.hours, s.noise)
	if err != nil {
		return nil, fmt.Errorf("label transactions: %w", err)
	}

	txs := make([]models.Transaction, count)
	for i := range txs {
		txs[i] = models.Transaction{
			Timestamp: o.now.Add(-time.Duration(i) * day),
			Amount:    s.amounts[i],
			Category:  s.categories[i],
			Location:  s.locations[i],
			TimeOfDay: models.FormatTimeOfDay(s.hours[i], s.minutes[i]),
			IsFraud:   models.Flag(flags[i]),
		}
	}

	logger.Log.Debugw("transactions generated",
		"count", count, "seed", o.seed, "rule", o.rule.Name())

	return txs, nil
}

func newSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// draw consumes the random stream in a fixed order: every amount, every
// category, every location, then hour and minute per record, then one noise
// draw per record.
func draw(r *rand.Rand, count int) sample {
	s := sample{
		amounts:    make([]float64, count),
		categories: make([]models.Category, count),
		locations:  make([]models.Location, count),
		hours:      make([]int, count),
		minutes:    make([]int, count),
		noise:      make([]float64, count),
	}

	for i := range s.amounts {
		s.amounts[i] = math.Exp(amountMu + amountSigma*r.NormFloat64())
	}
	for i := range s.categories {
		s.categories[i] = models.Categories[r.IntN(len(models.Categories))]
	}
	for i := range s.locations {
		s.locations[i] = models.Locations[r.IntN(len(models.Locations))]
	}
	for i := 0; i < count; i++ {
		if r.Float64() < suspiciousHourRate {
			s.hours[i] = r.IntN(suspiciousHourEnd)
		} else {
			s.hours[i] = regularHourStart + r.IntN(regularHourEnd-regularHourStart)
		}
		s.minutes[i] = r.IntN(60)
	}
	for i := range s.noise {
		s.noise[i] = r.Float64()
	}

	return s
}
