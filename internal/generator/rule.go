package generator

import (
	"errors"
	"fmt"
)

const (
	// RulePercentile flags high values relative to the generated sample.
	RulePercentile = "percentile"
	// RuleThreshold flags values above a fixed monetary limit.
	RuleThreshold = "threshold"

	defaultPercentile       = 95
	defaultSuspiciousBefore = 5
	defaultRandomRate       = 0.05
)

// ErrUnknownRule is returned by NewRule for unsupported strategy names.
var ErrUnknownRule = errors.New("unknown fraud rule")

// Rule labels a drawn sample. amounts, hours and noise have equal length;
// noise holds one uniform [0,1) draw per record.
type Rule interface {
	Name() string
	Label(amounts []float64, hours []int, noise []float64) ([]bool, error)
	Describe() []string
}

// PercentileRule flags a record when its amount is above the given percentile
// of the whole amount column and it falls in the suspicious window, or when
// its noise draw is below RandomRate.
type PercentileRule struct {
	Percentile       float64
	SuspiciousBefore int
	RandomRate       float64
}

// DefaultPercentileRule: 95th percentile, hours before 05:00, 5% noise.
func DefaultPercentileRule() PercentileRule {
	return PercentileRule{
		Percentile:       defaultPercentile,
		SuspiciousBefore: defaultSuspiciousBefore,
		RandomRate:       defaultRandomRate,
	}
}

func (r PercentileRule) Name() string { return RulePercentile }

func (r PercentileRule) Label(amounts []float64, hours []int, noise []float64) ([]bool, error) {
	if err := checkLengths(amounts, hours, noise); err != nil {
		return nil, err
	}
	// computed once over the full column, not per record
	threshold, err := Percentile(amounts, r.Percentile)
	if err != nil {
		return nil, err
	}
	return label(threshold, r.SuspiciousBefore, r.RandomRate, amounts, hours, noise), nil
}

func (r PercentileRule) Describe() []string {
	return []string{
		fmt.Sprintf("High value transactions (above the %gth percentile) at suspicious hours (before %02d:00)", r.Percentile, r.SuspiciousBefore),
		fmt.Sprintf("Random sampling of %g%% of transactions for review", r.RandomRate*100),
	}
}

// ThresholdRule is PercentileRule with the cutoff replaced by a fixed limit.
type ThresholdRule struct {
	Limit            float64
	SuspiciousBefore int
	RandomRate       float64
}

// DefaultThresholdRule uses limit with the default window and noise rate.
func DefaultThresholdRule(limit float64) ThresholdRule {
	return ThresholdRule{
		Limit:            limit,
		SuspiciousBefore: defaultSuspiciousBefore,
		RandomRate:       defaultRandomRate,
	}
}

func (r ThresholdRule) Name() string { return RuleThreshold }

func (r ThresholdRule) Label(amounts []float64, hours []int, noise []float64) ([]bool, error) {
	if err := checkLengths(amounts, hours, noise); err != nil {
		return nil, err
	}
	return label(r.Limit, r.SuspiciousBefore, r.RandomRate, amounts, hours, noise), nil
}

func (r ThresholdRule) Describe() []string {
	return []string{
		fmt.Sprintf("High value transactions (above %.2f) at suspicious hours (before %02d:00)", r.Limit, r.SuspiciousBefore),
		fmt.Sprintf("Random sampling of %g%% of transactions for review", r.RandomRate*100),
	}
}

// NewRule builds a rule by name. limit is only consulted by the threshold rule.
func NewRule(name string, limit float64) (Rule, error) {
	switch name {
	case "", RulePercentile:
		return DefaultPercentileRule(), nil
	case RuleThreshold:
		if limit <= 0 {
			return nil, fmt.Errorf("threshold rule needs a positive limit, got %v", limit)
		}
		return DefaultThresholdRule(limit), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
}

func label(cutoff float64, before int, rate float64, amounts []float64, hours []int, noise []float64) []bool {
	flags := make([]bool, len(amounts))
	for i := range amounts {
		flags[i] = (amounts[i] > cutoff && hours[i] < before) || noise[i] < rate
	}
	return flags
}

func checkLengths(amounts []float64, hours []int, noise []float64) error {
	if len(amounts) != len(hours) || len(amounts) != len(noise) {
		return fmt.Errorf("sample length mismatch: %d amounts, %d hours, %d noise draws",
			len(amounts), len(hours), len(noise))
	}
	return nil
}
