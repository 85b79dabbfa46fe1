package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{name: "single value", values: []float64{42.5}, p: 95, want: 42.5},
		{name: "median of odd", values: []float64{3, 1, 2}, p: 50, want: 2},
		{name: "median of even", values: []float64{4, 1, 3, 2}, p: 50, want: 2.5},
		{name: "interpolated 95th", values: []float64{1, 2, 3, 4, 5}, p: 95, want: 4.8},
		{name: "minimum", values: []float64{9, 7, 8}, p: 0, want: 7},
		{name: "maximum", values: []float64{9, 7, 8}, p: 100, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Percentile(tt.values, tt.p)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPercentile_DoesNotReorderInput(t *testing.T) {
	values := []float64{5, 1, 4}
	_, err := Percentile(values, 95)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 1, 4}, values)
}

func TestPercentile_Errors(t *testing.T) {
	_, err := Percentile(nil, 95)
	assert.ErrorIs(t, err, ErrEmptySample)

	_, err = Percentile([]float64{1}, 101)
	assert.ErrorIs(t, err, ErrInvalidPercentile)

	_, err = Percentile([]float64{1}, -1)
	assert.ErrorIs(t, err, ErrInvalidPercentile)
}

func TestPercentileRule_Label(t *testing.T) {
	amounts := []float64{10, 20, 30, 40, 1000, 2000}
	hours := []int{2, 3, 10, 4, 3, 12}
	noise := []float64{0.5, 0.01, 0.9, 0.9, 0.9, 0.9}

	flags, err := DefaultPercentileRule().Label(amounts, hours, noise)
	require.NoError(t, err)

	// 95th percentile is 1750: only 2000 is above it, but at 12:00
	// record 1 is flagged by noise alone
	assert.Equal(t, []bool{false, true, false, false, false, false}, flags)
}

func TestPercentileRule_HighValueAtNight(t *testing.T) {
	amounts := []float64{10, 20, 30, 40, 5000}
	hours := []int{12, 12, 12, 12, 1}
	noise := []float64{0.9, 0.9, 0.9, 0.9, 0.9}

	flags, err := DefaultPercentileRule().Label(amounts, hours, noise)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, false, true}, flags)
}

func TestPercentileRule_SingleRecord(t *testing.T) {
	// the only amount equals its own percentile, so never strictly above it
	flags, err := DefaultPercentileRule().Label([]float64{100}, []int{1}, []float64{0.9})
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, flags)
}

func TestRule_LengthMismatch(t *testing.T) {
	_, err := DefaultPercentileRule().Label([]float64{1, 2}, []int{1}, []float64{0.1, 0.2})
	assert.Error(t, err)

	_, err = DefaultThresholdRule(10).Label([]float64{1}, []int{1}, nil)
	assert.Error(t, err)
}

func TestThresholdRule_Label(t *testing.T) {
	amounts := []float64{6000, 6000, 100, 4999}
	hours := []int{3, 14, 3, 3}
	noise := []float64{0.9, 0.9, 0.9, 0.9}

	flags, err := DefaultThresholdRule(5000).Label(amounts, hours, noise)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, flags)
}

func TestNewRule(t *testing.T) {
	r, err := NewRule("", 5000)
	require.NoError(t, err)
	assert.Equal(t, RulePercentile, r.Name())

	r, err = NewRule(RulePercentile, 5000)
	require.NoError(t, err)
	assert.IsType(t, PercentileRule{}, r)

	r, err = NewRule(RuleThreshold, 5000)
	require.NoError(t, err)
	assert.Equal(t, ThresholdRule{Limit: 5000, SuspiciousBefore: 5, RandomRate: 0.05}, r)

	_, err = NewRule(RuleThreshold, 0)
	assert.Error(t, err)

	_, err = NewRule("ml-model", 5000)
	assert.ErrorIs(t, err, ErrUnknownRule)
}

func TestRule_Describe(t *testing.T) {
	lines := DefaultPercentileRule().Describe()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "95th percentile")
	assert.Contains(t, lines[0], "05:00")
	assert.Contains(t, lines[1], "5%")

	lines = DefaultThresholdRule(5000).Describe()
	assert.Contains(t, lines[0], "5000.00")
}
