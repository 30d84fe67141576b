package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	t.Parallel()

	ratio, ok := Ratio(20, 40)
	require.True(t, ok)
	assert.InDelta(t, 2.0, ratio, 1e-12)

	// ratio is magnitude-only, signs don't matter
	ratio, ok = Ratio(-10, 20)
	require.True(t, ok)
	assert.InDelta(t, 2.0, ratio, 1e-12)

	_, ok = Ratio(0, 40)
	assert.False(t, ok)
}

func TestFormatRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1:2.000", FormatRatio(20, 40))
	assert.Equal(t, "1:0.500", FormatRatio(40, 20))
	assert.Equal(t, "N/A", FormatRatio(0, 40))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		risk   float64
		reward float64
		want   Insight
	}{
		{"well above three", 10, 35, InsightExcellent},
		{"exactly three", 10, 30, InsightExcellent},
		{"between two and three", 10, 25, InsightGood},
		{"exactly two", 10, 20, InsightGood},
		{"between one and two", 10, 15, InsightModerate},
		{"exactly one", 10, 10, InsightModerate},
		{"below one", 10, 5, InsightPoor},
		{"zero risk", 0, 5, InsightUndefined},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.risk, tt.reward))
		})
	}
}

// DeltaLabel uses its own threshold set (2/1), not the Classify one.
func TestDeltaLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		risk   float64
		reward float64
		want   string
	}{
		{"at least two", 10, 25, "Good"},
		{"exactly two", 10, 20, "Good"},
		{"between one and two", 10, 15, "Poor"},
		{"exactly one", 10, 10, "Poor"},
		{"below one", 10, 5, "Bad"},
		{"zero risk", 0, 5, "Risk is zero"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DeltaLabel(tt.risk, tt.reward))
		})
	}
}

func TestInsightMessage(t *testing.T) {
	t.Parallel()

	assert.Contains(t, InsightExcellent.Message(3.5), "1:3.500")
	assert.Contains(t, InsightGood.Message(2.0), "favorable odds")
	assert.Contains(t, InsightModerate.Message(1.2), "probability of success")
	assert.Contains(t, InsightPoor.Message(0.4), "not favorable")
	assert.Contains(t, InsightUndefined.Message(0), "verify your inputs")
}
