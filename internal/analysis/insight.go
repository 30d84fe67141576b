// Package analysis classifies computed risk/reward outcomes for
// display. Everything here is a pure function of the two totals.
package analysis

import (
	"fmt"
	"math"
)

// Insight is the qualitative read on a trade setup.
type Insight string

const (
	InsightExcellent Insight = "excellent"
	InsightGood      Insight = "good"
	InsightModerate  Insight = "moderate"
	InsightPoor      Insight = "poor"
	// InsightUndefined means risk was zero, so no ratio exists.
	InsightUndefined Insight = "undefined"
)

// Ratio returns |reward/risk|. ok is false when risk is zero.
func Ratio(risk, reward float64) (ratio float64, ok bool) {
	if risk == 0 {
		return 0, false
	}
	return math.Abs(reward / risk), true
}

// FormatRatio renders the ratio as "1:N" with three decimals, or
// "N/A" when risk is zero.
func FormatRatio(risk, reward float64) string {
	ratio, ok := Ratio(risk, reward)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("1:%.3f", ratio)
}

// Classify buckets the ratio into the four-level insight scale:
// >=3 excellent, >=2 good, >=1 moderate, otherwise poor.
func Classify(risk, reward float64) Insight {
	ratio, ok := Ratio(risk, reward)
	if !ok {
		return InsightUndefined
	}
	switch {
	case ratio >= 3:
		return InsightExcellent
	case ratio >= 2:
		return InsightGood
	case ratio >= 1:
		return InsightModerate
	default:
		return InsightPoor
	}
}

// Message returns the advisory sentence for an insight with the ratio
// filled in.
func (i Insight) Message(ratio float64) string {
	switch i {
	case InsightExcellent:
		return fmt.Sprintf("Excellent Risk-Reward ratio of 1:%.3f! This is a very favorable trade setup.", ratio)
	case InsightGood:
		return fmt.Sprintf("Good Risk-Reward ratio of 1:%.3f. This trade has favorable odds.", ratio)
	case InsightModerate:
		return fmt.Sprintf("Moderate Risk-Reward ratio of 1:%.3f. Consider if the probability of success justifies this ratio.", ratio)
	case InsightPoor:
		return fmt.Sprintf("Poor Risk-Reward ratio of 1:%.3f. This trade setup is not favorable.", ratio)
	default:
		return "Risk is zero - please verify your inputs."
	}
}

// DeltaLabel is the coarser label shown next to the ratio metric.
// It uses a different threshold set than Classify (2/1 instead of
// 3/2/1); the two scales are independent and deliberately kept so.
func DeltaLabel(risk, reward float64) string {
	ratio, ok := Ratio(risk, reward)
	if !ok {
		return "Risk is zero"
	}
	if ratio >= 2 {
		return "Good"
	}
	if ratio >= 1 {
		return "Poor"
	}
	return "Bad"
}
