package engine

import "math"

// ConfidenceLevel is the qualitative trust rating for the data backing a
// prescription. It serializes as its name for backward-compatible decoding.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Completeness thresholds for the confidence mapping.
const (
	completenessHigh   = 70.0
	completenessMedium = 40.0
)

// Completeness returns the share of days with recorded transactions as a
// percentage in [0, 100], rounded to one decimal place. A month claiming zero
// days yields zero.
func Completeness(h SpendingHistory) float64 {
	if h.TotalDaysInMonth == 0 {
		return 0
	}

	completeness := 100 * float64(h.DaysFilled) / float64(h.TotalDaysInMonth)
	completeness = math.Round(completeness*10) / 10

	return math.Min(100, math.Max(0, completeness))
}

// ConfidenceFor maps a completeness percentage to a confidence level.
func ConfidenceFor(completeness float64) ConfidenceLevel {
	switch {
	case completeness >= completenessHigh:
		return ConfidenceHigh
	case completeness >= completenessMedium:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
