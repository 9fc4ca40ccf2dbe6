package engine

import "github.com/shopspring/decimal"

// Config holds the tunable parameters of the engine.
//
// The defaults follow the product behavior, but hosts can adjust the
// lookback window and the adjustment curves without touching the pipeline.
type Config struct {
	// SourceLookbackMonths is how many months before the target month are
	// scanned when looking for usable spending history.
	SourceLookbackMonths int

	// MinSourceCompleteness is the share of days (0..1) that must have
	// recorded transactions for the immediately preceding month to be used
	// directly.
	MinSourceCompleteness float64

	// OverspendDecayDays is the number of days an overspending correction is
	// spread over. The correction decays linearly within the window.
	OverspendDecayDays int

	// WeekendMultiplier is applied to the daily baseline on Fridays and
	// Saturdays when historical weekend spending consistently exceeds weekday
	// spending. A value of 1.2 yields a +20% allowance.
	WeekendMultiplier decimal.Decimal

	// PaydayBumpRate is the share of the daily baseline granted as a one-day
	// bump on the user's payday.
	PaydayBumpRate decimal.Decimal

	// MaxTips caps the number of budgeting tips per prescription.
	MaxTips int
}

// DefaultConfig returns the configuration the product ships with.
func DefaultConfig() Config {
	return Config{
		SourceLookbackMonths:  3,
		MinSourceCompleteness: 0.5,
		OverspendDecayDays:    3,
		WeekendMultiplier:     decimal.NewFromFloat(1.2),
		PaydayBumpRate:        decimal.NewFromFloat(0.1),
		MaxTips:               5,
	}
}

func (c Config) validate() error {
	if c.SourceLookbackMonths < 1 {
		return ErrLookbackInvalid
	}

	if c.OverspendDecayDays < 1 {
		return ErrDecayWindowInvalid
	}

	if c.WeekendMultiplier.LessThan(decimal.New(1, 0)) {
		return ErrWeekendMultiplierInvalid
	}

	return nil
}
