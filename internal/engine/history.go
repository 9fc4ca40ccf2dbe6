package engine

import (
	"fmt"
	"time"

	"github.com/pocketpilot/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// SpendingHistory holds the per-day and per-category spending of one calendar
// month. It is the read-only input the engine receives from the transaction
// history provider.
type SpendingHistory struct {
	Month            types.Month                `json:"month"`
	DailyTotals      []decimal.Decimal          `json:"dailyTotals"`      // 1-based by day of month, may be shorter than the month
	CategoryTotals   map[string]decimal.Decimal `json:"categoryTotals"`
	DaysFilled       int                        `json:"daysFilled"`       // days with at least one recorded transaction
	TotalDaysInMonth int                        `json:"totalDaysInMonth"`
}

// EmptySpendingHistory returns the all-zero history for a month. It is the
// documented fallback when no usable history exists.
func EmptySpendingHistory(month types.Month) SpendingHistory {
	return SpendingHistory{
		Month:            month,
		DailyTotals:      []decimal.Decimal{},
		CategoryTotals:   map[string]decimal.Decimal{},
		TotalDaysInMonth: month.Days(),
	}
}

// IsEmpty reports whether the history has no recorded days.
func (h SpendingHistory) IsEmpty() bool {
	return h.DaysFilled == 0
}

// Validate checks the history against the calendar and the non-negativity
// invariants. Violations are programmer errors in the providing layer, not
// runtime conditions, so they are not silently normalized.
func (h SpendingHistory) Validate() error {
	if h.Month.IsZero() {
		return ErrMonthNotSet
	}

	if h.TotalDaysInMonth != h.Month.Days() {
		return fmt.Errorf("%w: %s has %d days, history claims %d", ErrDaysFilledExceedsMonth, h.Month, h.Month.Days(), h.TotalDaysInMonth)
	}

	if h.DaysFilled < 0 || h.DaysFilled > h.TotalDaysInMonth {
		return fmt.Errorf("%w: %d days filled in %s", ErrDaysFilledExceedsMonth, h.DaysFilled, h.Month)
	}

	if len(h.DailyTotals) > h.TotalDaysInMonth {
		return fmt.Errorf("%w: %d entries for %s", ErrDailyTotalsExceedMonth, len(h.DailyTotals), h.Month)
	}

	for i, total := range h.DailyTotals {
		if total.IsNegative() {
			return fmt.Errorf("%w: day %d of %s is %s", ErrNegativeAmount, i+1, h.Month, total)
		}
	}

	for _, category := range h.categories() {
		if h.CategoryTotals[category].IsNegative() {
			return fmt.Errorf("%w: category %q is %s", ErrNegativeAmount, category, h.CategoryTotals[category])
		}
	}

	return nil
}

// Total returns the sum of all category totals.
func (h SpendingHistory) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range h.CategoryTotals {
		total = total.Add(amount)
	}

	return total
}

// categories returns the category names in deterministic order.
func (h SpendingHistory) categories() []string {
	categories := make([]string, 0, len(h.CategoryTotals))
	for category := range h.CategoryTotals {
		categories = append(categories, category)
	}

	slices.Sort(categories)
	return categories
}

// spentOn returns the recorded total for a day of the month, 1-based.
// Days without an entry count as zero.
func (h SpendingHistory) spentOn(day int) decimal.Decimal {
	if day < 1 || day > len(h.DailyTotals) {
		return decimal.Zero
	}

	return h.DailyTotals[day-1]
}

// averageDaily returns the average of the positive daily totals for days
// matching the weekday filter. Days without recorded spending are skipped so
// that sparse months do not drag the average down.
func (h SpendingHistory) averageDaily(match func(time.Weekday) bool) decimal.Decimal {
	sum := decimal.Zero
	days := 0

	for i, total := range h.DailyTotals {
		if !total.IsPositive() {
			continue
		}

		if !match(h.Month.Day(i + 1).Weekday()) {
			continue
		}

		sum = sum.Add(total)
		days++
	}

	if days == 0 {
		return decimal.Zero
	}

	return sum.Div(decimal.NewFromInt(int64(days)))
}
