package engine

import (
	"fmt"
	"time"

	"github.com/pocketpilot/backend/internal/types"
	"github.com/shopspring/decimal"
)

// AdjustmentKind is the type of a behavior adjustment.
type AdjustmentKind string

const (
	AdjustmentRollover     AdjustmentKind = "rollover"
	AdjustmentOverspending AdjustmentKind = "overspending"
	AdjustmentWeekend      AdjustmentKind = "weekend"
	AdjustmentPayday       AdjustmentKind = "payday"
)

// weekendExcessRate is how much historical weekend spending must exceed
// weekday spending before the weekend allowance kicks in.
var weekendExcessRate = decimal.NewFromFloat(1.25)

// BehaviorAdjustment is a situational delta layered on top of the baseline
// daily allocation for a specific date. Adjustments are additive, independent
// and order-insensitive.
type BehaviorAdjustment struct {
	Type          AdjustmentKind  `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	EffectiveDate time.Time       `json:"effectiveDate"`
}

// EffectiveDailyAllowance sums all adjustments applicable to a date on top of
// the baseline daily allocation.
func EffectiveDailyAllowance(baseline decimal.Decimal, adjustments []BehaviorAdjustment, date time.Time) decimal.Decimal {
	allowance := baseline

	year, month, day := date.UTC().Date()
	for _, adjustment := range adjustments {
		y, m, d := adjustment.EffectiveDate.UTC().Date()
		if y == year && m == month && d == day {
			allowance = allowance.Add(adjustment.Amount)
		}
	}

	return allowance
}

// buildAdjustments derives the situational deltas for the current period.
//
// The baseline is the summed daily allocation; current is the in-progress
// spending of the target month, and source is the history the prescription
// was derived from (used for the weekend pattern).
func (e *Engine) buildAdjustments(baseline decimal.Decimal, current SpendingHistory, source SpendingHistory, now time.Time, payday int, scale int32) []BehaviorAdjustment {
	adjustments := []BehaviorAdjustment{}

	if !baseline.IsPositive() {
		return adjustments
	}

	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	// Rollover and overspending both look at the last completed day. They are
	// mutually exclusive: a day is either under or over its baseline.
	if current.Month.Contains(yesterday) {
		spent := current.spentOn(yesterday.Day())

		if unspent := baseline.Sub(spent); unspent.IsPositive() {
			// Capped at one day's allocation to avoid runaway accumulation.
			carry := decimal.Min(unspent, baseline)

			adjustments = append(adjustments, BehaviorAdjustment{
				Type:          AdjustmentRollover,
				Amount:        carry.RoundBank(scale),
				Reason:        fmt.Sprintf("You left %s unspent on %s.", carry.RoundBank(scale), yesterday.Format("2006-01-02")),
				EffectiveDate: today,
			})
		}

		if overage := spent.Sub(baseline); overage.IsPositive() {
			adjustments = append(adjustments, e.overspendingDecay(overage, yesterday, today, current.Month, scale)...)
		}
	}

	// Weekend allowance only when weekend days consistently outspend weekdays.
	weekendAvg := source.averageDaily(isWeekendDay)
	weekdayAvg := source.averageDaily(func(d time.Weekday) bool { return !isWeekendDay(d) })

	if weekdayAvg.IsPositive() && weekendAvg.GreaterThan(weekdayAvg.Mul(weekendExcessRate)) {
		bump := baseline.Mul(e.config.WeekendMultiplier.Sub(decimal.New(1, 0))).RoundBank(scale)

		// Budgeting ahead covers the whole month; a month already over gets
		// no weekend days at all.
		from := 1
		if current.Month.Contains(today) {
			from = today.Day()
		} else if today.After(current.Month.Day(1)) {
			from = current.Month.Days() + 1
		}

		for day := from; day <= current.Month.Days(); day++ {
			date := current.Month.Day(day)
			if !isWeekendDay(date.Weekday()) {
				continue
			}

			adjustments = append(adjustments, BehaviorAdjustment{
				Type:          AdjustmentWeekend,
				Amount:        bump,
				Reason:        "Your weekends historically cost noticeably more than weekdays.",
				EffectiveDate: date,
			})
		}
	}

	if payday >= 1 && payday <= current.Month.Days() {
		date := current.Month.Day(payday)
		if !date.Before(today) {
			adjustments = append(adjustments, BehaviorAdjustment{
				Type:          AdjustmentPayday,
				Amount:        baseline.Mul(e.config.PaydayBumpRate).RoundBank(scale),
				Reason:        "A little extra room on payday.",
				EffectiveDate: date,
			})
		}
	}

	return adjustments
}

// overspendingDecay spreads a negative correction over the days following an
// overspent day, decaying linearly: with a 3-day window the weights are
// 3/6, 2/6 and 1/6 of the overage.
func (e *Engine) overspendingDecay(overage decimal.Decimal, overspentOn, from time.Time, month types.Month, scale int32) []BehaviorAdjustment {
	days := e.config.OverspendDecayDays
	weightSum := decimal.NewFromInt(int64(days * (days + 1) / 2))

	adjustments := make([]BehaviorAdjustment, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		if !month.Contains(date) {
			break
		}

		weight := decimal.NewFromInt(int64(days - i))
		amount := overage.Mul(weight).Div(weightSum).Neg().RoundBank(scale)

		adjustments = append(adjustments, BehaviorAdjustment{
			Type:          AdjustmentOverspending,
			Amount:        amount,
			Reason:        fmt.Sprintf("Easing back after overspending %s on %s.", overage.RoundBank(scale), overspentOn.Format("2006-01-02")),
			EffectiveDate: date,
		})
	}

	return adjustments
}

// isWeekendDay reports the days the weekend allowance applies to.
// The spending pattern targets the going-out days, Friday and Saturday.
func isWeekendDay(d time.Weekday) bool {
	return d == time.Friday || d == time.Saturday
}
