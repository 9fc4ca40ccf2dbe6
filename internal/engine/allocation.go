package engine

import (
	"fmt"
	"strings"

	"github.com/pocketpilot/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// DailyAllocation is a flexible per-day amount for a discretionary bucket.
type DailyAllocation struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// MonthlyAllocation is a per-month amount. IsFixed distinguishes recurring
// fixed costs from variable monthly amounts.
type MonthlyAllocation struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsFixed     bool            `json:"isFixed"`
}

// buildAllocations expands the recommended framework's bucket amounts into
// user-facing daily and monthly allocations for the target month.
func buildAllocations(def FrameworkDefinition, analysis FrameworkAnalysis, history SpendingHistory, fixedCategories []string, target types.Month, scale int32) ([]DailyAllocation, []MonthlyAllocation) {
	daily := []DailyAllocation{}
	monthly := []MonthlyAllocation{}

	// The target month's actual day count, not the source history's.
	days := decimal.NewFromInt(int64(target.Days()))

	for _, bucket := range def.Buckets {
		amount := analysis.Amounts[bucket.Name]

		switch {
		case bucket.Distribution == DistributeDaily:
			daily = append(daily, DailyAllocation{
				Category:    bucket.Name,
				Amount:      amount.Div(days).RoundBank(scale),
				Description: fmt.Sprintf("Daily %s allowance for %s", strings.ToLower(bucket.Name), target),
			})

		case bucket.Fixed:
			monthly = append(monthly, splitFixedBucket(def, bucket, amount, history, fixedCategories, scale)...)

		default:
			monthly = append(monthly, MonthlyAllocation{
				Category:    bucket.Name,
				Amount:      amount,
				Description: fmt.Sprintf("Monthly %s target for %s", strings.ToLower(bucket.Name), target),
			})
		}
	}

	return daily, monthly
}

// splitFixedBucket divides a fixed bucket's monthly amount across the user's
// declared fixed categories, proportionally to their historical share within
// the bucket, or equally when the bucket has no usable history. The last
// entry absorbs the rounding remainder so the bucket total stays exact.
func splitFixedBucket(def FrameworkDefinition, bucket Bucket, amount decimal.Decimal, history SpendingHistory, fixedCategories []string, scale int32) []MonthlyAllocation {
	if len(fixedCategories) == 0 {
		return []MonthlyAllocation{{
			Category:    bucket.Name,
			Amount:      amount,
			Description: fmt.Sprintf("Fixed monthly %s budget", strings.ToLower(bucket.Name)),
			IsFixed:     true,
		}}
	}

	matched := make([]decimal.Decimal, len(fixedCategories))
	matchedTotal := decimal.Zero

	for i, declared := range fixedCategories {
		matched[i] = decimal.Zero

		for _, category := range history.categories() {
			if def.bucketFor(category) != bucket.Name {
				continue
			}

			if glob.Glob(strings.ToLower(declared), strings.ToLower(category)) {
				matched[i] = matched[i].Add(history.CategoryTotals[category])
			}
		}

		matchedTotal = matchedTotal.Add(matched[i])
	}

	allocations := make([]MonthlyAllocation, len(fixedCategories))
	assigned := decimal.Zero

	for i, declared := range fixedCategories {
		var share decimal.Decimal
		if matchedTotal.IsPositive() {
			share = amount.Mul(matched[i]).Div(matchedTotal).RoundBank(scale)
		} else {
			share = amount.Div(decimal.NewFromInt(int64(len(fixedCategories)))).RoundBank(scale)
		}

		if i == len(fixedCategories)-1 {
			share = amount.Sub(assigned)
		}
		assigned = assigned.Add(share)

		allocations[i] = MonthlyAllocation{
			Category:    categoryLabel(declared),
			Amount:      share,
			Description: fmt.Sprintf("Fixed %s cost within the %s budget", categoryLabel(declared), strings.ToLower(bucket.Name)),
			IsFixed:     true,
		}
	}

	return allocations
}

// categoryLabel strips glob syntax from a declared fixed-category pattern.
func categoryLabel(pattern string) string {
	label := strings.Trim(pattern, "*?")
	if label == "" {
		return pattern
	}

	return strings.TrimSpace(label)
}

// reconcile asserts that the generated allocations add up to the net income
// within the rounding tolerance. Daily buckets are rounded once per day, so
// their tolerance is one minor unit per day; monthly buckets get one minor
// unit each. Drift beyond that is an internal invariant violation.
func reconcile(def FrameworkDefinition, daily []DailyAllocation, monthly []MonthlyAllocation, netIncome decimal.Decimal, target types.Month, scale int32) error {
	days := decimal.NewFromInt(int64(target.Days()))
	minorUnit := decimal.New(1, -scale)

	total := decimal.Zero
	tolerance := decimal.Zero

	for _, allocation := range daily {
		total = total.Add(allocation.Amount.Mul(days))
		tolerance = tolerance.Add(minorUnit.Mul(days))
	}

	for _, allocation := range monthly {
		total = total.Add(allocation.Amount)
		tolerance = tolerance.Add(minorUnit)
	}

	if total.Sub(netIncome).Abs().GreaterThan(tolerance) {
		return fmt.Errorf("%w: %s allocated %s of %s", ErrReconciliation, def.Name, total, netIncome)
	}

	return nil
}
