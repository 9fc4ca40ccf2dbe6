package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// overspendFlagRate is the share by which historical spending must exceed a
// bucket's target before the recommendation text flags the bucket.
var overspendFlagRate = decimal.NewFromFloat(1.15)

// FrameworkAnalysis is the evaluation of one framework definition against a
// net income. It is immutable once produced.
type FrameworkAnalysis struct {
	Name           string                     `json:"name"`
	Percentages    map[string]decimal.Decimal `json:"percentages"`
	Amounts        map[string]decimal.Decimal `json:"amounts"`
	NetIncome      decimal.Decimal            `json:"netIncome"`
	Recommendation string                     `json:"recommendation"`
}

// evaluateFramework computes the bucket amounts of a framework for a net
// income. Amounts are rounded to the currency's minor unit with
// round-half-to-even to avoid cumulative bias across buckets.
func evaluateFramework(def FrameworkDefinition, netIncome decimal.Decimal, scale int32, history SpendingHistory) FrameworkAnalysis {
	percentages := make(map[string]decimal.Decimal, len(def.Buckets))
	amounts := make(map[string]decimal.Decimal, len(def.Buckets))

	hundred := decimal.NewFromInt(100)
	for _, bucket := range def.Buckets {
		percentages[bucket.Name] = bucket.Percentage
		amounts[bucket.Name] = bucket.Percentage.Mul(netIncome).Div(hundred).RoundBank(scale)
	}

	return FrameworkAnalysis{
		Name:           def.Name,
		Percentages:    percentages,
		Amounts:        amounts,
		NetIncome:      netIncome,
		Recommendation: buildRecommendation(def, amounts, history),
	}
}

// buildRecommendation templates the framework's tone and flags buckets where
// the selected history's spending exceeds the bucket target by more than 15%.
func buildRecommendation(def FrameworkDefinition, amounts map[string]decimal.Decimal, history SpendingHistory) string {
	spend := def.bucketSpend(history)

	var flagged []string
	for _, bucket := range def.Buckets {
		target := amounts[bucket.Name]
		if !target.IsPositive() {
			continue
		}

		if spend[bucket.Name].GreaterThan(target.Mul(overspendFlagRate)) {
			flagged = append(flagged, fmt.Sprintf("%s (%s spent vs. a %s target)", bucket.Name, spend[bucket.Name], target))
		}
	}

	if len(flagged) == 0 {
		return def.Tone
	}

	return fmt.Sprintf("%s Watch out: your recent spending runs well over the target for %s.", def.Tone, strings.Join(flagged, ", "))
}

// cloneAnalysis deep-copies a framework analysis.
func cloneAnalysis(a FrameworkAnalysis) FrameworkAnalysis {
	out := a
	out.Percentages = cloneAmounts(a.Percentages)
	out.Amounts = cloneAmounts(a.Amounts)

	return out
}

func cloneAmounts(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	if m == nil {
		return nil
	}

	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
