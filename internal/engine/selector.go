package engine

import "github.com/shopspring/decimal"

// chooseFramework picks the index of the recommended framework.
//
// Each framework is scored by the summed absolute deviation between its
// bucket percentages and the share of historical spending that falls into
// each bucket; the lowest total deviation wins. Ties prefer the framework
// with the lowest total "Debt" percentage, then declaration order, which
// guarantees a single deterministic winner.
//
// Below the medium-confidence threshold the per-category history is not
// trustworthy enough to differentiate, so the first declared framework wins
// regardless of score.
func chooseFramework(defs []FrameworkDefinition, history SpendingHistory, completeness float64) int {
	if completeness < completenessMedium {
		return 0
	}

	total := history.Total()
	if !total.IsPositive() {
		return 0
	}

	best := 0
	bestScore := frameworkDeviation(defs[0], history, total)

	for i := 1; i < len(defs); i++ {
		score := frameworkDeviation(defs[i], history, total)

		switch score.Cmp(bestScore) {
		case -1:
			best, bestScore = i, score
		case 0:
			if defs[i].debtPercentage().LessThan(defs[best].debtPercentage()) {
				best, bestScore = i, score
			}
		}
	}

	return best
}

// frameworkDeviation sums the absolute percentage deviation between the
// framework's bucket targets and the actual spending distribution.
func frameworkDeviation(def FrameworkDefinition, history SpendingHistory, total decimal.Decimal) decimal.Decimal {
	spend := def.bucketSpend(history)
	hundred := decimal.NewFromInt(100)

	deviation := decimal.Zero
	for _, bucket := range def.Buckets {
		actual := spend[bucket.Name].Mul(hundred).Div(total)
		deviation = deviation.Add(actual.Sub(bucket.Percentage).Abs())
	}

	return deviation
}
