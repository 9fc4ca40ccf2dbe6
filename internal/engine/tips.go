package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Tip priorities. 1 is most urgent.
const (
	tipPrioritySevereOverspend = 1
	tipPriorityOverspend       = 2
	tipPriorityMissingTracking = 3
	tipPriorityEncouragement   = 5
)

var (
	// tipOverspendRate is the overage share that triggers an overspending tip.
	tipOverspendRate = decimal.NewFromFloat(1.2)
	// tipSevereOverspendRate upgrades the tip to the most urgent priority.
	tipSevereOverspendRate = decimal.NewFromFloat(1.5)
)

// BudgetingTip is a qualitative, human-readable recommendation derived from
// spending patterns. Tips are generated per prescription, never stored on
// their own.
type BudgetingTip struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Action   string `json:"action"`
	Strategy string `json:"strategy,omitempty"`
	Priority int    `json:"priority"` // 1..5, lower is more urgent
}

// buildTips scans the selected history against the recommended framework's
// bucket targets. The result is ordered by priority, capped at maxTips.
func buildTips(def FrameworkDefinition, analysis FrameworkAnalysis, history SpendingHistory, maxTips int) []BudgetingTip {
	spend := def.bucketSpend(history)
	tips := []BudgetingTip{}

	for _, bucket := range def.Buckets {
		target := analysis.Amounts[bucket.Name]
		if !target.IsPositive() {
			continue
		}

		actual := spend[bucket.Name]

		if actual.GreaterThan(target.Mul(tipOverspendRate)) {
			priority := tipPriorityOverspend
			if actual.GreaterThan(target.Mul(tipSevereOverspendRate)) {
				priority = tipPrioritySevereOverspend
			}

			tips = append(tips, BudgetingTip{
				Category: bucket.Name,
				Title:    fmt.Sprintf("Rein in %s spending", strings.ToLower(bucket.Name)),
				Message:  fmt.Sprintf("You spent %s on %s last month, more than 20%% over the %s target of the %s plan.", actual, strings.ToLower(bucket.Name), target, def.Name),
				Action:   fmt.Sprintf("Set a weekly cap for %s and review it every Sunday.", strings.ToLower(bucket.Name)),
				Strategy: "overspend-control",
				Priority: priority,
			})
			continue
		}

		if actual.IsZero() && !history.IsEmpty() {
			tips = append(tips, BudgetingTip{
				Category: bucket.Name,
				Title:    fmt.Sprintf("No %s spending recorded", strings.ToLower(bucket.Name)),
				Message:  fmt.Sprintf("The %s plan reserves %s for %s, but your history shows nothing there. You might not be tracking these expenses.", def.Name, target, strings.ToLower(bucket.Name)),
				Action:   fmt.Sprintf("Check whether %s expenses end up in another category.", strings.ToLower(bucket.Name)),
				Strategy: "tracking-gap",
				Priority: tipPriorityMissingTracking,
			})
		}
	}

	if len(tips) == 0 {
		tips = append(tips, BudgetingTip{
			Category: "General",
			Title:    "You're on track",
			Message:  fmt.Sprintf("Your spending lines up well with the %s plan. Keep allocating the same way next month.", def.Name),
			Action:   "Review the plan once mid-month to stay on course.",
			Strategy: "adherence",
			Priority: tipPriorityEncouragement,
		})
	}

	slices.SortStableFunc(tips, func(a, b BudgetingTip) int {
		return a.Priority - b.Priority
	})

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}

	return tips
}
