package engine

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// legacyDataSourceReason is the fallback for records written before the data
// source decision was recorded.
const legacyDataSourceReason = "Legacy data (previous month)"

// BudgetPrescription is the engine's sole output: the full derivation of one
// month's budget. It is constructed once per run and never mutated; refreshed
// variants are produced with With.
type BudgetPrescription struct {
	ID                    uuid.UUID                  `json:"id"`
	Month                 types.Month                `json:"month"`
	MonthlyNetIncome      decimal.Decimal            `json:"monthlyNetIncome"`
	Confidence            ConfidenceLevel            `json:"confidence"`
	DataCompleteness      float64                    `json:"dataCompleteness"`
	DataSourceMonth       types.Month                `json:"dataSourceMonth"`
	DataSourceReason      string                     `json:"dataSourceReason"`
	PreviousMonthSpending map[string]decimal.Decimal `json:"previousMonthSpending"`
	DaysFilled            int                        `json:"daysFilled"`
	TotalDaysInMonth      int                        `json:"totalDaysInMonth"`
	RecommendedFramework  FrameworkAnalysis          `json:"recommendedFramework"`
	AlternativeFrameworks []FrameworkAnalysis        `json:"alternativeFrameworks"`
	DailyAllocations      []DailyAllocation          `json:"dailyAllocations"`
	MonthlyAllocations    []MonthlyAllocation        `json:"monthlyAllocations"`
	BudgetingTips         []BudgetingTip             `json:"budgetingTips"`
	BehaviorAdjustments   []BehaviorAdjustment       `json:"behaviorAdjustments"`
	CurrentMonthSpending  map[string]decimal.Decimal `json:"currentMonthSpending"`
}

// UnmarshalJSON decodes a prescription with fallbacks for records written
// before dataSourceMonth and dataSourceReason existed.
func (p *BudgetPrescription) UnmarshalJSON(data []byte) error {
	type alias BudgetPrescription

	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	prescription := BudgetPrescription(decoded)
	if prescription.DataSourceMonth.IsZero() {
		prescription.DataSourceMonth = prescription.Month
	}
	if prescription.DataSourceReason == "" {
		prescription.DataSourceReason = legacyDataSourceReason
	}

	*p = prescription
	return nil
}

// Override is a sparse set of field overrides for With. Nil fields keep the
// original value.
type Override struct {
	CurrentMonthSpending map[string]decimal.Decimal
	BudgetingTips        []BudgetingTip
	BehaviorAdjustments  []BehaviorAdjustment
	Confidence           *ConfidenceLevel
}

// With returns a new prescription built from p plus the overrides. The
// original is never changed; all reference fields of the copy are cloned so
// the two values share no state.
func (p BudgetPrescription) With(override Override) BudgetPrescription {
	out := p.clone()

	if override.CurrentMonthSpending != nil {
		out.CurrentMonthSpending = cloneAmounts(override.CurrentMonthSpending)
	}
	if override.BudgetingTips != nil {
		out.BudgetingTips = slices.Clone(override.BudgetingTips)
	}
	if override.BehaviorAdjustments != nil {
		out.BehaviorAdjustments = slices.Clone(override.BehaviorAdjustments)
	}
	if override.Confidence != nil {
		out.Confidence = *override.Confidence
	}

	return out
}

func (p BudgetPrescription) clone() BudgetPrescription {
	out := p

	out.PreviousMonthSpending = cloneAmounts(p.PreviousMonthSpending)
	out.CurrentMonthSpending = cloneAmounts(p.CurrentMonthSpending)
	out.RecommendedFramework = cloneAnalysis(p.RecommendedFramework)

	out.AlternativeFrameworks = make([]FrameworkAnalysis, len(p.AlternativeFrameworks))
	for i, analysis := range p.AlternativeFrameworks {
		out.AlternativeFrameworks[i] = cloneAnalysis(analysis)
	}

	out.DailyAllocations = slices.Clone(p.DailyAllocations)
	out.MonthlyAllocations = slices.Clone(p.MonthlyAllocations)
	out.BudgetingTips = slices.Clone(p.BudgetingTips)
	out.BehaviorAdjustments = slices.Clone(p.BehaviorAdjustments)

	return out
}
