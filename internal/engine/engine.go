// Package engine implements the budget prescription pipeline: it selects the
// historical month to trust, scores its reliability, evaluates the built-in
// budgeting frameworks against the user's net income, derives daily and
// monthly allocations and emits behavioral tips and adjustments.
//
// The engine is a pure, synchronous computation over already-fetched inputs.
// It persists nothing and sends nothing; hosts feed it a history provider and
// consume the immutable BudgetPrescription it returns. Identical inputs,
// including the injected Now, yield byte-identical output.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// prescriptionNamespace is the UUIDv5 namespace for prescription IDs. IDs
// are derived from the inputs so that identical runs produce identical
// output.
var prescriptionNamespace = uuid.MustParse("8f3c43b2-5a1d-4e0f-9f6e-0d6d6a3e9f21")

// Provider is the transaction history boundary. Implementations must return
// the zero representation for missing data instead of an error; errors are
// reserved for infrastructure failures.
type Provider interface {
	FetchMonthHistory(ctx context.Context, userID uuid.UUID, month types.Month) (SpendingHistory, error)
	FetchNetIncome(ctx context.Context, userID uuid.UUID, month types.Month) (decimal.Decimal, error)
}

// Request carries everything a prescription run needs. Now is injected so
// runs are reproducible.
type Request struct {
	UserID          uuid.UUID
	Month           types.Month // the month to budget for
	Now             time.Time
	Currency        string   // ISO 4217 code, defaults to USD
	Payday          int      // day of month, 0 if not declared
	FixedCategories []string // glob patterns for recurring fixed costs
}

func (r Request) validate() error {
	if r.Month.IsZero() {
		return ErrMonthNotSet
	}

	if r.Payday < 0 || r.Payday > 31 {
		return fmt.Errorf("%w: %d", ErrPaydayInvalid, r.Payday)
	}

	return nil
}

// Engine derives budget prescriptions. It is stateless apart from its
// configuration and safe for concurrent use.
type Engine struct {
	provider   Provider
	config     Config
	frameworks []FrameworkDefinition
}

// New validates the configuration and the built-in framework definitions and
// returns an engine. Definition errors surface here, at load time, never
// during evaluation.
func New(provider Provider, config Config) (*Engine, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	frameworks := BuiltinFrameworks()
	if err := validateFrameworks(frameworks); err != nil {
		return nil, err
	}

	return &Engine{
		provider:   provider,
		config:     config,
		frameworks: frameworks,
	}, nil
}

// Prescribe runs the full pipeline for one user and month.
//
// Missing data never fails: it degrades to the documented defaults with
// confidence forced to low. Malformed input and internal reconciliation
// drift return errors.
func (e *Engine) Prescribe(ctx context.Context, request Request) (BudgetPrescription, error) {
	if err := request.validate(); err != nil {
		return BudgetPrescription{}, err
	}

	scale, err := minorUnitScale(request.Currency)
	if err != nil {
		return BudgetPrescription{}, err
	}

	netIncome, err := e.provider.FetchNetIncome(ctx, request.UserID, request.Month)
	if err != nil {
		return BudgetPrescription{}, fmt.Errorf("fetching net income: %w", err)
	}

	source, reason, err := e.selectSource(ctx, request.UserID, request.Month)
	if err != nil {
		return BudgetPrescription{}, err
	}

	completeness := Completeness(source)
	confidence := ConfidenceFor(completeness)

	// An unusable income figure cannot be trusted, whatever the history says.
	effectiveIncome := netIncome
	if !netIncome.IsPositive() {
		effectiveIncome = decimal.Zero
		confidence = ConfidenceLow

		log.Debug().
			Str("user", request.UserID.String()).
			Str("month", request.Month.String()).
			Msg("net income not positive, prescribing zero allocations")
	}

	analyses := make([]FrameworkAnalysis, len(e.frameworks))
	for i, def := range e.frameworks {
		analyses[i] = evaluateFramework(def, effectiveIncome, scale, source)
	}

	recommended := chooseFramework(e.frameworks, source, completeness)

	daily, monthly := buildAllocations(e.frameworks[recommended], analyses[recommended], source, request.FixedCategories, request.Month, scale)
	if err := reconcile(e.frameworks[recommended], daily, monthly, effectiveIncome, request.Month, scale); err != nil {
		return BudgetPrescription{}, err
	}

	current, err := e.provider.FetchMonthHistory(ctx, request.UserID, request.Month)
	if err != nil {
		return BudgetPrescription{}, fmt.Errorf("fetching current month spending: %w", err)
	}
	current = normalizeHistory(current, request.Month)
	if err := current.Validate(); err != nil {
		return BudgetPrescription{}, fmt.Errorf("current month spending: %w", err)
	}

	baseline := decimal.Zero
	for _, allocation := range daily {
		baseline = baseline.Add(allocation.Amount)
	}

	// Alternatives keep declaration order; no re-sorting by score.
	alternatives := make([]FrameworkAnalysis, 0, len(analyses)-1)
	for i, analysis := range analyses {
		if i != recommended {
			alternatives = append(alternatives, analysis)
		}
	}

	return BudgetPrescription{
		ID:                    prescriptionID(request),
		Month:                 request.Month,
		MonthlyNetIncome:      netIncome,
		Confidence:            confidence,
		DataCompleteness:      completeness,
		DataSourceMonth:       source.Month,
		DataSourceReason:      reason,
		PreviousMonthSpending: cloneAmounts(source.CategoryTotals),
		DaysFilled:            source.DaysFilled,
		TotalDaysInMonth:      source.TotalDaysInMonth,
		RecommendedFramework:  analyses[recommended],
		AlternativeFrameworks: alternatives,
		DailyAllocations:      daily,
		MonthlyAllocations:    monthly,
		BudgetingTips:         buildTips(e.frameworks[recommended], analyses[recommended], source, e.config.MaxTips),
		BehaviorAdjustments:   e.buildAdjustments(baseline, current, source, request.Now, request.Payday, scale),
		CurrentMonthSpending:  cloneAmounts(current.CategoryTotals),
	}, nil
}

// prescriptionID derives a stable ID from the run's inputs.
func prescriptionID(request Request) uuid.UUID {
	name := fmt.Sprintf("%s/%s/%d", request.UserID, request.Month, request.Now.UTC().Unix())
	return uuid.NewSHA1(prescriptionNamespace, []byte(name))
}

// minorUnitScale returns the number of decimal places of the currency's
// minor unit, e.g. 2 for USD and 0 for JPY.
func minorUnitScale(code string) (int32, error) {
	if code == "" {
		code = "USD"
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCurrencyInvalid, code)
	}

	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale), nil
}
