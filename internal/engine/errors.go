package engine

import "errors"

// Malformed-input errors. These indicate configuration or programming
// mistakes and are returned as-is instead of being silently corrected.
var (
	ErrMonthNotSet             = errors.New("the target month must be set")
	ErrNegativeAmount          = errors.New("spending history amounts must not be negative")
	ErrDaysFilledExceedsMonth  = errors.New("the number of days filled must not exceed the number of days in the month")
	ErrDailyTotalsExceedMonth  = errors.New("the daily totals must not have more entries than the month has days")
	ErrPercentageSumInvalid    = errors.New("the bucket percentages of a framework must sum to exactly 100")
	ErrNoBuckets               = errors.New("a framework must define at least one bucket")
	ErrBucketNameNotUnique     = errors.New("bucket names within a framework must be unique")
	ErrFrameworkNameNotUnique  = errors.New("framework names must be unique")
	ErrCurrencyInvalid         = errors.New("the currency code is not a valid ISO 4217 code")
	ErrPaydayInvalid           = errors.New("the payday must be a day of the month between 1 and 31")
	ErrLookbackInvalid         = errors.New("the source lookback must cover at least one month")
	ErrDecayWindowInvalid      = errors.New("the overspending decay window must cover at least one day")
	ErrWeekendMultiplierInvalid = errors.New("the weekend multiplier must be at least 1")
)

// ErrReconciliation is an internal invariant violation: the generated
// allocations drifted from the net income by more than the rounding tolerance.
var ErrReconciliation = errors.New("allocations do not reconcile with the net income within the rounding tolerance")
