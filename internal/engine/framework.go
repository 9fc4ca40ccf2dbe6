package engine

import (
	"fmt"
	"strings"

	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// Distribution describes how a bucket's monthly amount is handed to the user.
type Distribution string

const (
	// DistributeDaily spreads the bucket over the days of the target month.
	DistributeDaily Distribution = "daily"
	// DistributeMonthly keeps the bucket as one monthly amount.
	DistributeMonthly Distribution = "monthly"
)

// Bucket is one category within a framework.
type Bucket struct {
	Name         string          `json:"name"`
	Percentage   decimal.Decimal `json:"percentage"`
	Distribution Distribution    `json:"distribution"`
	Fixed        bool            `json:"fixed"`    // recurring fixed costs (rent, utilities, debt service)
	Patterns     []string        `json:"patterns"` // glob patterns classifying history categories into this bucket
}

// FrameworkDefinition is a named split of net income into buckets. The set of
// definitions is closed; adding one is a data change in builtinFrameworks.
type FrameworkDefinition struct {
	Name    string   `json:"name"`
	Tone    string   `json:"tone"` // base sentence for the generated recommendation
	Buckets []Bucket `json:"buckets"`
}

// builtinFrameworks is the closed set of budgeting frameworks the engine
// ships with. Declaration order matters: it is the tie-break order for
// framework selection and the first entry is the low-confidence default.
var builtinFrameworks = []FrameworkDefinition{
	{
		Name: "50/30/20",
		Tone: "A balanced split: half for essentials, a third for enjoying life, a fifth for your future self.",
		Buckets: []Bucket{
			{
				Name:         "Needs",
				Percentage:   decimal.NewFromInt(50),
				Distribution: DistributeMonthly,
				Fixed:        true,
				Patterns:     []string{"needs", "rent*", "mortgage*", "utilit*", "grocer*", "insurance*", "transport*", "commut*", "health*", "medical*"},
			},
			{
				Name:         "Wants",
				Percentage:   decimal.NewFromInt(30),
				Distribution: DistributeDaily,
				Patterns:     []string{"wants", "dining*", "restaurant*", "entertain*", "shopping*", "hobby*", "travel*", "*"},
			},
			{
				Name:         "Savings",
				Percentage:   decimal.NewFromInt(20),
				Distribution: DistributeMonthly,
				Patterns:     []string{"savings*", "invest*", "emergency*"},
			},
		},
	},
	{
		Name: "Debt Snowball",
		Tone: "Keeps the lights on and dinner fun while a full fifth of your income chips away at what you owe.",
		Buckets: []Bucket{
			{
				Name:         "Needs",
				Percentage:   decimal.NewFromInt(50),
				Distribution: DistributeMonthly,
				Fixed:        true,
				Patterns:     []string{"needs", "rent*", "mortgage*", "utilit*", "grocer*", "insurance*", "transport*", "commut*", "health*", "medical*"},
			},
			{
				Name:         "Wants",
				Percentage:   decimal.NewFromInt(20),
				Distribution: DistributeDaily,
				Patterns:     []string{"wants", "dining*", "restaurant*", "entertain*", "shopping*", "hobby*", "travel*", "*"},
			},
			{
				Name:         "Savings",
				Percentage:   decimal.NewFromInt(10),
				Distribution: DistributeMonthly,
				Patterns:     []string{"savings*", "invest*", "emergency*"},
			},
			{
				Name:         "Debt",
				Percentage:   decimal.NewFromInt(20),
				Distribution: DistributeMonthly,
				Fixed:        true,
				Patterns:     []string{"debt*", "loan*", "credit*"},
			},
		},
	},
	{
		Name: "Aggressive Saver",
		Tone: "Lean on the fun budget for a while and watch almost a third of every paycheck stack up.",
		Buckets: []Bucket{
			{
				Name:         "Needs",
				Percentage:   decimal.NewFromInt(60),
				Distribution: DistributeMonthly,
				Fixed:        true,
				Patterns:     []string{"needs", "rent*", "mortgage*", "utilit*", "grocer*", "insurance*", "transport*", "commut*", "health*", "medical*"},
			},
			{
				Name:         "Wants",
				Percentage:   decimal.NewFromInt(10),
				Distribution: DistributeDaily,
				Patterns:     []string{"wants", "dining*", "restaurant*", "entertain*", "shopping*", "hobby*", "travel*", "*"},
			},
			{
				Name:         "Savings",
				Percentage:   decimal.NewFromInt(30),
				Distribution: DistributeMonthly,
				Patterns:     []string{"savings*", "invest*", "emergency*"},
			},
		},
	},
}

// BuiltinFrameworks returns a deep copy of the built-in framework definitions.
func BuiltinFrameworks() []FrameworkDefinition {
	defs := make([]FrameworkDefinition, len(builtinFrameworks))
	for i, def := range builtinFrameworks {
		defs[i] = def
		defs[i].Buckets = make([]Bucket, len(def.Buckets))
		copy(defs[i].Buckets, def.Buckets)
	}

	return defs
}

// validateFrameworks checks the static framework configuration. It runs at
// engine construction, not at evaluation time.
func validateFrameworks(defs []FrameworkDefinition) error {
	names := map[string]bool{}

	for _, def := range defs {
		if names[def.Name] {
			return fmt.Errorf("%w: %q", ErrFrameworkNameNotUnique, def.Name)
		}
		names[def.Name] = true

		if len(def.Buckets) == 0 {
			return fmt.Errorf("%w: %q", ErrNoBuckets, def.Name)
		}

		sum := decimal.Zero
		buckets := map[string]bool{}
		for _, bucket := range def.Buckets {
			if buckets[bucket.Name] {
				return fmt.Errorf("%w: %q in %q", ErrBucketNameNotUnique, bucket.Name, def.Name)
			}
			buckets[bucket.Name] = true

			sum = sum.Add(bucket.Percentage)
		}

		if !sum.Equal(decimal.NewFromInt(100)) {
			return fmt.Errorf("%w: %q sums to %s", ErrPercentageSumInvalid, def.Name, sum)
		}
	}

	return nil
}

// debtPercentage returns the total percentage allocated to debt buckets,
// used as the conservative tie-break in framework selection.
func (f FrameworkDefinition) debtPercentage() decimal.Decimal {
	total := decimal.Zero
	for _, bucket := range f.Buckets {
		if strings.EqualFold(bucket.Name, "Debt") {
			total = total.Add(bucket.Percentage)
		}
	}

	return total
}

// bucketSpend classifies the history's category totals into the framework's
// buckets. Specific patterns win over the "*" fallback regardless of bucket
// order; within a pass, buckets are checked in declaration order.
func (f FrameworkDefinition) bucketSpend(h SpendingHistory) map[string]decimal.Decimal {
	spend := make(map[string]decimal.Decimal, len(f.Buckets))
	for _, bucket := range f.Buckets {
		spend[bucket.Name] = decimal.Zero
	}

	for _, category := range h.categories() {
		name := f.bucketFor(category)
		if name == "" {
			continue
		}

		spend[name] = spend[name].Add(h.CategoryTotals[category])
	}

	return spend
}

// bucketFor returns the name of the bucket a history category belongs to.
func (f FrameworkDefinition) bucketFor(category string) string {
	lowered := strings.ToLower(strings.TrimSpace(category))

	for _, bucket := range f.Buckets {
		for _, pattern := range bucket.Patterns {
			if pattern == "*" {
				continue
			}

			if glob.Glob(pattern, lowered) {
				return bucket.Name
			}
		}
	}

	for _, bucket := range f.Buckets {
		for _, pattern := range bucket.Patterns {
			if pattern == "*" {
				return bucket.Name
			}
		}
	}

	return ""
}
