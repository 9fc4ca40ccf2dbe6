package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the lightweight preference set of a user: the currency budgets
// are expressed in, the payday and the declared recurring fixed costs.
type Profile struct {
	DefaultModel
	UserID   uuid.UUID `json:"userId" gorm:"uniqueIndex"`
	Currency string    `json:"currency"` // ISO 4217 code
	Payday   int       `json:"payday"`   // day of month, 0 if not declared

	// FixedCategories holds comma-separated glob patterns for recurring
	// fixed-cost categories, e.g. "rent*,utilit*,insurance".
	FixedCategories string `json:"fixedCategories"`
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	if p.Currency == "" {
		p.Currency = "USD"
	}

	p.FixedCategories = strings.TrimSpace(p.FixedCategories)

	return nil
}

func (p *Profile) AfterSave(_ *gorm.DB) error {
	if p.Payday < 0 || p.Payday > 31 {
		return ErrProfilePaydayInvalid
	}

	return nil
}

// FixedCategoryPatterns returns the declared fixed-cost patterns as a slice.
func (p Profile) FixedCategoryPatterns() []string {
	if p.FixedCategories == "" {
		return nil
	}

	parts := strings.Split(p.FixedCategories, ",")
	patterns := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}

	return patterns
}
