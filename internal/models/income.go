package models

import (
	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is the net income of a user for one month.
type Income struct {
	DefaultModel
	UserID uuid.UUID       `json:"userId" gorm:"uniqueIndex:income_user_month"`
	Month  types.Month     `json:"month" gorm:"uniqueIndex:income_user_month"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	if i.Amount.IsNegative() {
		return ErrIncomeAmountNegative
	}

	return nil
}
