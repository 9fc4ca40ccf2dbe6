package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is one recorded expense. The prescription engine never reads
// transactions directly; the history provider aggregates them per month.
type Transaction struct {
	DefaultModel
	UserID   uuid.UUID       `json:"userId" gorm:"index"`
	Date     time.Time       `json:"date" gorm:"index"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Note     string          `json:"note"`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Category = strings.TrimSpace(t.Category)
	t.Note = strings.TrimSpace(t.Note)

	// Normalize to UTC so that day bucketing is stable
	t.Date = t.Date.In(time.UTC)

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	if t.Category == "" {
		return ErrTransactionCategoryEmpty
	}

	return nil
}
