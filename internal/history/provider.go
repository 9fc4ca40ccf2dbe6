// Package history implements the transaction history boundary of the
// prescription engine on top of the stored transactions and incomes.
package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/engine"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/pocketpilot/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Provider aggregates stored transactions into the per-month view the engine
// consumes. Missing data yields empty values, never an error, as the engine
// boundary requires.
type Provider struct {
	db *gorm.DB
}

// NewProvider returns a provider reading from the given database.
func NewProvider(db *gorm.DB) Provider {
	return Provider{db: db}
}

var _ engine.Provider = Provider{}

// FetchMonthHistory returns the per-day and per-category spending of one
// month. A month without transactions yields the empty history.
func (p Provider) FetchMonthHistory(ctx context.Context, userID uuid.UUID, month types.Month) (engine.SpendingHistory, error) {
	start := month.FirstDay()
	end := month.AddDate(0, 1).FirstDay()

	var transactions []models.Transaction
	err := p.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return engine.SpendingHistory{}, fmt.Errorf("loading transactions for %s: %w", month, err)
	}

	history := engine.EmptySpendingHistory(month)
	history.DailyTotals = make([]decimal.Decimal, month.Days())
	for i := range history.DailyTotals {
		history.DailyTotals[i] = decimal.Zero
	}

	filled := make([]bool, month.Days())
	for _, transaction := range transactions {
		day := transaction.Date.In(start.Location()).Day()

		history.DailyTotals[day-1] = history.DailyTotals[day-1].Add(transaction.Amount)
		history.CategoryTotals[transaction.Category] = history.CategoryTotals[transaction.Category].Add(transaction.Amount)
		filled[day-1] = true
	}

	for _, hasData := range filled {
		if hasData {
			history.DaysFilled++
		}
	}

	return history, nil
}

// FetchNetIncome returns the net income recorded for the month, or zero if
// none exists.
func (p Provider) FetchNetIncome(ctx context.Context, userID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	var incomes []models.Income
	err := p.db.WithContext(ctx).
		Where(&models.Income{UserID: userID, Month: month}).
		Limit(1).
		Find(&incomes).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("loading income for %s: %w", month, err)
	}

	if len(incomes) == 0 {
		return decimal.Zero, nil
	}

	return incomes[0].Amount, nil
}
