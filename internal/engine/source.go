package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Reasons for the data source decision, recorded on the prescription.
const (
	ReasonPreviousMonth = "previous month, sufficiently populated"
	ReasonMostPopulated = "most-populated recent month, carried forward"
	ReasonNoHistory     = "no history available, default empty baseline"
)

// selectSource picks the historical month whose data backs the prescription.
//
// The immediately preceding month wins if it is sufficiently populated.
// Otherwise the most-populated month within the lookback window is carried
// forward, ties broken by recency. With no recorded days anywhere, the
// all-zero baseline for the target month is used. Absence of data never
// fails; only provider errors and malformed histories do.
func (e *Engine) selectSource(ctx context.Context, userID uuid.UUID, target types.Month) (SpendingHistory, string, error) {
	histories := make([]SpendingHistory, 0, e.config.SourceLookbackMonths)

	for i := 1; i <= e.config.SourceLookbackMonths; i++ {
		month := target.AddDate(0, -i)

		history, err := e.provider.FetchMonthHistory(ctx, userID, month)
		if err != nil {
			return SpendingHistory{}, "", fmt.Errorf("fetching history for %s: %w", month, err)
		}

		history = normalizeHistory(history, month)
		if err := history.Validate(); err != nil {
			return SpendingHistory{}, "", fmt.Errorf("history for %s: %w", month, err)
		}

		histories = append(histories, history)
	}

	previous := histories[0]
	if float64(previous.DaysFilled) >= e.config.MinSourceCompleteness*float64(previous.TotalDaysInMonth) && previous.DaysFilled > 0 {
		return previous, ReasonPreviousMonth, nil
	}

	// Most recent month wins ties, so a replacement has to be strictly better.
	best := -1
	for i, history := range histories {
		if history.DaysFilled == 0 {
			continue
		}

		if best == -1 || history.DaysFilled > histories[best].DaysFilled {
			best = i
		}
	}

	if best >= 0 {
		return histories[best], ReasonMostPopulated, nil
	}

	log.Debug().Str("month", target.String()).Msg("no spending history found, falling back to empty baseline")
	return EmptySpendingHistory(target), ReasonNoHistory, nil
}

// normalizeHistory fills in the calendar day count for months the provider
// returned as fully empty values.
func normalizeHistory(h SpendingHistory, month types.Month) SpendingHistory {
	if h.Month.IsZero() {
		h.Month = month
	}

	if h.TotalDaysInMonth == 0 && h.DaysFilled == 0 && len(h.DailyTotals) == 0 {
		h.TotalDaysInMonth = h.Month.Days()
	}

	if h.CategoryTotals == nil {
		h.CategoryTotals = map[string]decimal.Decimal{}
	}

	return h
}
