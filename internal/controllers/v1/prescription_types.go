package v1

import (
	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/engine"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/pocketpilot/backend/internal/types"
	"github.com/shopspring/decimal"
)

// PrescriptionRecord is the stored prescription with its decoded document.
type PrescriptionRecord struct {
	ID       uuid.UUID                 `json:"id"`
	UserID   uuid.UUID                 `json:"userId"`
	Month    types.Month               `json:"month"`
	Document engine.BudgetPrescription `json:"document"`
}

// newPrescriptionRecord returns the API representation of the resource.
func newPrescriptionRecord(model models.Prescription) (PrescriptionRecord, error) {
	document, err := model.Prescription()
	if err != nil {
		return PrescriptionRecord{}, err
	}

	return PrescriptionRecord{
		ID:       model.ID,
		UserID:   model.UserID,
		Month:    model.Month,
		Document: document,
	}, nil
}

type PrescriptionResponse struct {
	Data  *PrescriptionRecord `json:"data"`
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type PrescriptionListResponse struct {
	Data  []PrescriptionRecord `json:"data"`
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// CurrentSpendingEditable is the request body for refreshing the tracked
// current month spending of a prescription.
type CurrentSpendingEditable struct {
	CurrentMonthSpending map[string]decimal.Decimal `json:"currentMonthSpending"`
}
