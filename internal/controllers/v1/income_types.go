package v1

import (
	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/pocketpilot/backend/internal/types"
	"github.com/shopspring/decimal"
)

type IncomeEditable struct {
	UserID uuid.UUID       `json:"userId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Month  types.Month     `json:"month" example:"2026-08-01T00:00:00Z"`
	Amount decimal.Decimal `json:"amount" example:"3000" minimum:"0" default:"0"`
}

// model returns the database resource for the API representation.
func (editable IncomeEditable) model() models.Income {
	return models.Income{
		UserID: editable.UserID,
		Month:  editable.Month,
		Amount: editable.Amount,
	}
}

type Income struct {
	models.DefaultModel
	IncomeEditable
}

// newIncome returns the API representation of the resource.
func newIncome(model models.Income) Income {
	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			UserID: model.UserID,
			Month:  model.Month,
			Amount: model.Amount,
		},
	}
}

type IncomeResponse struct {
	Data  *Income `json:"data"`
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type IncomeListResponse struct {
	Data  []Income `json:"data"`
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"`
}

func (t *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	message := err.Error()
	t.Data = append(t.Data, IncomeResponse{Error: &message})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}
