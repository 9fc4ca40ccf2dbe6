package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	UserID   uuid.UUID       `json:"userId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Date     time.Time       `json:"date" example:"2026-08-05T00:00:00Z"`
	Category string          `json:"category" example:"Groceries"`
	Amount   decimal.Decimal `json:"amount" example:"42.50" minimum:"0" default:"0"`
	Note     string          `json:"note" example:"Weekly shopping" default:""`
}

// model returns the database resource for the API representation.
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		UserID:   editable.UserID,
		Date:     editable.Date,
		Category: editable.Category,
		Amount:   editable.Amount,
		Note:     editable.Note,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

// newTransaction returns the API representation of the resource.
func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			UserID:   model.UserID,
			Date:     model.Date,
			Category: model.Category,
			Amount:   model.Amount,
			Note:     model.Note,
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"`
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	message := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &message})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}
