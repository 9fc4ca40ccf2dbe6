package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	transaction := models.Transaction{
		UserID:   uuid.New(),
		Date:     time.Date(2026, 8, 5, 14, 30, 0, 0, tz),
		Category: "  Groceries ",
		Amount:   decimal.NewFromFloat(42.5),
		Note:     " Weekly shopping ",
	}

	err := models.DB.Create(&transaction).Error
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "Groceries", transaction.Category, "category must be trimmed")
	assert.Equal(suite.T(), "Weekly shopping", transaction.Note, "note must be trimmed")
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "date must be normalized to UTC")
}

func (suite *TestSuiteStandard) TestTransactionAmountNegative() {
	transaction := models.Transaction{
		UserID:   uuid.New(),
		Date:     time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
		Category: "Groceries",
		Amount:   decimal.NewFromInt(-1),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionAmountNegative)
}

func (suite *TestSuiteStandard) TestTransactionCategoryEmpty() {
	transaction := models.Transaction{
		UserID: uuid.New(),
		Date:   time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(10),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionCategoryEmpty)

	// A category of only whitespace is empty after trimming.
	transaction.Category = "   "
	err = models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionCategoryEmpty)
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	err := models.DB.First(&models.Transaction{}, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
