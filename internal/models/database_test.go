package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/does-not-exist/gorm.db")
	assert.Error(suite.T(), err)

	// Restore a working connection for the teardown.
	suite.SetupTest()
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	transaction := models.Transaction{
		UserID:   uuid.New(),
		Date:     time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
		Category: "Groceries",
		Amount:   decimal.NewFromInt(10),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	// Restore a working connection for the teardown.
	suite.SetupTest()
}
