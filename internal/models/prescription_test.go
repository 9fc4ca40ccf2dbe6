package models_test

import (
	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/engine"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/pocketpilot/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPrescriptionKeepsEngineID() {
	userID := uuid.New()
	engineID := uuid.MustParse("f81566d9-af4d-4f13-9830-c62c4b5e4c7e")

	record, err := models.NewPrescription(userID, engine.BudgetPrescription{
		ID:               engineID,
		Month:            types.NewMonth(2026, 8),
		MonthlyNetIncome: decimal.NewFromInt(3100),
		Confidence:       engine.ConfidenceMedium,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(models.DB.Create(&record).Error)
	assert.Equal(suite.T(), engineID, record.ID, "the engine-derived ID must not be replaced on create")
}

func (suite *TestSuiteStandard) TestPrescriptionGeneratesIDWithoutDocument() {
	record := models.Prescription{UserID: uuid.New(), Month: types.NewMonth(2026, 8)}

	suite.Require().NoError(models.DB.Create(&record).Error)
	assert.NotEqual(suite.T(), uuid.Nil, record.ID)
}

func (suite *TestSuiteStandard) TestPrescriptionRoundTrip() {
	userID := uuid.New()

	original := engine.BudgetPrescription{
		ID:               uuid.New(),
		Month:            types.NewMonth(2026, 8),
		MonthlyNetIncome: decimal.NewFromInt(3100),
		Confidence:       engine.ConfidenceHigh,
		DataSourceMonth:  types.NewMonth(2026, 7),
		DataSourceReason: engine.ReasonPreviousMonth,
		CurrentMonthSpending: map[string]decimal.Decimal{
			"Dining": decimal.NewFromInt(150),
		},
	}

	record, err := models.NewPrescription(userID, original)
	suite.Require().NoError(err)
	suite.Require().NoError(models.DB.Create(&record).Error)

	var stored models.Prescription
	suite.Require().NoError(models.DB.First(&stored, "id = ?", record.ID).Error)

	decoded, err := stored.Prescription()
	suite.Require().NoError(err)

	assert.Equal(suite.T(), original.ID, decoded.ID)
	assert.True(suite.T(), decoded.Month.Equal(original.Month))
	assert.True(suite.T(), decoded.MonthlyNetIncome.Equal(original.MonthlyNetIncome))
	assert.Equal(suite.T(), engine.ReasonPreviousMonth, decoded.DataSourceReason)
	assert.True(suite.T(), decoded.CurrentMonthSpending["Dining"].Equal(decimal.NewFromInt(150)))
}

func (suite *TestSuiteStandard) TestPrescriptionLegacyDocument() {
	record := models.Prescription{
		UserID:   uuid.New(),
		Month:    types.NewMonth(2026, 8),
		Document: `{"month": "2026-08-01T00:00:00Z", "confidence": "medium"}`,
	}
	suite.Require().NoError(models.DB.Create(&record).Error)

	decoded, err := record.Prescription()
	suite.Require().NoError(err)

	assert.True(suite.T(), decoded.DataSourceMonth.Equal(decoded.Month))
	assert.Equal(suite.T(), "Legacy data (previous month)", decoded.DataSourceReason)
}

func (suite *TestSuiteStandard) TestPrescriptionInvalidDocument() {
	record := models.Prescription{Document: "not json"}

	_, err := record.Prescription()
	assert.Error(suite.T(), err)
}
