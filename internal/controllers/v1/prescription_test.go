package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pocketpilot/backend/internal/controllers/v1"
	"github.com/pocketpilot/backend/internal/engine"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/pocketpilot/backend/internal/test"
	"github.com/pocketpilot/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// seedUser creates a user with a well-populated July history, an August
// income and a profile, and returns the user's ID.
func (suite *TestSuiteStandard) seedUser() uuid.UUID {
	userID := uuid.New()

	for day := 1; day <= 16; day++ {
		suite.createTransaction(userID, time.Date(2026, 7, day, 12, 0, 0, 0, time.UTC), "Groceries", 10)
	}

	suite.createIncome(userID, types.NewMonth(2026, 8), 3100)

	recorder := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("/v1/profiles/%s", userID), v1.ProfileEditable{
		Currency: "USD",
		Payday:   25,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	return userID
}

func (suite *TestSuiteStandard) generatePrescription(userID uuid.UUID) v1.PrescriptionRecord {
	url := fmt.Sprintf("/v1/prescriptions?userId=%s&month=2026-08&now=2026-08-10T12:00:00Z", userID)

	recorder := test.Request(suite.T(), http.MethodPost, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.PrescriptionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestCreatePrescription() {
	userID := suite.seedUser()
	record := suite.generatePrescription(userID)

	assert.Equal(suite.T(), userID, record.UserID)
	assert.True(suite.T(), record.Month.Equal(types.NewMonth(2026, 8)))

	document := record.Document
	assert.True(suite.T(), document.MonthlyNetIncome.Equal(decimal.NewFromInt(3100)))
	assert.Equal(suite.T(), engine.ReasonPreviousMonth, document.DataSourceReason)
	assert.True(suite.T(), document.DataSourceMonth.Equal(types.NewMonth(2026, 7)))
	assert.Equal(suite.T(), 16, document.DaysFilled)
	assert.NotEmpty(suite.T(), document.DailyAllocations)
	assert.NotEmpty(suite.T(), document.MonthlyAllocations)
	assert.NotEmpty(suite.T(), document.BudgetingTips)
}

func (suite *TestSuiteStandard) TestCreatePrescriptionDeterministic() {
	userID := suite.seedUser()

	first := suite.generatePrescription(userID)
	second := suite.generatePrescription(userID)

	assert.Equal(suite.T(), first.ID, second.ID, "the same inputs must derive the same prescription ID")

	// Re-running a month replaces the stored record instead of stacking up.
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/prescriptions?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PrescriptionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestCreatePrescriptionNoData() {
	userID := uuid.New()

	url := fmt.Sprintf("/v1/prescriptions?userId=%s&month=2026-08&now=2026-08-10T12:00:00Z", userID)
	recorder := test.Request(suite.T(), http.MethodPost, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.PrescriptionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	document := response.Data.Document
	assert.Equal(suite.T(), engine.ReasonNoHistory, document.DataSourceReason)
	assert.Equal(suite.T(), engine.ConfidenceLow, document.Confidence)
	assert.True(suite.T(), document.MonthlyNetIncome.IsZero())
}

func (suite *TestSuiteStandard) TestCreatePrescriptionDatabaseError() {
	sqlDB, err := models.DB.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())

	// The profile lookup is the first database access, it must not be
	// silently swallowed into a zero-value profile.
	url := fmt.Sprintf("/v1/prescriptions?userId=%s&month=2026-08", uuid.New())
	recorder := test.Request(suite.T(), http.MethodPost, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	suite.SetupTest()
}

func (suite *TestSuiteStandard) TestCreatePrescriptionInvalidParameters() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/prescriptions?month=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/prescriptions?userId=%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/prescriptions?userId=%s&month=2026-08&now=tomorrow", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetPrescription() {
	userID := suite.seedUser()
	record := suite.generatePrescription(userID)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/prescriptions/%s", record.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PrescriptionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), record.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetPrescriptionNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/prescriptions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateCurrentSpending() {
	userID := suite.seedUser()
	record := suite.generatePrescription(userID)

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/prescriptions/%s/current-spending", record.ID), v1.CurrentSpendingEditable{
		CurrentMonthSpending: map[string]decimal.Decimal{
			"Dining": decimal.NewFromInt(150),
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PrescriptionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	assert.True(suite.T(), response.Data.Document.CurrentMonthSpending["Dining"].Equal(decimal.NewFromInt(150)))

	// The rest of the document stays as generated.
	assert.Equal(suite.T(), record.Document.DataSourceReason, response.Data.Document.DataSourceReason)
	assert.Equal(suite.T(), record.Document.RecommendedFramework.Name, response.Data.Document.RecommendedFramework.Name)
}

func (suite *TestSuiteStandard) TestUpdateCurrentSpendingNotFound() {
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/prescriptions/%s/current-spending", uuid.New()), v1.CurrentSpendingEditable{
		CurrentMonthSpending: map[string]decimal.Decimal{},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
