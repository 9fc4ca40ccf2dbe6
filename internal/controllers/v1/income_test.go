package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/pocketpilot/backend/internal/controllers/v1"
	"github.com/pocketpilot/backend/internal/test"
	"github.com/pocketpilot/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsIncomes() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateIncomes() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/incomes", []v1.IncomeEditable{
		{UserID: uuid.New(), Month: types.NewMonth(2026, 8), Amount: decimal.NewFromInt(3100)},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.IncomeCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Data)
	assert.NotEqual(suite.T(), uuid.Nil, response.Data[0].Data.ID)
}

func (suite *TestSuiteStandard) TestCreateIncomesDuplicateMonth() {
	userID := uuid.New()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/incomes", []v1.IncomeEditable{
		{UserID: userID, Month: types.NewMonth(2026, 8), Amount: decimal.NewFromInt(3100)},
		{UserID: userID, Month: types.NewMonth(2026, 8), Amount: decimal.NewFromInt(2900)},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.IncomeCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	suite.Require().NotNil(response.Data[1].Error)
	assert.Contains(suite.T(), *response.Data[1].Error, "same month")
}

func (suite *TestSuiteStandard) TestGetIncomes() {
	userID := uuid.New()
	suite.createIncome(userID, types.NewMonth(2026, 7), 3000)
	suite.createIncome(userID, types.NewMonth(2026, 8), 3100)
	suite.createIncome(uuid.New(), types.NewMonth(2026, 8), 2500)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/incomes?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/incomes?month=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetIncome() {
	income := suite.createIncome(uuid.New(), types.NewMonth(2026, 8), 3100)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/incomes/%s", income.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), income.ID, response.Data.ID)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(3100)))
}

func (suite *TestSuiteStandard) TestDeleteIncome() {
	income := suite.createIncome(uuid.New(), types.NewMonth(2026, 8), 3100)

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/incomes/%s", income.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/incomes/%s", income.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
