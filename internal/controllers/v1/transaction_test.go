package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pocketpilot/backend/internal/controllers/v1"
	"github.com/pocketpilot/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsTransactions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsTransactionDetail() {
	transaction := suite.createTransaction(uuid.New(), time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), "Groceries", 40)

	recorder := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodOptions, "/v1/transactions/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateTransactions() {
	userID := uuid.New()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", []v1.TransactionEditable{
		{UserID: userID, Date: time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), Category: "Groceries", Amount: decimal.NewFromFloat(42.5)},
		{UserID: userID, Date: time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC), Category: "Dining", Amount: decimal.NewFromInt(25)},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	for _, item := range response.Data {
		suite.Require().NotNil(item.Data)
		assert.NotEqual(suite.T(), uuid.Nil, item.Data.ID)
	}
}

func (suite *TestSuiteStandard) TestCreateTransactionsPartialFailure() {
	userID := uuid.New()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", []v1.TransactionEditable{
		{UserID: userID, Date: time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), Category: "Groceries", Amount: decimal.NewFromInt(40)},
		{UserID: userID, Date: time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC), Category: "Dining", Amount: decimal.NewFromInt(-1)},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.NotNil(suite.T(), response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestCreateTransactionsEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransactions() {
	userID := uuid.New()
	suite.createTransaction(userID, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC), "Groceries", 40)
	suite.createTransaction(userID, time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), "Dining", 25)
	suite.createTransaction(uuid.New(), time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), "Groceries", 99)

	tests := []struct {
		name     string
		url      string
		expected int
	}{
		{"all", "/v1/transactions", 3},
		{"by user", fmt.Sprintf("/v1/transactions?userId=%s", userID), 2},
		{"by user and month", fmt.Sprintf("/v1/transactions?userId=%s&month=2026-08", userID), 1},
		{"by month", "/v1/transactions?month=2026-07", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.expected)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidFilters() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?userId=not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=zebra", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	transaction := suite.createTransaction(uuid.New(), time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), "Groceries", 40)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), transaction.ID, response.Data.ID)
	assert.Equal(suite.T(), "Groceries", response.Data.Category)
}

func (suite *TestSuiteStandard) TestGetTransactionNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	transaction := suite.createTransaction(uuid.New(), time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), "Groceries", 40)

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
