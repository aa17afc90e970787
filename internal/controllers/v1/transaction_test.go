package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/balance-pilot/backend/internal/controllers/v1"
	"github.com/balance-pilot/backend/internal/models"
	"github.com/balance-pilot/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsTransactions() {
	suite.optionsHeaderTest("/v1/transactions", "GET")
}

func (suite *TestSuiteStandard) TestOptionsTransactionDetail() {
	transaction := suite.createTestTransaction(models.Transaction{})
	suite.optionsHeaderTest(fmt.Sprintf("/v1/transactions/%s", transaction.ID), "GET, PATCH")
}

func (suite *TestSuiteStandard) TestGetTransactions() {
	_ = suite.createTestTransaction(models.Transaction{
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "OLDER",
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:        time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		Description: "NEWER",
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("NEWER", response.Data[0].Description, "most recent first")
	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilters() {
	_ = suite.createTestTransaction(models.Transaction{
		Description: "GROCERY STORE",
		Amount:      decimal.RequireFromString("-14.03"),
		Category:    "Groceries",
	})
	_ = suite.createTestTransaction(models.Transaction{
		Description: "PAYROLL ACME",
		Amount:      decimal.RequireFromString("1500.00"),
		Category:    "Income",
		Source:      "Acme Corp",
	})

	tests := []struct {
		query    string
		expected int
	}{
		{"search=grocery", 1},
		{"search=nothing+matches", 0},
		{"category=Income", 1},
		{"source=Acme+Corp", 1},
		{"minAmount=0", 1},
		{"maxAmount=0", 1},
		{"fromDate=2024-03-12&untilDate=2024-03-12", 2},
		{"fromDate=2024-03-13", 0},
		{"limit=1", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.TransactionListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Len(response.Data, tt.expected, "query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidQuery() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?fromDate=not-a-date", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Single"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Single", response.Data.Description)
	suite.Assert().Contains(response.Data.Links.Self, fmt.Sprintf("/v1/transactions/%s", transaction.ID))
}

func (suite *TestSuiteStandard) TestGetTransactionUncategorized() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "No category yet"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Uncategorized", response.Data.Category)
}

func (suite *TestSuiteStandard) TestGetTransactionNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions/048b061f-3b6b-45ab-b0e9-0f38d2fff0c8", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetTransactionInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Before"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"category": "Rent",
		"notes":    "split with Bob",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Rent", response.Data.Category)
	suite.Assert().Equal("split with Bob", response.Data.Notes)
	suite.Assert().Equal("Before", response.Data.Description, "fields not in the body stay untouched")

	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", transaction.ID.String()).Error)
	suite.Assert().Equal("Rent", reloaded.Category)
}

func (suite *TestSuiteStandard) TestUpdateTransactionImmutableFields() {
	transaction := suite.createTestTransaction(models.Transaction{})

	// Unknown fields in the body are ignored; the amount stays as it is.
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"amount": "99999.99",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", transaction.ID.String()).Error)
	suite.Assert().True(transaction.Amount.Equal(reloaded.Amount))
	suite.Assert().Equal(transaction.Fingerprint, reloaded.Fingerprint)
}

func (suite *TestSuiteStandard) TestUpdateTransactionBrokenJSON() {
	transaction := suite.createTestTransaction(models.Transaction{})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), `{ broken`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateTransactionNotFound() {
	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/transactions/048b061f-3b6b-45ab-b0e9-0f38d2fff0c8", map[string]any{"notes": "x"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
