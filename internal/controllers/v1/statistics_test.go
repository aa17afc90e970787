package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/balance-pilot/backend/internal/controllers/v1"
	"github.com/balance-pilot/backend/internal/models"
	"github.com/balance-pilot/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) seedStatistics() {
	_ = suite.createTestTransaction(models.Transaction{
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "PAYROLL ACME",
		Amount:      decimal.RequireFromString("1500.00"),
		Category:    "Income",
		Source:      "Acme Corp",
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Description: "GROCERY STORE",
		Amount:      decimal.RequireFromString("-120.00"),
		Category:    "Groceries",
	})
}

func (suite *TestSuiteStandard) TestOptionsStatistics() {
	suite.optionsHeaderTest("/v1/statistics", "GET")
	suite.optionsHeaderTest("/v1/categories", "GET")
	suite.optionsHeaderTest("/v1/sources", "GET")
}

func (suite *TestSuiteStandard) TestGetStatistics() {
	suite.seedStatistics()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/statistics", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StatisticsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(2, response.Data.TotalTransactions)
	suite.Assert().Equal("1500.00", response.Data.TotalDeposits.StringFixed(2))
	suite.Assert().Equal("1380.00", response.Data.NetChange.StringFixed(2))
	suite.Require().Len(response.Data.MonthlyBreakdown, 1)
	suite.Require().Len(response.Data.ByCategory, 2)
}

func (suite *TestSuiteStandard) TestGetStatisticsDateRange() {
	suite.seedStatistics()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/statistics?fromDate=2024-03-02", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StatisticsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(1, response.Data.TotalTransactions)
}

func (suite *TestSuiteStandard) TestGetStatisticsInvalidQuery() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/statistics?untilDate=tomorrow", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	suite.seedStatistics()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StringListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal([]string{"Groceries", "Income"}, response.Data)
}

func (suite *TestSuiteStandard) TestGetSources() {
	suite.seedStatistics()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/sources", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StringListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal([]string{"Acme Corp"}, response.Data, "empty sources are not listed")
}
