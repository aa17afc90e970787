package v1_test

import (
	"net/http"

	v1 "github.com/balance-pilot/backend/internal/controllers/v1"
	"github.com/balance-pilot/backend/internal/models"
	"github.com/balance-pilot/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsExport() {
	suite.optionsHeaderTest("/v1/export", "GET")
}

func (suite *TestSuiteStandard) TestGetExport() {
	_ = suite.createTestTransaction(models.Transaction{Description: "Exported transaction"})
	_ = suite.createTestPersonMapping("Alice", "rent")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Contains(response.Data, "transactions")
	suite.Require().Contains(response.Data, "personMappings")
	suite.Assert().Contains(string(response.Data["transactions"]), "Exported transaction")
	suite.Assert().Contains(string(response.Data["personMappings"]), "Alice")
}

func (suite *TestSuiteStandard) TestGetExportEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().JSONEq("[]", string(response.Data["transactions"]))
}
