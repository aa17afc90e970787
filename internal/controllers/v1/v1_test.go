package v1_test

import (
	"net/http"

	v1 "github.com/balance-pilot/backend/internal/controllers/v1"
	"github.com/balance-pilot/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsV1() {
	suite.optionsHeaderTest("/v1", "GET")
}

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Contains(response.Links.Transactions, "/v1/transactions")
	suite.Assert().Contains(response.Links.Import, "/v1/import")
	suite.Assert().Contains(response.Links.Projections, "/v1/projections")
	suite.Assert().Contains(response.Links.PersonMappings, "/v1/person-mappings")
	suite.Assert().Contains(response.Links.Contributions, "/v1/contributions")
	suite.Assert().Contains(response.Links.Statistics, "/v1/statistics")
	suite.Assert().Contains(response.Links.Export, "/v1/export")
}
