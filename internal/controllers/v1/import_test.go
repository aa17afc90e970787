package v1_test

import (
	"net/http"

	v1 "github.com/balance-pilot/backend/internal/controllers/v1"
	"github.com/balance-pilot/backend/internal/importer"
	"github.com/balance-pilot/backend/internal/models"
	"github.com/balance-pilot/backend/test"
)

const importCSV = "Date,Description,Amount,Balance\n" +
	"03/12/2024,ACH DIRECT DEP ACME CORP,1500.00,3571.90\n" +
	"03/13/2024,GROCERY STORE #12 - SPRINGFIELD,-14.03,3557.87\n"

func (suite *TestSuiteStandard) TestOptionsImport() {
	suite.optionsHeaderTest("/v1/import", "POST")
}

func (suite *TestSuiteStandard) TestImport() {
	recorder := test.UploadFile(suite.T(), "/v1/import", "export.csv", importCSV)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(2, response.Data.InsertedCount)
	suite.Assert().Equal(0, response.Data.DuplicateCount)
	suite.Assert().Empty(response.Data.RejectedRows)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(2), count)
}

func (suite *TestSuiteStandard) TestImportIdempotent() {
	recorder := test.UploadFile(suite.T(), "/v1/import", "export.csv", importCSV)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.UploadFile(suite.T(), "/v1/import", "export.csv", importCSV)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(0, response.Data.InsertedCount, "uploading the same file twice inserts nothing")
	suite.Assert().Equal(2, response.Data.DuplicateCount)
}

func (suite *TestSuiteStandard) TestImportRejectedRows() {
	csv := "Date,Description,Amount\n" +
		"03/12/2024,FINE ROW,1.00\n" +
		"03/13/2024,BROKEN ROW,not-an-amount\n"

	recorder := test.UploadFile(suite.T(), "/v1/import", "export.csv", csv)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(1, response.Data.InsertedCount)
	suite.Require().Len(response.Data.RejectedRows, 1)
	suite.Assert().Equal(2, response.Data.RejectedRows[0].RowIndex)
	suite.Assert().Equal(importer.ReasonInvalidAmount, response.Data.RejectedRows[0].Reason)
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportWrongSuffix() {
	recorder := test.UploadFile(suite.T(), "/v1/import", "export.xlsx", importCSV)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportMalformedCSV() {
	recorder := test.UploadFile(suite.T(), "/v1/import", "export.csv",
		"Date,Description,Amount\n03/12/2024,\"broken,1.00\n")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
