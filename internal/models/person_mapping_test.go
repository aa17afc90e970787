package models_test

import (
	"strings"

	"github.com/balance-pilot/backend/internal/models"
)

func (suite *TestSuiteStandard) TestPersonMappingTrimmedOnSave() {
	mapping := suite.createTestPersonMapping(models.PersonMapping{
		PersonName: "  Alice  ",
		Keyword:    "  rent  ",
	})

	suite.Assert().Equal("Alice", mapping.PersonName)
	suite.Assert().Equal("rent", mapping.Keyword)
}

func (suite *TestSuiteStandard) TestPersonMappingEmptyName() {
	err := models.DB.Create(&models.PersonMapping{Keyword: "rent"}).Error
	suite.Assert().ErrorIs(err, models.ErrPersonMappingNameEmpty)
}

func (suite *TestSuiteStandard) TestPersonMappingEmptyKeyword() {
	err := models.DB.Create(&models.PersonMapping{PersonName: "Alice", Keyword: " "}).Error
	suite.Assert().ErrorIs(err, models.ErrPersonMappingKeywordEmpty)
}

func (suite *TestSuiteStandard) TestPersonMappingDuplicateRejected() {
	_ = suite.createTestPersonMapping(models.PersonMapping{PersonName: "Alice", Keyword: "rent"})

	err := models.DB.Create(&models.PersonMapping{PersonName: "ALICE", Keyword: "Rent"}).Error
	suite.Assert().ErrorIs(err, models.ErrPersonMappingExists, "uniqueness is case-insensitive")
}

func (suite *TestSuiteStandard) TestPersonMappingSamePersonOtherKeyword() {
	_ = suite.createTestPersonMapping(models.PersonMapping{PersonName: "Alice", Keyword: "rent"})
	_ = suite.createTestPersonMapping(models.PersonMapping{PersonName: "Alice", Keyword: "utilities"})

	var count int64
	suite.Require().NoError(models.DB.Model(&models.PersonMapping{}).Count(&count).Error)
	suite.Assert().Equal(int64(2), count)
}

func (suite *TestSuiteStandard) TestPersonMappingExport() {
	_ = suite.createTestPersonMapping(models.PersonMapping{PersonName: "Bob", Keyword: "groceries"})

	raw, err := models.PersonMapping{}.Export()
	suite.Require().NoError(err)
	suite.Assert().True(strings.Contains(string(raw), "groceries"))
}
