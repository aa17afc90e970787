package models_test

import (
	"strings"
	"time"

	"github.com/balance-pilot/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionFingerprintStable() {
	balance := decimal.New(207190, -2)

	transaction := models.Transaction{
		Date:        time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Description: "ACH DEPOSIT PAYROLL ACME",
		Amount:      decimal.New(150000, -2),
		Balance:     &balance,
	}

	first := transaction.ComputeFingerprint()
	second := transaction.ComputeFingerprint()
	suite.Assert().Equal(first, second, "fingerprint must be deterministic")
	suite.Assert().Len(first, 64)
}

func (suite *TestSuiteStandard) TestTransactionFingerprintIgnoresWhitespace() {
	transaction := models.Transaction{
		Date:        time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Description: "GROCERY STORE",
		Amount:      decimal.New(-1403, -2),
	}

	padded := transaction
	padded.Description = "  GROCERY STORE  "

	suite.Assert().Equal(transaction.ComputeFingerprint(), padded.ComputeFingerprint())
}

func (suite *TestSuiteStandard) TestTransactionFingerprintDiffers() {
	transaction := models.Transaction{
		Date:        time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Description: "GROCERY STORE",
		Amount:      decimal.New(-1403, -2),
	}

	other := transaction
	other.Amount = decimal.New(-1404, -2)
	suite.Assert().NotEqual(transaction.ComputeFingerprint(), other.ComputeFingerprint())

	other = transaction
	other.Date = transaction.Date.AddDate(0, 0, 1)
	suite.Assert().NotEqual(transaction.ComputeFingerprint(), other.ComputeFingerprint())

	balance := decimal.New(100, 0)
	other = transaction
	other.Balance = &balance
	suite.Assert().NotEqual(transaction.ComputeFingerprint(), other.ComputeFingerprint())
}

func (suite *TestSuiteStandard) TestTransactionFingerprintBalanceOptional() {
	transaction := models.Transaction{
		Date:        time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Description: "GROCERY STORE",
		Amount:      decimal.New(-1403, -2),
	}

	// A nil balance and no balance field produce the same hash input.
	suite.Assert().NotEmpty(transaction.ComputeFingerprint())
}

func (suite *TestSuiteStandard) TestTransactionTrimmedOnSave() {
	transaction := suite.createTestTransaction(models.Transaction{
		Description: "  Padded description  ",
	})

	suite.Assert().Equal("Padded description", transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionDateTruncated() {
	transaction := suite.createTestTransaction(models.Transaction{
		Date: time.Date(2024, 3, 12, 17, 38, 12, 0, time.UTC),
	})

	suite.Assert().Equal(time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionFingerprintSetOnSave() {
	transaction := suite.createTestTransaction(models.Transaction{})

	suite.Assert().NotEmpty(transaction.Fingerprint)
	suite.Assert().False(transaction.ImportedAt.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionEmptyDescription() {
	err := models.DB.Create(&models.Transaction{
		Date:   time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Amount: decimal.New(100, 0),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionDescriptionEmpty)

	err = models.DB.Create(&models.Transaction{
		Date:        time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Description: "   ",
		Amount:      decimal.New(100, 0),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionDescriptionEmpty)
}

func (suite *TestSuiteStandard) TestTransactionZeroDate() {
	err := models.DB.Create(&models.Transaction{
		Description: "No date",
		Amount:      decimal.New(100, 0),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionDateZero)
}

func (suite *TestSuiteStandard) TestTransactionDuplicateFingerprintRejected() {
	transaction := suite.createTestTransaction(models.Transaction{})

	duplicate := models.Transaction{
		Date:        transaction.Date,
		Description: transaction.Description,
		Amount:      transaction.Amount,
	}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().Error(err, "second insert with the same fingerprint must fail the unique index")
}

func (suite *TestSuiteStandard) TestTransactionExport() {
	_ = suite.createTestTransaction(models.Transaction{Description: "Export me"})

	raw, err := models.Transaction{}.Export()
	suite.Require().NoError(err)
	suite.Assert().True(strings.Contains(string(raw), "Export me"))
}
