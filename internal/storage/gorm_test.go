package storage_test

import (
	"fmt"
	"time"

	"github.com/balance-pilot/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestInsertManyIdempotent() {
	transactions := []models.Transaction{
		suite.transaction(date(2024, 3, 12), "GROCERY STORE", "-14.03"),
		suite.transaction(date(2024, 3, 13), "PAYROLL DEPOSIT", "1500.00"),
	}

	inserted, err := suite.store.InsertMany(transactions)
	suite.Require().NoError(err)
	suite.Assert().Equal(2, inserted)

	// The same logical transactions again, with fresh IDs.
	again := []models.Transaction{
		suite.transaction(date(2024, 3, 12), "GROCERY STORE", "-14.03"),
		suite.transaction(date(2024, 3, 13), "PAYROLL DEPOSIT", "1500.00"),
		suite.transaction(date(2024, 3, 14), "COFFEE SHOP", "-4.50"),
	}

	inserted, err = suite.store.InsertMany(again)
	suite.Require().NoError(err)
	suite.Assert().Equal(1, inserted, "only the new transaction counts")

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(3), count)
}

func (suite *TestSuiteStandard) TestInsertManyEmpty() {
	inserted, err := suite.store.InsertMany(nil)
	suite.Require().NoError(err)
	suite.Assert().Equal(0, inserted)
}

func (suite *TestSuiteStandard) TestExistingFingerprints() {
	stored := suite.transaction(date(2024, 3, 12), "GROCERY STORE", "-14.03")
	suite.mustInsert(stored)

	existing, err := suite.store.ExistingFingerprints([]string{
		stored.ComputeFingerprint(),
		"not-a-stored-fingerprint",
	})
	suite.Require().NoError(err)

	suite.Assert().True(existing[stored.ComputeFingerprint()])
	suite.Assert().False(existing["not-a-stored-fingerprint"])
}

func (suite *TestSuiteStandard) TestExistingFingerprintsChunked() {
	stored := suite.transaction(date(2024, 3, 12), "GROCERY STORE", "-14.03")
	suite.mustInsert(stored)

	// More fingerprints than fit in one query chunk.
	fingerprints := make([]string, 0, 1201)
	for i := 0; i < 1200; i++ {
		fingerprints = append(fingerprints, fmt.Sprintf("unknown-%d", i))
	}
	fingerprints = append(fingerprints, stored.ComputeFingerprint())

	existing, err := suite.store.ExistingFingerprints(fingerprints)
	suite.Require().NoError(err)
	suite.Assert().Len(existing, 1)
	suite.Assert().True(existing[stored.ComputeFingerprint()])
}

func (suite *TestSuiteStandard) TestLatestBalance() {
	balance, err := suite.store.LatestBalance()
	suite.Require().NoError(err)
	suite.Assert().Nil(balance, "no transactions means no balance")

	older := suite.transaction(date(2024, 3, 10), "OLDER", "1.00")
	olderBalance := decimal.RequireFromString("100.00")
	older.Balance = &olderBalance

	newest := suite.transaction(date(2024, 3, 14), "NEWEST WITHOUT BALANCE", "3.00")

	newer := suite.transaction(date(2024, 3, 12), "NEWER", "2.00")
	newerBalance := decimal.RequireFromString("102.00")
	newer.Balance = &newerBalance

	suite.mustInsert(older, newest, newer)

	balance, err = suite.store.LatestBalance()
	suite.Require().NoError(err)
	suite.Require().NotNil(balance)
	suite.Assert().Equal("102.00", balance.StringFixed(2), "the most recent transaction that carries a balance wins")
}

func (suite *TestSuiteStandard) TestAllPersonMappings() {
	suite.mustMapping("Alice", "rent")
	time.Sleep(10 * time.Millisecond)
	suite.mustMapping("Bob", "groceries")

	mappings, err := suite.store.AllPersonMappings()
	suite.Require().NoError(err)
	suite.Require().Len(mappings, 2)
	suite.Assert().Equal("Alice", mappings[0].PersonName, "mappings come back in creation order")
	suite.Assert().Equal("Bob", mappings[1].PersonName)
}
