package storage

import (
	"github.com/balance-pilot/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// fingerprintChunkSize bounds the number of placeholders per query. SQLite
// limits the number of bound variables per statement.
const fingerprintChunkSize = 500

// GormStore implements Store on top of the gorm database connection.
type GormStore struct {
	db *gorm.DB
}

var _ Store = &GormStore{}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ExistingFingerprints(fingerprints []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(fingerprints))

	for start := 0; start < len(fingerprints); start += fingerprintChunkSize {
		end := min(start+fingerprintChunkSize, len(fingerprints))

		var found []string
		err := s.db.Model(&models.Transaction{}).
			Where("fingerprint IN ?", fingerprints[start:end]).
			Pluck("fingerprint", &found).Error
		if err != nil {
			return nil, err
		}

		for _, fingerprint := range found {
			existing[fingerprint] = true
		}
	}

	return existing, nil
}

func (s *GormStore) InsertMany(transactions []models.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	// ON CONFLICT DO NOTHING on the fingerprint makes the insert safe under
	// at-least-once retry and under concurrent imports of overlapping files.
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fingerprint"}},
		DoNothing: true,
	}).Create(&transactions)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

func (s *GormStore) LatestBalance() (*decimal.Decimal, error) {
	var transaction models.Transaction
	err := s.db.
		Where("balance IS NOT NULL").
		Order("date DESC, created_at DESC").
		First(&transaction).Error
	if models.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return transaction.Balance, nil
}

func (s *GormStore) AllPersonMappings() ([]models.PersonMapping, error) {
	mappings := make([]models.PersonMapping, 0)
	err := s.db.Order("created_at ASC").Find(&mappings).Error
	if err != nil {
		return nil, err
	}

	return mappings, nil
}
