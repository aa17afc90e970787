package models

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is one canonical bank account transaction. A positive amount
// is a deposit, a negative amount a withdrawal.
type Transaction struct {
	DefaultModel
	Date        time.Time        `json:"date" gorm:"index" example:"2024-03-12T00:00:00Z"`   // Calendar date of the transaction, no time component
	Description string           `json:"description" example:"ACH DEPOSIT PAYROLL ACME"`     // Free-text description from the bank export
	Amount      decimal.Decimal  `json:"amount" gorm:"type:DECIMAL(20,8)" example:"-14.03"`  // Signed amount, positive for deposits
	Balance     *decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)" example:"2071.90"` // Account balance after this transaction, as reported by the source
	Category    string           `json:"category" example:"Income"`                          // Category assigned by classification, empty until classified
	Source      string           `json:"source" example:"Acme Corp"`                         // Origin tag derived from the description, if any
	Notes       string           `json:"notes" example:"reimbursed in April"`                // Free-form notes, never set by the pipeline
	Fingerprint string           `json:"fingerprint" gorm:"uniqueIndex"`                     // Content hash used for duplicate detection
	ImportedAt  time.Time        `json:"importedAt" example:"2024-03-13T18:43:00.271152Z"`   // Time the transaction was ingested
}

// ComputeFingerprint returns the content hash over the fields that define
// a transaction. It must be stable across import paths: the same logical
// transaction arriving via file upload or scrape collapses to one record.
func (t Transaction) ComputeFingerprint() string {
	balance := ""
	if t.Balance != nil {
		balance = t.Balance.StringFixed(2)
	}

	input := strings.Join([]string{
		t.Date.Format("2006-01-02"),
		strings.TrimSpace(t.Description),
		t.Amount.StringFixed(2),
		balance,
	}, "|")

	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}

// BeforeSave normalizes the record so that all stored transactions are
// canonical regardless of how they were created.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		return ErrTransactionDescriptionEmpty
	}

	if t.Date.IsZero() {
		return ErrTransactionDateZero
	}

	// Truncate to the calendar day in UTC
	t.Date = time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)

	if t.ImportedAt.IsZero() {
		t.ImportedAt = time.Now().In(time.UTC)
	}

	if t.Fingerprint == "" {
		t.Fingerprint = t.ComputeFingerprint()
	}

	return nil
}

// AfterFind normalizes the timezones to UTC, see DefaultModel.AfterFind.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	_ = t.DefaultModel.AfterFind(tx)
	t.Date = t.Date.In(time.UTC)
	t.ImportedAt = t.ImportedAt.In(time.UTC)
	return nil
}

func (Transaction) Export() (json.RawMessage, error) {
	var transactions []Transaction
	err := DB.Unscoped().Where(&Transaction{}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(transactions)
}
