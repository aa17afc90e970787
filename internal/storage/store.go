// Package storage defines the durable collection of canonical transactions
// that the import pipeline and the projection engine work against.
package storage

import (
	"github.com/balance-pilot/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Store is the contract the pipeline requires from a transaction store.
//
// InsertMany must be idempotent per fingerprint: inserting a record whose
// fingerprint already exists is a no-op, not an error, so a whole batch can
// be retried after a transient failure without special-casing partial
// progress.
type Store interface {
	// ExistingFingerprints returns the subset of the candidate fingerprints
	// that are already stored. The check is batched so large imports do not
	// degrade into per-record queries.
	ExistingFingerprints(fingerprints []string) (map[string]bool, error)

	// InsertMany stores the records and returns how many were actually
	// inserted.
	InsertMany(transactions []models.Transaction) (int, error)

	// LatestBalance returns the balance reported by the most recent
	// transaction that carries one, or nil if no transaction does.
	LatestBalance() (*decimal.Decimal, error)

	// AllPersonMappings returns all contributor mappings in creation order.
	AllPersonMappings() ([]models.PersonMapping, error)
}
