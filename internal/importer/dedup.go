package importer

import (
	"github.com/balance-pilot/backend/internal/models"
	"github.com/balance-pilot/backend/internal/storage"
)

// Deduplicator filters candidate transactions down to the ones not yet
// stored. Importing the same input twice therefore yields zero new records
// the second time.
type Deduplicator struct {
	Store storage.Store
}

// batchResult is the outcome of deduplicating one batch. Candidates keeps
// the input order. Each dropped candidate is accounted for either as an
// in-batch duplicate (with its input row index) or as a stored duplicate.
type batchResult struct {
	Candidates       []models.Transaction
	InBatchDupes     []RejectedRow
	StoredDupesCount int
}

// FilterNew drops candidates whose fingerprint is already stored and, for
// exact duplicate rows within the batch itself, keeps only the first
// occurrence in input order. rowIndexes maps each candidate to its input
// row for reporting.
func (d Deduplicator) FilterNew(candidates []models.Transaction, rowIndexes []int) (batchResult, error) {
	fingerprints := make([]string, 0, len(candidates))
	for i := range candidates {
		if candidates[i].Fingerprint == "" {
			candidates[i].Fingerprint = candidates[i].ComputeFingerprint()
		}
		fingerprints = append(fingerprints, candidates[i].Fingerprint)
	}

	existing, err := d.Store.ExistingFingerprints(fingerprints)
	if err != nil {
		return batchResult{}, err
	}

	result := batchResult{
		Candidates:   make([]models.Transaction, 0, len(candidates)),
		InBatchDupes: make([]RejectedRow, 0),
	}

	seen := make(map[string]bool, len(candidates))
	for i, candidate := range candidates {
		switch {
		case seen[candidate.Fingerprint]:
			result.InBatchDupes = append(result.InBatchDupes, RejectedRow{
				RowIndex: rowIndexes[i],
				Reason:   ReasonDuplicateInBatch,
			})
		case existing[candidate.Fingerprint]:
			result.StoredDupesCount++
		default:
			seen[candidate.Fingerprint] = true
			result.Candidates = append(result.Candidates, candidate)
		}
	}

	return result, nil
}
