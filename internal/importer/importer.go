package importer

import (
	"github.com/balance-pilot/backend/internal/categorizer"
	"github.com/balance-pilot/backend/internal/models"
	"github.com/balance-pilot/backend/internal/storage"
	"github.com/rs/zerolog/log"
)

// Importer runs the full ingestion pipeline for one batch of raw rows.
type Importer struct {
	Store      storage.Store
	Normalizer Normalizer

	// Rules used for category classification. Nil means the default rules.
	Rules []categorizer.Rule
}

func New(store storage.Store) *Importer {
	return &Importer{
		Store: store,
		Rules: categorizer.DefaultRules(),
	}
}

// Run normalizes, deduplicates, classifies and stores the rows. A bad row
// only rejects that row; the rest of the batch proceeds. The returned
// error is reserved for store failures, which are retryable: the insert is
// idempotent per fingerprint, so the whole batch can simply be run again.
func (i *Importer) Run(rows []RawRow) (Result, error) {
	result := Result{
		RejectedRows: make([]RejectedRow, 0),
	}

	candidates := make([]models.Transaction, 0, len(rows))
	rowIndexes := make([]int, 0, len(rows))

	for index, row := range rows {
		transaction, rejected := i.Normalizer.Normalize(row, index+1)
		if rejected != nil {
			result.RejectedRows = append(result.RejectedRows, *rejected)
			continue
		}

		candidates = append(candidates, transaction)
		rowIndexes = append(rowIndexes, index+1)
	}

	dedup := Deduplicator{Store: i.Store}
	filtered, err := dedup.FilterNew(candidates, rowIndexes)
	if err != nil {
		return Result{}, err
	}

	result.DuplicateCount = filtered.StoredDupesCount + len(filtered.InBatchDupes)
	result.RejectedRows = append(result.RejectedRows, filtered.InBatchDupes...)

	rules := i.Rules
	if rules == nil {
		rules = categorizer.DefaultRules()
	}

	for index := range filtered.Candidates {
		filtered.Candidates[index] = categorizer.Apply(filtered.Candidates[index], rules)
	}

	inserted, err := i.Store.InsertMany(filtered.Candidates)
	if err != nil {
		return Result{}, err
	}
	result.InsertedCount = inserted

	log.Debug().
		Int("rows", len(rows)).
		Int("inserted", result.InsertedCount).
		Int("duplicates", result.DuplicateCount).
		Int("rejected", len(result.RejectedRows)).
		Msg("import batch processed")

	return result, nil
}
