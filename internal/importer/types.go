// Package importer implements the ingestion pipeline: raw rows are
// normalized into canonical transactions, deduplicated against the store
// and within the batch, classified, and inserted.
package importer

// RawRow is one row of semi-structured input, mapping a column name to its
// raw string value. Header casing and column order are arbitrary; the
// pipeline does not care where the row came from.
type RawRow map[string]string

// RejectReason says why a row was dropped.
type RejectReason string

const (
	ReasonMissingDate        RejectReason = "missing_date"
	ReasonMissingDescription RejectReason = "missing_description"
	ReasonMissingAmount      RejectReason = "missing_amount"
	ReasonInvalidDate        RejectReason = "invalid_date"
	ReasonInvalidAmount      RejectReason = "invalid_amount"
	ReasonInvalidBalance     RejectReason = "invalid_balance"
	ReasonDuplicateInBatch   RejectReason = "duplicate_in_batch"
)

// RejectedRow reports a single dropped input row. RowIndex is the position
// in the input sequence, starting at 1.
type RejectedRow struct {
	RowIndex int          `json:"rowIndex" example:"3"`
	Reason   RejectReason `json:"reason" example:"invalid_amount"`
}

// Result is the outcome summary of one import batch. Bad rows never fail
// the batch, they are reported here instead.
type Result struct {
	InsertedCount  int           `json:"insertedCount" example:"4"`
	DuplicateCount int           `json:"duplicateCount" example:"1"`
	RejectedRows   []RejectedRow `json:"rejectedRows"`
}
