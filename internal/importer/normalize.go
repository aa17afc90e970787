package importer

import (
	"strings"
	"time"

	"github.com/balance-pilot/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// columnAliases maps recognized header names to canonical columns.
// Resolution is case-insensitive and ignores surrounding whitespace.
var columnAliases = map[string]string{
	"date":             "date",
	"transaction date": "date",
	"transactiondate":  "date",
	"description":      "description",
	"amount":           "amount",
	"balance":          "balance",
}

// dateFormats are tried in order. The first one that parses wins, which
// means ambiguous dates resolve the US way (01/02/2006 before 02/01/2006).
var dateFormats = []string{
	"01/02/2006",
	"2006-01-02",
	"01-02-2006",
	"02/01/2006",
	"2006/01/02",
	"01/02/06",
	"02-01-2006",
}

// Normalizer turns raw rows into canonical transactions. Now is the clock
// used for ImportedAt and defaults to time.Now.
type Normalizer struct {
	Now func() time.Time
}

// Normalize turns one raw row into a canonical transaction, or rejects it.
// rowIndex is only used for the rejection report. A normalized transaction
// has no category or source yet and carries a computed fingerprint.
func (n Normalizer) Normalize(row RawRow, rowIndex int) (models.Transaction, *RejectedRow) {
	resolved := resolveColumns(row)

	reject := func(reason RejectReason) (models.Transaction, *RejectedRow) {
		return models.Transaction{}, &RejectedRow{RowIndex: rowIndex, Reason: reason}
	}

	rawDate, ok := resolved["date"]
	if !ok || strings.TrimSpace(rawDate) == "" {
		return reject(ReasonMissingDate)
	}

	description, ok := resolved["description"]
	description = strings.TrimSpace(description)
	if !ok || description == "" {
		return reject(ReasonMissingDescription)
	}

	rawAmount, ok := resolved["amount"]
	if !ok || strings.TrimSpace(rawAmount) == "" {
		return reject(ReasonMissingAmount)
	}

	date, err := parseDate(rawDate)
	if err != nil {
		return reject(ReasonInvalidDate)
	}

	amount, err := parseAmount(rawAmount)
	if err != nil {
		return reject(ReasonInvalidAmount)
	}

	var balance *decimal.Decimal
	if rawBalance, ok := resolved["balance"]; ok && strings.TrimSpace(rawBalance) != "" {
		parsed, err := parseAmount(rawBalance)
		if err != nil {
			return reject(ReasonInvalidBalance)
		}
		balance = &parsed
	}

	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	transaction := models.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Balance:     balance,
		ImportedAt:  now().In(time.UTC),
	}
	transaction.Fingerprint = transaction.ComputeFingerprint()

	return transaction, nil
}

// resolveColumns maps the row's arbitrary headers onto canonical columns.
func resolveColumns(row RawRow) map[string]string {
	resolved := make(map[string]string, len(row))
	for header, value := range row {
		canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(header))]
		if !ok {
			continue
		}
		if _, exists := resolved[canonical]; exists {
			continue
		}
		resolved[canonical] = value
	}

	return resolved
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	var err error
	for _, format := range dateFormats {
		var date time.Time
		date, err = time.Parse(format, raw)
		if err == nil {
			return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, err
}

// parseAmount parses a currency-formatted value into a signed decimal.
// Currency symbols and ISO codes, thousands separators, the
// parenthesized-negative and the trailing-minus conventions are all
// accepted.
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)

	// A leading or trailing ISO code like "USD 1,234.56" is stripped if it
	// parses as a real currency unit.
	fields := strings.Fields(cleaned)
	if len(fields) == 2 {
		if _, err := currency.ParseISO(fields[0]); err == nil {
			cleaned = fields[1]
		} else if _, err := currency.ParseISO(fields[1]); err == nil {
			cleaned = fields[0]
		}
	}

	for _, symbol := range []string{"$", "€", "£", "¥", ",", " "} {
		cleaned = strings.ReplaceAll(cleaned, symbol, "")
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}
	if strings.HasSuffix(cleaned, "-") {
		negative = true
		cleaned = strings.TrimSuffix(cleaned, "-")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if negative {
		amount = amount.Neg()
	}

	return amount, nil
}
