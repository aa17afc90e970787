// Package categorizer assigns categories and contributor attributions to
// transactions. Classification is a pure function of the record and the
// rules passed in, so it can be re-run at any time with the same result.
package categorizer

import (
	"strings"

	"github.com/balance-pilot/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// Direction restricts a rule to deposits or withdrawals.
type Direction uint8

const (
	Any Direction = iota
	Inflow
	Outflow
)

// Rule maps a description pattern to a category. Patterns are matched
// case-insensitively. A pattern without glob wildcards matches as a
// substring.
type Rule struct {
	Pattern   string
	Category  string
	Direction Direction
}

func (r Rule) matches(description string, amount decimal.Decimal) bool {
	switch r.Direction {
	case Inflow:
		if !amount.IsPositive() {
			return false
		}
	case Outflow:
		if amount.IsPositive() {
			return false
		}
	}

	pattern := strings.ToLower(r.Pattern)
	if !strings.Contains(pattern, "*") {
		pattern = "*" + pattern + "*"
	}

	return glob.Glob(pattern, strings.ToLower(description))
}

// Classify returns the category of the first rule in list order that
// matches the transaction, or "" when no rule matches.
func Classify(transaction models.Transaction, rules []Rule) string {
	for _, rule := range rules {
		if rule.matches(transaction.Description, transaction.Amount) {
			return rule.Category
		}
	}

	return ""
}

// Attribute maps a description to a contributor. When several mappings
// match, the one with the longest keyword wins since it is the more
// specific one. Ties go to the mapping created first.
func Attribute(description string, mappings []models.PersonMapping) (string, bool) {
	description = strings.ToLower(description)

	var best *models.PersonMapping
	for i := range mappings {
		keyword := strings.ToLower(mappings[i].Keyword)
		if keyword == "" || !strings.Contains(description, keyword) {
			continue
		}

		if best == nil {
			best = &mappings[i]
			continue
		}

		switch {
		case len(keyword) > len(best.Keyword):
			best = &mappings[i]
		case len(keyword) == len(best.Keyword) && mappings[i].CreatedAt.Before(best.CreatedAt):
			best = &mappings[i]
		}
	}

	if best == nil {
		return "", false
	}

	return best.PersonName, true
}

// Apply returns a copy of the transaction enriched with a category and a
// source. Fields other than Category and Source are never touched.
func Apply(transaction models.Transaction, rules []Rule) models.Transaction {
	transaction.Category = Classify(transaction, rules)
	transaction.Source = DeriveSource(transaction.Description, transaction.Amount)
	return transaction
}
