package categorizer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultRules returns the built-in category rules. Order matters: the
// first matching rule wins, and the trailing catch-all rules guarantee
// every transaction gets a category.
func DefaultRules() []Rule {
	return []Rule{
		// Deposits
		{Pattern: "direct dep", Category: "Income", Direction: Inflow},
		{Pattern: "deposit", Category: "Income", Direction: Inflow},
		{Pattern: "payroll", Category: "Income", Direction: Inflow},
		{Pattern: "salary", Category: "Income", Direction: Inflow},
		{Pattern: "transfer", Category: "Transfer In", Direction: Inflow},
		{Pattern: "xfer", Category: "Transfer In", Direction: Inflow},
		{Pattern: "interest", Category: "Interest/Dividend", Direction: Inflow},
		{Pattern: "dividend", Category: "Interest/Dividend", Direction: Inflow},

		// Withdrawals
		{Pattern: "atm", Category: "ATM/Cash", Direction: Outflow},
		{Pattern: "withdrawal", Category: "ATM/Cash", Direction: Outflow},
		{Pattern: "grocery", Category: "Groceries", Direction: Outflow},
		{Pattern: "supermarket", Category: "Groceries", Direction: Outflow},
		{Pattern: "food", Category: "Groceries", Direction: Outflow},
		{Pattern: "gas", Category: "Gas/Fuel", Direction: Outflow},
		{Pattern: "fuel", Category: "Gas/Fuel", Direction: Outflow},
		{Pattern: "shell", Category: "Gas/Fuel", Direction: Outflow},
		{Pattern: "exxon", Category: "Gas/Fuel", Direction: Outflow},
		{Pattern: "chevron", Category: "Gas/Fuel", Direction: Outflow},
		{Pattern: "restaurant", Category: "Dining", Direction: Outflow},
		{Pattern: "cafe", Category: "Dining", Direction: Outflow},
		{Pattern: "coffee", Category: "Dining", Direction: Outflow},
		{Pattern: "utility", Category: "Utilities", Direction: Outflow},
		{Pattern: "electric", Category: "Utilities", Direction: Outflow},
		{Pattern: "water", Category: "Utilities", Direction: Outflow},
		{Pattern: "transfer", Category: "Transfer Out", Direction: Outflow},
		{Pattern: "xfer", Category: "Transfer Out", Direction: Outflow},
		{Pattern: "check", Category: "Check", Direction: Outflow},
		{Pattern: "cheque", Category: "Check", Direction: Outflow},
		{Pattern: "fee", Category: "Fees", Direction: Outflow},
		{Pattern: "charge", Category: "Fees", Direction: Outflow},

		// Catch-all
		{Pattern: "*", Category: "Other Income", Direction: Inflow},
		{Pattern: "*", Category: "Other Expense", Direction: Outflow},
	}
}

// DeriveSource extracts an origin tag from the description. For deposits it
// tries to identify the payer, for withdrawals the merchant.
func DeriveSource(description string, amount decimal.Decimal) string {
	lower := strings.ToLower(description)

	if amount.IsPositive() {
		switch {
		case strings.Contains(lower, "direct dep") || strings.Contains(lower, "payroll"):
			// Skip the transaction prefix to get at the company name
			parts := strings.Fields(description)
			if len(parts) > 2 {
				end := min(4, len(parts))
				return strings.Join(parts[2:end], " ")
			}
			return "Payroll"
		case strings.Contains(lower, "transfer"):
			return "Transfer"
		case strings.Contains(lower, "interest"):
			return "Interest"
		default:
			return "Other"
		}
	}

	// For withdrawals the merchant usually comes before the first dash
	merchant := strings.TrimSpace(strings.SplitN(description, "-", 2)[0])
	if len(merchant) > 50 {
		merchant = merchant[:50]
	}

	return merchant
}
