package projection

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Frequency is how often a recurring cash flow occurs. The set is closed:
// the simulation loop only ever sees a per-month occurrence ratio, so
// adding a frequency is a pure addition here.
type Frequency string

const (
	Weekly    Frequency = "weekly"
	Biweekly  Frequency = "biweekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// ParseFrequency parses a frequency string. The empty string defaults to
// monthly.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return Monthly, nil
	case Weekly:
		return Weekly, nil
	case Biweekly:
		return Biweekly, nil
	case Monthly:
		return Monthly, nil
	case Quarterly:
		return Quarterly, nil
	case Yearly:
		return Yearly, nil
	}

	return "", fmt.Errorf("%w: %q", ErrFrequencyInvalid, s)
}

// perMonth returns how often the cash flow occurs per simulated month.
func (f Frequency) perMonth() decimal.Decimal {
	switch f {
	case Weekly:
		return decimal.NewFromInt(52).Div(decimal.NewFromInt(12))
	case Biweekly:
		return decimal.NewFromInt(26).Div(decimal.NewFromInt(12))
	case Quarterly:
		return decimal.NewFromInt(1).Div(decimal.NewFromInt(3))
	case Yearly:
		return decimal.NewFromInt(1).Div(decimal.NewFromInt(12))
	default:
		return decimal.NewFromInt(1)
	}
}
