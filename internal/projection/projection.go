// Package projection simulates future account balances under assumed
// recurring cash flows. All arithmetic is decimal to the cent, so long
// horizons do not accumulate floating point drift.
package projection

import (
	"errors"
	"fmt"
	"time"

	"github.com/balance-pilot/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	ErrMonthsInvalid    = errors.New("the projection horizon must be a positive number of months")
	ErrFrequencyInvalid = errors.New("the frequency is not supported")
	ErrAmountOutOfRange = errors.New("the amount of a recurring cash flow is out of range")
)

// maxAmount rejects absurd inputs before they enter the simulation.
var maxAmount = decimal.RequireFromString("999999999999.99")

// RecurringCashFlow is a user-declared repeating deposit or withdrawal.
// The sign of Amount is ignored, the role (deposit or withdrawal list)
// decides it.
type RecurringCashFlow struct {
	Description string          `json:"description" example:"Mortgage payment"`
	Amount      decimal.Decimal `json:"amount" example:"1931.00"`
	Frequency   Frequency       `json:"frequency" example:"monthly" default:"monthly"`
	DayOfMonth  int             `json:"dayOfMonth,omitempty" example:"1"` // Orders flows within a month, irrelevant for balances
}

// Currency is a decimal that always marshals with exactly two fraction
// digits, e.g. 1300.00. The projection output is consumed by user-facing
// layers that rely on this formatting.
type Currency struct {
	decimal.Decimal
}

func (c Currency) MarshalJSON() ([]byte, error) {
	return []byte(c.StringFixed(2)), nil
}

func cents(d decimal.Decimal) Currency {
	return Currency{d.Round(2)}
}

// MonthProjection is the simulated outcome of a single month.
type MonthProjection struct {
	Month            types.Month `json:"month" example:"2024-04"`
	MonthLabel       string      `json:"monthLabel" example:"April 2024"`
	TotalDeposits    Currency    `json:"totalDeposits" example:"2500.00"`
	TotalWithdrawals Currency    `json:"totalWithdrawals" example:"2200.00"`
	NetChange        Currency    `json:"netChange" example:"300.00"`
	ProjectedBalance Currency    `json:"projectedBalance" example:"1300.00"`
}

// Summary aggregates a projection.
type Summary struct {
	CurrentBalance Currency `json:"currentBalance" example:"1000.00"`
	FinalBalance   Currency `json:"finalBalance" example:"1900.00"`
	TotalChange    Currency `json:"totalChange" example:"900.00"`

	// MonthlyNet is the net of the first simulated month. Under constant
	// recurring amounts every month is identical, so this doubles as the
	// steady-state rate. Revisit when variable-amount recurrence is added.
	MonthlyNet Currency `json:"monthlyNet" example:"300.00"`

	Trend string `json:"trend" example:"positive" enums:"positive,negative,neutral"`

	// MonthsUntilZero is set when the trend is negative and the balance
	// starts positive.
	MonthsUntilZero *int64 `json:"monthsUntilZero,omitempty" example:"14"`
}

// Result is the full output of a projection run.
type Result struct {
	Months  []MonthProjection `json:"months"`
	Summary Summary           `json:"summary"`
}

// Project simulates the balance evolution over the requested horizon.
// The calendar anchor is now, not the latest transaction date. Either the
// whole projection succeeds or an error is returned, never a partial
// result.
func Project(currentBalance decimal.Decimal, months int, deposits, withdrawals []RecurringCashFlow) (Result, error) {
	return projectAt(time.Now(), currentBalance, months, deposits, withdrawals)
}

func projectAt(now time.Time, currentBalance decimal.Decimal, months int, deposits, withdrawals []RecurringCashFlow) (Result, error) {
	if months <= 0 {
		return Result{}, fmt.Errorf("%w, got %d", ErrMonthsInvalid, months)
	}

	monthlyDeposits, err := monthlyTotal(deposits)
	if err != nil {
		return Result{}, err
	}

	monthlyWithdrawals, err := monthlyTotal(withdrawals)
	if err != nil {
		return Result{}, err
	}

	monthlyNet := monthlyDeposits.Sub(monthlyWithdrawals)

	anchor := types.MonthOf(now)
	balance := currentBalance

	result := Result{
		Months: make([]MonthProjection, 0, months),
	}

	for i := 1; i <= months; i++ {
		balance = balance.Add(monthlyNet)
		month := anchor.AddDate(0, i)

		result.Months = append(result.Months, MonthProjection{
			Month:            month,
			MonthLabel:       month.Name(),
			TotalDeposits:    cents(monthlyDeposits),
			TotalWithdrawals: cents(monthlyWithdrawals),
			NetChange:        cents(monthlyNet),
			ProjectedBalance: cents(balance),
		})
	}

	summary := Summary{
		CurrentBalance: cents(currentBalance),
		FinalBalance:   cents(balance),
		TotalChange:    cents(balance.Sub(currentBalance)),
		MonthlyNet:     cents(monthlyNet),
		Trend:          "neutral",
	}

	switch {
	case monthlyNet.IsPositive():
		summary.Trend = "positive"
	case monthlyNet.IsNegative():
		summary.Trend = "negative"
		if currentBalance.IsPositive() {
			monthsUntilZero := currentBalance.Div(monthlyNet.Abs()).IntPart()
			summary.MonthsUntilZero = &monthsUntilZero
		}
	}

	result.Summary = summary
	return result, nil
}

// monthlyTotal sums the per-month amounts of the cash flows. Each flow's
// monthly amount is rounded to the cent once, before the simulation loop,
// so the loop itself only adds exact cent values.
func monthlyTotal(flows []RecurringCashFlow) (decimal.Decimal, error) {
	var total decimal.Decimal

	for _, flow := range flows {
		if flow.Amount.Abs().GreaterThan(maxAmount) {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountOutOfRange, flow.Description)
		}

		frequency, err := ParseFrequency(string(flow.Frequency))
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(flow.Amount.Abs().Mul(frequency.perMonth()).Round(2))
	}

	return total, nil
}
