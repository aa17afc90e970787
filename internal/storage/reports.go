package storage

import (
	"sort"
	"time"

	"github.com/balance-pilot/backend/internal/categorizer"
	"github.com/balance-pilot/backend/internal/models"
	"github.com/balance-pilot/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Statistics summarizes the stored transactions.
type Statistics struct {
	TotalTransactions int              `json:"totalTransactions"`
	TotalDeposits     decimal.Decimal  `json:"totalDeposits"`
	TotalWithdrawals  decimal.Decimal  `json:"totalWithdrawals"`
	NetChange         decimal.Decimal  `json:"netChange"`
	EarliestDate      *time.Time       `json:"earliestDate"`
	LatestDate        *time.Time       `json:"latestDate"`
	DepositsBySource  []SourceTotal    `json:"depositsBySource"`
	MonthlyBreakdown  []MonthlySummary `json:"monthlyBreakdown"`
	ByCategory        []CategoryTotal  `json:"byCategory"`
}

type SourceTotal struct {
	Source string          `json:"source"`
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
}

type MonthlySummary struct {
	Month       types.Month     `json:"month"`
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Net         decimal.Decimal `json:"net"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// Contribution is a single deposit attributed to a contributor.
type Contribution struct {
	PersonName  string          `json:"personName"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ContributionStatistics aggregates contributions per person.
type ContributionStatistics struct {
	ByPerson        []PersonTotal        `json:"byPerson"`
	MonthlyByPerson []PersonMonthlyTotal `json:"monthlyByPerson"`
}

type PersonTotal struct {
	PersonName string          `json:"personName"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`

	// MonthlyAverage divides the person's total by the number of distinct
	// months observed across all contributors combined, not only the months
	// this person was active in.
	MonthlyAverage decimal.Decimal `json:"monthlyAverage"`
}

type PersonMonthlyTotal struct {
	Month      types.Month     `json:"month"`
	PersonName string          `json:"personName"`
	Total      decimal.Decimal `json:"total"`
}

// transactionsBetween loads all transactions in the date range, oldest first.
func (s *GormStore) transactionsBetween(from, until *time.Time) ([]models.Transaction, error) {
	query := s.db.Order("date ASC, created_at ASC")
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if until != nil {
		query = query.Where("date <= ?", *until)
	}

	var transactions []models.Transaction
	err := query.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Statistics computes summary statistics over the given date range.
func (s *GormStore) Statistics(from, until *time.Time) (Statistics, error) {
	transactions, err := s.transactionsBetween(from, until)
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{
		TotalTransactions: len(transactions),
		DepositsBySource:  make([]SourceTotal, 0),
		MonthlyBreakdown:  make([]MonthlySummary, 0),
		ByCategory:        make([]CategoryTotal, 0),
	}

	sources := make(map[string]*SourceTotal)
	months := make(map[types.Month]*MonthlySummary)
	categories := make(map[string]*CategoryTotal)

	for _, transaction := range transactions {
		stats.NetChange = stats.NetChange.Add(transaction.Amount)

		if stats.EarliestDate == nil {
			date := transaction.Date
			stats.EarliestDate = &date
		}
		date := transaction.Date
		stats.LatestDate = &date

		month := types.MonthOf(transaction.Date)
		summary, ok := months[month]
		if !ok {
			summary = &MonthlySummary{Month: month}
			months[month] = summary
		}

		if transaction.Amount.IsPositive() {
			stats.TotalDeposits = stats.TotalDeposits.Add(transaction.Amount)
			summary.Deposits = summary.Deposits.Add(transaction.Amount)

			source, ok := sources[transaction.Source]
			if !ok {
				source = &SourceTotal{Source: transaction.Source}
				sources[transaction.Source] = source
			}
			source.Total = source.Total.Add(transaction.Amount)
			source.Count++
		} else {
			stats.TotalWithdrawals = stats.TotalWithdrawals.Add(transaction.Amount)
			summary.Withdrawals = summary.Withdrawals.Add(transaction.Amount)
		}
		summary.Net = summary.Net.Add(transaction.Amount)

		if transaction.Category != "" {
			category, ok := categories[transaction.Category]
			if !ok {
				category = &CategoryTotal{Category: transaction.Category}
				categories[transaction.Category] = category
			}
			category.Total = category.Total.Add(transaction.Amount)
			category.Count++
		}
	}

	for _, source := range sources {
		stats.DepositsBySource = append(stats.DepositsBySource, *source)
	}
	sort.Slice(stats.DepositsBySource, func(i, j int) bool {
		return stats.DepositsBySource[i].Total.GreaterThan(stats.DepositsBySource[j].Total)
	})

	for _, summary := range months {
		stats.MonthlyBreakdown = append(stats.MonthlyBreakdown, *summary)
	}
	sort.Slice(stats.MonthlyBreakdown, func(i, j int) bool {
		return stats.MonthlyBreakdown[j].Month.Before(stats.MonthlyBreakdown[i].Month)
	})

	for _, category := range categories {
		stats.ByCategory = append(stats.ByCategory, *category)
	}
	sort.Slice(stats.ByCategory, func(i, j int) bool {
		return stats.ByCategory[i].Total.GreaterThan(stats.ByCategory[j].Total)
	})

	return stats, nil
}

// Contributions attributes all deposits in the date range to contributors.
// Attribution happens at read time, so edits to the person mappings take
// effect immediately without a re-classification pass over stored records.
func (s *GormStore) Contributions(from, until *time.Time, personName string) ([]Contribution, error) {
	mappings, err := s.AllPersonMappings()
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionsBetween(from, until)
	if err != nil {
		return nil, err
	}

	contributions := make([]Contribution, 0)
	for _, transaction := range transactions {
		if !transaction.Amount.IsPositive() {
			continue
		}

		person, ok := categorizer.Attribute(transaction.Description, mappings)
		if !ok {
			continue
		}

		if personName != "" && person != personName {
			continue
		}

		contributions = append(contributions, Contribution{
			PersonName:  person,
			Date:        transaction.Date,
			Description: transaction.Description,
			Amount:      transaction.Amount,
		})
	}

	return contributions, nil
}

// ContributionStatistics aggregates contributions per person and per month.
func (s *GormStore) ContributionStatistics(from, until *time.Time) (ContributionStatistics, error) {
	contributions, err := s.Contributions(from, until, "")
	if err != nil {
		return ContributionStatistics{}, err
	}

	totals := make(map[string]*PersonTotal)
	monthly := make(map[types.Month]map[string]decimal.Decimal)
	activeMonths := make(map[types.Month]bool)

	for _, contribution := range contributions {
		total, ok := totals[contribution.PersonName]
		if !ok {
			total = &PersonTotal{PersonName: contribution.PersonName}
			totals[contribution.PersonName] = total
		}
		total.Total = total.Total.Add(contribution.Amount)
		total.Count++

		month := types.MonthOf(contribution.Date)
		activeMonths[month] = true
		if monthly[month] == nil {
			monthly[month] = make(map[string]decimal.Decimal)
		}
		monthly[month][contribution.PersonName] = monthly[month][contribution.PersonName].Add(contribution.Amount)
	}

	stats := ContributionStatistics{
		ByPerson:        make([]PersonTotal, 0),
		MonthlyByPerson: make([]PersonMonthlyTotal, 0),
	}

	// The divisor is the count of distinct months across all contributors,
	// not per person. Contributors active in fewer months are averaged down.
	monthCount := decimal.NewFromInt(int64(len(activeMonths)))
	for _, total := range totals {
		if !monthCount.IsZero() {
			total.MonthlyAverage = total.Total.Div(monthCount).Round(2)
		}
		stats.ByPerson = append(stats.ByPerson, *total)
	}
	sort.Slice(stats.ByPerson, func(i, j int) bool {
		return stats.ByPerson[i].Total.GreaterThan(stats.ByPerson[j].Total)
	})

	for month, persons := range monthly {
		for person, total := range persons {
			stats.MonthlyByPerson = append(stats.MonthlyByPerson, PersonMonthlyTotal{
				Month:      month,
				PersonName: person,
				Total:      total,
			})
		}
	}
	sort.Slice(stats.MonthlyByPerson, func(i, j int) bool {
		if !stats.MonthlyByPerson[i].Month.Equal(stats.MonthlyByPerson[j].Month) {
			return stats.MonthlyByPerson[j].Month.Before(stats.MonthlyByPerson[i].Month)
		}
		return stats.MonthlyByPerson[i].PersonName < stats.MonthlyByPerson[j].PersonName
	})

	return stats, nil
}
