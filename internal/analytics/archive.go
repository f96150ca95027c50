package analytics

import (
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ArchiveSummary struct {
	TotalTransactions int                           `json:"totalTransactions" example:"412"`
	TotalSpent        decimal.Decimal               `json:"totalSpent" example:"31250.90"`
	TotalIncome       decimal.Decimal               `json:"totalIncome" example:"48000"`
	NetAmount         decimal.Decimal               `json:"netAmount" example:"16749.10"`
	CategorySummary   map[uuid.UUID]decimal.Decimal `json:"categorySummary"` // Rolled up spend for every category
	MonthlyBreakdown  []MonthlySpending             `json:"monthlyBreakdown"`
}

// TransactionArchive holds all transactions of a calendar year with their summary.
type TransactionArchive struct {
	Year         int                  `json:"year" example:"2024"`
	Transactions []models.Transaction `json:"transactions"`
	Summary      ArchiveSummary       `json:"summary"`
}

// Archive summarizes the calendar year.
func (a *Analyzer) Archive(s *Snapshot, year int) TransactionArchive {
	r := types.NewRange(types.NewDate(year, 1, 1), types.NewDate(year, 12, 31))
	transactions := s.Between(r)
	if transactions == nil {
		transactions = make([]models.Transaction, 0)
	}

	t := tallyOf(transactions)
	tree := s.Tree()

	income := decimal.Zero
	for _, tr := range transactions {
		if tr.Amount.IsPositive() {
			income = income.Add(tr.Amount)
		}
	}

	categories := make(map[uuid.UUID]decimal.Decimal)
	for _, c := range tree.Categories() {
		categories[c.ID] = t.rollup(tree, c.ID).spent
	}

	return TransactionArchive{
		Year:         year,
		Transactions: transactions,
		Summary: ArchiveSummary{
			TotalTransactions: len(transactions),
			TotalSpent:        t.total.spent,
			TotalIncome:       income,
			NetAmount:         income.Sub(t.total.spent),
			CategorySummary:   categories,
			MonthlyBreakdown:  MonthlyBreakdown(transactions, r),
		},
	}
}
