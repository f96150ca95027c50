package analytics

import (
	"fmt"
	"time"

	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ExpenseCategoryReport is the spend of one category within a report.
//
// For root categories, TotalSpent includes the spend of all subcategories.
// Subcategories only carry the spend tagged directly to them and are a
// breakdown of the parent's total.
type ExpenseCategoryReport struct {
	CategoryID         uuid.UUID               `json:"categoryId" example:"5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"`
	CategoryName       string                  `json:"categoryName" example:"Food"`
	ParentCategoryID   *uuid.UUID              `json:"parentCategoryId,omitempty" example:"0e4c4a3e-1d8e-4f0a-93a7-7ac2dfe1bba9"`
	TotalSpent         decimal.Decimal         `json:"totalSpent" example:"812.40"`
	TransactionCount   int                     `json:"transactionCount" example:"23"`
	AverageTransaction decimal.Decimal         `json:"averageTransaction" example:"35.32"`
	MonthlyBreakdown   []MonthlySpending       `json:"monthlyBreakdown"`
	TopMerchants       []MerchantSpending      `json:"topMerchants"`
	PercentageOfTotal  decimal.Decimal         `json:"percentageOfTotal" example:"27.5"`
	Subcategories      []ExpenseCategoryReport `json:"subcategories,omitempty"`
}

// ExpenseReport is the hierarchical expense breakdown for a date range.
type ExpenseReport struct {
	ID                 uuid.UUID               `json:"id" example:"3f0c2a1b-7d4e-4a55-8c1e-0b1f2d3c4e5f"`
	Name               string                  `json:"name" example:"Expense Report Jan 01 - Mar 31, 2024"`
	StartDate          types.Date              `json:"startDate" example:"2024-01-01"`
	EndDate            types.Date              `json:"endDate" example:"2024-03-31"`
	Categories         []ExpenseCategoryReport `json:"categories"`
	TotalSpent         decimal.Decimal         `json:"totalSpent" example:"2954.17"`         // Sum of all categorized expenses
	UncategorizedSpent decimal.Decimal         `json:"uncategorizedSpent" example:"120.00"`  // Expenses without a category, not part of TotalSpent
	FormattedTotal     string                  `json:"formattedTotal" example:"$ 2,954.17"` // TotalSpent in the configured locale and currency
	CreatedAt          time.Time               `json:"createdAt" example:"2024-04-01T08:00:00Z"`
}

// BuildReport builds the expense report for the range.
//
// Only root categories with spend are listed, sorted by total spend in
// descending order. The report total is the sum of the listed root totals.
func (a *Analyzer) BuildReport(s *Snapshot, r types.Range) (ExpenseReport, error) {
	if !r.Valid() {
		return ExpenseReport{}, fmt.Errorf("report: %w", models.ErrInvalidDateRange)
	}

	transactions := s.Between(r)
	t := tallyOf(transactions)
	tree := s.Tree()

	total := t.total.spent.Sub(t.uncategorized.spent)
	reports := make([]ExpenseCategoryReport, 0)

	for _, root := range tree.Roots() {
		rolled := t.rollup(tree, root.ID)
		if !rolled.spent.IsPositive() {
			continue
		}

		report := a.categoryReport(root, rolled, inFamily(transactions, tree.Family(root.ID)), r, total)

		report.Subcategories = make([]ExpenseCategoryReport, 0)
		for _, child := range tree.Children(root.ID) {
			own := t.own(child.ID)
			if !own.spent.IsPositive() {
				continue
			}

			sub := a.categoryReport(child, own, inFamily(transactions, []uuid.UUID{child.ID}), r, total)
			sub.ParentCategoryID = &report.CategoryID
			report.Subcategories = append(report.Subcategories, sub)
		}

		reports = append(reports, report)
	}

	slices.SortStableFunc(reports, func(x, y ExpenseCategoryReport) int {
		return y.TotalSpent.Cmp(x.TotalSpent)
	})

	return ExpenseReport{
		ID:                 uuid.New(),
		Name:               fmt.Sprintf("Expense Report %s - %s", r.Start.Format("Jan 02"), r.End.Format("Jan 02, 2006")),
		StartDate:          r.Start,
		EndDate:            r.End,
		Categories:         reports,
		TotalSpent:         total,
		UncategorizedSpent: t.uncategorized.spent,
		FormattedTotal:     a.FormatAmount(total),
		CreatedAt:          a.opts.Now(),
	}, nil
}

func (a *Analyzer) categoryReport(c models.Category, s spend, transactions []models.Transaction, r types.Range, total decimal.Decimal) ExpenseCategoryReport {
	return ExpenseCategoryReport{
		CategoryID:         c.ID,
		CategoryName:       c.Name,
		TotalSpent:         s.spent,
		TransactionCount:   s.count,
		AverageTransaction: average(s.spent, s.count),
		MonthlyBreakdown:   MonthlyBreakdown(transactions, r),
		TopMerchants:       TopMerchants(transactions, a.opts.TopMerchantLimit, a.opts.MerchantAliases),
		PercentageOfTotal:  percentage(s.spent, total),
	}
}
