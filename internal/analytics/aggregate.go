package analytics

import (
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// MonthlySpending is the expense total of one calendar month.
type MonthlySpending struct {
	Month            string          `json:"month" example:"Jan"`
	Year             int             `json:"year" example:"2024"`
	Amount           decimal.Decimal `json:"amount" example:"1320.45"`
	TransactionCount int             `json:"transactionCount" example:"14"`
}

// MerchantSpending is the expense total at one merchant.
type MerchantSpending struct {
	Merchant            string          `json:"merchant" example:"Corner Grocery"`
	TotalSpent          decimal.Decimal `json:"totalSpent" example:"412.80"`
	TransactionCount    int             `json:"transactionCount" example:"9"`
	LastTransactionDate types.Date      `json:"lastTransactionDate" example:"2024-03-28"`
}

// SpendForCategory sums the absolute amounts of all expenses tagged with the
// category or one of its direct children. Unknown categories have zero spend.
func SpendForCategory(transactions []models.Transaction, categoryID uuid.UUID, tree *models.CategoryTree) decimal.Decimal {
	if !tree.Contains(categoryID) {
		return decimal.Zero
	}

	return tallyOf(transactions).rollup(tree, categoryID).spent
}

// MonthlyBreakdown returns one entry for every month overlapping the range,
// each summing the expenses dated in that month.
func MonthlyBreakdown(transactions []models.Transaction, r types.Range) []MonthlySpending {
	months := types.MonthsBetween(r.Start, r.End)
	breakdown := make([]MonthlySpending, len(months))
	position := make(map[types.Month]int, len(months))

	for i, m := range months {
		position[m] = i
		breakdown[i] = MonthlySpending{
			Month:  m.ShortName(),
			Year:   m.Year(),
			Amount: decimal.Zero,
		}
	}

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}

		i, ok := position[types.MonthOf(t.Date)]
		if !ok {
			continue
		}

		breakdown[i].Amount = breakdown[i].Amount.Add(t.Spent())
		breakdown[i].TransactionCount++
	}

	return breakdown
}

// TopMerchants groups expenses by merchant, after resolving aliases, and returns
// the merchants with the highest spend in descending order, at most limit of them.
func TopMerchants(transactions []models.Transaction, limit int, aliases MerchantAliases) []MerchantSpending {
	var merchants []MerchantSpending
	position := make(map[string]int)

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}

		name := aliases.Resolve(t.Merchant)
		i, ok := position[name]
		if !ok {
			position[name] = len(merchants)
			merchants = append(merchants, MerchantSpending{
				Merchant:            name,
				TotalSpent:          t.Spent(),
				TransactionCount:    1,
				LastTransactionDate: t.Date,
			})
			continue
		}

		merchants[i].TotalSpent = merchants[i].TotalSpent.Add(t.Spent())
		merchants[i].TransactionCount++
		if t.Date.After(merchants[i].LastTransactionDate) {
			merchants[i].LastTransactionDate = t.Date
		}
	}

	slices.SortStableFunc(merchants, func(a, b MerchantSpending) int {
		return b.TotalSpent.Cmp(a.TotalSpent)
	})

	if limit >= 0 && len(merchants) > limit {
		merchants = merchants[:limit]
	}

	return merchants
}

// spend is the expense total and count of a set of transactions.
type spend struct {
	spent decimal.Decimal
	count int
}

func (s spend) add(o spend) spend {
	return spend{spent: s.spent.Add(o.spent), count: s.count + o.count}
}

// tally holds the expenses tagged directly to each category. It is built
// in one pass so that rollups do not rescan the transactions.
type tally struct {
	byCategory    map[uuid.UUID]spend
	total         spend
	uncategorized spend
}

func tallyOf(transactions []models.Transaction) tally {
	t := tally{
		byCategory:    make(map[uuid.UUID]spend),
		total:         spend{spent: decimal.Zero},
		uncategorized: spend{spent: decimal.Zero},
	}

	for _, tr := range transactions {
		if !tr.IsExpense() {
			continue
		}

		s := spend{spent: tr.Spent(), count: 1}
		t.total = t.total.add(s)

		if tr.CategoryID == nil {
			t.uncategorized = t.uncategorized.add(s)
			continue
		}

		current, ok := t.byCategory[*tr.CategoryID]
		if !ok {
			current = spend{spent: decimal.Zero}
		}
		t.byCategory[*tr.CategoryID] = current.add(s)
	}

	return t
}

// own returns the spend tagged directly to the category.
func (t tally) own(id uuid.UUID) spend {
	s, ok := t.byCategory[id]
	if !ok {
		return spend{spent: decimal.Zero}
	}
	return s
}

// rollup returns the spend of the category and its direct children.
func (t tally) rollup(tree *models.CategoryTree, id uuid.UUID) spend {
	s := spend{spent: decimal.Zero}
	for _, member := range tree.Family(id) {
		s = s.add(t.own(member))
	}
	return s
}

// inFamily returns the expenses tagged to any of the categories.
func inFamily(transactions []models.Transaction, family []uuid.UUID) []models.Transaction {
	var result []models.Transaction
	for _, t := range transactions {
		if !t.IsExpense() || t.CategoryID == nil {
			continue
		}
		if slices.Contains(family, *t.CategoryID) {
			result = append(result, t)
		}
	}
	return result
}
