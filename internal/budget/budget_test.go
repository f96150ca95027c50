package budget_test

import (
	"errors"
	"testing"
	"time"

	"github.com/budgetcalc/engine/internal/analytics"
	"github.com/budgetcalc/engine/internal/budget"
	"github.com/budgetcalc/engine/internal/compliance"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthly(amount string, start, end string) models.Budget {
	return models.Budget{
		Model:      models.Model{ID: uuid.New()},
		Name:       "Budget",
		CategoryID: uuid.New(),
		Amount:     decimal.RequireFromString(amount),
		Period:     models.BudgetPeriodMonthly,
		StartDate:  types.MustParseDate(start),
		EndDate:    types.MustParseDate(end),
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		spent     string
		days      int
		remaining string
		used      string
		daily     string
		over      bool
	}{
		{"Partially spent", "450", "300", 10, "150", "66.67", "15", false},
		{"Exactly spent", "1200", "1200", 5, "0", "100", "0", false},
		{"Overspent", "100", "150", 10, "-50", "150", "0", true},
		{"No days remaining", "100", "40", 0, "60", "40", "0", false},
		{"Zero budget", "0", "25", 3, "-25", "0", "0", true},
		{"Nothing spent", "300", "0", 30, "300", "0", "10", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := monthly(tt.amount, "2024-03-01", "2024-03-31")
			a := budget.Analyze(b, decimal.RequireFromString(tt.spent), tt.days)

			assert.Equal(t, b.ID, a.BudgetID)
			assert.True(t, decimal.RequireFromString(tt.remaining).Equal(a.RemainingAmount), "Remaining is %s", a.RemainingAmount)
			assert.True(t, decimal.RequireFromString(tt.used).Equal(a.PercentageUsed), "Used is %s", a.PercentageUsed)
			assert.True(t, decimal.RequireFromString(tt.daily).Equal(a.DailyLimit), "Daily limit is %s", a.DailyLimit)
			assert.Equal(t, tt.over, a.IsOverBudget)
			assert.Equal(t, tt.days, a.DaysRemaining)
		})
	}
}

func TestDaysRemaining(t *testing.T) {
	b := monthly("100", "2024-03-01", "2024-03-31")

	assert.Equal(t, 30, budget.DaysRemaining(b, types.MustParseDate("2024-03-01")))
	assert.Equal(t, 0, budget.DaysRemaining(b, types.MustParseDate("2024-03-31")))
	assert.Equal(t, 0, budget.DaysRemaining(b, types.MustParseDate("2024-04-15")))
}

// Three identical rent payments against a rent budget of the same amount
// use up exactly the budget of each month.
func TestAnalyzeAllRent(t *testing.T) {
	rent := uuid.New()
	categories := []models.Category{{Model: models.Model{ID: rent}, Name: "Rent"}}

	var transactions []models.Transaction
	for _, date := range []string{"2024-01-01", "2024-02-01", "2024-03-01"} {
		transactions = append(transactions, models.Transaction{
			Model:      models.Model{ID: uuid.New()},
			Amount:     decimal.RequireFromString("-1200.00"),
			Date:       types.MustParseDate(date),
			CategoryID: &rent,
			Status:     models.TransactionStatusCleared,
		})
	}

	s, err := analytics.NewSnapshot(transactions, categories)
	require.Nil(t, err)

	budgets := []models.Budget{
		monthly("1200.00", "2024-01-01", "2024-01-31"),
		monthly("1200.00", "2024-02-01", "2024-02-29"),
		monthly("1200.00", "2024-03-01", "2024-03-31"),
	}
	for i := range budgets {
		budgets[i].CategoryID = rent
	}

	analyses, err := budget.AnalyzeAll(budgets, s, types.MustParseDate("2024-02-10"))
	require.Nil(t, err)
	require.Len(t, analyses, 3)

	for _, a := range analyses {
		assert.True(t, decimal.NewFromInt(100).Equal(a.PercentageUsed), "Used is %s", a.PercentageUsed)
		assert.False(t, a.IsOverBudget)
		assert.True(t, a.RemainingAmount.IsZero(), "Remaining is %s", a.RemainingAmount)
	}

	assert.Equal(t, 0, analyses[0].DaysRemaining)
	assert.Equal(t, 19, analyses[1].DaysRemaining)
	assert.Equal(t, 50, analyses[2].DaysRemaining)
}

func TestAnalyzeAllErrors(t *testing.T) {
	s, err := analytics.NewSnapshot(nil, nil)
	require.Nil(t, err)

	_, err = budget.AnalyzeAll([]models.Budget{monthly("100", "2024-03-01", "2024-03-31")}, s, types.MustParseDate("2024-03-01"))
	assert.True(t, errors.Is(err, models.ErrCategoryNotFound), "Got %v", err)

	_, err = budget.AnalyzeAll([]models.Budget{monthly("100", "2024-03-31", "2024-03-01")}, s, types.MustParseDate("2024-03-01"))
	assert.True(t, errors.Is(err, models.ErrInvalidDateRange), "Got %v", err)
}

func TestAdjust(t *testing.T) {
	var recorder compliance.Recorder
	b := monthly("400", "2024-03-01", "2024-03-31")
	now := time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)

	adjusted, adjustment, err := budget.Adjust(b, " 450.50 ", "", now, &recorder)
	require.Nil(t, err)

	assert.True(t, decimal.RequireFromString("450.50").Equal(adjusted.Amount))
	assert.True(t, decimal.NewFromInt(400).Equal(b.Amount), "The input budget must not be modified")

	assert.Equal(t, b.ID, adjustment.BudgetID)
	assert.True(t, decimal.NewFromInt(400).Equal(adjustment.OldAmount))
	assert.True(t, decimal.RequireFromString("450.50").Equal(adjustment.NewAmount))
	assert.Equal(t, "Manual adjustment", adjustment.Reason)
	assert.Equal(t, now, adjustment.Timestamp)

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, compliance.EventBudgetAdjustment, events[0].Kind)
	assert.Equal(t, adjustment, *events[0].Adjustment)
}

func TestAdjustInvalidAmount(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-10", "12,50"} {
		t.Run(raw, func(t *testing.T) {
			var recorder compliance.Recorder
			b := monthly("400", "2024-03-01", "2024-03-31")

			adjusted, _, err := budget.Adjust(b, raw, "Typo", time.Now(), &recorder)
			assert.True(t, errors.Is(err, models.ErrInvalidAmount), "Got %v", err)
			assert.Equal(t, b, adjusted)
			assert.Len(t, recorder.Events(), 0)
		})
	}
}
