// Package budget computes budget status and applies budget amount adjustments.
package budget

import (
	"fmt"
	"strings"
	"time"

	"github.com/budgetcalc/engine/internal/analytics"
	"github.com/budgetcalc/engine/internal/compliance"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Analysis is the status of a budget.
type Analysis struct {
	BudgetID        uuid.UUID       `json:"budgetId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	CategoryID      uuid.UUID       `json:"categoryId" example:"5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"`
	BudgetedAmount  decimal.Decimal `json:"budgetedAmount" example:"450"`
	SpentAmount     decimal.Decimal `json:"spentAmount" example:"312.45"`
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"137.55"` // Negative when the budget is overspent
	PercentageUsed  decimal.Decimal `json:"percentageUsed" example:"69.43"`
	DaysRemaining   int             `json:"daysRemaining" example:"12"`
	DailyLimit      decimal.Decimal `json:"dailyLimit" example:"11.46"`
	IsOverBudget    bool            `json:"isOverBudget" example:"false"`
}

var hundred = decimal.NewFromInt(100)

// Analyze computes the status of the budget for the spent amount.
func Analyze(b models.Budget, spent decimal.Decimal, daysRemaining int) Analysis {
	remaining := b.Amount.Sub(spent)

	used := decimal.Zero
	if !b.Amount.IsZero() {
		used = spent.Div(b.Amount).Mul(hundred).Round(2)
	}

	daily := decimal.Zero
	if daysRemaining > 0 && remaining.IsPositive() {
		daily = remaining.Div(decimal.NewFromInt(int64(daysRemaining))).Round(2)
	}

	return Analysis{
		BudgetID:        b.ID,
		CategoryID:      b.CategoryID,
		BudgetedAmount:  b.Amount,
		SpentAmount:     spent,
		RemainingAmount: remaining,
		PercentageUsed:  used,
		DaysRemaining:   daysRemaining,
		DailyLimit:      daily,
		IsOverBudget:    spent.GreaterThan(b.Amount),
	}
}

// DaysRemaining returns the whole days from today until the end of the
// budget period, never less than zero.
func DaysRemaining(b models.Budget, today types.Date) int {
	return max(0, today.DaysUntil(b.EndDate))
}

// AnalyzeAll analyzes every budget with the spend of its category, including
// subcategories, within the budget's own date range.
func AnalyzeAll(budgets []models.Budget, s *analytics.Snapshot, today types.Date) ([]Analysis, error) {
	analyses := make([]Analysis, 0, len(budgets))

	for _, b := range budgets {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("budget %s: %w", b.ID, err)
		}

		if !s.Tree().Contains(b.CategoryID) {
			return nil, fmt.Errorf("budget %s: %w: %s", b.ID, models.ErrCategoryNotFound, b.CategoryID)
		}

		spent := analytics.SpendForCategory(s.Between(b.Range()), b.CategoryID, s.Tree())
		analyses = append(analyses, Analyze(b, spent, DaysRemaining(b, today)))
	}

	return analyses, nil
}

// AdjustedBy is recorded as the author of adjustments without one.
const AdjustedBy = "User"

// Adjust sets the budget's amount to the parsed raw amount and sends the
// adjustment to the compliance logger.
//
// Amounts that are not numbers or not larger than zero fail with
// models.ErrInvalidAmount. The budget is then returned unchanged and no event
// is logged.
func Adjust(b models.Budget, rawAmount, reason string, now time.Time, logger compliance.Logger) (models.Budget, models.BudgetAdjustment, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return b, models.BudgetAdjustment{}, fmt.Errorf("%w: '%s' is not a number", models.ErrInvalidAmount, rawAmount)
	}

	if !amount.IsPositive() {
		return b, models.BudgetAdjustment{}, fmt.Errorf("%w: got %s", models.ErrInvalidAmount, amount)
	}

	if reason == "" {
		reason = "Manual adjustment"
	}

	adjustment := models.BudgetAdjustment{
		ID:         uuid.New(),
		BudgetID:   b.ID,
		OldAmount:  b.Amount,
		NewAmount:  amount,
		Reason:     reason,
		AdjustedBy: AdjustedBy,
		Timestamp:  now,
	}

	adjusted := b
	adjusted.Amount = amount

	logger.Log(compliance.BudgetAdjustmentEvent(adjustment))
	return adjusted, adjustment, nil
}
