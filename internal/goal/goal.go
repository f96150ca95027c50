// Package goal projects when savings goals will be reached.
package goal

import (
	"fmt"

	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Monthly equivalents of the contribution frequencies.
var multipliers = map[models.ContributionFrequency]decimal.Decimal{
	models.ContributionWeekly:    decimal.RequireFromString("4.33"),
	models.ContributionBiWeekly:  decimal.RequireFromString("2.17"),
	models.ContributionPayPeriod: decimal.NewFromInt(2),
	models.ContributionMonthly:   decimal.NewFromInt(1),
}

// MaxMonthsRemaining is the longest projection reported. Goals that take
// longer with their current contribution are undefined.
const MaxMonthsRemaining = 12 * 1000

var maxMonthsRemaining = decimal.NewFromInt(MaxMonthsRemaining)

// Projection is the outlook of a goal.
//
// When the goal is not yet reached and the monthly contribution is not
// positive or too small to reach it within MaxMonthsRemaining, Undefined is
// true and MonthsRemaining, EstimatedCompletionDate and
// RequiredMonthlyContribution are nil.
type Projection struct {
	GoalID                      uuid.UUID        `json:"goalId" example:"9b0f9f3c-5e47-4bd2-9f0a-3c0de4a9a3f1"`
	RemainingAmount             decimal.Decimal  `json:"remainingAmount" example:"5000"`
	PercentageComplete          decimal.Decimal  `json:"percentageComplete" example:"50"`
	MonthlyContribution         decimal.Decimal  `json:"monthlyContribution" example:"200"` // Contribution normalized to a month
	MonthsRemaining             *int             `json:"monthsRemaining" example:"25"`
	EstimatedCompletionDate     *types.Date      `json:"estimatedCompletionDate" example:"2026-04-15"`
	RequiredMonthlyContribution *decimal.Decimal `json:"requiredMonthlyContribution" example:"200"`
	Undefined                   bool             `json:"undefined" example:"false"`
}

// MonthlyEquivalent normalizes a contribution to a monthly amount.
func MonthlyEquivalent(amount decimal.Decimal, frequency models.ContributionFrequency) (decimal.Decimal, error) {
	m, ok := multipliers[frequency]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w, got '%s'", models.ErrInvalidFrequency, frequency)
	}
	return amount.Mul(m), nil
}

// Project computes the projection of the goal as of the given date.
func Project(g models.Goal, asOf types.Date) (Projection, error) {
	monthly, err := MonthlyEquivalent(g.ContributionAmount, g.ContributionFrequency)
	if err != nil {
		return Projection{}, fmt.Errorf("goal %s: %w", g.ID, err)
	}

	remaining := g.TargetAmount.Sub(g.CurrentAmount)

	complete := decimal.Zero
	if g.TargetAmount.IsPositive() {
		complete = g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
	}

	p := Projection{
		GoalID:              g.ID,
		RemainingAmount:     remaining,
		PercentageComplete:  complete,
		MonthlyContribution: monthly,
	}

	if !remaining.IsPositive() {
		months := 0
		required := decimal.Zero
		p.MonthsRemaining = &months
		p.EstimatedCompletionDate = &asOf
		p.RequiredMonthlyContribution = &required
		return p, nil
	}

	if !monthly.IsPositive() {
		p.Undefined = true
		return p, nil
	}

	ceil := remaining.Div(monthly).Ceil()
	if ceil.GreaterThan(maxMonthsRemaining) {
		p.Undefined = true
		return p, nil
	}

	months := int(ceil.IntPart())
	completion := asOf.AddMonths(months)
	required := remaining.Div(decimal.NewFromInt(int64(months))).Round(2)

	p.MonthsRemaining = &months
	p.EstimatedCompletionDate = &completion
	p.RequiredMonthlyContribution = &required
	return p, nil
}

// ProjectAll projects all goals. It fails on the first invalid goal.
func ProjectAll(goals []models.Goal, asOf types.Date) ([]Projection, error) {
	projections := make([]Projection, 0, len(goals))
	for _, g := range goals {
		p, err := Project(g, asOf)
		if err != nil {
			return nil, err
		}
		projections = append(projections, p)
	}
	return projections, nil
}
