package analytics

import (
	"context"
	"fmt"

	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// PeriodSummary is the spend within one of the compared ranges.
type PeriodSummary struct {
	StartDate         types.Date                    `json:"startDate" example:"2024-03-01"`
	EndDate           types.Date                    `json:"endDate" example:"2024-03-31"`
	TotalSpent        decimal.Decimal               `json:"totalSpent" example:"2210.15"` // All expenses in the range, categorized or not
	CategoryBreakdown map[uuid.UUID]decimal.Decimal `json:"categoryBreakdown"`            // Rolled up spend for every category
}

// CategoryChange is the change of a category's spend between two ranges.
type CategoryChange struct {
	Difference       decimal.Decimal `json:"difference" example:"-35.10"`
	PercentageChange decimal.Decimal `json:"percentageChange" example:"-8.2"`
	Trend            Trend           `json:"trend" example:"down"`
}

type Comparison struct {
	TotalDifference       decimal.Decimal              `json:"totalDifference" example:"150.25"`
	TotalPercentageChange decimal.Decimal              `json:"totalPercentageChange" example:"7.3"`
	CategoryChanges       map[uuid.UUID]CategoryChange `json:"categoryChanges"`
}

// TimeComparisonData compares the spend of two ranges.
type TimeComparisonData struct {
	CurrentPeriod  PeriodSummary `json:"currentPeriod"`
	PreviousPeriod PeriodSummary `json:"previousPeriod"`
	Comparison     Comparison    `json:"comparison"`
}

// Compare compares the spend of every category in the current range with the
// previous range. Both ranges are aggregated concurrently.
func (a *Analyzer) Compare(ctx context.Context, s *Snapshot, current, previous types.Range) (TimeComparisonData, error) {
	if !current.Valid() || !previous.Valid() {
		return TimeComparisonData{}, fmt.Errorf("comparison: %w", models.ErrInvalidDateRange)
	}

	if current.Overlaps(previous) {
		return TimeComparisonData{}, fmt.Errorf("comparison of %s - %s and %s - %s: %w", current.Start, current.End, previous.Start, previous.End, ErrOverlappingRanges)
	}

	var cur, prev PeriodSummary
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cur, err = summarize(ctx, s, current)
		return err
	})
	g.Go(func() error {
		var err error
		prev, err = summarize(ctx, s, previous)
		return err
	})

	if err := g.Wait(); err != nil {
		return TimeComparisonData{}, err
	}

	changes := make(map[uuid.UUID]CategoryChange, len(cur.CategoryBreakdown))
	for _, c := range s.Tree().Categories() {
		now := cur.CategoryBreakdown[c.ID]
		before := prev.CategoryBreakdown[c.ID]
		difference := now.Sub(before)

		var change decimal.Decimal
		switch {
		case before.IsPositive():
			change = percentage(difference, before)
		case now.IsPositive():
			change = hundred
		default:
			change = decimal.Zero
		}

		changes[c.ID] = CategoryChange{
			Difference:       difference,
			PercentageChange: change,
			Trend:            a.classify(change),
		}
	}

	difference := cur.TotalSpent.Sub(prev.TotalSpent)
	return TimeComparisonData{
		CurrentPeriod:  cur,
		PreviousPeriod: prev,
		Comparison: Comparison{
			TotalDifference:       difference,
			TotalPercentageChange: percentage(difference, prev.TotalSpent),
			CategoryChanges:       changes,
		},
	}, nil
}

// CompareByPeriod compares the period containing base with the period before it.
func (a *Analyzer) CompareByPeriod(ctx context.Context, s *Snapshot, p Period, base types.Date) (TimeComparisonData, error) {
	current := DateRangeForPeriod(p, base)
	return a.Compare(ctx, s, current, PreviousPeriod(p, current))
}

// classify returns the trend of a percentage change.
func (a *Analyzer) classify(change decimal.Decimal) Trend {
	switch {
	case change.GreaterThan(a.opts.PeriodTrendThreshold):
		return TrendUp
	case change.LessThan(a.opts.PeriodTrendThreshold.Neg()):
		return TrendDown
	default:
		return TrendStable
	}
}

func summarize(ctx context.Context, s *Snapshot, r types.Range) (PeriodSummary, error) {
	if err := ctx.Err(); err != nil {
		return PeriodSummary{}, err
	}

	t := tallyOf(s.Between(r))
	tree := s.Tree()

	breakdown := make(map[uuid.UUID]decimal.Decimal)
	for _, c := range tree.Categories() {
		breakdown[c.ID] = t.rollup(tree, c.ID).spent
	}

	return PeriodSummary{
		StartDate:         r.Start,
		EndDate:           r.End,
		TotalSpent:        t.total.spent,
		CategoryBreakdown: breakdown,
	}, nil
}
