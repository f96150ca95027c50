package analytics

import (
	"fmt"

	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DataPoint is the spend of one month in a trend.
type DataPoint struct {
	Date             types.Date      `json:"date" example:"2024-03-01"` // First day of the month
	Amount           decimal.Decimal `json:"amount" example:"410.20"`
	CumulativeAmount decimal.Decimal `json:"cumulativeAmount" example:"1190.75"`
}

// SpendingTrend is the monthly spend series of a category.
type SpendingTrend struct {
	CategoryID          uuid.UUID       `json:"categoryId" example:"5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"`
	CategoryName        string          `json:"categoryName" example:"Groceries"`
	DataPoints          []DataPoint     `json:"dataPoints"`
	TrendDirection      Trend           `json:"trendDirection" example:"up"`
	AverageMonthlySpend decimal.Decimal `json:"averageMonthlySpend" example:"396.92"`
	ProjectedYearEnd    decimal.Decimal `json:"projectedYearEnd" example:"4763.00"`
}

// ProjectTrend builds the spend series of the category for the months trailing
// asOf. Only expenses tagged with the category itself count, spend of its
// children is not rolled up. The month of asOf is the last data
// point and only spend up to asOf is counted for it.
//
// The direction compares the mean of the first half of the series with the mean
// of the second half. The first half has months / 2 entries.
func (a *Analyzer) ProjectTrend(s *Snapshot, categoryID uuid.UUID, months int, asOf types.Date) (SpendingTrend, error) {
	if months <= 0 || months > a.opts.MaxTrendMonths {
		return SpendingTrend{}, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidWindow, months, a.opts.MaxTrendMonths)
	}

	category, err := s.category(categoryID)
	if err != nil {
		return SpendingTrend{}, err
	}

	last := types.MonthOf(asOf)
	first := last.AddDate(0, -(months - 1))
	window := types.NewRange(first.FirstDay(), asOf)

	monthly := make(map[types.Month][]int)
	transactions := inFamily(s.Between(window), []uuid.UUID{categoryID})
	for i, t := range transactions {
		m := types.MonthOf(t.Date)
		monthly[m] = append(monthly[m], i)
	}

	points := make([]DataPoint, 0, months)
	cumulative := decimal.Zero
	for i := 0; i < months; i++ {
		m := first.AddDate(0, i)

		amount := decimal.Zero
		for _, j := range monthly[m] {
			amount = amount.Add(transactions[j].Spent())
		}

		cumulative = cumulative.Add(amount)
		points = append(points, DataPoint{
			Date:             m.FirstDay(),
			Amount:           amount,
			CumulativeAmount: cumulative,
		})
	}

	avg := cumulative.Div(decimal.NewFromInt(int64(months)))

	return SpendingTrend{
		CategoryID:          category.ID,
		CategoryName:        category.Name,
		DataPoints:          points,
		TrendDirection:      a.direction(points, avg),
		AverageMonthlySpend: avg.Round(2),
		ProjectedYearEnd:    avg.Mul(decimal.NewFromInt(12)).Round(2),
	}, nil
}

// direction classifies a series. A series with a single point is stable.
func (a *Analyzer) direction(points []DataPoint, avg decimal.Decimal) Trend {
	half := len(points) / 2
	if half == 0 {
		return TrendStable
	}

	change := mean(points[half:]).Sub(mean(points[:half]))
	if change.Abs().LessThanOrEqual(avg.Mul(a.opts.TrendThreshold)) {
		return TrendStable
	}

	if change.IsPositive() {
		return TrendUp
	}
	return TrendDown
}

func mean(points []DataPoint) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range points {
		sum = sum.Add(p.Amount)
	}
	return sum.Div(decimal.NewFromInt(int64(len(points))))
}
