// Package engine is the entry point to all calculations.
//
// An Engine holds no state besides its collaborators, every call works on the
// snapshot that is passed in. Failed calculations are reported to the
// compliance logger before the error is returned.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/budgetcalc/engine/internal/analytics"
	"github.com/budgetcalc/engine/internal/budget"
	"github.com/budgetcalc/engine/internal/calendar"
	"github.com/budgetcalc/engine/internal/compliance"
	"github.com/budgetcalc/engine/internal/goal"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

var calculations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "calculations_total",
		Help: "How many calculations were run, partitioned by operation and result.",
	},
	[]string{"operation", "result"},
)

// Collectors returns the Prometheus collectors of the package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{calculations}
}

// Operation names used for metrics and calculation failure events.
const (
	OpPayPeriod      = "pay-period"
	OpReport         = "report"
	OpComparison     = "comparison"
	OpTrend          = "trend"
	OpArchive        = "archive"
	OpAccountSummary = "account-summary"
	OpBudgetAnalysis = "budget-analysis"
	OpBudgetAdjust   = "budget-adjustment"
	OpGoalProjection = "goal-projection"
)

type Engine struct {
	calendar           *calendar.Service
	analyzer           *analytics.Analyzer
	analyticsOptions   analytics.Options
	compliance         compliance.Logger
	logger             zerolog.Logger
	defaultTrendMonths int
	now                func() time.Time
}

type Option func(*Engine)

// WithLogger sets the logger. The default discards all output.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithComplianceLogger sets the receiver of audit events.
func WithComplianceLogger(l compliance.Logger) Option {
	return func(e *Engine) {
		e.compliance = l
	}
}

// WithCalendar shares a calendar service, and with it its holiday cache.
func WithCalendar(s *calendar.Service) Option {
	return func(e *Engine) {
		e.calendar = s
	}
}

func WithAnalyticsOptions(opts analytics.Options) Option {
	return func(e *Engine) {
		e.analyticsOptions = opts
	}
}

// WithDefaultTrendMonths sets the trend window used when none is requested.
func WithDefaultTrendMonths(months int) Option {
	return func(e *Engine) {
		e.defaultTrendMonths = months
	}
}

// WithClock sets the source of "now" and "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		compliance:         compliance.Nop{},
		logger:             zerolog.Nop(),
		defaultTrendMonths: 12,
		now:                time.Now,
	}

	for _, o := range opts {
		o(e)
	}

	if e.calendar == nil {
		e.calendar = calendar.NewService(e.logger)
	}

	if e.analyticsOptions.Now == nil {
		e.analyticsOptions.Now = e.now
	}
	e.analyzer = analytics.New(e.analyticsOptions)

	return e
}

// Calendar returns the calendar service.
func (e *Engine) Calendar() *calendar.Service {
	return e.calendar
}

// Analyzer returns the analyzer used for reports, comparisons and trends.
func (e *Engine) Analyzer() *analytics.Analyzer {
	return e.analyzer
}

// Today returns the current calendar day.
func (e *Engine) Today() types.Date {
	return types.DateOf(e.now())
}

// record counts the calculation and reports failures to the compliance logger.
func (e *Engine) record(operation string, err error) error {
	if err == nil {
		calculations.WithLabelValues(operation, "success").Inc()
		return nil
	}

	calculations.WithLabelValues(operation, "failure").Inc()
	e.logger.Debug().Err(err).Str("operation", operation).Msg("calculation failed")
	e.compliance.Log(compliance.CalculationFailureEvent(operation, err, e.now()))
	return err
}

// HolidaysFor returns the holidays of the year under the regime.
func (e *Engine) HolidaysFor(year int, regime calendar.Regime) []calendar.Holiday {
	return e.calendar.HolidaysFor(year, regime)
}

// HolidayName returns the name of the holiday on the date, if there is one.
func (e *Engine) HolidayName(d types.Date, regime calendar.Regime) (string, bool) {
	return e.calendar.HolidayName(d, regime)
}

// IsBusinessDay reports whether the date is neither a weekend day nor an
// observed holiday.
func (e *Engine) IsBusinessDay(d types.Date, regime calendar.Regime, extraHolidays ...types.Date) bool {
	return e.calendar.IsBusinessDay(d, regime, extraHolidays...)
}

// AdjustForWeekendAndHoliday moves the date back to the closest business day.
func (e *Engine) AdjustForWeekendAndHoliday(d types.Date, regime calendar.Regime, extraHolidays ...types.Date) types.Date {
	return e.calendar.AdjustForWeekendAndHoliday(d, regime, extraHolidays...)
}

// NextPayPeriod returns the pay period following the last pay date.
func (e *Engine) NextPayPeriod(frequency calendar.PayFrequency, lastPayDate types.Date, regime calendar.Regime, extraHolidays ...types.Date) (calendar.PayPeriod, error) {
	p, err := e.calendar.NextPayPeriod(frequency, lastPayDate, regime, extraHolidays...)
	return p, e.record(OpPayPeriod, err)
}

// Report builds the expense report for the range.
func (e *Engine) Report(transactions []models.Transaction, categories []models.Category, r types.Range) (analytics.ExpenseReport, error) {
	s, err := analytics.NewSnapshot(transactions, categories)
	if err != nil {
		return analytics.ExpenseReport{}, e.record(OpReport, err)
	}

	report, err := e.analyzer.BuildReport(s, r)
	return report, e.record(OpReport, err)
}

// Compare compares the spend of two ranges.
func (e *Engine) Compare(ctx context.Context, transactions []models.Transaction, categories []models.Category, current, previous types.Range) (analytics.TimeComparisonData, error) {
	s, err := analytics.NewSnapshot(transactions, categories)
	if err != nil {
		return analytics.TimeComparisonData{}, e.record(OpComparison, err)
	}

	data, err := e.analyzer.Compare(ctx, s, current, previous)
	return data, e.record(OpComparison, err)
}

// CompareByPeriod compares the period containing base with the one before it.
// A zero base means today.
func (e *Engine) CompareByPeriod(ctx context.Context, transactions []models.Transaction, categories []models.Category, p analytics.Period, base types.Date) (analytics.TimeComparisonData, error) {
	if base.IsZero() {
		base = e.Today()
	}

	s, err := analytics.NewSnapshot(transactions, categories)
	if err != nil {
		return analytics.TimeComparisonData{}, e.record(OpComparison, err)
	}

	data, err := e.analyzer.CompareByPeriod(ctx, s, p, base)
	return data, e.record(OpComparison, err)
}

// Trend projects the spending trend of the category. Zero months selects the
// default window and a zero asOf means today.
func (e *Engine) Trend(transactions []models.Transaction, categories []models.Category, categoryID uuid.UUID, months int, asOf types.Date) (analytics.SpendingTrend, error) {
	if months == 0 {
		months = e.defaultTrendMonths
	}

	if asOf.IsZero() {
		asOf = e.Today()
	}

	s, err := analytics.NewSnapshot(transactions, categories)
	if err != nil {
		return analytics.SpendingTrend{}, e.record(OpTrend, err)
	}

	trend, err := e.analyzer.ProjectTrend(s, categoryID, months, asOf)
	return trend, e.record(OpTrend, err)
}

// Archive summarizes the calendar year.
func (e *Engine) Archive(transactions []models.Transaction, categories []models.Category, year int) (analytics.TransactionArchive, error) {
	s, err := analytics.NewSnapshot(transactions, categories)
	if err != nil {
		return analytics.TransactionArchive{}, e.record(OpArchive, err)
	}

	return e.analyzer.Archive(s, year), e.record(OpArchive, nil)
}

// AccountSummary aggregates the balances of the accounts.
func (e *Engine) AccountSummary(accounts []models.Account) (analytics.AccountSummary, error) {
	summary, err := analytics.SummarizeAccounts(accounts)
	return summary, e.record(OpAccountSummary, err)
}

// AnalyzeBudgets analyzes the budgets against the transactions. A zero today
// means the current day.
func (e *Engine) AnalyzeBudgets(budgets []models.Budget, transactions []models.Transaction, categories []models.Category, today types.Date) ([]budget.Analysis, error) {
	if today.IsZero() {
		today = e.Today()
	}

	s, err := analytics.NewSnapshot(transactions, categories)
	if err != nil {
		return nil, e.record(OpBudgetAnalysis, err)
	}

	analyses, err := budget.AnalyzeAll(budgets, s, today)
	return analyses, e.record(OpBudgetAnalysis, err)
}

// AdjustBudget changes the amount of the budget and logs the adjustment.
//
// Invalid amounts are returned to the caller without any event.
func (e *Engine) AdjustBudget(b models.Budget, rawAmount, reason string) (models.Budget, models.BudgetAdjustment, error) {
	adjusted, adjustment, err := budget.Adjust(b, rawAmount, reason, e.now(), e.compliance)
	if errors.Is(err, models.ErrInvalidAmount) {
		calculations.WithLabelValues(OpBudgetAdjust, "rejected").Inc()
		return adjusted, adjustment, err
	}

	return adjusted, adjustment, e.record(OpBudgetAdjust, err)
}

// ProjectGoals projects all goals. A zero asOf means today.
func (e *Engine) ProjectGoals(goals []models.Goal, asOf types.Date) ([]goal.Projection, error) {
	if asOf.IsZero() {
		asOf = e.Today()
	}

	projections, err := goal.ProjectAll(goals, asOf)
	return projections, e.record(OpGoalProjection, err)
}
