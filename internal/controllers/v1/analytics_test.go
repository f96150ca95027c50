package v1_test

import (
	"net/http"
	"testing"

	"github.com/budgetcalc/engine/internal/analytics"
	"github.com/budgetcalc/engine/internal/compliance"
	v1 "github.com/budgetcalc/engine/internal/controllers/v1"
	"github.com/budgetcalc/engine/internal/httperror"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/test"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateReport() {
	h := newHousehold()

	tests := []struct {
		name    string
		request v1.ReportRequest
	}{
		{"Explicit range", v1.ReportRequest{Snapshot: h.Snapshot, StartDate: types.NewDate(2024, 1, 1), EndDate: types.NewDate(2024, 3, 31)}},
		{"Quarter containing today", v1.ReportRequest{Snapshot: h.Snapshot, Period: analytics.PeriodQuarter}},
		{"Quarter containing base date", v1.ReportRequest{Snapshot: h.Snapshot, Period: analytics.PeriodQuarter, BaseDate: types.NewDate(2024, 2, 29)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, nil, http.MethodPost, "http://example.com/v1/reports", tt.request)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ReportResponse
			test.DecodeResponse(t, &recorder, &response)
			report := response.Data

			assert.Equal(t, "Expense Report Jan 01 - Mar 31, 2024", report.Name)
			assert.True(t, decimal.NewFromInt(3905).Equal(report.TotalSpent), report.TotalSpent.String())
			assert.True(t, decimal.NewFromInt(15).Equal(report.UncategorizedSpent), report.UncategorizedSpent.String())
			assert.Contains(t, report.FormattedTotal, "$")
			assert.Equal(t, test.Now, report.CreatedAt)

			require.Len(t, report.Categories, 2)
			assert.Equal(t, h.housing, report.Categories[0].CategoryID)
			assert.True(t, decimal.RequireFromString("92.19").Equal(report.Categories[0].PercentageOfTotal), report.Categories[0].PercentageOfTotal.String())

			food := report.Categories[1]
			assert.True(t, decimal.NewFromInt(305).Equal(food.TotalSpent), food.TotalSpent.String())
			require.Len(t, food.Subcategories, 1)
			assert.Equal(t, h.groceries, food.Subcategories[0].CategoryID)
			assert.Equal(t, h.food, *food.Subcategories[0].ParentCategoryID)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateReportErrors() {
	h := newHousehold()

	unknown := uuid.New()
	orphaned := newHousehold()
	orphaned.Transactions[0].CategoryID = &unknown

	nested := newHousehold()
	nested.Categories = append(nested.Categories, models.Category{Model: models.Model{ID: uuid.New()}, Name: "Organic", ParentID: &nested.groceries})

	tests := []struct {
		name   string
		body   any
		status int
		err    error
	}{
		{"End before start", v1.ReportRequest{Snapshot: h.Snapshot, StartDate: types.NewDate(2024, 3, 31), EndDate: types.NewDate(2024, 1, 1)}, http.StatusBadRequest, models.ErrInvalidDateRange},
		{"No range", v1.ReportRequest{Snapshot: h.Snapshot}, http.StatusBadRequest, nil},
		{"Unknown period", `{ "period": "decade" }`, http.StatusBadRequest, analytics.ErrUnknownPeriod},
		{"Unknown category", v1.ReportRequest{Snapshot: orphaned.Snapshot, Period: analytics.PeriodYear}, http.StatusBadRequest, models.ErrUnknownCategory},
		{"Nesting too deep", v1.ReportRequest{Snapshot: nested.Snapshot, Period: analytics.PeriodYear}, http.StatusBadRequest, models.ErrCategoryNesting},
		{"Broken JSON", `{ "transactions": [`, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder compliance.Recorder

			r := test.Request(t, &recorder, http.MethodPost, "http://example.com/v1/reports", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var e httperror.Error
			test.DecodeResponse(t, &r, &e)
			assert.NotEmpty(t, e.Message)

			if tt.err != nil {
				assert.Contains(t, e.Message, tt.err.Error())
			}
		})
	}
}

// TestCalculationFailureEvents verifies that failed calculations are reported
// to the compliance logger.
func (suite *TestSuiteStandard) TestCalculationFailureEvents() {
	h := newHousehold()
	var recorder compliance.Recorder

	r := test.Request(suite.T(), &recorder, http.MethodPost, "http://example.com/v1/trends", v1.TrendRequest{Snapshot: h.Snapshot, CategoryID: uuid.New()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	events := recorder.Events()
	suite.Require().Len(events, 1)
	suite.Assert().Equal(compliance.EventCalculationFailure, events[0].Kind)
	suite.Assert().Equal("trend", events[0].Failure.Operation)
}

func (suite *TestSuiteStandard) TestCreateComparison() {
	h := newHousehold()

	r := test.Request(suite.T(), nil, http.MethodPost, "http://example.com/v1/comparisons", v1.ComparisonRequest{
		Snapshot: h.Snapshot,
		Period:   analytics.PeriodMonth,
		BaseDate: types.NewDate(2024, 2, 15),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ComparisonResponse
	test.DecodeResponse(suite.T(), &r, &response)
	data := response.Data

	suite.Assert().Equal(types.NewDate(2024, 2, 1), data.CurrentPeriod.StartDate)
	suite.Assert().Equal(types.NewDate(2024, 2, 29), data.CurrentPeriod.EndDate)
	suite.Assert().Equal(types.NewDate(2024, 1, 1), data.PreviousPeriod.StartDate)
	suite.Assert().Equal(types.NewDate(2024, 1, 31), data.PreviousPeriod.EndDate)
	suite.Assert().True(decimal.NewFromInt(1325).Equal(data.CurrentPeriod.TotalSpent), data.CurrentPeriod.TotalSpent.String())
	suite.Assert().True(decimal.NewFromInt(1300).Equal(data.PreviousPeriod.TotalSpent), data.PreviousPeriod.TotalSpent.String())
	suite.Assert().True(decimal.NewFromInt(25).Equal(data.Comparison.TotalDifference), data.Comparison.TotalDifference.String())

	groceries, ok := data.Comparison.CategoryChanges[h.groceries]
	suite.Require().True(ok)
	suite.Assert().True(decimal.NewFromInt(30).Equal(groceries.Difference), groceries.Difference.String())
}

func (suite *TestSuiteStandard) TestCreateComparisonRanges() {
	h := newHousehold()
	january := types.NewRange(types.NewDate(2024, 1, 1), types.NewDate(2024, 1, 31))
	march := types.NewRange(types.NewDate(2024, 3, 1), types.NewDate(2024, 3, 31))
	firstQuarter := types.NewRange(types.NewDate(2024, 1, 1), types.NewDate(2024, 3, 31))

	tests := []struct {
		name   string
		body   v1.ComparisonRequest
		status int
	}{
		{"Disjoint ranges", v1.ComparisonRequest{Snapshot: h.Snapshot, Current: &march, Previous: &january}, http.StatusOK},
		{"Overlapping ranges", v1.ComparisonRequest{Snapshot: h.Snapshot, Current: &firstQuarter, Previous: &march}, http.StatusBadRequest},
		{"Only one range", v1.ComparisonRequest{Snapshot: h.Snapshot, Current: &march}, http.StatusBadRequest},
		{"Nothing to compare", v1.ComparisonRequest{Snapshot: h.Snapshot}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, nil, http.MethodPost, "http://example.com/v1/comparisons", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateTrend() {
	h := newHousehold()

	tests := []struct {
		name   string
		body   v1.TrendRequest
		status int
	}{
		{"Housing over a quarter", v1.TrendRequest{Snapshot: h.Snapshot, CategoryID: h.housing, Months: 3, AsOf: types.NewDate(2024, 3, 31)}, http.StatusOK},
		{"Missing category", v1.TrendRequest{Snapshot: h.Snapshot, Months: 3}, http.StatusBadRequest},
		{"Unknown category", v1.TrendRequest{Snapshot: h.Snapshot, CategoryID: uuid.New(), Months: 3}, http.StatusNotFound},
		{"Window too large", v1.TrendRequest{Snapshot: h.Snapshot, CategoryID: h.housing, Months: 500}, http.StatusBadRequest},
		{"Negative window", v1.TrendRequest{Snapshot: h.Snapshot, CategoryID: h.housing, Months: -1}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, nil, http.MethodPost, "http://example.com/v1/trends", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.TrendResponse
			test.DecodeResponse(t, &r, &response)
			trend := response.Data

			require.Len(t, trend.DataPoints, 3)
			assert.Equal(t, "Housing", trend.CategoryName)
			assert.Equal(t, analytics.TrendStable, trend.TrendDirection)
			assert.True(t, decimal.NewFromInt(1200).Equal(trend.AverageMonthlySpend), trend.AverageMonthlySpend.String())
			assert.True(t, decimal.NewFromInt(14400).Equal(trend.ProjectedYearEnd), trend.ProjectedYearEnd.String())
			assert.True(t, decimal.NewFromInt(3600).Equal(trend.DataPoints[2].CumulativeAmount), trend.DataPoints[2].CumulativeAmount.String())
		})
	}
}

func (suite *TestSuiteStandard) TestCreateArchive() {
	h := newHousehold()

	r := test.Request(suite.T(), nil, http.MethodPost, "http://example.com/v1/archives", v1.ArchiveRequest{Snapshot: h.Snapshot, Year: 2024})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ArchiveResponse
	test.DecodeResponse(suite.T(), &r, &response)
	summary := response.Data.Summary

	suite.Assert().Equal(2024, response.Data.Year)
	suite.Assert().Equal(9, summary.TotalTransactions)
	suite.Assert().True(decimal.NewFromInt(3920).Equal(summary.TotalSpent), summary.TotalSpent.String())
	suite.Assert().True(decimal.NewFromInt(3000).Equal(summary.TotalIncome), summary.TotalIncome.String())
	suite.Assert().True(decimal.NewFromInt(-920).Equal(summary.NetAmount), summary.NetAmount.String())
	suite.Assert().True(decimal.NewFromInt(305).Equal(summary.CategorySummary[h.food]), summary.CategorySummary[h.food].String())
	suite.Assert().Len(summary.MonthlyBreakdown, 12)

	r = test.Request(suite.T(), nil, http.MethodPost, "http://example.com/v1/archives", v1.ArchiveRequest{Snapshot: h.Snapshot})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateAccountSummary() {
	limit := decimal.NewFromInt(1000)
	accounts := []models.Account{
		{
			Model:          models.Model{ID: uuid.New()},
			Name:           "Everyday Checking",
			Type:           models.AccountTypeChecking,
			Balance:        decimal.NewFromInt(1000),
			PendingBalance: decimal.NewFromInt(950),
		},
		{
			Model:          models.Model{ID: uuid.New()},
			Name:           "Rewards Card",
			Type:           models.AccountTypeCredit,
			Balance:        decimal.NewFromInt(-200),
			PendingBalance: decimal.NewFromInt(-250),
			CreditLimit:    &limit,
		},
	}

	r := test.Request(suite.T(), nil, http.MethodPost, "http://example.com/v1/accounts/summary", v1.AccountSummaryRequest{Accounts: accounts})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountSummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	summary := response.Data

	suite.Assert().True(decimal.NewFromInt(800).Equal(summary.TotalBalance), summary.TotalBalance.String())
	suite.Assert().True(decimal.NewFromInt(50).Equal(summary.TotalPendingCharges), summary.TotalPendingCharges.String())
	suite.Assert().True(decimal.NewFromInt(750).Equal(summary.NetAvailableFunds), summary.NetAvailableFunds.String())
	suite.Require().Len(summary.Accounts, 2)
	suite.Assert().True(decimal.NewFromInt(950).Equal(summary.Accounts[0].Available))
	suite.Assert().True(decimal.NewFromInt(800).Equal(summary.Accounts[1].Available))

	r = test.Request(suite.T(), nil, http.MethodPost, "http://example.com/v1/accounts/summary", `{ "accounts": [{ "type": "loan" }] }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
