package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budgetcalc/engine/internal/controllers/v1"
	"github.com/budgetcalc/engine/internal/httperror"
	"github.com/budgetcalc/engine/internal/test"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetHolidays() {
	tests := []struct {
		name   string
		url    string
		status int
		count  int
	}{
		{"Bank regime by default", "http://example.com/v1/holidays?year=2024", http.StatusOK, 11},
		{"Federal regime in inauguration year", "http://example.com/v1/holidays?year=2025&regime=federal", http.StatusOK, 12},
		{"Federal regime without inauguration", "http://example.com/v1/holidays?year=2024&regime=federal", http.StatusOK, 11},
		{"Missing year", "http://example.com/v1/holidays", http.StatusBadRequest, 0},
		{"Invalid year", "http://example.com/v1/holidays?year=next", http.StatusBadRequest, 0},
		{"Unknown regime", "http://example.com/v1/holidays?year=2024&regime=school", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, nil, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.HolidayListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetHolidaysObservedDates() {
	recorder := test.Request(suite.T(), nil, http.MethodGet, "http://example.com/v1/holidays?year=2026", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.HolidayListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	for _, h := range response.Data {
		if h.Name == "Independence Day" {
			suite.Assert().Equal(types.NewDate(2026, 7, 4), h.Date)
			suite.Assert().Equal(types.NewDate(2026, 7, 3), h.ObservedDate)
			return
		}
	}

	suite.Assert().Fail("Independence Day is missing", response.Data)
}

func (suite *TestSuiteStandard) TestGetHolidayCheck() {
	tests := []struct {
		name          string
		url           string
		isHoliday     bool
		holidayName   string
		isBusinessDay bool
	}{
		{"Observed date", "http://example.com/v1/holidays/check?date=2026-07-03", true, "Independence Day", false},
		{"Nominal date on a weekend", "http://example.com/v1/holidays/check?date=2026-07-04", true, "Independence Day", false},
		{"Regular weekday", "http://example.com/v1/holidays/check?date=2026-07-07", false, "", true},
		{"Inauguration Day only in the federal regime", "http://example.com/v1/holidays/check?date=2029-01-20&regime=federal", true, "Inauguration Day", false},
		{"Defaults to today", "http://example.com/v1/holidays/check", false, "", true},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, nil, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.HolidayCheckResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, tt.isHoliday, response.Data.IsHoliday)
			assert.Equal(t, tt.holidayName, response.Data.Name)
			assert.Equal(t, tt.isBusinessDay, response.Data.IsBusinessDay)
		})
	}
}

func (suite *TestSuiteStandard) TestGetHolidayCheckInvalidDate() {
	recorder := test.Request(suite.T(), nil, http.MethodGet, "http://example.com/v1/holidays/check?date=July", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAdjustBusinessDay() {
	tests := []struct {
		name     string
		body     any
		adjusted types.Date
		status   int
	}{
		{
			"Saturday holiday observed on Friday",
			v1.BusinessDayAdjustRequest{Date: types.NewDate(2026, 7, 4)},
			types.NewDate(2026, 7, 2),
			http.StatusOK,
		},
		{
			"Business day stays",
			v1.BusinessDayAdjustRequest{Date: types.NewDate(2026, 7, 7)},
			types.NewDate(2026, 7, 7),
			http.StatusOK,
		},
		{
			"Extra holidays are skipped",
			v1.BusinessDayAdjustRequest{
				Date:            types.NewDate(2026, 7, 7),
				CalendarOptions: v1.CalendarOptions{ExtraHolidays: []types.Date{types.NewDate(2026, 7, 7), types.NewDate(2026, 7, 6)}},
			},
			types.NewDate(2026, 7, 2),
			http.StatusOK,
		},
		{
			"Unknown regime",
			`{ "date": "2026-07-04", "regime": "school" }`,
			types.Date{},
			http.StatusBadRequest,
		},
		{
			"Empty body",
			"",
			types.Date{},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, nil, http.MethodPost, "http://example.com/v1/business-days/adjust", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.status != http.StatusOK {
				var e httperror.Error
				test.DecodeResponse(t, &recorder, &e)
				assert.NotEmpty(t, e.Message)
				return
			}

			var response v1.BusinessDayAdjustResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, tt.adjusted, response.Data.AdjustedDate)
		})
	}
}

func (suite *TestSuiteStandard) TestNextPayDate() {
	tests := []struct {
		name      string
		body      any
		status    int
		payDate   types.Date
		adjusted  types.Date
		daysUntil int
	}{
		{
			"Semi-monthly after the 15th",
			v1.NextPayDateRequest{LastPayDate: types.NewDate(2024, 3, 15), Frequency: "semi-monthly"},
			http.StatusOK,
			types.NewDate(2024, 3, 31),
			types.NewDate(2024, 3, 29),
			14,
		},
		{
			"Bi-weekly onto a holiday",
			v1.NextPayDateRequest{LastPayDate: types.NewDate(2024, 12, 11), Frequency: "bi-weekly"},
			http.StatusOK,
			types.NewDate(2024, 12, 25),
			types.NewDate(2024, 12, 24),
			284,
		},
		{
			"Unknown frequency",
			v1.NextPayDateRequest{LastPayDate: types.NewDate(2024, 3, 15), Frequency: "daily"},
			http.StatusBadRequest,
			types.Date{},
			types.Date{},
			0,
		},
		{
			"Missing last pay date",
			v1.NextPayDateRequest{Frequency: "weekly"},
			http.StatusBadRequest,
			types.Date{},
			types.Date{},
			0,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, nil, http.MethodPost, "http://example.com/v1/pay-dates/next", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.NextPayDateResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, tt.payDate, response.Data.PayDate)
			assert.Equal(t, tt.adjusted, response.Data.AdjustedPayDate)
			assert.Equal(t, tt.daysUntil, response.Data.DaysUntilPayDate)
		})
	}
}
