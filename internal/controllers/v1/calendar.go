package v1

import (
	"net/http"

	"github.com/budgetcalc/engine/internal/calendar"
	"github.com/budgetcalc/engine/internal/httputil"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterHolidayRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsHolidays)
		r.GET("", co.GetHolidays)
	}
	{
		r.OPTIONS("/check", co.OptionsHolidayCheck)
		r.GET("/check", co.GetHolidayCheck)
	}
}

func (co Controller) RegisterBusinessDayRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/adjust", co.OptionsBusinessDayAdjust)
	r.POST("/adjust", co.AdjustBusinessDay)
}

func (co Controller) RegisterPayDateRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/next", co.OptionsNextPayDate)
	r.POST("/next", co.NextPayDate)
}

type HolidayQuery struct {
	Year   int    `form:"year" binding:"required" example:"2024"` // Year to list the holidays for
	Regime string `form:"regime" example:"federal"`               // Holiday regime, 'bank' or 'federal'. Defaults to 'bank'
}

type HolidayListResponse struct {
	Data []calendar.Holiday `json:"data"` // List of holidays, sorted by date
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Router			/v1/holidays [options]
func (co Controller) OptionsHolidays(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get holidays
// @Description	Returns all holidays of the year in the regime with their observed dates
// @Tags			Calendar
// @Produce		json
// @Success		200		{object}	HolidayListResponse
// @Failure		400		{object}	httperror.Error
// @Param			year	query		int		true	"Year"
// @Param			regime	query		string	false	"Holiday regime, 'bank' or 'federal'"
// @Router			/v1/holidays [get]
func (co Controller) GetHolidays(c *gin.Context) {
	var query HolidayQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		respondError(c, err)
		return
	}

	regime, err := calendar.ParseRegime(query.Regime)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, HolidayListResponse{
		Data: co.Engine.HolidaysFor(query.Year, regime),
	})
}

type HolidayCheckQuery struct {
	Date   types.Date `form:"date" example:"2024-07-04"` // The date to check. Defaults to today
	Regime string     `form:"regime" example:"bank"`     // Holiday regime, 'bank' or 'federal'. Defaults to 'bank'
}

type HolidayCheck struct {
	Date          types.Date `json:"date" example:"2026-07-03"`
	IsHoliday     bool       `json:"isHoliday" example:"true"`
	Name          string     `json:"name,omitempty" example:"Independence Day"` // Name of the holiday, if any
	IsBusinessDay bool       `json:"isBusinessDay" example:"false"`
}

type HolidayCheckResponse struct {
	Data HolidayCheck `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Router			/v1/holidays/check [options]
func (co Controller) OptionsHolidayCheck(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Check a date
// @Description	Returns if the date is a holiday, either on its nominal or observed date, and if it is a business day
// @Tags			Calendar
// @Produce		json
// @Success		200		{object}	HolidayCheckResponse
// @Failure		400		{object}	httperror.Error
// @Param			date	query		string	false	"Date in YYYY-MM-DD format"
// @Param			regime	query		string	false	"Holiday regime, 'bank' or 'federal'"
// @Router			/v1/holidays/check [get]
func (co Controller) GetHolidayCheck(c *gin.Context) {
	var query HolidayCheckQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		respondError(c, err)
		return
	}

	regime, err := calendar.ParseRegime(query.Regime)
	if err != nil {
		respondError(c, err)
		return
	}

	date := query.Date
	if date.IsZero() {
		date = co.Engine.Today()
	}

	name, ok := co.Engine.HolidayName(date, regime)
	c.JSON(http.StatusOK, HolidayCheckResponse{
		Data: HolidayCheck{
			Date:          date,
			IsHoliday:     ok,
			Name:          name,
			IsBusinessDay: co.Engine.IsBusinessDay(date, regime),
		},
	})
}

type BusinessDayAdjustRequest struct {
	CalendarOptions
	Date types.Date `json:"date" example:"2026-07-04"` // The date to adjust
}

type BusinessDayAdjustment struct {
	Date          types.Date `json:"date" example:"2026-07-04"`
	AdjustedDate  types.Date `json:"adjustedDate" example:"2026-07-02"` // Latest business day on or before the date
	IsBusinessDay bool       `json:"isBusinessDay" example:"false"`     // Whether the date itself is a business day
}

type BusinessDayAdjustResponse struct {
	Data BusinessDayAdjustment `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Router			/v1/business-days/adjust [options]
func (co Controller) OptionsBusinessDayAdjust(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Adjust to a business day
// @Description	Moves the date back to the latest business day on or before it
// @Tags			Calendar
// @Accept			json
// @Produce		json
// @Success		200		{object}	BusinessDayAdjustResponse
// @Failure		400		{object}	httperror.Error
// @Param			request	body		BusinessDayAdjustRequest	true	"Date and calendar options"
// @Router			/v1/business-days/adjust [post]
func (co Controller) AdjustBusinessDay(c *gin.Context) {
	var request BusinessDayAdjustRequest
	if err := httputil.BindData(c, &request); err != nil {
		respondError(c, err)
		return
	}

	if request.Date.IsZero() {
		request.Date = co.Engine.Today()
	}

	regime := regimeOrDefault(request.Regime)
	c.JSON(http.StatusOK, BusinessDayAdjustResponse{
		Data: BusinessDayAdjustment{
			Date:          request.Date,
			AdjustedDate:  co.Engine.AdjustForWeekendAndHoliday(request.Date, regime, request.ExtraHolidays...),
			IsBusinessDay: co.Engine.IsBusinessDay(request.Date, regime, request.ExtraHolidays...),
		},
	})
}

type NextPayDateRequest struct {
	CalendarOptions
	LastPayDate types.Date            `json:"lastPayDate" example:"2024-03-15"`
	Frequency   calendar.PayFrequency `json:"frequency" binding:"required" example:"semi-monthly"` // One of 'weekly', 'bi-weekly', 'monthly', 'semi-monthly'
}

type NextPayDate struct {
	calendar.PayPeriod
	DaysUntilPayDate int `json:"daysUntilPayDate" example:"14"` // Calendar days from today until the adjusted pay date, negative if it is in the past
}

type NextPayDateResponse struct {
	Data NextPayDate `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Router			/v1/pay-dates/next [options]
func (co Controller) OptionsNextPayDate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Next pay period
// @Description	Returns the pay period following the last pay date. The pay date is moved back to a business day.
// @Tags			Calendar
// @Accept			json
// @Produce		json
// @Success		200		{object}	NextPayDateResponse
// @Failure		400		{object}	httperror.Error
// @Param			request	body		NextPayDateRequest	true	"Last pay date, frequency and calendar options"
// @Router			/v1/pay-dates/next [post]
func (co Controller) NextPayDate(c *gin.Context) {
	var request NextPayDateRequest
	if err := httputil.BindData(c, &request); err != nil {
		respondError(c, err)
		return
	}

	if request.LastPayDate.IsZero() {
		respondError(c, errLastPayDateMissing)
		return
	}

	period, err := co.Engine.NextPayPeriod(request.Frequency, request.LastPayDate, regimeOrDefault(request.Regime), request.ExtraHolidays...)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NextPayDateResponse{
		Data: NextPayDate{
			PayPeriod:        period,
			DaysUntilPayDate: calendar.DaysUntil(co.Engine.Today(), period.AdjustedPayDate),
		},
	})
}
