package v1

import (
	"net/http"

	"github.com/budgetcalc/engine/internal/analytics"
	"github.com/budgetcalc/engine/internal/httputil"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsReports)
	r.POST("", co.CreateReport)
}

func (co Controller) RegisterComparisonRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsComparisons)
	r.POST("", co.CreateComparison)
}

func (co Controller) RegisterTrendRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsTrends)
	r.POST("", co.CreateTrend)
}

func (co Controller) RegisterArchiveRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsArchives)
	r.POST("", co.CreateArchive)
}

func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", co.OptionsAccountSummary)
	r.POST("/summary", co.CreateAccountSummary)
}

type ReportRequest struct {
	Snapshot
	StartDate types.Date       `json:"startDate" example:"2024-01-01"`     // First day of the report
	EndDate   types.Date       `json:"endDate" example:"2024-03-31"`       // Last day of the report, inclusive
	Period    analytics.Period `json:"period,omitempty" example:"quarter"` // Used when no dates are set: the period containing baseDate
	BaseDate  types.Date       `json:"baseDate" example:"2024-02-15"`      // Reference date for the period. Defaults to today
}

// dateRange returns the explicit range or the one derived from the period.
func (r ReportRequest) dateRange(today types.Date) (types.Range, error) {
	if !r.StartDate.IsZero() || !r.EndDate.IsZero() {
		return types.NewRange(r.StartDate, r.EndDate), nil
	}

	if r.Period == "" {
		return types.Range{}, errRangeMissing
	}

	base := r.BaseDate
	if base.IsZero() {
		base = today
	}

	return analytics.DateRangeForPeriod(r.Period, base), nil
}

type ReportResponse struct {
	Data analytics.ExpenseReport `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/reports [options]
func (co Controller) OptionsReports(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create expense report
// @Description	Builds the hierarchical expense report for a date range or a period
// @Tags			Analytics
// @Accept			json
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			request	body		ReportRequest	true	"Snapshot and range"
// @Router			/v1/reports [post]
func (co Controller) CreateReport(c *gin.Context) {
	var request ReportRequest
	if err := httputil.BindData(c, &request); err != nil {
		respondError(c, err)
		return
	}

	r, err := request.dateRange(co.Engine.Today())
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := co.Engine.Report(request.Transactions, request.Categories, r)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: report})
}

type ComparisonRequest struct {
	Snapshot
	Current  *types.Range     `json:"current,omitempty"`                // Current range. Requires previous to be set
	Previous *types.Range     `json:"previous,omitempty"`               // Previous range, must not overlap the current one
	Period   analytics.Period `json:"period,omitempty" example:"month"` // Used when no ranges are set: compares the period containing baseDate with the one before
	BaseDate types.Date       `json:"baseDate" example:"2024-03-15"`    // Reference date for the period. Defaults to today
}

type ComparisonResponse struct {
	Data analytics.TimeComparisonData `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/comparisons [options]
func (co Controller) OptionsComparisons(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Compare periods
// @Description	Compares the spend per category of two ranges, or of a period and the one before it
// @Tags			Analytics
// @Accept			json
// @Produce		json
// @Success		200		{object}	ComparisonResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			request	body		ComparisonRequest	true	"Snapshot and ranges"
// @Router			/v1/comparisons [post]
func (co Controller) CreateComparison(c *gin.Context) {
	var request ComparisonRequest
	if err := httputil.BindData(c, &request); err != nil {
		respondError(c, err)
		return
	}

	var (
		data analytics.TimeComparisonData
		err  error
	)

	switch {
	case request.Current != nil && request.Previous != nil:
		data, err = co.Engine.Compare(c.Request.Context(), request.Transactions, request.Categories, *request.Current, *request.Previous)
	case request.Current == nil && request.Previous == nil && request.Period != "":
		data, err = co.Engine.CompareByPeriod(c.Request.Context(), request.Transactions, request.Categories, request.Period, request.BaseDate)
	default:
		err = errComparisonMissing
	}

	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ComparisonResponse{Data: data})
}

type TrendRequest struct {
	Snapshot
	CategoryID uuid.UUID  `json:"categoryId" example:"5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"` // Category to project. Only expenses tagged with it count, subcategories are not included
	Months     int        `json:"months" example:"6"`                                         // Number of months, ending with the month of asOf. Defaults to the configured window
	AsOf       types.Date `json:"asOf" example:"2024-03-15"`                                  // Last day of the window. Defaults to today
}

type TrendResponse struct {
	Data analytics.SpendingTrend `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/trends [options]
func (co Controller) OptionsTrends(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Project spending trend
// @Description	Returns the monthly spend of a category, its trend direction and the projected spend for a year
// @Tags			Analytics
// @Accept			json
// @Produce		json
// @Success		200		{object}	TrendResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			request	body		TrendRequest	true	"Snapshot and category"
// @Router			/v1/trends [post]
func (co Controller) CreateTrend(c *gin.Context) {
	var request TrendRequest
	if err := httputil.BindData(c, &request); err != nil {
		respondError(c, err)
		return
	}

	if request.CategoryID == uuid.Nil {
		respondError(c, errCategoryIDMissing)
		return
	}

	trend, err := co.Engine.Trend(request.Transactions, request.Categories, request.CategoryID, request.Months, request.AsOf)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TrendResponse{Data: trend})
}

type ArchiveRequest struct {
	Snapshot
	Year int `json:"year" example:"2023"` // Calendar year to archive
}

type ArchiveResponse struct {
	Data analytics.TransactionArchive `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/archives [options]
func (co Controller) OptionsArchives(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Archive a year
// @Description	Returns all transactions of a calendar year with totals, per category spend and a monthly breakdown
// @Tags			Analytics
// @Accept			json
// @Produce		json
// @Success		200		{object}	ArchiveResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			request	body		ArchiveRequest	true	"Snapshot and year"
// @Router			/v1/archives [post]
func (co Controller) CreateArchive(c *gin.Context) {
	var request ArchiveRequest
	if err := httputil.BindData(c, &request); err != nil {
		respondError(c, err)
		return
	}

	if request.Year == 0 {
		respondError(c, errYearMissing)
		return
	}

	archive, err := co.Engine.Archive(request.Transactions, request.Categories, request.Year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ArchiveResponse{Data: archive})
}

type AccountSummaryRequest struct {
	Accounts []models.Account `json:"accounts"`
}

type AccountSummaryResponse struct {
	Data analytics.AccountSummary `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts/summary [options]
func (co Controller) OptionsAccountSummary(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Summarize accounts
// @Description	Returns the total balance, the pending charges on credit accounts and the funds available across all accounts
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccountSummaryResponse
// @Failure		400		{object}	httperror.Error
// @Param			request	body		AccountSummaryRequest	true	"Accounts"
// @Router			/v1/accounts/summary [post]
func (co Controller) CreateAccountSummary(c *gin.Context) {
	var request AccountSummaryRequest
	if err := httputil.BindData(c, &request); err != nil {
		respondError(c, err)
		return
	}

	summary, err := co.Engine.AccountSummary(request.Accounts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AccountSummaryResponse{Data: summary})
}
