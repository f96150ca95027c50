// Package v1 exposes the engine operations as JSON API.
//
// Every request carries the snapshot it is computed on, nothing is stored
// between requests.
package v1

import (
	"errors"
	"net/http"

	"github.com/budgetcalc/engine/internal/analytics"
	"github.com/budgetcalc/engine/internal/calendar"
	"github.com/budgetcalc/engine/internal/engine"
	"github.com/budgetcalc/engine/internal/httperror"
	"github.com/budgetcalc/engine/internal/httputil"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Controller struct {
	Engine *engine.Engine
}

var (
	errLastPayDateMissing = errors.New("the lastPayDate must be set")
	errCategoryIDMissing  = errors.New("the categoryId must be set")
	errYearMissing        = errors.New("the year must be set")
	errRangeMissing       = errors.New("either both startDate and endDate or a period must be set")
	errComparisonMissing  = errors.New("either both the current and previous ranges or a period must be set")
)

// badRequest lists the errors caused by invalid input.
var badRequest = []error{
	httputil.ErrInvalidBody,
	httputil.ErrRequestBodyEmpty,
	httputil.ErrInvalidQuery,
	errLastPayDateMissing,
	errCategoryIDMissing,
	errYearMissing,
	errRangeMissing,
	errComparisonMissing,
	models.ErrUnknownCategory,
	models.ErrCategoryNesting,
	models.ErrDuplicateCategory,
	models.ErrInvalidAmount,
	models.ErrInvalidDateRange,
	models.ErrInvalidPeriodKind,
	models.ErrInvalidFrequency,
	models.ErrInvalidAccountType,
	analytics.ErrOverlappingRanges,
	analytics.ErrInvalidWindow,
	analytics.ErrUnknownPeriod,
	calendar.ErrUnknownRegime,
	calendar.ErrUnknownPayFrequency,
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrCategoryNotFound) {
		return http.StatusNotFound
	}

	if slices.ContainsFunc(badRequest, func(target error) bool { return errors.Is(err, target) }) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// respondError writes the error with the matching status. Server errors are
// logged with the request id and their message is not exposed.
func respondError(c *gin.Context, err error) {
	s := status(err)
	if s == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.JSON(s, httperror.NewFromString("an error occurred on the server during your request. The request id is '"+requestid.Get(c)+"', send this to your server administrator to help them finding the problem"))
		return
	}

	c.JSON(s, httperror.New(err))
}

// regimeOrDefault returns the bank regime when none is set.
func regimeOrDefault(r calendar.Regime) calendar.Regime {
	if r == "" {
		return calendar.RegimeBank
	}
	return r
}
