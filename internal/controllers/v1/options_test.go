package v1_test

import (
	"net/http"
	"testing"

	"github.com/budgetcalc/engine/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/holidays", "OPTIONS, GET"},
		{"/v1/holidays/check", "OPTIONS, GET"},
		{"/v1/business-days/adjust", "OPTIONS, POST"},
		{"/v1/pay-dates/next", "OPTIONS, POST"},
		{"/v1/reports", "OPTIONS, POST"},
		{"/v1/comparisons", "OPTIONS, POST"},
		{"/v1/trends", "OPTIONS, POST"},
		{"/v1/archives", "OPTIONS, POST"},
		{"/v1/accounts/summary", "OPTIONS, POST"},
		{"/v1/budgets/analyses", "OPTIONS, POST"},
		{"/v1/budgets/adjustments", "OPTIONS, POST"},
		{"/v1/goals/projections", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, nil, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
