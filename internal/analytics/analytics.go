// Package analytics aggregates expense transactions over a category tree.
//
// All functions treat their inputs as read-only snapshots. A Snapshot indexes
// the transactions once so that reports, comparisons and trends do not need to
// scan the whole transaction set for every category.
package analytics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var (
	ErrOverlappingRanges = errors.New("the compared date ranges must not overlap")
	ErrInvalidWindow     = errors.New("the number of trend months is out of range")
	ErrUnknownPeriod     = errors.New("the period must be one of 'week', 'two-weeks', 'month', 'quarter', 'year', 'ytd', 'custom'")
)

// Defaults for Options.
var (
	DefaultPeriodTrendThreshold = decimal.NewFromInt(5)
	DefaultTrendThreshold       = decimal.NewFromFloat(0.1)
)

const (
	DefaultTopMerchantLimit = 10
	DefaultMaxTrendMonths   = 120
)

// Options configures an Analyzer. Zero values are replaced with the defaults.
type Options struct {
	// Percentage change above which a category comparison is classified as up or down
	PeriodTrendThreshold decimal.Decimal

	// Share of the average monthly spend the half-series means must differ by
	// for a trend to be up or down
	TrendThreshold decimal.Decimal

	TopMerchantLimit int
	MaxTrendMonths   int
	MerchantAliases  MerchantAliases

	// Locale and currency used for formatted report totals
	Locale   language.Tag
	Currency currency.Unit

	Now func() time.Time
}

// Analyzer builds reports, comparisons and trends from snapshots.
type Analyzer struct {
	opts   Options
	format amountFormat
}

// New returns an Analyzer for the options.
func New(opts Options) *Analyzer {
	if opts.PeriodTrendThreshold.IsZero() {
		opts.PeriodTrendThreshold = DefaultPeriodTrendThreshold
	}

	if opts.TrendThreshold.IsZero() {
		opts.TrendThreshold = DefaultTrendThreshold
	}

	if opts.TopMerchantLimit <= 0 {
		opts.TopMerchantLimit = DefaultTopMerchantLimit
	}

	if opts.MaxTrendMonths <= 0 {
		opts.MaxTrendMonths = DefaultMaxTrendMonths
	}

	if opts.Locale == language.Und {
		opts.Locale = language.AmericanEnglish
	}

	if opts.Currency == (currency.Unit{}) {
		opts.Currency = currency.USD
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Analyzer{opts: opts, format: newAmountFormat(opts.Locale, opts.Currency)}
}

// Options returns the effective options.
func (a *Analyzer) Options() Options {
	return a.opts
}

var hundred = decimal.NewFromInt(100)

// percentage returns part / whole * 100, rounded to two places. A zero whole
// yields zero.
func percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}

// average returns total / count, rounded to two places. A zero count
// yields zero.
func average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}
