package analytics

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// amountFormat holds the locale specific parts of a formatted amount.
type amountFormat struct {
	symbol  string
	group   string
	decimal string
	scale   int32
}

func newAmountFormat(locale language.Tag, unit currency.Unit) amountFormat {
	p := message.NewPrinter(locale)
	f := amountFormat{
		symbol:  p.Sprint(currency.Symbol(unit)),
		group:   ",",
		decimal: ".",
	}

	scale, _ := currency.Standard.Rounding(unit)
	f.scale = int32(scale)

	// The separators are read from a formatted sample, "10,000.5" in English
	sample := p.Sprint(number.Decimal(10000.5, number.Scale(1)))
	if strings.HasPrefix(sample, "10") && strings.HasSuffix(sample, "5") {
		if group, dec, ok := strings.Cut(sample[2:len(sample)-1], "000"); ok && dec != "" {
			f.group, f.decimal = group, dec
		}
	}

	return f
}

// format renders the amount exactly, rounded to the currency's scale.
func (f amountFormat) format(amount decimal.Decimal) string {
	digits := amount.Abs().StringFixed(f.scale)
	whole, fraction, _ := strings.Cut(digits, ".")

	var b strings.Builder
	b.WriteString(f.symbol)
	b.WriteString(" ")
	if amount.Round(f.scale).IsNegative() {
		b.WriteString("-")
	}

	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(r)
	}

	if fraction != "" {
		b.WriteString(f.decimal)
		b.WriteString(fraction)
	}

	return b.String()
}

// FormatAmount formats an amount with the configured locale and currency
// symbol, for example "$ 1,234.50".
func (a *Analyzer) FormatAmount(amount decimal.Decimal) string {
	return a.format.format(amount)
}
