package analytics

import (
	"github.com/ryanuber/go-glob"
)

// UnknownMerchant is the label for transactions without a merchant.
const UnknownMerchant = "Unknown Merchant"

// MerchantAlias maps merchant names matching a glob pattern to a canonical name.
type MerchantAlias struct {
	Match    string `json:"match" example:"AMZN*"`       // Glob pattern, "*" matches any number of characters
	Merchant string `json:"merchant" example:"Amazon"` // Canonical merchant name
}

// MerchantAliases are applied in order, the first matching alias wins.
type MerchantAliases []MerchantAlias

// Resolve returns the canonical name for a merchant.
func (a MerchantAliases) Resolve(merchant string) string {
	if merchant == "" {
		return UnknownMerchant
	}

	for _, alias := range a {
		if glob.Glob(alias.Match, merchant) {
			return alias.Merchant
		}
	}

	return merchant
}
