// Package types defines core domain types shared across all layers.
// This package contains NO business logic beyond boundary normalisation.
package types

import "strings"

// Currency represents a currency code
type Currency string

// CurrencyUSD is the only currency amounts are expressed in.
const CurrencyUSD Currency = "USD"

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// NormalizePlatform lower-cases and trims a platform identifier.
func NormalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}
