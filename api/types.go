// Package api - Request and response types
package api

import (
	"bytes"
	"encoding/json"
	"strconv"

	"listing-price/core/output"
	"listing-price/core/types"
)

// Amount is a money field that accepts a JSON number or a string. Anything
// that is not a non-negative number decodes as zero.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(types.ParseAmount(s))
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		// null, booleans and the like
		*a = 0
		return nil
	}
	*a = Amount(types.Clamp(v))
	return nil
}

// ListingRequest is the body of POST /listing and POST /compare.
type ListingRequest struct {
	Platform           string `json:"platform"`
	Category           string `json:"category,omitempty"`
	ItemCost           Amount `json:"item_cost"`
	DesiredProfit      Amount `json:"desired_profit"`
	SellerPaidShipping Amount `json:"seller_paid_shipping"`
}

// ToDomain converts the body into a core request.
func (r ListingRequest) ToDomain() types.ListingRequest {
	return types.ListingRequest{
		Platform:           r.Platform,
		Category:           r.Category,
		ItemCost:           float64(r.ItemCost),
		DesiredProfit:      float64(r.DesiredProfit),
		SellerPaidShipping: float64(r.SellerPaidShipping),
	}
}

// ListingResponse is a single solved listing.
type ListingResponse struct {
	output.QuoteView
	DurationMs int64 `json:"duration_ms"`
}

// CompareResponse lists every platform's quote.
type CompareResponse struct {
	Quotes     []output.QuoteView `json:"quotes"`
	DurationMs int64              `json:"duration_ms"`
}

// PlatformInfo describes one platform for selectors.
type PlatformInfo struct {
	ID          string `json:"id"`
	Categorized bool   `json:"categorized"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error output.ErrorView `json:"error"`
}
