// Package types - Listing request and breakdown
package types

// ListingRequest is one calculation's input. It is built per calculation
// and consumed once.
type ListingRequest struct {
	// Platform is the marketplace identifier (ebay, etsy, depop)
	Platform string `json:"platform"`

	// Category is required for categorized platforms and ignored otherwise
	Category string `json:"category,omitempty"`

	// ItemCost is what the seller paid for the item
	ItemCost float64 `json:"item_cost"`

	// DesiredProfit is the net profit the seller wants to keep
	DesiredProfit float64 `json:"desired_profit"`

	// SellerPaidShipping is shipping the seller pays out of the sale
	SellerPaidShipping float64 `json:"seller_paid_shipping"`
}

// Estimate is the pre-fee price: cost + profit + shipping.
func (r ListingRequest) Estimate() float64 {
	return r.ItemCost + r.DesiredProfit + r.SellerPaidShipping
}

// Clamped returns a copy with every amount clamped to a non-negative number.
func (r ListingRequest) Clamped() ListingRequest {
	r.Platform = NormalizePlatform(r.Platform)
	r.ItemCost = Clamp(r.ItemCost)
	r.DesiredProfit = Clamp(r.DesiredProfit)
	r.SellerPaidShipping = Clamp(r.SellerPaidShipping)
	return r
}

// Breakdown is the solved listing. NetProfit always equals
// ListingPrice - TotalFees - ItemCost - Shipping.
type Breakdown struct {
	ListingPrice float64 `json:"listing_price"`
	TotalFees    float64 `json:"total_fees"`
	ItemCost     float64 `json:"item_cost"`
	Shipping     float64 `json:"shipping"`
	NetProfit    float64 `json:"net_profit"`
}

// NewBreakdown derives NetProfit from the other fields.
func NewBreakdown(listingPrice, totalFees, itemCost, shipping float64) Breakdown {
	return Breakdown{
		ListingPrice: listingPrice,
		TotalFees:    totalFees,
		ItemCost:     itemCost,
		Shipping:     shipping,
		NetProfit:    listingPrice - totalFees - itemCost - shipping,
	}
}
