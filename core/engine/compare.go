// Package engine - Cross-platform comparison
package engine

import (
	"sort"

	"listing-price/core/types"
)

// Quote is one platform's answer to the same economics.
type Quote struct {
	Platform  string
	Category  string
	Breakdown types.Breakdown
	Err       error
}

// Compare solves req on every platform. req.Platform is ignored and
// req.Category is used for categorized platforms only. Successful quotes
// come first, cheapest listing price first; failures keep platform order.
func (e *Engine) Compare(req types.ListingRequest) []Quote {
	platforms := e.catalog.Platforms()
	quotes := make([]Quote, 0, len(platforms))

	for _, p := range platforms {
		r := req
		r.Platform = p
		q := Quote{Platform: p}
		if e.catalog.IsCategorized(p) {
			q.Category = req.Category
			if canonical, ok := e.catalog.CanonicalCategory(p, req.Category); ok {
				q.Category = canonical
			}
		} else {
			r.Category = ""
		}
		q.Breakdown, q.Err = e.ComputeListing(r)
		quotes = append(quotes, q)
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		a, b := quotes[i], quotes[j]
		if (a.Err == nil) != (b.Err == nil) {
			return a.Err == nil
		}
		if a.Err != nil {
			return false
		}
		return a.Breakdown.ListingPrice < b.Breakdown.ListingPrice
	})

	return quotes
}
