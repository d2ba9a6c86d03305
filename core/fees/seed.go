// Package fees - Built-in fee schedule
package fees

import "sync"

// Platform identifiers in the built-in schedule.
const (
	PlatformEbay  = "ebay"
	PlatformEtsy  = "etsy"
	PlatformDepop = "depop"
)

// SneakersThreshold is the estimated price at which eBay sneakers switch
// to the reduced flat rate.
const SneakersThreshold = 150.0

// standardEbay is the tiered model most eBay categories use.
func standardEbay() Tiered {
	return NewTiered(Capped(0.136, 7500), Uncapped(0.0235))
}

// ebayCategories is the eBay final value fee table in selector order.
func ebayCategories() []CategoryEntry {
	return []CategoryEntry{
		{Name: "Other", Model: standardEbay()},
		{Name: "Sneakers", Model: Conditional{
			AtLeast: SneakersThreshold,
			IfTrue:  Flat{Rate: 0.08, FixedFee: 0},
			IfFalse: standardEbay(),
		}},
		{Name: "Trading Cards", Model: NewTiered(Capped(0.1325, 7500), Uncapped(0.0235))},
		{Name: "Books, Movies & Music", Model: NewTiered(Capped(0.153, 7500), Uncapped(0.0235))},
		{Name: "Guitars & Basses", Model: NewTiered(Capped(0.067, 7500), Uncapped(0.0235))},
		{Name: "Bullion", Model: NewTiered(Capped(0.136, 7500), Uncapped(0.07))},
		{Name: "Handbags", Model: NewTiered(Capped(0.15, 2000), Uncapped(0.09))},
		{Name: "Jewelry & Watches", Model: NewTiered(Capped(0.15, 5000), Uncapped(0.09))},
		{Name: "Watches & Parts", Model: NewTiered(Capped(0.15, 1000), Capped(0.065, 7500), Uncapped(0.03))},
		{Name: "Heavy Equipment", Model: NewTiered(Capped(0.03, 15000), Uncapped(0.005))},
		{Name: "NFTs", Model: Flat{Rate: 0.05, FixedFee: 0}},
	}
}

// Etsy: 6.5% transaction + 3% payment processing, $0.20 listing + $0.25 processing.
var etsyFees = Flat{Rate: 0.065 + 0.03, FixedFee: 0.20 + 0.25}

// Depop: 10% platform + 2.9% payment processing + $0.30 processing.
var depopFees = Flat{Rate: 0.10 + 0.029, FixedFee: 0.30}

// DefaultEntries returns the built-in schedule entries.
func DefaultEntries() []PlatformEntry {
	return []PlatformEntry{
		CategorizedPlatform(PlatformEbay, ebayCategories()...),
		FlatPlatform(PlatformEtsy, etsyFees),
		FlatPlatform(PlatformDepop, depopFees),
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustCatalog(DefaultEntries()...)
	})
	return defaultCatalog
}
