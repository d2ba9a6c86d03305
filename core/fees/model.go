// Package fees is the fee schedule registry: the fee models platforms
// charge and the static catalog mapping platforms and categories to them.
package fees

import "fmt"

// Kind names a FeeModel variant.
type Kind string

const (
	KindFlat        Kind = "flat"
	KindTiered      Kind = "tiered"
	KindConditional Kind = "conditional"
)

// FeeModel maps a listing price to the platform's total fee. It is a closed
// set: Flat, Tiered and Conditional are the only implementations.
type FeeModel interface {
	Kind() Kind
	String() string
	sealed()
}

// Flat charges a proportional rate plus a fixed amount per sale.
type Flat struct {
	Rate     float64 `json:"rate" yaml:"rate"`
	FixedFee float64 `json:"fixed_fee" yaml:"fixed_fee"`
}

// Fee returns price*Rate + FixedFee.
func (f Flat) Fee(price float64) float64 {
	return price*f.Rate + f.FixedFee
}

func (Flat) Kind() Kind { return KindFlat }
func (Flat) sealed()    {}

func (f Flat) String() string {
	return fmt.Sprintf("flat(%g%% + $%.2f)", f.Rate*100, f.FixedFee)
}

// Tier is one band of a tiered schedule. Cap is the most dollars of price
// this tier's rate applies to; nil means unbounded.
type Tier struct {
	Rate float64  `json:"rate" yaml:"rate"`
	Cap  *float64 `json:"cap,omitempty" yaml:"cap,omitempty"`
}

// Capped builds a tier that covers at most limit dollars.
func Capped(rate, limit float64) Tier {
	return Tier{Rate: rate, Cap: &limit}
}

// Uncapped builds the final tier that absorbs the rest of the price.
func Uncapped(rate float64) Tier {
	return Tier{Rate: rate}
}

// Tiered applies its tiers in order, each to its own slice of the price.
type Tiered struct {
	Tiers []Tier `json:"tiers" yaml:"tiers"`
}

// NewTiered builds a Tiered model from tiers in application order.
func NewTiered(tiers ...Tier) Tiered {
	return Tiered{Tiers: tiers}
}

func (Tiered) Kind() Kind { return KindTiered }
func (Tiered) sealed()    {}

func (t Tiered) String() string {
	s := "tiered("
	for i, tier := range t.Tiers {
		if i > 0 {
			s += ", "
		}
		if tier.Cap == nil {
			s += fmt.Sprintf("%g%% rest", tier.Rate*100)
		} else {
			s += fmt.Sprintf("%g%% to $%g", tier.Rate*100, *tier.Cap)
		}
	}
	return s + ")"
}

// Conditional switches fee structure on the estimated pre-fee price
// (cost + profit + shipping). The test runs once, before solving.
type Conditional struct {
	// AtLeast is the estimate at or above which IfTrue applies
	AtLeast float64
	IfTrue  FeeModel
	IfFalse FeeModel
}

// Test reports whether the estimate meets the threshold.
func (c Conditional) Test(estimate float64) bool {
	return estimate >= c.AtLeast
}

// Select returns the branch for an estimate.
func (c Conditional) Select(estimate float64) FeeModel {
	if c.Test(estimate) {
		return c.IfTrue
	}
	return c.IfFalse
}

func (Conditional) Kind() Kind { return KindConditional }
func (Conditional) sealed()    {}

func (c Conditional) String() string {
	return fmt.Sprintf("if estimate >= $%g then %s else %s", c.AtLeast, c.IfTrue, c.IfFalse)
}
