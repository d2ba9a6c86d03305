// Package fees - Fee model validation
// Ensures schedules respect the model invariants before they are served.
package fees

import (
	"fmt"
	"math"

	"listing-price/internal/errors"
)

// Validate checks a fee model and everything nested in it.
func Validate(m FeeModel) error {
	switch model := m.(type) {
	case Flat:
		return validateFlat(model)
	case Tiered:
		return validateTiered(model)
	case Conditional:
		return validateConditional(model)
	case nil:
		return fmt.Errorf("fee model is missing")
	default:
		return fmt.Errorf("unsupported fee model %T", m)
	}
}

func validateRate(rate float64) error {
	if math.IsNaN(rate) || rate < 0 || rate >= 1 {
		return fmt.Errorf("rate %v must be in [0,1)", rate)
	}
	return nil
}

func validateFlat(f Flat) error {
	if err := validateRate(f.Rate); err != nil {
		return err
	}
	if math.IsNaN(f.FixedFee) || f.FixedFee < 0 {
		return fmt.Errorf("fixed fee %v must be non-negative", f.FixedFee)
	}
	return nil
}

// validateTiered enforces positive, strictly increasing caps and a single
// uncapped tier in last position.
func validateTiered(t Tiered) error {
	if len(t.Tiers) == 0 {
		return fmt.Errorf("tiered model has no tiers")
	}

	previous := 0.0
	for i, tier := range t.Tiers {
		if err := validateRate(tier.Rate); err != nil {
			return fmt.Errorf("tier %d: %w", i, err)
		}

		last := i == len(t.Tiers)-1
		if tier.Cap == nil {
			if !last {
				return fmt.Errorf("tier %d is uncapped but is not the final tier", i)
			}
			continue
		}
		if last {
			return fmt.Errorf("final tier must be uncapped, got cap %v", *tier.Cap)
		}
		if !(*tier.Cap > 0) {
			return fmt.Errorf("tier %d: cap %v must be positive", i, *tier.Cap)
		}
		if *tier.Cap <= previous {
			return fmt.Errorf("tier %d: cap %v must exceed previous cap %v", i, *tier.Cap, previous)
		}
		previous = *tier.Cap
	}
	return nil
}

func validateConditional(c Conditional) error {
	if math.IsNaN(c.AtLeast) {
		return fmt.Errorf("conditional threshold is not a number")
	}
	if err := Validate(c.IfTrue); err != nil {
		return fmt.Errorf("if_true: %w", err)
	}
	if err := Validate(c.IfFalse); err != nil {
		return fmt.Errorf("if_false: %w", err)
	}
	return nil
}

// validateEntry wraps model errors with the platform/category they belong to.
func validateEntry(platform, category string, m FeeModel) error {
	if err := Validate(m); err != nil {
		where := platform
		if category != "" {
			where = platform + "/" + category
		}
		return errors.Wrapf(errors.TypeInvalidSchedule, err, "invalid fee model for %s", where).
			WithContext("platform", platform)
	}
	return nil
}
