package fees

import (
	"math"
	"reflect"
	"testing"

	"listing-price/internal/errors"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateTieredFee(t *testing.T) {
	watches := NewTiered(Capped(0.15, 1000), Capped(0.065, 7500), Uncapped(0.03))

	tests := []struct {
		name  string
		model Tiered
		price float64
		want  float64
	}{
		{"zero price", standardEbay(), 0, 0},
		{"negative price", standardEbay(), -10, 0},
		{"first tier only", standardEbay(), 100, 13.6},
		{"exactly at cap", standardEbay(), 7500, 1020},
		{"spills into tail", standardEbay(), 8500, 1020 + 23.5},
		{"three tiers, first", watches, 500, 75},
		{"three tiers, second", watches, 3000, 150 + 130},
		{"three tiers, third", watches, 10000, 150 + 487.5 + 45},
		{"no tiers", Tiered{}, 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.model.Fee(tc.price); !approx(got, tc.want) {
				t.Fatalf("Fee(%v) = %v, want %v", tc.price, got, tc.want)
			}
		})
	}
}

func TestFlatFee(t *testing.T) {
	if got := etsyFees.Fee(100); !approx(got, 9.95) {
		t.Errorf("etsy fee on $100 = %v, want 9.95", got)
	}
	if got := depopFees.Fee(0); !approx(got, 0.30) {
		t.Errorf("depop fee on $0 = %v, want 0.30", got)
	}
}

func TestConditionalSelect(t *testing.T) {
	model, err := Default().Lookup("ebay", "Sneakers")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	cond, ok := model.(Conditional)
	if !ok {
		t.Fatalf("expected Conditional, got %T", model)
	}
	if _, ok := cond.Select(150).(Flat); !ok {
		t.Error("estimate of exactly 150 should select the flat branch")
	}
	if _, ok := cond.Select(149.99).(Tiered); !ok {
		t.Error("estimate below 150 should select the tiered branch")
	}
}

func TestValidateRejectsBrokenModels(t *testing.T) {
	tests := []struct {
		name  string
		model FeeModel
	}{
		{"nil", nil},
		{"rate of one", Flat{Rate: 1}},
		{"negative fixed fee", Flat{Rate: 0.1, FixedFee: -1}},
		{"no tiers", Tiered{}},
		{"capped last tier", NewTiered(Capped(0.1, 100))},
		{"uncapped middle tier", NewTiered(Uncapped(0.1), Uncapped(0.05))},
		{"non-increasing caps", NewTiered(Capped(0.1, 500), Capped(0.05, 500), Uncapped(0.01))},
		{"zero cap", NewTiered(Capped(0.1, 0), Uncapped(0.05))},
		{"negative tier rate", NewTiered(Capped(-0.1, 10), Uncapped(0.05))},
		{"bad branch", Conditional{AtLeast: 10, IfTrue: Flat{Rate: 2}, IfFalse: Flat{}}},
		{"missing branch", Conditional{AtLeast: 10, IfTrue: Flat{}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Validate(tc.model); err == nil {
				t.Fatalf("expected %s to be rejected", tc.name)
			}
		})
	}
}

func TestDefaultCatalogValidates(t *testing.T) {
	for _, e := range DefaultEntries() {
		if e.Model != nil {
			if err := Validate(e.Model); err != nil {
				t.Errorf("%s: %v", e.Platform, err)
			}
		}
		for _, c := range e.Categories {
			if err := Validate(c.Model); err != nil {
				t.Errorf("%s/%s: %v", e.Platform, c.Name, err)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	m, err := c.Lookup("Etsy", "ignored")
	if err != nil {
		t.Fatalf("etsy lookup: %v", err)
	}
	if m != (Flat{Rate: 0.095, FixedFee: 0.45}) {
		t.Errorf("unexpected etsy model %v", m)
	}

	m, err = c.Lookup("depop", "")
	if err != nil {
		t.Fatalf("depop lookup: %v", err)
	}
	if m != (Flat{Rate: 0.129, FixedFee: 0.30}) {
		t.Errorf("unexpected depop model %v", m)
	}

	m, err = c.Lookup("ebay", "heavy equipment")
	if err != nil {
		t.Fatalf("case-insensitive category lookup: %v", err)
	}
	if m.Kind() != KindTiered {
		t.Errorf("expected tiered model, got %s", m.Kind())
	}

	if _, err := c.Lookup("unknown", ""); !errors.IsType(err, errors.TypeUnknownPlatform) {
		t.Errorf("expected UNKNOWN_PLATFORM, got %v", err)
	}
	if _, err := c.Lookup("ebay", "NotACategory"); !errors.IsType(err, errors.TypeUnknownCategory) {
		t.Errorf("expected UNKNOWN_CATEGORY, got %v", err)
	}
	if _, err := c.Lookup("ebay", ""); !errors.IsType(err, errors.TypeUnknownCategory) {
		t.Errorf("expected UNKNOWN_CATEGORY for missing category, got %v", err)
	}
}

func TestCategoriesFor(t *testing.T) {
	c := Default()

	cats, err := c.CategoriesFor("ebay")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	want := []string{
		"Other", "Sneakers", "Trading Cards", "Books, Movies & Music",
		"Guitars & Basses", "Bullion", "Handbags", "Jewelry & Watches",
		"Watches & Parts", "Heavy Equipment", "NFTs",
	}
	if !reflect.DeepEqual(cats, want) {
		t.Fatalf("categories = %v, want %v", cats, want)
	}

	cats[0] = "mutated"
	again, _ := c.CategoriesFor("ebay")
	if again[0] != "Other" {
		t.Error("CategoriesFor must return a copy")
	}

	if _, err := c.CategoriesFor("etsy"); !errors.IsType(err, errors.TypeNotCategorized) {
		t.Errorf("expected NOT_CATEGORIZED, got %v", err)
	}
	if _, err := c.CategoriesFor("nope"); !errors.IsType(err, errors.TypeUnknownPlatform) {
		t.Errorf("expected UNKNOWN_PLATFORM, got %v", err)
	}
}

func TestPlatformsSorted(t *testing.T) {
	got := Default().Platforms()
	want := []string{"depop", "ebay", "etsy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("platforms = %v, want %v", got, want)
	}
	if !Default().IsCategorized("EBAY") || Default().IsCategorized("etsy") {
		t.Error("IsCategorized mismatch")
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog(
		FlatPlatform("etsy", etsyFees),
		FlatPlatform(" ETSY ", etsyFees),
	)
	if !errors.IsType(err, errors.TypeInvalidSchedule) {
		t.Fatalf("expected INVALID_SCHEDULE, got %v", err)
	}

	_, err = NewCatalog(CategorizedPlatform("ebay",
		CategoryEntry{Name: "Other", Model: standardEbay()},
		CategoryEntry{Name: "other", Model: standardEbay()},
	))
	if !errors.IsType(err, errors.TypeInvalidSchedule) {
		t.Fatalf("expected INVALID_SCHEDULE for duplicate category, got %v", err)
	}
}

func TestNewCatalogRejectsInvalidModel(t *testing.T) {
	_, err := NewCatalog(FlatPlatform("broken", Flat{Rate: 1.5}))
	if !errors.IsType(err, errors.TypeInvalidSchedule) {
		t.Fatalf("expected INVALID_SCHEDULE, got %v", err)
	}
}
