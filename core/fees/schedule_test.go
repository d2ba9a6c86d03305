package fees

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"listing-price/internal/errors"
)

const sampleYAML = `
platforms:
  - id: etsy
    flat:
      rate: 0.095
      fixed_fee: 0.45
  - id: ebay
    categories:
      - name: Other
        tiered:
          - rate: 0.136
            cap: 7500
          - rate: 0.0235
      - name: Sneakers
        conditional:
          at_least: 150
          if_true:
            flat:
              rate: 0.08
          if_false:
            tiered:
              - rate: 0.136
                cap: 7500
              - rate: 0.0235
`

const sampleHCL = `
platform "etsy" {
  flat {
    rate      = 0.095
    fixed_fee = 0.45
  }
}

platform "ebay" {
  category "Other" {
    tiered {
      tier {
        rate = 0.136
        cap  = 7500
      }
      tier { rate = 0.0235 }
    }
  }

  category "Sneakers" {
    conditional {
      at_least = 150
      if_true {
        flat { rate = 0.08 }
      }
      if_false {
        tiered {
          tier {
            rate = 0.136
            cap  = 7500
          }
          tier { rate = 0.0235 }
        }
      }
    }
  }
}
`

func assertSampleCatalog(t *testing.T, c *Catalog) {
	t.Helper()

	etsy, err := c.Lookup("etsy", "")
	if err != nil {
		t.Fatalf("etsy: %v", err)
	}
	if etsy != (Flat{Rate: 0.095, FixedFee: 0.45}) {
		t.Errorf("etsy = %v", etsy)
	}

	other, err := c.Lookup("ebay", "Other")
	if err != nil {
		t.Fatalf("ebay/Other: %v", err)
	}
	if !reflect.DeepEqual(other, standardEbay()) {
		t.Errorf("ebay/Other = %v, want %v", other, standardEbay())
	}

	sneakers, err := c.Lookup("ebay", "Sneakers")
	if err != nil {
		t.Fatalf("ebay/Sneakers: %v", err)
	}
	want, _ := Default().Lookup("ebay", "Sneakers")
	if !reflect.DeepEqual(sneakers, want) {
		t.Errorf("ebay/Sneakers = %v, want %v", sneakers, want)
	}

	cats, _ := c.CategoriesFor("ebay")
	if !reflect.DeepEqual(cats, []string{"Other", "Sneakers"}) {
		t.Errorf("categories = %v", cats)
	}
}

func TestParseScheduleYAML(t *testing.T) {
	c, err := ParseScheduleYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	assertSampleCatalog(t, c)
}

func TestParseScheduleHCL(t *testing.T) {
	c, err := ParseScheduleHCL("fees.hcl", []byte(sampleHCL))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	assertSampleCatalog(t, c)
}

func TestDefaultScheduleYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteScheduleYAML(&buf, Default()); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := ParseScheduleYAML(buf.Bytes())
	if err != nil {
		t.Fatalf("parse written schedule: %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(c.Document(), Default().Document()) {
		t.Fatal("written schedule does not reproduce the default catalog")
	}
}

func TestParseScheduleRejectsAmbiguousModel(t *testing.T) {
	doc := `
platforms:
  - id: odd
    flat:
      rate: 0.1
    tiered:
      - rate: 0.1
`
	_, err := ParseScheduleYAML([]byte(doc))
	if !errors.IsType(err, errors.TypeInvalidSchedule) {
		t.Fatalf("expected INVALID_SCHEDULE, got %v", err)
	}
}

func TestParseScheduleRejectsUnknownField(t *testing.T) {
	doc := `
platforms:
  - id: etsy
    flat:
      rate: 0.1
      percent: 10
`
	if _, err := ParseScheduleYAML([]byte(doc)); err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestParseScheduleRejectsEmpty(t *testing.T) {
	if _, err := ParseScheduleYAML(nil); !errors.IsType(err, errors.TypeInvalidSchedule) {
		t.Fatalf("expected INVALID_SCHEDULE, got %v", err)
	}
}

func TestLoadScheduleFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "fees.yml")
	if err := os.WriteFile(yamlPath, []byte(sampleYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadScheduleFile(yamlPath)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	assertSampleCatalog(t, c)

	hclPath := filepath.Join(dir, "fees.hcl")
	if err := os.WriteFile(hclPath, []byte(sampleHCL), 0644); err != nil {
		t.Fatal(err)
	}
	c, err = LoadScheduleFile(hclPath)
	if err != nil {
		t.Fatalf("load hcl: %v", err)
	}
	assertSampleCatalog(t, c)

	if _, err := LoadScheduleFile(filepath.Join(dir, "fees.toml")); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR for missing file, got %v", err)
	}

	txtPath := filepath.Join(dir, "fees.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScheduleFile(txtPath); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR for unsupported extension, got %v", err)
	}
}
