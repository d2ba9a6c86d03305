// Package fees - Fee schedule files
// A schedule file replaces the built-in catalog. It is read once at startup.
package fees

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"listing-price/internal/errors"
)

// ScheduleDocument is the file form of a catalog.
type ScheduleDocument struct {
	Platforms []PlatformDoc `yaml:"platforms"`
}

// PlatformDoc holds either a model or categories.
type PlatformDoc struct {
	ID         string        `yaml:"id"`
	ModelDoc   `yaml:",inline"`
	Categories []CategoryDoc `yaml:"categories,omitempty"`
}

// CategoryDoc is a named model.
type CategoryDoc struct {
	Name     string `yaml:"name"`
	ModelDoc `yaml:",inline"`
}

// ModelDoc sets exactly one of its fields.
type ModelDoc struct {
	Flat        *Flat           `yaml:"flat,omitempty"`
	Tiered      []Tier          `yaml:"tiered,omitempty"`
	Conditional *ConditionalDoc `yaml:"conditional,omitempty"`
}

// ConditionalDoc is the file form of Conditional.
type ConditionalDoc struct {
	AtLeast float64  `yaml:"at_least"`
	IfTrue  ModelDoc `yaml:"if_true"`
	IfFalse ModelDoc `yaml:"if_false"`
}

func (d ModelDoc) empty() bool {
	return d.Flat == nil && d.Tiered == nil && d.Conditional == nil
}

// Model converts the document into a FeeModel.
func (d ModelDoc) Model() (FeeModel, error) {
	set := 0
	if d.Flat != nil {
		set++
	}
	if d.Tiered != nil {
		set++
	}
	if d.Conditional != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("expected exactly one of flat, tiered, conditional; got %d", set)
	}

	switch {
	case d.Flat != nil:
		return *d.Flat, nil
	case d.Tiered != nil:
		tiers := make([]Tier, len(d.Tiered))
		copy(tiers, d.Tiered)
		return Tiered{Tiers: tiers}, nil
	default:
		ifTrue, err := d.Conditional.IfTrue.Model()
		if err != nil {
			return nil, fmt.Errorf("if_true: %w", err)
		}
		ifFalse, err := d.Conditional.IfFalse.Model()
		if err != nil {
			return nil, fmt.Errorf("if_false: %w", err)
		}
		return Conditional{AtLeast: d.Conditional.AtLeast, IfTrue: ifTrue, IfFalse: ifFalse}, nil
	}
}

// DocOf converts a FeeModel into its file form.
func DocOf(m FeeModel) ModelDoc {
	switch model := m.(type) {
	case Flat:
		f := model
		return ModelDoc{Flat: &f}
	case Tiered:
		tiers := make([]Tier, len(model.Tiers))
		copy(tiers, model.Tiers)
		return ModelDoc{Tiered: tiers}
	case Conditional:
		return ModelDoc{Conditional: &ConditionalDoc{
			AtLeast: model.AtLeast,
			IfTrue:  DocOf(model.IfTrue),
			IfFalse: DocOf(model.IfFalse),
		}}
	default:
		return ModelDoc{}
	}
}

// Entries converts the document into validated-on-build catalog entries.
func (d ScheduleDocument) Entries() ([]PlatformEntry, error) {
	entries := make([]PlatformEntry, 0, len(d.Platforms))
	for _, p := range d.Platforms {
		if len(p.Categories) > 0 {
			if !p.ModelDoc.empty() {
				return nil, errors.InvalidSchedule(fmt.Sprintf("platform %q has both a model and categories", p.ID))
			}
			cats := make([]CategoryEntry, 0, len(p.Categories))
			for _, c := range p.Categories {
				m, err := c.Model()
				if err != nil {
					return nil, errors.Wrapf(errors.TypeInvalidSchedule, err, "platform %q category %q", p.ID, c.Name)
				}
				cats = append(cats, CategoryEntry{Name: c.Name, Model: m})
			}
			entries = append(entries, CategorizedPlatform(p.ID, cats...))
			continue
		}

		m, err := p.Model()
		if err != nil {
			return nil, errors.Wrapf(errors.TypeInvalidSchedule, err, "platform %q", p.ID)
		}
		entries = append(entries, FlatPlatform(p.ID, m))
	}
	return entries, nil
}

// Document returns the file form of the catalog, platforms in catalog order.
func (c *Catalog) Document() ScheduleDocument {
	doc := ScheduleDocument{Platforms: make([]PlatformDoc, 0, len(c.order))}
	for _, id := range c.order {
		p := c.platforms[id]
		pd := PlatformDoc{ID: id}
		if p.categorized() {
			for _, cat := range p.categories {
				pd.Categories = append(pd.Categories, CategoryDoc{Name: cat.Name, ModelDoc: DocOf(cat.Model)})
			}
		} else {
			pd.ModelDoc = DocOf(p.model)
		}
		doc.Platforms = append(doc.Platforms, pd)
	}
	return doc
}

// ParseScheduleYAML decodes a YAML schedule and builds a catalog from it.
func ParseScheduleYAML(data []byte) (*Catalog, error) {
	var doc ScheduleDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.TypeInvalidSchedule, "decoding YAML schedule", err)
	}
	return buildFromDocument(doc)
}

// WriteScheduleYAML writes the catalog as a YAML schedule.
func WriteScheduleYAML(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Document()); err != nil {
		return err
	}
	return enc.Close()
}

func buildFromDocument(doc ScheduleDocument) (*Catalog, error) {
	if len(doc.Platforms) == 0 {
		return nil, errors.InvalidSchedule("schedule defines no platforms")
	}
	entries, err := doc.Entries()
	if err != nil {
		return nil, err
	}
	return NewCatalog(entries...)
}

// LoadScheduleFile reads a .yaml/.yml or .hcl schedule file.
func LoadScheduleFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("reading fee schedule", err).WithContext("path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseScheduleYAML(data)
	case ".hcl":
		return ParseScheduleHCL(path, data)
	default:
		return nil, errors.Config(fmt.Sprintf("unsupported schedule format %q", filepath.Ext(path)), nil).
			WithContext("path", path)
	}
}
