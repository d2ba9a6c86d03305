// Package fees - Platform fee catalog
// The catalog is built once and never mutated, so concurrent reads need no locking.
package fees

import (
	"fmt"
	"sort"
	"strings"

	"listing-price/core/types"
	"listing-price/internal/errors"
)

// CategoryEntry binds a category name to its fee model.
type CategoryEntry struct {
	Name  string
	Model FeeModel
}

// PlatformEntry describes one platform: either a single Model or an
// ordered list of Categories, never both.
type PlatformEntry struct {
	Platform   string
	Model      FeeModel
	Categories []CategoryEntry
}

// FlatPlatform returns an entry for a non-categorized platform.
func FlatPlatform(platform string, model FeeModel) PlatformEntry {
	return PlatformEntry{Platform: platform, Model: model}
}

// CategorizedPlatform returns an entry for a platform priced per category.
func CategorizedPlatform(platform string, categories ...CategoryEntry) PlatformEntry {
	return PlatformEntry{Platform: platform, Categories: categories}
}

type platform struct {
	model      FeeModel
	categories []CategoryEntry
}

func (p *platform) categorized() bool {
	return p.categories != nil
}

// Catalog maps platforms (and categories) to fee models.
type Catalog struct {
	platforms map[string]*platform
	order     []string
}

// NewCatalog validates entries and builds an immutable catalog.
func NewCatalog(entries ...PlatformEntry) (*Catalog, error) {
	c := &Catalog{platforms: make(map[string]*platform, len(entries))}

	for _, e := range entries {
		id := types.NormalizePlatform(e.Platform)
		if id == "" {
			return nil, errors.InvalidSchedule("platform identifier is empty")
		}
		if _, dup := c.platforms[id]; dup {
			return nil, errors.InvalidSchedule(fmt.Sprintf("platform %q defined twice", id))
		}

		p := &platform{}
		switch {
		case e.Model != nil && len(e.Categories) > 0:
			return nil, errors.InvalidSchedule(fmt.Sprintf("platform %q has both a model and categories", id))
		case e.Model != nil:
			if err := validateEntry(id, "", e.Model); err != nil {
				return nil, err
			}
			p.model = e.Model
		case len(e.Categories) > 0:
			seen := make(map[string]bool, len(e.Categories))
			p.categories = make([]CategoryEntry, 0, len(e.Categories))
			for _, cat := range e.Categories {
				key := strings.ToLower(strings.TrimSpace(cat.Name))
				if key == "" {
					return nil, errors.InvalidSchedule(fmt.Sprintf("platform %q has an unnamed category", id))
				}
				if seen[key] {
					return nil, errors.InvalidSchedule(fmt.Sprintf("platform %q defines category %q twice", id, cat.Name))
				}
				seen[key] = true
				if err := validateEntry(id, cat.Name, cat.Model); err != nil {
					return nil, err
				}
				p.categories = append(p.categories, CategoryEntry{Name: strings.TrimSpace(cat.Name), Model: cat.Model})
			}
		default:
			return nil, errors.InvalidSchedule(fmt.Sprintf("platform %q has no fee model", id))
		}

		c.platforms[id] = p
		c.order = append(c.order, id)
	}

	return c, nil
}

// MustCatalog panics if the entries are invalid. Used for built-in schedules.
func MustCatalog(entries ...PlatformEntry) *Catalog {
	c, err := NewCatalog(entries...)
	if err != nil {
		panic(fmt.Sprintf("fee catalog: %v", err))
	}
	return c
}

func (c *Catalog) get(platformID string) (*platform, string, error) {
	id := types.NormalizePlatform(platformID)
	p, ok := c.platforms[id]
	if !ok {
		return nil, id, errors.UnknownPlatform(platformID)
	}
	return p, id, nil
}

// Lookup resolves the fee model for a platform and category. Categorized
// platforms require a known category (matched case-insensitively); a
// category given for a non-categorized platform is ignored.
func (c *Catalog) Lookup(platformID, category string) (FeeModel, error) {
	p, id, err := c.get(platformID)
	if err != nil {
		return nil, err
	}
	if !p.categorized() {
		return p.model, nil
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return nil, errors.UnknownCategory(id, "")
	}
	for _, cat := range p.categories {
		if strings.EqualFold(cat.Name, category) {
			return cat.Model, nil
		}
	}
	return nil, errors.UnknownCategory(id, category)
}

// CanonicalCategory returns the catalog spelling of a category.
func (c *Catalog) CanonicalCategory(platformID, category string) (string, bool) {
	p, _, err := c.get(platformID)
	if err != nil || !p.categorized() {
		return "", false
	}
	category = strings.TrimSpace(category)
	for _, cat := range p.categories {
		if strings.EqualFold(cat.Name, category) {
			return cat.Name, true
		}
	}
	return "", false
}

// CategoriesFor lists a categorized platform's categories in schedule order.
// The returned slice is a copy.
func (c *Catalog) CategoriesFor(platformID string) ([]string, error) {
	p, id, err := c.get(platformID)
	if err != nil {
		return nil, err
	}
	if !p.categorized() {
		return nil, errors.NotCategorized(id)
	}
	names := make([]string, len(p.categories))
	for i, cat := range p.categories {
		names[i] = cat.Name
	}
	return names, nil
}

// IsCategorized reports whether a known platform is priced per category.
func (c *Catalog) IsCategorized(platformID string) bool {
	p, _, err := c.get(platformID)
	return err == nil && p.categorized()
}

// Platforms returns the platform identifiers, sorted.
func (c *Catalog) Platforms() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	sort.Strings(out)
	return out
}
