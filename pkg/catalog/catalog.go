package catalog

import (
	"slices"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/errors"
)

// Entry is a named, unresolved badge icon.
type Entry struct {
	Name      string
	Glyph     badge.Glyph
	DarkGlyph badge.Glyph
	Spec      badge.Spec
}

// Icon resolves the entry's spec.
func (e Entry) Icon() badge.Icon {
	return badge.NewIcon(e.Name, e.Glyph, e.Spec).WithDarkGlyph(e.DarkGlyph)
}

// Catalog is an ordered collection of entries with unique names.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New returns a catalog holding entries, in order.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if err := c.Add(e); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends e. Names must be valid and unique, and the entry needs a glyph.
func (c *Catalog) Add(e Entry) error {
	if err := errors.ValidateIconName(e.Name); err != nil {
		return err
	}
	if e.Glyph == nil {
		return errors.New(errors.ErrCodeInvalidCatalog, "icon %q has no glyph", e.Name)
	}
	if _, ok := c.index[e.Name]; ok {
		return errors.New(errors.ErrCodeInvalidCatalog, "duplicate icon %q", e.Name)
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[e.Name] = len(c.entries)
	c.entries = append(c.entries, e)
	return nil
}

// Merge adds the entries of o. Entries whose name already exists replace the
// existing entry in place; new names are appended.
func (c *Catalog) Merge(o *Catalog) {
	if o == nil {
		return
	}
	if c.index == nil {
		c.index = make(map[string]int, len(o.entries))
	}
	for _, e := range o.entries {
		if i, ok := c.index[e.Name]; ok {
			c.entries[i] = e
			continue
		}
		c.index[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
}

// Lookup returns the entry called name.
func (c *Catalog) Lookup(name string) (Entry, error) {
	if i, ok := c.index[name]; ok {
		return c.entries[i], nil
	}
	return Entry{}, errors.New(errors.ErrCodeIconNotFound, "no icon named %q", name)
}

// Icon resolves the entry called name.
func (c *Catalog) Icon(name string) (badge.Icon, error) {
	e, err := c.Lookup(name)
	if err != nil {
		return badge.Icon{}, err
	}
	return e.Icon(), nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Names returns the entry names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Icons resolves every entry, in catalog order.
func (c *Catalog) Icons() []badge.Icon {
	icons := make([]badge.Icon, len(c.entries))
	for i, e := range c.entries {
		icons[i] = e.Icon()
	}
	return icons
}
