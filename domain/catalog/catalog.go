// Package catalog holds the fixed list of care services and core values.
// It is the single source for the services section and the recommendation prompt.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Module provides the catalog loaded from the embedded document
var Module = fx.Module("catalog",
	fx.Provide(Load),
)

// Entry is one care service offering
type Entry struct {
	Slug             string `yaml:"slug" json:"slug"`
	Name             string `yaml:"name" json:"name"`
	ShortDescription string `yaml:"short_description" json:"shortDescription"`
	LongDescription  string `yaml:"long_description" json:"longDescription"`
}

// Value is one of the organisation's core values
type Value struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type document struct {
	Services []Entry `yaml:"services"`
	Values   []Value `yaml:"values"`
}

// Catalog is immutable once loaded
type Catalog struct {
	entries []Entry
	values  []Value
	bySlug  map[string]int
}

// Load parses the embedded catalog
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse builds a catalog from a YAML document. Entries without a slug get
// one derived from their name; names and slugs must be unique.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(doc.Services) == 0 {
		return nil, fmt.Errorf("catalog has no services")
	}

	c := &Catalog{
		entries: make([]Entry, 0, len(doc.Services)),
		values:  doc.Values,
		bySlug:  make(map[string]int, len(doc.Services)),
	}

	for i, e := range doc.Services {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("catalog service %d has no name", i)
		}
		if e.Slug == "" {
			e.Slug = Slugify(e.Name)
		}
		if _, dup := c.bySlug[e.Slug]; dup {
			return nil, fmt.Errorf("duplicate catalog slug %q", e.Slug)
		}
		c.bySlug[e.Slug] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// Entries returns the services in catalog order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Values returns the core values in catalog order
func (c *Catalog) Values() []Value {
	out := make([]Value, len(c.values))
	copy(out, c.values)
	return out
}

// Lookup finds a service by slug
func (c *Catalog) Lookup(slug string) (Entry, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Slugify turns a service name into a URL path segment:
// "Parkinson's Care" becomes "parkinsons-care".
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == ' ' || r == '-' || r == '_' || r == '/':
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
