// Package catalog holds the greeting-page templates offered for sale and
// maps a template slug plus design style to the one component that renders
// it.
package catalog

import (
	_ "embed"
	"fmt"
	"html/template"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/markdown"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Price is one purchasable display duration of a template.
type Price struct {
	Name     string        `yaml:"name"`
	Duration time.Duration `yaml:"duration"`
	Amount   float64       `yaml:"amount"`
}

// Descriptor is the immutable catalog entry of a template.
type Descriptor struct {
	Slug               string   `yaml:"slug"`
	Title              string   `yaml:"title"`
	Audience           []string `yaml:"audience"`
	BackgroundAudioURL string   `yaml:"bg_audio_url"`
	Description        string   `yaml:"description"`
	Prices             []Price  `yaml:"prices"`

	DescriptionHTML template.HTML `yaml:"-"`
}

// Price returns the price whose duration matches d.
func (d Descriptor) Price(dur time.Duration) (Price, bool) {
	for _, p := range d.Prices {
		if p.Duration == dur {
			return p, true
		}
	}
	return Price{}, false
}

// HasAudience reports whether a is one of the descriptor's audiences.
func (d Descriptor) HasAudience(a string) bool {
	for _, x := range d.Audience {
		if x == a {
			return true
		}
	}
	return false
}

func (d Descriptor) clone() Descriptor {
	d.Audience = append([]string(nil), d.Audience...)
	d.Prices = append([]Price(nil), d.Prices...)
	return d
}

type file struct {
	Templates []Descriptor `yaml:"templates"`
}

// Catalog is a read-only set of descriptors keyed by slug.
type Catalog struct {
	bySlug map[string]Descriptor
	slugs  []string
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse builds a Catalog from YAML. Descriptions are rendered from Markdown.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{bySlug: make(map[string]Descriptor, len(f.Templates))}
	for _, d := range f.Templates {
		if d.Slug == "" || d.Title == "" {
			return nil, fmt.Errorf("parse catalog: template %q is missing slug or title", d.Slug)
		}
		if _, dup := c.bySlug[d.Slug]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate slug %q", d.Slug)
		}
		html, err := markdown.ToHTML(d.Description)
		if err != nil {
			return nil, fmt.Errorf("render description of %s: %w", d.Slug, err)
		}
		d.DescriptionHTML = template.HTML(html) // sanitised by markdown.ToHTML
		c.bySlug[d.Slug] = d
		c.slugs = append(c.slugs, d.Slug)
	}
	sort.Strings(c.slugs)
	return c, nil
}

// Lookup returns a copy of the descriptor registered under slug.
func (c *Catalog) Lookup(slug string) (Descriptor, bool) {
	d, ok := c.bySlug[slug]
	if !ok {
		return Descriptor{}, false
	}
	return d.clone(), true
}

// All returns every descriptor sorted by slug.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, 0, len(c.slugs))
	for _, s := range c.slugs {
		out = append(out, c.bySlug[s].clone())
	}
	return out
}
