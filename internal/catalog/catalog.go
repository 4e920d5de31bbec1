// Package catalog holds the immutable display tables used at render time:
// the ordered category rules and the per-locale shop display names.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/kj-nakamura/baby-wear-translator/internal/model"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// ErrInvalidCatalog is wrapped by every validation failure returned from Load.
var ErrInvalidCatalog = errors.New("catalog: invalid document")

type document struct {
	DefaultLocale string             `yaml:"default_locale"`
	Categories    []categoryRule     `yaml:"categories"`
	Fallback      model.CategoryMeta `yaml:"fallback"`
	Shops         []shopEntry        `yaml:"shops"`
}

type categoryRule struct {
	Key                string `yaml:"key"`
	model.CategoryMeta `yaml:",inline"`
}

type shopEntry struct {
	ID    model.ShopID      `yaml:"id"`
	Names map[string]string `yaml:"names"`
}

type shop struct {
	id    model.ShopID
	names map[language.Tag]string
}

// Catalog is read-only after Load. All methods are safe for concurrent use.
type Catalog struct {
	rules    []categoryRule
	fallback model.CategoryMeta

	shops     []shop
	shopIndex map[model.ShopID]int

	defaultLocale language.Tag
	locales       []language.Tag
	matcher       language.Matcher
}

// LoadEmbedded parses the catalog compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return Load(embedded)
}

// MustLoadEmbedded is LoadEmbedded for process start-up; it panics on a broken build.
func MustLoadEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return c
}

// Load parses and validates a YAML catalog document.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}

	def, err := canonicalLocale(doc.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("%w: default_locale %q: %v", ErrInvalidCatalog, doc.DefaultLocale, err)
	}
	if doc.Fallback.Label == "" {
		return nil, fmt.Errorf("%w: fallback label is required", ErrInvalidCatalog)
	}
	for i, r := range doc.Categories {
		if r.Key == "" {
			return nil, fmt.Errorf("%w: category %d has an empty key", ErrInvalidCatalog, i)
		}
		if r.Label == "" {
			return nil, fmt.Errorf("%w: category %q has an empty label", ErrInvalidCatalog, r.Key)
		}
	}

	c := &Catalog{
		rules:         doc.Categories,
		fallback:      doc.Fallback,
		shopIndex:     make(map[model.ShopID]int, len(doc.Shops)),
		defaultLocale: def,
		locales:       []language.Tag{def},
	}
	seenLocale := map[language.Tag]bool{def: true}

	for _, e := range doc.Shops {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: shop with empty id", ErrInvalidCatalog)
		}
		if _, dup := c.shopIndex[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate shop %q", ErrInvalidCatalog, e.ID)
		}
		s := shop{id: e.ID, names: make(map[language.Tag]string, len(e.Names))}
		for _, raw := range slices.Sorted(maps.Keys(e.Names)) {
			name := e.Names[raw]
			tag, err := canonicalLocale(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: shop %q locale %q: %v", ErrInvalidCatalog, e.ID, raw, err)
			}
			s.names[tag] = name
			if !seenLocale[tag] {
				seenLocale[tag] = true
				c.locales = append(c.locales, tag)
			}
		}
		if s.names[def] == "" {
			return nil, fmt.Errorf("%w: shop %q has no %s name", ErrInvalidCatalog, e.ID, def)
		}
		c.shopIndex[e.ID] = len(c.shops)
		c.shops = append(c.shops, s)
	}

	// Default locale stays first so the matcher falls back to it.
	c.matcher = language.NewMatcher(c.locales)
	return c, nil
}

func canonicalLocale(raw string) (language.Tag, error) {
	if raw == "" {
		return language.Und, errors.New("empty locale")
	}
	return language.Parse(raw)
}

// DefaultLocale is the locale used when none is requested.
func (c *Catalog) DefaultLocale() language.Tag { return c.defaultLocale }

// Locales lists the supported locales, default first.
func (c *Catalog) Locales() []language.Tag {
	return append([]language.Tag(nil), c.locales...)
}

// ResolveLocale picks the best supported locale for an Accept-Language header value.
// Empty or malformed input yields the default locale.
func (c *Catalog) ResolveLocale(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return c.defaultLocale
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return c.defaultLocale
	}
	_, idx, conf := c.matcher.Match(prefs...)
	if conf == language.No {
		return c.defaultLocale
	}
	return c.locales[idx]
}
