package catalog

import (
	"strings"

	"github.com/kj-nakamura/baby-wear-translator/internal/model"
)

// Classify returns the category of the first rule whose key occurs in universalName.
// Matching is a case-sensitive substring test in declaration order; no match yields the
// fallback category.
func (c *Catalog) Classify(universalName string) model.CategoryMeta {
	for _, r := range c.rules {
		if strings.Contains(universalName, r.Key) {
			return r.CategoryMeta
		}
	}
	return c.fallback
}

// Fallback is the category returned for names no rule matches.
func (c *Catalog) Fallback() model.CategoryMeta { return c.fallback }
