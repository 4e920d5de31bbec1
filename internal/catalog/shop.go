package catalog

import (
	"slices"

	"github.com/kj-nakamura/baby-wear-translator/internal/model"
	"golang.org/x/text/language"
)

// Shop is a shop id paired with its localized display name.
type Shop struct {
	ID          model.ShopID `json:"id"`
	DisplayName string       `json:"display_name"`
}

// AlternateName is a garment's name at a shop other than the selected one.
type AlternateName struct {
	ShopID      model.ShopID `json:"shop_id"`
	DisplayName string       `json:"display_name"`
	Name        string       `json:"name"`
}

// Known reports whether id is declared in the catalog.
func (c *Catalog) Known(id model.ShopID) bool {
	_, ok := c.shopIndex[id]
	return ok
}

// DisplayName returns the default-locale display name of a shop, or the id itself when
// the shop is unknown.
func (c *Catalog) DisplayName(id model.ShopID) string {
	return c.DisplayNameIn(c.defaultLocale, id)
}

// DisplayNameIn returns the shop's name in locale, falling back to the locale's base
// language, then the default locale, then the raw id.
func (c *Catalog) DisplayNameIn(locale language.Tag, id model.ShopID) string {
	i, ok := c.shopIndex[id]
	if !ok {
		return string(id)
	}
	names := c.shops[i].names
	if n, ok := names[locale]; ok {
		return n
	}
	if base, conf := locale.Base(); conf != language.No {
		if n, ok := names[language.Make(base.String())]; ok {
			return n
		}
	}
	return names[c.defaultLocale]
}

// Shops lists every catalog shop in declaration order, named in locale.
func (c *Catalog) Shops(locale language.Tag) []Shop {
	out := make([]Shop, 0, len(c.shops))
	for _, s := range c.shops {
		out = append(out, Shop{ID: s.id, DisplayName: c.DisplayNameIn(locale, s.id)})
	}
	return out
}

// AlternateNames joins the garment's other_shop_names with default-locale display names.
func (c *Catalog) AlternateNames(g model.Garment) []AlternateName {
	return c.AlternateNamesIn(c.defaultLocale, g)
}

// AlternateNamesIn is AlternateNames for a given locale. Known shops come first in catalog
// order, then unknown ids in lexical order. The order is for display only.
func (c *Catalog) AlternateNamesIn(locale language.Tag, g model.Garment) []AlternateName {
	out := make([]AlternateName, 0, len(g.OtherShopNames))
	if len(g.OtherShopNames) == 0 {
		return out
	}
	for _, s := range c.shops {
		if name, ok := g.OtherShopNames[s.id]; ok {
			out = append(out, AlternateName{ShopID: s.id, DisplayName: c.DisplayNameIn(locale, s.id), Name: name})
		}
	}
	var unknown []model.ShopID
	for id := range g.OtherShopNames {
		if !c.Known(id) {
			unknown = append(unknown, id)
		}
	}
	slices.Sort(unknown)
	for _, id := range unknown {
		out = append(out, AlternateName{ShopID: id, DisplayName: string(id), Name: g.OtherShopNames[id]})
	}
	return out
}
