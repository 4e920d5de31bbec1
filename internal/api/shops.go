package api

import (
	"net/http"

	"github.com/kj-nakamura/baby-wear-translator/internal/api/respond"
	"github.com/kj-nakamura/baby-wear-translator/internal/catalog"
)

// ShopsHandler serves the shop list from the catalog.
type ShopsHandler struct {
	catalog *catalog.Catalog
}

// NewShopsHandler creates a new shops handler
func NewShopsHandler(c *catalog.Catalog) *ShopsHandler { return &ShopsHandler{catalog: c} }

// ShopsResponse is the body of GET /api/shops.
type ShopsResponse struct {
	Locale string         `json:"locale"`
	Shops  []catalog.Shop `json:"shops"`
}

// ListShops handles GET /api/shops. ?lang= takes precedence over Accept-Language.
func (h *ShopsHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	pref := r.URL.Query().Get("lang")
	if pref == "" {
		pref = r.Header.Get("Accept-Language")
	}
	locale := h.catalog.ResolveLocale(pref)

	respond.WriteJSON(w, http.StatusOK, ShopsResponse{
		Locale: locale.String(),
		Shops:  h.catalog.Shops(locale),
	})
}
