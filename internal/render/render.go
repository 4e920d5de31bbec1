// Package render turns milestone payloads into display models and terminal text.
// Category metadata and shop names always come from the catalog, never from the payload.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kj-nakamura/baby-wear-translator/internal/catalog"
	"github.com/kj-nakamura/baby-wear-translator/internal/model"
	"golang.org/x/text/language"
)

// Item is a garment ready for display.
type Item struct {
	UniversalName string                  `json:"universal_name"`
	Shop          string                  `json:"shop,omitempty"`
	ShopName      string                  `json:"shop_specific_name"`
	Category      model.CategoryMeta      `json:"category"`
	Alternates    []catalog.AlternateName `json:"alternates"`
}

// Slot is a milestone ready for display.
type Slot struct {
	AgeInMonths int    `json:"age_in_months"`
	TargetDate  string `json:"target_date"`
	Size        string `json:"size"`
	Placeholder bool   `json:"placeholder"`
	Selected    bool   `json:"selected"`
	Items       []Item `json:"items"`
}

// Recommendation is the legacy single-point view.
type Recommendation struct {
	AgeInMonths int    `json:"age_in_months"`
	Size        string `json:"size"`
	Items       []Item `json:"items"`
}

// Renderer derives display models for one locale and one selected shop.
type Renderer struct {
	catalog *catalog.Catalog
	locale  language.Tag
	shop    model.ShopID
	msg     messages
}

// New creates a Renderer. An empty shop means no shop was selected for the request.
func New(c *catalog.Catalog, locale language.Tag, shop model.ShopID) *Renderer {
	return &Renderer{catalog: c, locale: locale, shop: shop, msg: messagesFor(locale)}
}

// Item enriches a garment with its category and shop names.
func (r *Renderer) Item(g model.Garment) Item {
	it := Item{
		UniversalName: g.UniversalName,
		ShopName:      g.ShopSpecificName,
		Category:      r.catalog.Classify(g.UniversalName),
		Alternates:    r.catalog.AlternateNamesIn(r.locale, g),
	}
	if r.shop != "" {
		it.Shop = r.catalog.DisplayNameIn(r.locale, r.shop)
	}
	return it
}

func (r *Renderer) items(gs []model.Garment) []Item {
	out := make([]Item, 0, len(gs))
	for _, g := range gs {
		out = append(out, r.Item(g))
	}
	return out
}

// Slots converts the visible timeline. selected marks one index; out of range marks none.
func (r *Renderer) Slots(visible []model.MilestoneSlot, selected int) []Slot {
	out := make([]Slot, 0, len(visible))
	for i, s := range visible {
		out = append(out, Slot{
			AgeInMonths: s.AgeInMonths,
			TargetDate:  s.TargetDate.String(),
			Size:        s.Size,
			Placeholder: s.Size == model.SizeUnknown,
			Selected:    i == selected,
			Items:       r.items(s.Items),
		})
	}
	return out
}

// Recommendation converts a legacy recommendation payload.
func (r *Renderer) Recommendation(resp model.RecommendationResponse) Recommendation {
	return Recommendation{AgeInMonths: resp.AgeInMonths, Size: resp.Size, Items: r.items(resp.Items)}
}

// WriteTimeline prints one line per slot and the items of the selected slot.
func (r *Renderer) WriteTimeline(w io.Writer, slots []Slot) error {
	if len(slots) == 0 {
		_, err := fmt.Fprintln(w, r.msg.noUpcoming)
		return err
	}
	var active *Slot
	for i := range slots {
		s := &slots[i]
		marker := " "
		if s.Selected {
			marker = "*"
			active = s
		}
		size := s.Size
		if s.Placeholder {
			size = "-"
		}
		if _, err := fmt.Fprintf(w, "%s %s  %s  %s\n", marker, r.msg.age(s.AgeInMonths), s.TargetDate, size); err != nil {
			return err
		}
	}
	if active == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if active.Placeholder {
		_, err := fmt.Fprintln(w, r.msg.pending)
		return err
	}
	return r.writeItems(w, active.Items)
}

// WriteRecommendation prints the legacy single-point view.
func (r *Renderer) WriteRecommendation(w io.Writer, rec Recommendation) error {
	if _, err := fmt.Fprintf(w, "%s  %s\n\n", r.msg.age(rec.AgeInMonths), rec.Size); err != nil {
		return err
	}
	return r.writeItems(w, rec.Items)
}

func (r *Renderer) writeItems(w io.Writer, items []Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, r.msg.noItems)
		return err
	}
	for _, it := range items {
		line := fmt.Sprintf("%s [%s] %s", it.Category.Emoji, it.Category.Label, it.UniversalName)
		if it.ShopName != "" {
			if it.Shop != "" {
				line += fmt.Sprintf("  (%s: %s)", it.Shop, it.ShopName)
			} else {
				line += fmt.Sprintf("  (%s)", it.ShopName)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		for _, alt := range it.Alternates {
			if _, err := fmt.Fprintf(w, "    %s: %s\n", alt.DisplayName, alt.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
