package model

import "github.com/go-openapi/strfmt"

// ShopID identifies a retail shop. The value is opaque and shared with the backend.
type ShopID string

const (
	ShopNishimatsuya ShopID = "nishimatsuya"
	ShopUniqlo       ShopID = "uniqlo"
	ShopAkachanHonpo ShopID = "akachan_honpo"
)

// SizeUnknown marks a placeholder slot that has not been filled by the backend yet.
const SizeUnknown = "unknown"

// Garment is a single recommended clothing item.
// ShopSpecificName belongs to the shop selected in the request that produced the record.
type Garment struct {
	UniversalName    string            `json:"universal_name"`
	ShopSpecificName string            `json:"shop_specific_name"`
	OtherShopNames   map[ShopID]string `json:"other_shop_names,omitempty"`
}

// CategoryMeta is display metadata derived from a garment's universal name.
type CategoryMeta struct {
	Label string `json:"label" yaml:"label"`
	Emoji string `json:"emoji" yaml:"emoji"`
	Color string `json:"color" yaml:"color"`
}

// MilestoneSlot is one dated checkpoint on the growth timeline.
type MilestoneSlot struct {
	AgeInMonths int         `json:"age_in_months"`
	TargetDate  strfmt.Date `json:"target_date"`
	Size        string      `json:"size"`
	Items       []Garment   `json:"items"`
}

// MilestoneResponse is the payload of the milestones endpoint. Slots are ordered by age.
type MilestoneResponse struct {
	Milestones []MilestoneSlot `json:"milestones"`
}

// RecommendationResponse is the payload of the legacy single-point recommend endpoint.
type RecommendationResponse struct {
	AgeInMonths int       `json:"age_in_months"`
	Size        string    `json:"size"`
	Items       []Garment `json:"items"`
}

// ErrorResponse is the error body returned by the gateway.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
