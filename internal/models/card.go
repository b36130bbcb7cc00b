package models

// Tier is the lottery card category. It determines price and prize value
// scale, not win probability.
type Tier string

const (
	TierVIP      Tier = "VIP"
	TierStandard Tier = "Standard"
)

// CardDefinition is a static catalog entry. Cards are loaded from a fixed
// catalog, never persisted per-account and never user-editable.
type CardDefinition struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Tier   Tier     `json:"tier"`
	Price  float64  `json:"price"`
	Prizes []string `json:"prizes"` // display labels, e.g. "5000 Tk", "iPhone 15"
	Icon   string   `json:"icon"`
	Color  string   `json:"color"`
}
