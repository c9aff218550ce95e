package domain

// InventoryAreaSummary is the item count of one custom inventory area.
type InventoryAreaSummary struct {
	AreaID     string `json:"areaID"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	ItemsCount int    `json:"itemsCount"`
}
