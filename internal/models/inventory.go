package models

// InventoryAreaSummary is an inventory area with its aggregated item count.
type InventoryAreaSummary struct {
	AreaID     string `db:"area_id"`
	Name       string `db:"name"`
	Icon       string `db:"icon"`
	ItemsCount int    `db:"items_count"`
}
