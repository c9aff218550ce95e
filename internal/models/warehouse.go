package models

import "time"

// Product is a row of the products table.
type Product struct {
	ProductID string `db:"product_id"`
	UserID    string `db:"user_id"`
	Name      string `db:"name"`
	Category  string `db:"category"`
	Stock     int    `db:"stock"`
	MinStock  int    `db:"min_stock"`
	AuditFields
}

// Movement is a row of the movements table joined with its product.
type Movement struct {
	MovementID      string    `db:"movement_id"`
	UserID          string    `db:"user_id"`
	ProductID       string    `db:"product_id"`
	ProductName     string    `db:"product_name"`
	ProductCategory string    `db:"product_category"`
	Qty             int       `db:"qty"`
	Type            string    `db:"type"`
	CreatedAt       time.Time `db:"created_at"`
}
