package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/business_management_app/internal/apperrors"
)

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// IsValid reports whether m is a known movement type.
func (m MovementType) IsValid() bool {
	return m == MovementIn || m == MovementOut
}

// MovementTypeFilter turns a query value into an optional filter.
func MovementTypeFilter(s string) *MovementType {
	m := MovementType(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return nil
	}
	return &m
}

// Product is a stock-keeping unit of the warehouse.
type Product struct {
	ProductID string `json:"productID"`
	UserID    string `json:"userID"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Stock     int    `json:"stock"`
	MinStock  int    `json:"minStock"`
	AuditFields
}

// IsLowStock reports whether stock is at or below the product's minimum,
// using fallback when no minimum was configured.
func (p Product) IsLowStock(fallback int) bool {
	min := p.MinStock
	if min <= 0 {
		min = fallback
	}
	return p.Stock <= min
}

// Validate checks the fields a product must carry before it is stored.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if p.Stock < 0 || p.MinStock < 0 {
		return fmt.Errorf("%w: stock values cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// Movement records stock entering or leaving the warehouse.
type Movement struct {
	MovementID      string       `json:"movementID"`
	UserID          string       `json:"userID"`
	ProductID       string       `json:"productID"`
	ProductName     string       `json:"productName"`
	ProductCategory string       `json:"productCategory"`
	Qty             int          `json:"qty"`
	Type            MovementType `json:"type"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// Validate checks the fields a movement must carry before it is stored.
func (m Movement) Validate() error {
	if m.ProductID == "" {
		return fmt.Errorf("%w: product id is required", apperrors.ErrValidation)
	}
	if m.Qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if !m.Type.IsValid() {
		return fmt.Errorf("%w: unsupported movement type %q", apperrors.ErrValidation, m.Type)
	}
	return nil
}

// StockDelta is the change the movement applies to its product's stock.
func (m Movement) StockDelta() int {
	if m.Type == MovementOut {
		return -m.Qty
	}
	return m.Qty
}

// ProductFilter narrows a product query.
type ProductFilter struct {
	Search   string
	Category string
	Page
}

// MovementFilter narrows a movement query. Nil and zero fields are not applied.
type MovementFilter struct {
	Type      *MovementType
	ProductID string
	From      *time.Time // inclusive
	Until     *time.Time // exclusive
	Page
}

// ProductPage is one page of products plus the exact total.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// MovementPage is one page of movements plus the exact total.
type MovementPage struct {
	Movements []Movement `json:"movements"`
	Total     int        `json:"total"`
}

// CategoryCount is the number of products in one category.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// WarehouseStats summarizes the product catalogue.
type WarehouseStats struct {
	TotalProducts int             `json:"totalProducts"`
	LowStockCount int             `json:"lowStockCount"`
	Distribution  []CategoryCount `json:"distribution"`
	TopByStock    []Product       `json:"topByStock"`
}
