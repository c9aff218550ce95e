package dto

import "github.com/SscSPs/business_management_app/internal/core/domain"

// CreateProductRequest defines the data needed to add a product to the warehouse.
type CreateProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Stock    int    `json:"stock" binding:"gte=0"`
	MinStock int    `json:"minStock" binding:"gte=0"`
}

// RegisterMovementRequest defines a stock entry or exit.
type RegisterMovementRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Qty       int    `json:"qty" binding:"required,gt=0"`
	Type      string `json:"type" binding:"required,movtype"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=200"`
}

// ListMovementsParams defines query parameters for listing movements.
type ListMovementsParams struct {
	Type      string `form:"type"`
	ProductID string `form:"productID"`
	From      string `form:"from"`
	To        string `form:"to"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"pageSize" binding:"omitempty,min=1,max=200"`
}

// ListProductsResponse wraps one page of products.
type ListProductsResponse struct {
	Products   []domain.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page,omitempty"`
	PageSize   int              `json:"pageSize,omitempty"`
	TotalPages int              `json:"totalPages,omitempty"`
}

// ListMovementsResponse wraps one page of movements.
type ListMovementsResponse struct {
	Movements  []domain.Movement `json:"movements"`
	Total      int               `json:"total"`
	Page       int               `json:"page,omitempty"`
	PageSize   int               `json:"pageSize,omitempty"`
	TotalPages int               `json:"totalPages,omitempty"`
}
