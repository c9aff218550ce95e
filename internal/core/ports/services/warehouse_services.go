package services

import (
	"context"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/SscSPs/business_management_app/internal/dto"
)

// WarehouseReaderSvc defines read operations for the warehouse
type WarehouseReaderSvc interface {
	ListProducts(ctx context.Context, userID string, filter domain.ProductFilter) (*domain.ProductPage, error)
	ListMovements(ctx context.Context, userID string, filter domain.MovementFilter) (*domain.MovementPage, error)
	GetWarehouseStats(ctx context.Context, userID string) (*domain.WarehouseStats, error)
}

// WarehouseWriterSvc defines write operations for the warehouse
type WarehouseWriterSvc interface {
	CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*domain.Product, error)

	// RegisterMovement records the movement and adjusts the product stock atomically.
	RegisterMovement(ctx context.Context, userID string, req dto.RegisterMovementRequest) (*domain.Movement, error)
}

// WarehouseSvcFacade combines all warehouse-related service interfaces
type WarehouseSvcFacade interface {
	WarehouseReaderSvc
	WarehouseWriterSvc
}
