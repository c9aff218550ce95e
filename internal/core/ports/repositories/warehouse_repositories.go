package repositories

import (
	"context"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ProductReader defines read operations for warehouse products.
type ProductReader interface {
	// ListProducts returns matching products ordered by name plus the exact total.
	ListProducts(ctx context.Context, userID string, filter domain.ProductFilter) ([]domain.Product, int, error)

	// FindProductByID returns apperrors.ErrNotFound when the product does not exist.
	FindProductByID(ctx context.Context, userID, productID string) (*domain.Product, error)
}

// ProductWriter defines write operations for warehouse products.
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
}

// MovementReader defines read operations for stock movements.
type MovementReader interface {
	// ListMovements returns matching movements newest first, joined with their
	// product's name and category, plus the exact total.
	ListMovements(ctx context.Context, userID string, filter domain.MovementFilter) ([]domain.Movement, int, error)
}

// MovementWriter defines the operations that register a movement. They run
// inside a caller-managed database transaction.
type MovementWriter interface {
	// LockProduct reads the product and holds a row lock until tx ends.
	LockProduct(ctx context.Context, tx pgx.Tx, userID, productID string) (*domain.Product, error)

	// SaveMovement inserts the movement row.
	SaveMovement(ctx context.Context, tx pgx.Tx, movement domain.Movement) error

	// UpdateProductStock sets the product's stock.
	UpdateProductStock(ctx context.Context, tx pgx.Tx, userID, productID string, stock int) error
}

// WarehouseRepositoryFacade combines all warehouse-related repository interfaces
type WarehouseRepositoryFacade interface {
	ProductReader
	ProductWriter
	MovementReader
	MovementWriter
}

// WarehouseRepositoryWithTx extends WarehouseRepositoryFacade with transaction capabilities
type WarehouseRepositoryWithTx interface {
	WarehouseRepositoryFacade
	TransactionManager
}
