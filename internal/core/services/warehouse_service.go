package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/calc"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/dto"
	"github.com/google/uuid"
)

const defaultLowStock = 5

type warehouseService struct {
	BaseService
	repo            portsrepo.WarehouseRepositoryWithTx
	lowStockDefault int
}

// NewWarehouseService creates the product and stock movement service.
// lowStockDefault applies to products saved without a minimum stock.
func NewWarehouseService(repo portsrepo.WarehouseRepositoryWithTx, lowStockDefault int, options ...ServiceOption) portssvc.WarehouseSvcFacade {
	if lowStockDefault <= 0 {
		lowStockDefault = defaultLowStock
	}
	return &warehouseService{
		BaseService:     newBaseService(options...),
		repo:            repo,
		lowStockDefault: lowStockDefault,
	}
}

var _ portssvc.WarehouseSvcFacade = (*warehouseService)(nil)

func (s *warehouseService) ListProducts(ctx context.Context, userID string, filter domain.ProductFilter) (*domain.ProductPage, error) {
	products, total, err := s.repo.ListProducts(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return &domain.ProductPage{Products: products, Total: total}, nil
}

func (s *warehouseService) ListMovements(ctx context.Context, userID string, filter domain.MovementFilter) (*domain.MovementPage, error) {
	movements, total, err := s.repo.ListMovements(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	if movements == nil {
		movements = []domain.Movement{}
	}
	return &domain.MovementPage{Movements: movements, Total: total}, nil
}

func (s *warehouseService) GetWarehouseStats(ctx context.Context, userID string) (*domain.WarehouseStats, error) {
	products, _, err := s.repo.ListProducts(ctx, userID, domain.ProductFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load products for stats", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	stats := calc.BuildWarehouseStats(products, s.lowStockDefault)
	return &stats, nil
}

func (s *warehouseService) CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*domain.Product, error) {
	now := s.Now()
	product := domain.Product{
		ProductID: uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		Category:  strings.TrimSpace(req.Category),
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *warehouseService) RegisterMovement(ctx context.Context, userID string, req dto.RegisterMovementRequest) (movement *domain.Movement, err error) {
	m := domain.Movement{
		MovementID: uuid.NewString(),
		UserID:     userID,
		ProductID:  req.ProductID,
		Qty:        req.Qty,
		Type:       domain.MovementType(strings.ToLower(strings.TrimSpace(req.Type))),
		CreatedAt:  s.Now(),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin movement transaction")
		return nil, err
	}
	defer func() {
		if rbErr := s.repo.Rollback(ctx, tx); rbErr != nil && err == nil {
			err = rbErr
		}
	}()

	product, err := s.repo.LockProduct(ctx, tx, userID, m.ProductID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to lock product", slog.String("product_id", m.ProductID))
		}
		return nil, err
	}

	newStock := product.Stock + m.StockDelta()
	if newStock < 0 {
		return nil, fmt.Errorf("%w: cannot remove %d units of %q, only %d in stock",
			apperrors.ErrValidation, m.Qty, product.Name, product.Stock)
	}
	m.ProductName = product.Name
	m.ProductCategory = product.Category

	if err := s.repo.SaveMovement(ctx, tx, m); err != nil {
		s.LogError(ctx, err, "Failed to save movement", slog.String("product_id", m.ProductID))
		return nil, err
	}
	if err := s.repo.UpdateProductStock(ctx, tx, userID, m.ProductID, newStock); err != nil {
		s.LogError(ctx, err, "Failed to update product stock", slog.String("product_id", m.ProductID))
		return nil, err
	}
	if err := s.repo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit movement", slog.String("product_id", m.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Movement registered",
		slog.String("movement_id", m.MovementID),
		slog.String("type", string(m.Type)),
		slog.Int("qty", m.Qty),
		slog.Int("stock", newStock))
	return &m, nil
}
