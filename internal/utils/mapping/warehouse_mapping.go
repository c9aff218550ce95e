package mapping

import (
	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/SscSPs/business_management_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID: d.ProductID,
		UserID:    d.UserID,
		Name:      d.Name,
		Category:  d.Category,
		Stock:     d.Stock,
		MinStock:  d.MinStock,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Name:      m.Name,
		Category:  m.Category,
		Stock:     m.Stock,
		MinStock:  m.MinStock,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainProductSlice converts a slice of model Products to a slice of domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:      d.MovementID,
		UserID:          d.UserID,
		ProductID:       d.ProductID,
		ProductName:     d.ProductName,
		ProductCategory: d.ProductCategory,
		Qty:             d.Qty,
		Type:            string(d.Type),
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) (domain.Movement, error) {
	t := domain.MovementType(m.Type)
	if !t.IsValid() {
		return domain.Movement{}, apperrors.NewDataIntegrityError("type", m.Type, nil)
	}
	return domain.Movement{
		MovementID:      m.MovementID,
		UserID:          m.UserID,
		ProductID:       m.ProductID,
		ProductName:     m.ProductName,
		ProductCategory: m.ProductCategory,
		Qty:             m.Qty,
		Type:            t,
		CreatedAt:       m.CreatedAt,
	}, nil
}

// ToDomainMovementSlice converts a slice of model Movements, stopping at the first corrupt row.
func ToDomainMovementSlice(ms []models.Movement) ([]domain.Movement, error) {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		d, err := ToDomainMovement(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

// ToDomainInventoryAreaSummary converts a model area summary to its domain form
func ToDomainInventoryAreaSummary(m models.InventoryAreaSummary) domain.InventoryAreaSummary {
	return domain.InventoryAreaSummary{
		AreaID:     m.AreaID,
		Name:       m.Name,
		Icon:       m.Icon,
		ItemsCount: m.ItemsCount,
	}
}
