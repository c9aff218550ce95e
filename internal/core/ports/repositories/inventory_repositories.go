package repositories

import (
	"context"

	"github.com/SscSPs/business_management_app/internal/core/domain"
)

// InventoryReader reads the custom inventory areas. Areas are managed elsewhere.
type InventoryReader interface {
	// ListAreaSummaries returns every area of the user with its item count.
	ListAreaSummaries(ctx context.Context, userID string) ([]domain.InventoryAreaSummary, error)
}
