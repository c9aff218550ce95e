package repositories

import (
	"context"

	"github.com/SscSPs/business_management_app/internal/core/domain"
)

// BalanceConfigReader defines read operations for balance configuration.
type BalanceConfigReader interface {
	// FindBalanceConfig returns apperrors.ErrNotFound when the user never saved one.
	FindBalanceConfig(ctx context.Context, userID string) (*domain.BalanceConfig, error)
}

// BalanceConfigWriter defines write operations for balance configuration.
type BalanceConfigWriter interface {
	// UpsertBalanceConfig creates or replaces the user's config and returns the stored row.
	UpsertBalanceConfig(ctx context.Context, cfg domain.BalanceConfig) (*domain.BalanceConfig, error)
}

// BalanceConfigRepositoryFacade combines all balance-related repository interfaces
type BalanceConfigRepositoryFacade interface {
	BalanceConfigReader
	BalanceConfigWriter
}
