package services

import (
	"context"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceReaderSvc defines read operations for balances
type BalanceReaderSvc interface {
	// GetBalanceConfig returns the user's config, or a zeroed default if none was saved.
	GetBalanceConfig(ctx context.Context, userID string) (*domain.BalanceConfig, error)

	// GetDashboardStats compares this calendar month with the previous one.
	GetDashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error)
}

// BalanceWriterSvc defines write operations for balances
type BalanceWriterSvc interface {
	// UpdateBalanceConfig sets a new initial balance and recomputes the total
	// from the full transaction history.
	UpdateBalanceConfig(ctx context.Context, userID string, initialUSD, initialCUP decimal.Decimal) (*domain.BalanceConfig, error)

	// RecalculateBalance recomputes the total keeping the stored initial balance.
	RecalculateBalance(ctx context.Context, userID string) (*domain.BalanceConfig, error)
}

// BalanceSvcFacade combines all balance-related service interfaces
type BalanceSvcFacade interface {
	BalanceReaderSvc
	BalanceWriterSvc
}
