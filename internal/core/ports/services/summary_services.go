package services

import (
	"context"
	"time"

	"github.com/SscSPs/business_management_app/internal/core/domain"
)

// SummarySvc defines aggregation operations for charts and tables.
// Nil filters are not applied.
type SummarySvc interface {
	GetYearlySummary(ctx context.Context, userID string, year int, currency *domain.Currency) (*domain.YearlySummary, error)
	GetMonthlySummary(ctx context.Context, userID string, year int, month time.Month) (*domain.MonthlySummary, error)
	GetFinancialDistribution(ctx context.Context, userID string, txType *domain.TransactionType, currency *domain.Currency) ([]domain.DistributionEntry, error)
}
