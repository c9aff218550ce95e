package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/business_management_app/internal/core/calc"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
)

type summaryService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

// NewSummaryService creates the service behind the charts and summary tables.
func NewSummaryService(txnRepo portsrepo.TransactionReader, options ...ServiceOption) portssvc.SummarySvc {
	return &summaryService{
		BaseService: newBaseService(options...),
		txnRepo:     txnRepo,
	}
}

var _ portssvc.SummarySvc = (*summaryService)(nil)

// fetch loads every matching transaction without pagination.
func (s *summaryService) fetch(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	txns, _, err := s.txnRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for summary", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return txns, nil
}

func (s *summaryService) GetYearlySummary(ctx context.Context, userID string, year int, currency *domain.Currency) (*domain.YearlySummary, error) {
	from, until := calc.YearBounds(year, s.Location())
	txns, err := s.fetch(ctx, userID, domain.TransactionFilter{From: &from, Until: &until, Currency: currency})
	if err != nil {
		return nil, err
	}

	summary, err := calc.BuildYearlySummary(year, txns, s.Location())
	if err != nil {
		s.LogError(ctx, err, "Corrupt transaction in yearly summary", slog.Int("year", year))
		return nil, err
	}
	s.LogDebug(ctx, "Yearly summary built", slog.Int("year", year), slog.Int("transactions", len(txns)))
	return &summary, nil
}

func (s *summaryService) GetMonthlySummary(ctx context.Context, userID string, year int, month time.Month) (*domain.MonthlySummary, error) {
	from, until := calc.MonthOf(year, month, s.Location())
	txns, err := s.fetch(ctx, userID, domain.TransactionFilter{From: &from, Until: &until})
	if err != nil {
		return nil, err
	}

	summary, err := calc.BuildMonthlySummary(year, month, txns)
	if err != nil {
		s.LogError(ctx, err, "Corrupt transaction in monthly summary", slog.Int("year", year), slog.Int("month", int(month)))
		return nil, err
	}
	return &summary, nil
}

func (s *summaryService) GetFinancialDistribution(ctx context.Context, userID string, txType *domain.TransactionType, currency *domain.Currency) ([]domain.DistributionEntry, error) {
	from, until := calc.MonthBounds(s.Now(), s.Location())
	txns, err := s.fetch(ctx, userID, domain.TransactionFilter{From: &from, Until: &until, Type: txType, Currency: currency})
	if err != nil {
		return nil, err
	}

	entries, err := calc.BuildDistribution(txns)
	if err != nil {
		s.LogError(ctx, err, "Corrupt transaction in distribution")
		return nil, err
	}
	return entries, nil
}
