package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/calc"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type balanceService struct {
	BaseService
	balanceRepo portsrepo.BalanceConfigRepositoryFacade
	txnRepo     portsrepo.TransactionReader
}

// NewBalanceService creates the service that keeps balance_config reconciled
// with the transaction history.
func NewBalanceService(balanceRepo portsrepo.BalanceConfigRepositoryFacade, txnRepo portsrepo.TransactionReader, options ...ServiceOption) portssvc.BalanceSvcFacade {
	return &balanceService{
		BaseService: newBaseService(options...),
		balanceRepo: balanceRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) GetBalanceConfig(ctx context.Context, userID string) (*domain.BalanceConfig, error) {
	cfg, err := s.balanceRepo.FindBalanceConfig(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No balance config saved yet, using zero default", slog.String("user_id", userID))
			def := domain.NewDefaultBalanceConfig(userID)
			return &def, nil
		}
		s.LogError(ctx, err, "Failed to read balance config", slog.String("user_id", userID))
		return nil, err
	}
	return cfg, nil
}

func (s *balanceService) UpdateBalanceConfig(ctx context.Context, userID string, initialUSD, initialCUP decimal.Decimal) (*domain.BalanceConfig, error) {
	if err := domain.ValidateAmount("initial USD balance", initialUSD); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount("initial CUP balance", initialCUP); err != nil {
		return nil, err
	}
	initial := domain.CurrencyAmounts{USD: initialUSD, CUP: initialCUP}
	cfg, err := s.reconcile(ctx, userID, initial)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Initial balance updated",
		slog.String("user_id", userID),
		slog.String("total_usd", cfg.TotalBalance.USD.String()),
		slog.String("total_cup", cfg.TotalBalance.CUP.String()))
	return cfg, nil
}

func (s *balanceService) RecalculateBalance(ctx context.Context, userID string) (*domain.BalanceConfig, error) {
	current, err := s.GetBalanceConfig(ctx, userID)
	if err != nil {
		return nil, err
	}
	cfg, err := s.reconcile(ctx, userID, current.InitialBalance)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Balance recalculated", slog.String("user_id", userID))
	return cfg, nil
}

// reconcile derives the total from fresh ledger totals and stores it.
func (s *balanceService) reconcile(ctx context.Context, userID string, initial domain.CurrencyAmounts) (*domain.BalanceConfig, error) {
	totals, err := s.txnRepo.SumTransactions(ctx, userID, nil, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to total transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to total transactions: %w", err)
	}

	cfg := domain.BalanceConfig{
		UserID:         userID,
		InitialBalance: initial,
		TotalBalance:   calc.ReconcileBalance(initial, totals),
		UpdatedAt:      s.Now(),
	}
	saved, err := s.balanceRepo.UpsertBalanceConfig(ctx, cfg)
	if err != nil {
		s.LogError(ctx, err, "Failed to save balance config", slog.String("user_id", userID))
		return nil, err
	}
	return saved, nil
}

func (s *balanceService) GetDashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	now := s.Now()
	curFrom, curUntil := calc.MonthBounds(now, s.Location())
	prevFrom, prevUntil := calc.PreviousMonthBounds(now, s.Location())

	var (
		cfg               *domain.BalanceConfig
		current, previous domain.LedgerTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cfg, err = s.GetBalanceConfig(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		current, err = s.txnRepo.SumTransactions(gctx, userID, &curFrom, &curUntil)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.txnRepo.SumTransactions(gctx, userID, &prevFrom, &prevUntil)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute dashboard stats", slog.String("user_id", userID))
		return nil, err
	}

	stats := calc.BuildDashboardStats(cfg.TotalBalance, current, previous)
	return &stats, nil
}
