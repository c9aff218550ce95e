package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/SscSPs/business_management_app/internal/core/narrative"
	portsrepo "github.com/SscSPs/business_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/platform/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	reportFinance   = "finance"
	reportWarehouse = "warehouse"
	reportInventory = "inventory"
	reportGlobal    = "global"
)

type reportService struct {
	BaseService
	txnRepo       portsrepo.TransactionReader
	movementRepo  portsrepo.MovementReader
	inventoryRepo portsrepo.InventoryReader
	metrics       *metrics.Metrics
}

// NewReportService creates the narrative report service. m may be nil.
func NewReportService(
	txnRepo portsrepo.TransactionReader,
	movementRepo portsrepo.MovementReader,
	inventoryRepo portsrepo.InventoryReader,
	m *metrics.Metrics,
	options ...ServiceOption,
) portssvc.ReportService {
	return &reportService{
		BaseService:   newBaseService(options...),
		txnRepo:       txnRepo,
		movementRepo:  movementRepo,
		inventoryRepo: inventoryRepo,
		metrics:       m,
	}
}

var _ portssvc.ReportService = (*reportService)(nil)

func (s *reportService) stamp(period domain.ReportPeriod) domain.ReportPeriod {
	if period.IssuedAt.IsZero() {
		period.IssuedAt = s.Now()
	}
	return period
}

func (s *reportService) transactions(ctx context.Context, userID string, period domain.ReportPeriod) ([]domain.Transaction, error) {
	txns, _, err := s.txnRepo.ListTransactions(ctx, userID, domain.TransactionFilter{From: period.From, Until: period.Until})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return txns, nil
}

func (s *reportService) movements(ctx context.Context, userID string, period domain.ReportPeriod) ([]domain.Movement, error) {
	movements, _, err := s.movementRepo.ListMovements(ctx, userID, domain.MovementFilter{From: period.From, Until: period.Until})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movements: %w", err)
	}
	return movements, nil
}

func (s *reportService) areas(ctx context.Context, userID string) ([]domain.InventoryAreaSummary, error) {
	areas, err := s.inventoryRepo.ListAreaSummaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory areas: %w", err)
	}
	return areas, nil
}

func (s *reportService) done(ctx context.Context, kind string, report domain.Report) *domain.Report {
	s.metrics.ReportGenerated(kind)
	s.LogInfo(ctx, "Report generated", slog.String("kind", kind), slog.Int("sections", len(report.Sections)))
	return &report
}

func (s *reportService) FinanceReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error) {
	period = s.stamp(period)
	txns, err := s.transactions(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to build finance report", slog.String("user_id", userID))
		return nil, err
	}
	return s.done(ctx, reportFinance, narrative.GenerateFinanceReport(txns, period)), nil
}

func (s *reportService) WarehouseReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error) {
	period = s.stamp(period)
	movements, err := s.movements(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to build warehouse report", slog.String("user_id", userID))
		return nil, err
	}
	return s.done(ctx, reportWarehouse, narrative.GenerateWarehouseReport(movements, period)), nil
}

func (s *reportService) InventoryReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error) {
	period = s.stamp(period)
	areas, err := s.areas(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to build inventory report", slog.String("user_id", userID))
		return nil, err
	}
	return s.done(ctx, reportInventory, narrative.GenerateInventoryReport(areas, period)), nil
}

func (s *reportService) GlobalReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error) {
	period = s.stamp(period)

	var in narrative.GlobalInput
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		in.Transactions, err = s.transactions(gctx, userID, period)
		return err
	})
	g.Go(func() error {
		var err error
		in.Movements, err = s.movements(gctx, userID, period)
		return err
	})
	g.Go(func() error {
		var err error
		in.Areas, err = s.areas(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build global report", slog.String("user_id", userID))
		return nil, err
	}
	return s.done(ctx, reportGlobal, narrative.GenerateGlobalReport(in, period)), nil
}
