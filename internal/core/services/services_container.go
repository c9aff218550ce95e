package services

import (
	portsrepo "github.com/SscSPs/business_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/platform/config"
	"github.com/SscSPs/business_management_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	options := []ServiceOption{WithLocation(cfg.Location)}

	container := &portssvc.ServiceContainer{}

	// Balance first: transactions recalculate it after every mutation
	container.Balance = NewBalanceService(repos.BalanceRepo, repos.TransactionRepo, options...)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Balance, options...)
	container.Summary = NewSummaryService(repos.TransactionRepo, options...)
	container.Warehouse = NewWarehouseService(repos.WarehouseRepo, cfg.LowStockDefault, options...)
	container.Report = NewReportService(repos.TransactionRepo, repos.WarehouseRepo, repos.InventoryRepo, m, options...)

	return container
}
