package services

import (
	"context"

	"github.com/SscSPs/business_management_app/internal/core/domain"
)

// ReportService defines operations for generating narrative reports
type ReportService interface {
	FinanceReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error)
	WarehouseReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error)
	InventoryReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error)

	// GlobalReport combines the three module reports into one document.
	GlobalReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error)
}
