package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/dto"
	"github.com/SscSPs/business_management_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// generateTestToken creates a signed HS256 token for userID.
func generateTestToken(userID string) (string, error) {
	return middleware.IssueToken(middleware.AuthConfig{Secret: testJWTSecret}, userID, time.Hour)
}

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetBalanceConfig(ctx context.Context, userID string) (*domain.BalanceConfig, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceConfig), args.Error(1)
}

func (m *MockBalanceService) GetDashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockBalanceService) UpdateBalanceConfig(ctx context.Context, userID string, initialUSD, initialCUP decimal.Decimal) (*domain.BalanceConfig, error) {
	args := m.Called(ctx, userID, initialUSD, initialCUP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceConfig), args.Error(1)
}

func (m *MockBalanceService) RecalculateBalance(ctx context.Context, userID string) (*domain.BalanceConfig, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceConfig), args.Error(1)
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockTransactionService) GetRecentActivity(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock WarehouseService ---
type MockWarehouseService struct {
	mock.Mock
}

func (m *MockWarehouseService) ListProducts(ctx context.Context, userID string, filter domain.ProductFilter) (*domain.ProductPage, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductPage), args.Error(1)
}

func (m *MockWarehouseService) ListMovements(ctx context.Context, userID string, filter domain.MovementFilter) (*domain.MovementPage, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovementPage), args.Error(1)
}

func (m *MockWarehouseService) GetWarehouseStats(ctx context.Context, userID string) (*domain.WarehouseStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarehouseStats), args.Error(1)
}

func (m *MockWarehouseService) CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockWarehouseService) RegisterMovement(ctx context.Context, userID string, req dto.RegisterMovementRequest) (*domain.Movement, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

var _ portssvc.WarehouseSvcFacade = (*MockWarehouseService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) report(ctx context.Context, method string, userID string, period domain.ReportPeriod) (*domain.Report, error) {
	args := m.MethodCalled(method, ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) FinanceReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error) {
	return m.report(ctx, "FinanceReport", userID, period)
}

func (m *MockReportService) WarehouseReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error) {
	return m.report(ctx, "WarehouseReport", userID, period)
}

func (m *MockReportService) InventoryReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error) {
	return m.report(ctx, "InventoryReport", userID, period)
}

func (m *MockReportService) GlobalReport(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error) {
	return m.report(ctx, "GlobalReport", userID, period)
}

var _ portssvc.ReportService = (*MockReportService)(nil)
