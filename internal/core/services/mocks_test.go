package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) SumTransactions(ctx context.Context, userID string, from, until *time.Time) (domain.LedgerTotals, error) {
	args := m.Called(ctx, userID, from, until)
	return args.Get(0).(domain.LedgerTotals), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Mock BalanceConfigRepository ---
type MockBalanceConfigRepository struct {
	mock.Mock
}

func (m *MockBalanceConfigRepository) FindBalanceConfig(ctx context.Context, userID string) (*domain.BalanceConfig, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceConfig), args.Error(1)
}

// UpsertBalanceConfig echoes the stored config back unless a return value is set.
func (m *MockBalanceConfigRepository) UpsertBalanceConfig(ctx context.Context, cfg domain.BalanceConfig) (*domain.BalanceConfig, error) {
	args := m.Called(ctx, cfg)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if args.Get(0) == nil {
		return &cfg, nil
	}
	return args.Get(0).(*domain.BalanceConfig), nil
}

// --- Mock BalanceWriterSvc ---
type MockBalanceWriter struct {
	mock.Mock
}

func (m *MockBalanceWriter) UpdateBalanceConfig(ctx context.Context, userID string, initialUSD, initialCUP decimal.Decimal) (*domain.BalanceConfig, error) {
	args := m.Called(ctx, userID, initialUSD, initialCUP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceConfig), args.Error(1)
}

func (m *MockBalanceWriter) RecalculateBalance(ctx context.Context, userID string) (*domain.BalanceConfig, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceConfig), args.Error(1)
}

// --- Mock WarehouseRepository ---
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) ListProducts(ctx context.Context, userID string, filter domain.ProductFilter) ([]domain.Product, int, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Int(1), args.Error(2)
}

func (m *MockWarehouseRepository) FindProductByID(ctx context.Context, userID, productID string) (*domain.Product, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockWarehouseRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockWarehouseRepository) ListMovements(ctx context.Context, userID string, filter domain.MovementFilter) ([]domain.Movement, int, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Movement), args.Int(1), args.Error(2)
}

func (m *MockWarehouseRepository) LockProduct(ctx context.Context, tx pgx.Tx, userID, productID string) (*domain.Product, error) {
	args := m.Called(ctx, tx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockWarehouseRepository) SaveMovement(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	args := m.Called(ctx, tx, movement)
	return args.Error(0)
}

func (m *MockWarehouseRepository) UpdateProductStock(ctx context.Context, tx pgx.Tx, userID, productID string, stock int) error {
	args := m.Called(ctx, tx, userID, productID, stock)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockWarehouseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock InventoryReader ---
type MockInventoryReader struct {
	mock.Mock
}

func (m *MockInventoryReader) ListAreaSummaries(ctx context.Context, userID string) ([]domain.InventoryAreaSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryAreaSummary), args.Error(1)
}
