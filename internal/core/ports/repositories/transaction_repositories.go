package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/business_management_app/internal/core/domain"
)

// TransactionReader defines read operations for financial transactions.
// Every query is scoped to the owning user.
type TransactionReader interface {
	// FindTransactionByID retrieves one transaction. Returns apperrors.ErrNotFound
	// when it does not exist or belongs to another user.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns the matching rows ordered by date descending,
	// together with the exact number of matching rows ignoring pagination.
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error)

	// SumTransactions totals the user's transactions per type and currency.
	// Nil bounds are open; from is inclusive and until exclusive.
	SumTransactions(ctx context.Context, userID string, from, until *time.Time) (domain.LedgerTotals, error)
}

// TransactionWriter defines write operations for financial transactions.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction replaces the editable fields of an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction hard-deletes a transaction.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
