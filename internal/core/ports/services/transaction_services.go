package services

import (
	"context"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/SscSPs/business_management_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns matching transactions, newest first, with the exact total.
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) (*domain.TransactionPage, error)

	// GetRecentActivity returns the transactions of the last 30 days.
	GetRecentActivity(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions. Every
// mutation keeps the user's total balance reconciled.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
