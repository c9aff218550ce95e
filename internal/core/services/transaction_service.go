package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/dto"
	"github.com/google/uuid"
)

const recentActivityDays = 30

type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
	balance portssvc.BalanceWriterSvc
}

// NewTransactionService creates the income/expense service. Every mutation is
// followed by a balance recalculation through balance.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, balance portssvc.BalanceWriterSvc, options ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: newBaseService(options...),
		txnRepo:     txnRepo,
		balance:     balance,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	txns, total, err := s.txnRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(txns)), slog.Int("total", total))
	return &domain.TransactionPage{Transactions: txns, Total: total}, nil
}

func (s *transactionService) GetRecentActivity(ctx context.Context, userID string) ([]domain.Transaction, error) {
	since := s.Now().AddDate(0, 0, -recentActivityDays)
	page, err := s.ListTransactions(ctx, userID, domain.TransactionFilter{From: &since})
	if err != nil {
		return nil, err
	}
	return page.Transactions, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := s.Now()
	txn, err := transactionFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	txn.TransactionID = uuid.NewString()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("user_id", userID))
		return nil, err
	}
	if err := s.afterMutation(ctx, userID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("currency", string(txn.Currency)))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	txn, err := transactionFromRequest(userID, dto.CreateTransactionRequest(req))
	if err != nil {
		return nil, err
	}
	txn.TransactionID = existing.TransactionID
	txn.CreatedAt = existing.CreatedAt
	txn.UpdatedAt = s.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, txn); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	if err := s.afterMutation(ctx, userID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return &txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	if err := s.afterMutation(ctx, userID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// afterMutation re-derives balance_total from the full history.
func (s *transactionService) afterMutation(ctx context.Context, userID string) error {
	if _, err := s.balance.RecalculateBalance(ctx, userID); err != nil {
		s.LogError(ctx, err, "Transaction stored but balance recalculation failed", slog.String("user_id", userID))
		return fmt.Errorf("failed to recalculate balance: %w", err)
	}
	return nil
}

func transactionFromRequest(userID string, req dto.CreateTransactionRequest) (domain.Transaction, error) {
	if req.Amount == nil {
		return domain.Transaction{}, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	currency, _ := domain.ParseCurrency(req.Currency)
	txn := domain.Transaction{
		UserID:      userID,
		Date:        req.Date,
		Amount:      *req.Amount,
		Currency:    currency,
		Type:        domain.TransactionType(strings.ToLower(strings.TrimSpace(req.Type))),
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Details:     req.Details.ToDomainDetails(),
	}
	if err := txn.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	return txn, nil
}
