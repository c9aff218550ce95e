package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/business_management_app/internal/models"
	"github.com/SscSPs/business_management_app/internal/utils/mapping"
	"github.com/SscSPs/business_management_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, user_id, date, amount::text, currency, type, category, description, details, created_at, updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for income and expense records.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Date,
		&m.Amount,
		&m.Currency,
		&m.Type,
		&m.Category,
		&m.Description,
		&m.Details,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, user_id, date, amount, currency, type, category, description, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Date,
		txn.Amount,
		m.Currency,
		m.Type,
		m.Category,
		m.Description,
		m.Details,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to save transaction "+m.TransactionID)
	}
	return nil
}

// UpdateTransaction replaces the editable fields of a transaction owned by txn.UserID.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET date = $3, amount = $4, currency = $5, type = $6, category = $7,
		    description = $8, details = $9, updated_at = $10
		WHERE transaction_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Date,
		txn.Amount,
		m.Currency,
		m.Type,
		m.Category,
		m.Description,
		m.Details,
		m.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to update transaction "+m.TransactionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction hard-deletes a transaction owned by userID.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindTransactionByID retrieves a transaction owned by userID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func transactionWhere(userID string, filter domain.TransactionFilter) *whereBuilder {
	w := newWhere("user_id", userID)
	if filter.From != nil {
		w.add("date >= ?", *filter.From)
	}
	if filter.Until != nil {
		w.add("date < ?", *filter.Until)
	}
	if filter.Category != "" {
		w.add("category = ?", filter.Category)
	}
	if filter.Type != nil {
		w.add("type = ?", string(*filter.Type))
	}
	if filter.Currency != nil {
		w.add("currency = ?", string(*filter.Currency))
	}
	return w
}

// ListTransactions retrieves matching transactions newest first and the exact match count.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	w := transactionWhere(userID, filter)

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions `+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions ` + w.String() + ` ORDER BY date DESC, created_at DESC`
	switch {
	case filter.Page.Enabled():
		limit, offset := pagination.LimitOffset(filter.Page.Page, filter.Page.PageSize)
		query += ` LIMIT ` + w.bind(limit) + ` OFFSET ` + w.bind(offset)
	case filter.Limit > 0:
		query += ` LIMIT ` + w.bind(filter.Limit)
	}

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan transactions: %w", err)
	}

	txns, err := mapping.ToDomainTransactionSlice(modelTxns)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

// SumTransactions totals transactions per type and currency inside [from, until).
func (r *PgxTransactionRepository) SumTransactions(ctx context.Context, userID string, from, until *time.Time) (domain.LedgerTotals, error) {
	w := transactionWhere(userID, domain.TransactionFilter{From: from, Until: until})
	query := `SELECT type, currency, SUM(amount)::text FROM transactions ` + w.String() + ` GROUP BY type, currency;`

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return domain.LedgerTotals{}, fmt.Errorf("failed to sum transactions: %w", err)
	}
	defer rows.Close()

	sums, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerTotalRow, error) {
		var s models.LedgerTotalRow
		err := row.Scan(&s.Type, &s.Currency, &s.Total)
		return s, err
	})
	if err != nil {
		return domain.LedgerTotals{}, fmt.Errorf("failed to scan transaction sums: %w", err)
	}

	return mapping.ToDomainLedgerTotals(sums)
}
