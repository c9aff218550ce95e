package pgsql

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTransactionWhere(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 1, 0)
	txType := domain.Expense
	currency := domain.USD

	w := transactionWhere("u1", domain.TransactionFilter{
		From:     &from,
		Until:    &until,
		Category: "Transporte",
		Type:     &txType,
		Currency: &currency,
	})

	assert.Equal(t, "WHERE user_id = $1 AND date >= $2 AND date < $3 AND category = $4 AND type = $5 AND currency = $6", w.String())
	assert.Equal(t, []any{"u1", from, until, "Transporte", "expense", "USD"}, w.args)

	assert.Equal(t, "$7", w.bind(10))
	assert.Len(t, w.args, 7)
}

func TestTransactionWhere_NoFilters(t *testing.T) {
	w := transactionWhere("u1", domain.TransactionFilter{})
	assert.Equal(t, "WHERE user_id = $1", w.String())
}

func TestMapPgError(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"23505", apperrors.ErrDuplicate},
		{"23503", apperrors.ErrValidation},
		{"23514", apperrors.ErrValidation},
	}
	for _, tt := range tests {
		err := mapPgError(&pgconn.PgError{Code: tt.code, ConstraintName: "c"}, "op")
		assert.ErrorIs(t, err, tt.want, tt.code)
	}

	cause := errors.New("connection reset")
	err := mapPgError(cause, "op")
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, apperrors.ErrValidation))
}
