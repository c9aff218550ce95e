package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/SscSPs/business_management_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRow() models.Transaction {
	return models.Transaction{
		TransactionID: "t1",
		UserID:        "u1",
		Date:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Amount:        "1500.50",
		Currency:      "CUP",
		Type:          "income",
		Category:      "Ventas",
	}
}

func TestToDomainTransaction(t *testing.T) {
	d, err := ToDomainTransaction(validRow())
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("1500.5").Equal(d.Amount))
	assert.Equal(t, domain.CUP, d.Currency)
	assert.Equal(t, domain.Income, d.Type)
	assert.NotNil(t, d.Details.Attachments)
}

func TestToDomainTransaction_CorruptRows(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Transaction)
	}{
		{"non-numeric amount", func(m *models.Transaction) { m.Amount = "abc" }},
		{"unknown currency", func(m *models.Transaction) { m.Currency = "EUR" }},
		{"unknown type", func(m *models.Transaction) { m.Type = "transfer" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(&row)

			_, err := ToDomainTransaction(row)
			assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)

			_, err = ToDomainTransactionSlice([]models.Transaction{validRow(), row})
			assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
		})
	}
}

func TestToDomainLedgerTotals(t *testing.T) {
	totals, err := ToDomainLedgerTotals([]models.LedgerTotalRow{
		{Type: "income", Currency: "USD", Total: "100.00"},
		{Type: "expense", Currency: "USD", Total: "40.00"},
		{Type: "income", Currency: "CUP", Total: "2000"},
	})
	require.NoError(t, err)

	assert.Equal(t, "100", totals.Income.USD.String())
	assert.Equal(t, "40", totals.Expense.USD.String())
	assert.Equal(t, "2000", totals.Income.CUP.String())
	assert.True(t, totals.Expense.CUP.IsZero())

	_, err = ToDomainLedgerTotals([]models.LedgerTotalRow{{Type: "income", Currency: "EUR", Total: "1"}})
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
}

func TestBalanceConfigRoundTrip(t *testing.T) {
	cfg := domain.BalanceConfig{
		UserID:         "u1",
		InitialBalance: domain.CurrencyAmounts{USD: decimal.NewFromInt(100), CUP: decimal.NewFromInt(500)},
		TotalBalance:   domain.CurrencyAmounts{USD: decimal.RequireFromString("60.25"), CUP: decimal.NewFromInt(-20)},
	}

	back, err := ToDomainBalanceConfig(ToModelBalanceConfig(cfg))
	require.NoError(t, err)
	assert.True(t, cfg.InitialBalance.Equal(back.InitialBalance))
	assert.True(t, cfg.TotalBalance.Equal(back.TotalBalance))

	row := ToModelBalanceConfig(cfg)
	row.BalanceTotalCUP = ""
	_, err = ToDomainBalanceConfig(row)
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
}

func TestToDomainMovement_UnknownType(t *testing.T) {
	_, err := ToDomainMovement(models.Movement{Type: "sideways"})
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
}
