package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() domain.Transaction {
	return domain.Transaction{
		UserID:   "user-1",
		Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(100),
		Currency: domain.USD,
		Type:     domain.Income,
		Category: "Ventas",
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(tx *domain.Transaction)
		wantErr bool
	}{
		{name: "valid", mutate: func(tx *domain.Transaction) {}},
		{name: "missing user", mutate: func(tx *domain.Transaction) { tx.UserID = "" }, wantErr: true},
		{name: "zero amount", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.Zero }, wantErr: true},
		{name: "negative amount", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "two decimals", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.RequireFromString("10.25") }},
		{name: "sub-cent amount", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.RequireFromString("0.004") }, wantErr: true},
		{name: "three decimals", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.RequireFromString("10.255") }, wantErr: true},
		{name: "too large", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.New(1, 16) }, wantErr: true},
		{name: "unknown currency", mutate: func(tx *domain.Transaction) { tx.Currency = "EUR" }, wantErr: true},
		{name: "unknown type", mutate: func(tx *domain.Transaction) { tx.Type = "transfer" }, wantErr: true},
		{name: "blank category", mutate: func(tx *domain.Transaction) { tx.Category = "  " }, wantErr: true},
		{name: "zero date", mutate: func(tx *domain.Transaction) { tx.Date = time.Time{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "0"},
		{in: "-250.50"},
		{in: "1.500"},
		{in: "9999999999999999.99"},
		{in: "0.001", wantErr: true},
		{in: "-0.125", wantErr: true},
		{in: "10000000000000000", wantErr: true},
		{in: "-10000000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := domain.ValidateAmount("amount", decimal.RequireFromString(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilters_UnrecognizedValuesMeanNoFilter(t *testing.T) {
	for _, v := range []string{"", "all", "EUR", "  "} {
		assert.Nil(t, domain.CurrencyFilter(v), v)
	}
	for _, v := range []string{"", "all", "transfer"} {
		assert.Nil(t, domain.TransactionTypeFilter(v), v)
	}
	for _, v := range []string{"", "all", "sideways"} {
		assert.Nil(t, domain.MovementTypeFilter(v), v)
	}

	if c := domain.CurrencyFilter("usd"); assert.NotNil(t, c) {
		assert.Equal(t, domain.USD, *c)
	}
	if tt := domain.TransactionTypeFilter("Expense"); assert.NotNil(t, tt) {
		assert.Equal(t, domain.Expense, *tt)
	}
	if m := domain.MovementTypeFilter("OUT"); assert.NotNil(t, m) {
		assert.Equal(t, domain.MovementOut, *m)
	}
}

func TestTransactionDetails_PaymentMethodOr(t *testing.T) {
	empty := " "
	card := "card"

	assert.Equal(t, "Efectivo", domain.TransactionDetails{}.PaymentMethodOr("Efectivo"))
	assert.Equal(t, "Efectivo", domain.TransactionDetails{PaymentMethod: &empty}.PaymentMethodOr("Efectivo"))
	assert.Equal(t, "card", domain.TransactionDetails{PaymentMethod: &card}.PaymentMethodOr("Efectivo"))
}

func TestCurrencyAmounts_Add(t *testing.T) {
	var a domain.CurrencyAmounts

	assert.True(t, a.Add(domain.USD, decimal.RequireFromString("0.10")))
	assert.True(t, a.Add(domain.USD, decimal.RequireFromString("0.20")))
	assert.True(t, a.Add(domain.CUP, decimal.NewFromInt(5)))
	assert.False(t, a.Add("EUR", decimal.NewFromInt(1)))

	assert.True(t, a.USD.Equal(decimal.RequireFromString("0.30")))
	assert.True(t, a.CUP.Equal(decimal.NewFromInt(5)))
	assert.True(t, a.Get("EUR").IsZero())
}
