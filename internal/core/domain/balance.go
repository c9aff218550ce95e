package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceConfig is the per-user balance row. TotalBalance always equals
// InitialBalance plus the net of every stored transaction, per currency.
type BalanceConfig struct {
	UserID         string          `json:"userID"`
	InitialBalance CurrencyAmounts `json:"initialBalance"`
	TotalBalance   CurrencyAmounts `json:"totalBalance"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// NewDefaultBalanceConfig returns the zero-valued config used before a user
// has saved anything.
func NewDefaultBalanceConfig(userID string) BalanceConfig {
	return BalanceConfig{UserID: userID}
}

// LedgerTotals are gross sums of a set of transactions per type and currency.
type LedgerTotals struct {
	Income  CurrencyAmounts `json:"income"`
	Expense CurrencyAmounts `json:"expense"`
}

// Net returns income minus expense per currency.
func (l LedgerTotals) Net() CurrencyAmounts {
	return l.Income.Minus(l.Expense)
}

// For returns the totals of one transaction type.
func (l LedgerTotals) For(t TransactionType) CurrencyAmounts {
	if t == Expense {
		return l.Expense
	}
	return l.Income
}

// CurrencyChange holds percentage changes per currency. A nil value means the
// previous period had no data and no percentage can be given.
type CurrencyChange struct {
	USD *decimal.Decimal `json:"USD"`
	CUP *decimal.Decimal `json:"CUP"`
}

// PeriodComparison compares one transaction type between the current and the
// previous calendar month.
type PeriodComparison struct {
	Current  CurrencyAmounts `json:"current"`
	Previous CurrencyAmounts `json:"previous"`
	Change   CurrencyChange  `json:"change"`
}

// DashboardStats is the balance overview shown on the dashboard.
type DashboardStats struct {
	Balance CurrencyAmounts  `json:"balance"`
	Income  PeriodComparison `json:"income"`
	Expense PeriodComparison `json:"expense"`
}
