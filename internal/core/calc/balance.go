// Package calc holds the exact decimal arithmetic behind balances, period
// comparisons and summaries. Nothing in here performs I/O.
package calc

import (
	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SumTransactions accumulates transactions into per-type, per-currency totals.
// A currency or type the ledger does not know is a data-integrity error.
func SumTransactions(txs []domain.Transaction) (domain.LedgerTotals, error) {
	var totals domain.LedgerTotals
	for _, tx := range txs {
		if err := accumulate(&totals, tx); err != nil {
			return domain.LedgerTotals{}, err
		}
	}
	return totals, nil
}

func accumulate(totals *domain.LedgerTotals, tx domain.Transaction) error {
	var bucket *domain.CurrencyAmounts
	switch tx.Type {
	case domain.Income:
		bucket = &totals.Income
	case domain.Expense:
		bucket = &totals.Expense
	default:
		return apperrors.NewDataIntegrityError("type", string(tx.Type), nil)
	}
	if !bucket.Add(tx.Currency, tx.Amount) {
		return apperrors.NewDataIntegrityError("currency", string(tx.Currency), nil)
	}
	return nil
}

// ReconcileBalance returns initial + income - expense per currency.
func ReconcileBalance(initial domain.CurrencyAmounts, totals domain.LedgerTotals) domain.CurrencyAmounts {
	return initial.Plus(totals.Net())
}

// PercentChange returns ((current - previous) / previous) * 100 rounded to two
// places. It returns nil when previous is zero; there is no meaningful
// percentage without prior data.
func PercentChange(current, previous decimal.Decimal) *decimal.Decimal {
	if previous.IsZero() {
		return nil
	}
	change := current.Sub(previous).Div(previous).Mul(hundred).Round(2)
	return &change
}

// ComparePeriods builds the per-currency comparison of two period totals.
func ComparePeriods(current, previous domain.CurrencyAmounts) domain.PeriodComparison {
	return domain.PeriodComparison{
		Current:  current,
		Previous: previous,
		Change: domain.CurrencyChange{
			USD: PercentChange(current.USD, previous.USD),
			CUP: PercentChange(current.CUP, previous.CUP),
		},
	}
}

// BuildDashboardStats combines the reconciled balance with the month-over-month
// comparison of income and expense.
func BuildDashboardStats(balance domain.CurrencyAmounts, current, previous domain.LedgerTotals) domain.DashboardStats {
	return domain.DashboardStats{
		Balance: balance,
		Income:  ComparePeriods(current.Income, previous.Income),
		Expense: ComparePeriods(current.Expense, previous.Expense),
	}
}
