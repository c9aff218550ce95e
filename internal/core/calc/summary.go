package calc

import (
	"time"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
)

// NewYearlySummary returns a summary of year with all twelve months zeroed.
func NewYearlySummary(year int) domain.YearlySummary {
	months := make(map[int]domain.MonthlyTotals, 12)
	for m := 1; m <= 12; m++ {
		months[m] = domain.MonthlyTotals{}
	}
	return domain.YearlySummary{Year: year, Months: months}
}

// BuildYearlySummary buckets txs by the month of their date in loc.
// Transactions dated outside year are ignored.
func BuildYearlySummary(year int, txs []domain.Transaction, loc *time.Location) (domain.YearlySummary, error) {
	if loc == nil {
		loc = time.UTC
	}
	byMonth := make(map[int][]domain.Transaction, 12)
	for _, tx := range txs {
		local := tx.Date.In(loc)
		if local.Year() != year {
			continue
		}
		byMonth[int(local.Month())] = append(byMonth[int(local.Month())], tx)
	}

	summary := NewYearlySummary(year)
	for month, monthTxs := range byMonth {
		totals, err := SumTransactions(monthTxs)
		if err != nil {
			return domain.YearlySummary{}, err
		}
		summary.Months[month] = domain.MonthlyTotals(totals)
	}
	return summary, nil
}

// BuildMonthlySummary totals the month's transactions per type with a
// per-category breakdown.
func BuildMonthlySummary(year int, month time.Month, txs []domain.Transaction) (domain.MonthlySummary, error) {
	totals, err := SumTransactions(txs)
	if err != nil {
		return domain.MonthlySummary{}, err
	}

	summary := domain.MonthlySummary{
		Year:    year,
		Month:   int(month),
		Income:  domain.TypeSummary{Totals: totals.For(domain.Income), ByCategory: map[string]domain.CurrencyAmounts{}},
		Expense: domain.TypeSummary{Totals: totals.For(domain.Expense), ByCategory: map[string]domain.CurrencyAmounts{}},
	}
	for _, tx := range txs {
		ts := &summary.Income
		if tx.Type == domain.Expense {
			ts = &summary.Expense
		}
		cat := ts.ByCategory[tx.Category]
		cat.Add(tx.Currency, tx.Amount)
		ts.ByCategory[tx.Category] = cat
	}
	return summary, nil
}

type distributionKey struct {
	txType   domain.TransactionType
	category string
	currency domain.Currency
}

// BuildDistribution groups txs by (type, category, currency) and sums each
// group. Entries come out in order of first appearance and keys never repeat.
func BuildDistribution(txs []domain.Transaction) ([]domain.DistributionEntry, error) {
	index := make(map[distributionKey]int)
	entries := make([]domain.DistributionEntry, 0)
	for _, tx := range txs {
		if !tx.Type.IsValid() {
			return nil, apperrors.NewDataIntegrityError("type", string(tx.Type), nil)
		}
		if !tx.Currency.IsValid() {
			return nil, apperrors.NewDataIntegrityError("currency", string(tx.Currency), nil)
		}
		key := distributionKey{tx.Type, tx.Category, tx.Currency}
		if i, ok := index[key]; ok {
			entries[i].Value = entries[i].Value.Add(tx.Amount)
			continue
		}
		index[key] = len(entries)
		entries = append(entries, domain.DistributionEntry{
			Name:     tx.Category,
			Value:    tx.Amount,
			Type:     tx.Type,
			Currency: tx.Currency,
		})
	}
	return entries, nil
}
