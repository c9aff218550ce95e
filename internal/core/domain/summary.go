package domain

import "github.com/shopspring/decimal"

// MonthlyTotals are the income and expense sums of one month.
type MonthlyTotals struct {
	Income  CurrencyAmounts `json:"income"`
	Expense CurrencyAmounts `json:"expense"`
}

// YearlySummary maps month numbers 1-12 to their totals. All twelve months
// are always present.
type YearlySummary struct {
	Year   int                   `json:"year"`
	Months map[int]MonthlyTotals `json:"months"`
}

// TypeSummary holds the totals of one transaction type along with the
// per-category breakdown.
type TypeSummary struct {
	Totals     CurrencyAmounts            `json:"totals"`
	ByCategory map[string]CurrencyAmounts `json:"byCategory"`
}

// MonthlySummary is the category breakdown of a single month.
type MonthlySummary struct {
	Year    int         `json:"year"`
	Month   int         `json:"month"`
	Income  TypeSummary `json:"income"`
	Expense TypeSummary `json:"expense"`
}

// DistributionEntry is the summed amount of one (type, category, currency) group.
type DistributionEntry struct {
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Type     TransactionType `json:"type"`
	Currency Currency        `json:"currency"`
}
