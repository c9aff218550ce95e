package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Currency is the code of a currency the business operates in.
type Currency string

const (
	USD Currency = "USD"
	CUP Currency = "CUP"
)

// SupportedCurrencies lists currencies in their canonical display order.
var SupportedCurrencies = []Currency{USD, CUP}

// IsValid reports whether c is a supported currency.
func (c Currency) IsValid() bool {
	return c == USD || c == CUP
}

// ParseCurrency parses a currency code case-insensitively.
func ParseCurrency(s string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}

// CurrencyFilter turns a query value into an optional filter.
// "all", empty and unrecognized values mean no filter.
func CurrencyFilter(s string) *Currency {
	c, ok := ParseCurrency(s)
	if !ok {
		return nil
	}
	return &c
}

// AmountPlaces is the number of decimal places a stored amount carries.
const AmountPlaces = 2

// amountLimit is the first magnitude a NUMERIC(18,2) column cannot hold.
var amountLimit = decimal.New(1, 16)

// ValidateAmount rejects amounts the store would round or could not hold.
// field names the value in the error message.
func ValidateAmount(field string, d decimal.Decimal) error {
	if !d.Equal(d.Round(AmountPlaces)) {
		return fmt.Errorf("%w: %s must have at most %d decimal places", apperrors.ErrValidation, field, AmountPlaces)
	}
	if d.Abs().GreaterThanOrEqual(amountLimit) {
		return fmt.Errorf("%w: %s is out of range", apperrors.ErrValidation, field)
	}
	return nil
}

// CurrencyAmounts holds one exact amount per supported currency.
type CurrencyAmounts struct {
	USD decimal.Decimal `json:"USD"`
	CUP decimal.Decimal `json:"CUP"`
}

// Get returns the amount for c, zero for unsupported currencies.
func (a CurrencyAmounts) Get(c Currency) decimal.Decimal {
	switch c {
	case USD:
		return a.USD
	case CUP:
		return a.CUP
	}
	return decimal.Zero
}

// Add accumulates amount into the bucket of c. It returns false, leaving a
// untouched, when c is not supported.
func (a *CurrencyAmounts) Add(c Currency, amount decimal.Decimal) bool {
	switch c {
	case USD:
		a.USD = a.USD.Add(amount)
	case CUP:
		a.CUP = a.CUP.Add(amount)
	default:
		return false
	}
	return true
}

// Plus returns the per-currency sum of a and b.
func (a CurrencyAmounts) Plus(b CurrencyAmounts) CurrencyAmounts {
	return CurrencyAmounts{USD: a.USD.Add(b.USD), CUP: a.CUP.Add(b.CUP)}
}

// Minus returns the per-currency difference a - b.
func (a CurrencyAmounts) Minus(b CurrencyAmounts) CurrencyAmounts {
	return CurrencyAmounts{USD: a.USD.Sub(b.USD), CUP: a.CUP.Sub(b.CUP)}
}

// Equal compares amounts numerically, ignoring exponent differences.
func (a CurrencyAmounts) Equal(b CurrencyAmounts) bool {
	return a.USD.Equal(b.USD) && a.CUP.Equal(b.CUP)
}
