package mapping

import (
	"strings"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ParseStoredDecimal parses a numeric column read back as text.
func ParseStoredDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, apperrors.NewDataIntegrityError(field, value, err)
	}
	return d, nil
}
