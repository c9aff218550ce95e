// Package narrative turns already-fetched records into structured, human
// readable reports. Generators are deterministic given the period's IssuedAt
// and never fail: missing data is reported as such in the text.
package narrative

import (
	"strings"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	dateLayout       = "02/01/2006"
	noPeriodLabel    = "Periodo no especificado"
	noData           = "Sin datos"
	notAvailable     = "N/A"
	defaultPayMethod = "Efectivo"
	noCategory       = "Sin categoría"
	unknownProduct   = "Desconocido"
)

// FormatAmount renders d with two decimals, "," as thousands separator and
// "." as decimal mark.
func FormatAmount(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}
	fixed := r.StringFixed(2)
	frac := fixed[strings.IndexByte(fixed, '.'):]
	return sign + humanize.BigComma(r.BigInt()) + frac
}

func periodLabel(p domain.ReportPeriod) string {
	if strings.TrimSpace(p.Label) == "" {
		return noPeriodLabel
	}
	return p.Label
}

func issueDate(p domain.ReportPeriod) string {
	return p.IssueDate().Format(dateLayout)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
