package narrative

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/business_management_app/internal/core/calc"
	"github.com/SscSPs/business_management_app/internal/core/domain"
)

// InventoryReportTitle is the title of every inventory report.
const InventoryReportTitle = "Informe de Inventario de Activos"

// GenerateInventoryReport builds the asset inventory report from per-area counts.
// areas is not reordered.
func GenerateInventoryReport(areas []domain.InventoryAreaSummary, period domain.ReportPeriod) domain.Report {
	total := 0
	for _, a := range areas {
		total += a.ItemsCount
	}

	metadata := []domain.MetadataEntry{
		{Label: "Período", Value: periodLabel(period)},
		{Label: "Fecha de emisión", Value: issueDate(period)},
		{Label: "Total Activos/Items", Value: strconv.Itoa(total)},
	}

	summary := domain.ParagraphSection{Title: "1. Estado del Inventario por Áreas"}
	if len(areas) == 0 {
		summary.Content = "No hay áreas de inventario registradas en el sistema para este periodo."
	} else {
		summary.Content = fmt.Sprintf(
			"El inventario actual se distribuye en %d áreas operativas, con un total de %d ítems registrados en el sistema durante este periodo.",
			len(areas), total,
		)
	}

	breakdown := domain.TableSection{
		Title:   "2. Desglose por Área",
		Headers: []string{"Área", "Items Registrados", "Icono Ref."},
	}
	for _, a := range calc.TopNInt(areas, 0, func(a domain.InventoryAreaSummary) int { return a.ItemsCount }) {
		breakdown.Rows = append(breakdown.Rows, []string{a.Name, strconv.Itoa(a.ItemsCount), orDefault(a.Icon, "-")})
	}
	if len(breakdown.Rows) == 0 {
		breakdown.Rows = [][]string{{noData, "0", "-"}}
	}

	return domain.Report{
		Title:    InventoryReportTitle,
		Metadata: metadata,
		Sections: []domain.Section{summary, breakdown},
	}
}
