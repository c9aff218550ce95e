package narrative

import "github.com/SscSPs/business_management_app/internal/core/domain"

// GlobalReportTitle is the title of the consolidated report.
const GlobalReportTitle = "Informe Ejecutivo Global Integrado"

// Divider titles of the global report.
const (
	FinanceDivider   = "I. MÓDULO FINANCIERO"
	WarehouseDivider = "II. MÓDULO DE ALMACÉN"
	InventoryDivider = "III. INVENTARIO"
)

// GlobalInput bundles the records of every module for one period.
type GlobalInput struct {
	Transactions []domain.Transaction
	Movements    []domain.Movement
	Areas        []domain.InventoryAreaSummary
}

// GenerateGlobalReport concatenates the finance, warehouse and inventory
// reports under divider sections. Metadata comes from the finance report.
func GenerateGlobalReport(in GlobalInput, period domain.ReportPeriod) domain.Report {
	if period.IssuedAt.IsZero() {
		period.IssuedAt = period.IssueDate()
	}
	fin := GenerateFinanceReport(in.Transactions, period)
	alm := GenerateWarehouseReport(in.Movements, period)
	inv := GenerateInventoryReport(in.Areas, period)

	sections := make([]domain.Section, 0, len(fin.Sections)+len(alm.Sections)+len(inv.Sections)+3)
	sections = append(sections, domain.HeaderSection{Title: FinanceDivider})
	sections = append(sections, fin.Sections...)
	sections = append(sections, domain.HeaderSection{Title: WarehouseDivider})
	sections = append(sections, alm.Sections...)
	sections = append(sections, domain.HeaderSection{Title: InventoryDivider})
	sections = append(sections, inv.Sections...)

	return domain.Report{Title: GlobalReportTitle, Metadata: fin.Metadata, Sections: sections}
}
