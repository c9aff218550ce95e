package narrative

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/business_management_app/internal/core/calc"
	"github.com/SscSPs/business_management_app/internal/core/domain"
)

const (
	// WarehouseReportTitle is the title of every warehouse report.
	WarehouseReportTitle = "Informe de Gestión de Almacén"
	topProductFlowCount  = 10
)

type productFlow struct {
	name    string
	in, out int
}

func (f productFlow) activity() int { return f.in + f.out }

// productFlows aggregates quantities per product name in order of first
// appearance.
func productFlows(movements []domain.Movement) []productFlow {
	flows := make([]productFlow, 0)
	index := map[string]int{}
	for _, m := range movements {
		name := orDefault(m.ProductName, unknownProduct)
		i, ok := index[name]
		if !ok {
			i = len(flows)
			index[name] = i
			flows = append(flows, productFlow{name: name})
		}
		switch m.Type {
		case domain.MovementIn:
			flows[i].in += m.Qty
		case domain.MovementOut:
			flows[i].out += m.Qty
		}
	}
	return flows
}

// GenerateWarehouseReport builds the warehouse management report for movements.
func GenerateWarehouseReport(movements []domain.Movement, period domain.ReportPeriod) domain.Report {
	var ins, outs int
	for _, m := range movements {
		switch m.Type {
		case domain.MovementIn:
			ins++
		case domain.MovementOut:
			outs++
		}
	}

	metadata := []domain.MetadataEntry{
		{Label: "Período", Value: periodLabel(period)},
		{Label: "Fecha de emisión", Value: issueDate(period)},
		{Label: "Total Movimientos", Value: strconv.Itoa(len(movements))},
	}

	summary := domain.ParagraphSection{Title: "1. Resumen Operativo de Almacén"}
	if len(movements) == 0 {
		summary.Content = "Durante el periodo no se registraron movimientos de inventario. No hay flujo operativo que analizar."
	} else {
		summary.Content = fmt.Sprintf(
			"Durante el periodo se registraron %d movimientos de inventario. El flujo operativo muestra %d entradas de abastecimiento y %d salidas por consumo o venta.",
			len(movements), ins, outs,
		)
	}

	top := calc.TopNInt(productFlows(movements), topProductFlowCount, productFlow.activity)
	flow := domain.TableSection{
		Title:   "2. Flujo de Productos (Top 10)",
		Headers: []string{"Producto", "Entradas", "Salidas", "Balance Periodo"},
	}
	for _, f := range top {
		flow.Rows = append(flow.Rows, []string{
			f.name, strconv.Itoa(f.in), strconv.Itoa(f.out), strconv.Itoa(f.in - f.out),
		})
	}
	if len(flow.Rows) == 0 {
		flow.Rows = [][]string{{noData, "0", "0", "0"}}
	}

	trend := "Tendencia a la reducción de inventario (más salidas que entradas)."
	switch {
	case len(movements) == 0:
		trend = "Sin movimientos en el periodo; no es posible establecer una tendencia de stock."
	case ins > outs:
		trend = "Tendencia a la acumulación de stock (más entradas que salidas)."
	}
	mostActive := notAvailable
	if len(top) > 0 {
		mostActive = top[0].name
	}

	conclusions := domain.ListSection{
		Title: "3. Conclusiones de Almacén",
		Items: []string{trend, fmt.Sprintf("El producto con mayor movimiento fue \"%s\".", mostActive)},
	}

	return domain.Report{
		Title:    WarehouseReportTitle,
		Metadata: metadata,
		Sections: []domain.Section{summary, flow, conclusions},
	}
}
