package narrative

import (
	"fmt"
	"strings"

	"github.com/SscSPs/business_management_app/internal/core/calc"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// FinanceReportTitle is the title of every finance report.
	FinanceReportTitle = "Informe de Análisis Financiero"
	reportStatus       = "Parcial – Corte investigativo"
	topExpenseCount    = 5
)

var (
	hundred    = decimal.NewFromInt(100)
	cashLabels = map[string]bool{"": true, "cash": true, "efectivo": true}
)

type categoryTotal struct {
	name  string
	total decimal.Decimal
}

// currencyLedger is the finance summary of one currency.
type currencyLedger struct {
	income, expense     decimal.Decimal
	incomeTxs, expenses []domain.Transaction
}

func (l currencyLedger) net() decimal.Decimal { return l.income.Sub(l.expense) }

// cashExpense sums expenses paid without a method or explicitly in cash.
func (l currencyLedger) cashExpense() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range l.expenses {
		method := ""
		if t.Details.PaymentMethod != nil {
			method = strings.ToLower(strings.TrimSpace(*t.Details.PaymentMethod))
		}
		if cashLabels[method] {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// topIncomeCategory returns the highest grossing income category. Ties go to
// the category seen first.
func (l currencyLedger) topIncomeCategory() categoryTotal {
	order := make([]categoryTotal, 0)
	index := map[string]int{}
	for _, t := range l.incomeTxs {
		i, ok := index[t.Category]
		if !ok {
			i = len(order)
			index[t.Category] = i
			order = append(order, categoryTotal{name: t.Category})
		}
		order[i].total = order[i].total.Add(t.Amount)
	}
	top := calc.TopN(order, 1, func(c categoryTotal) decimal.Decimal { return c.total })
	if len(top) == 0 {
		return categoryTotal{}
	}
	return top[0]
}

// cashPercent is the whole-number share of expenses paid in cash.
func (l currencyLedger) cashPercent() decimal.Decimal {
	if !l.expense.IsPositive() {
		return decimal.Zero
	}
	return l.cashExpense().Div(l.expense).Mul(hundred).Round(0)
}

func txCurrency(t domain.Transaction) domain.Currency {
	if t.Currency == "" {
		return domain.CUP
	}
	return t.Currency
}

// groupByCurrency splits txs per currency, listing currencies in order of
// first appearance.
func groupByCurrency(txs []domain.Transaction) ([]domain.Currency, map[domain.Currency]*currencyLedger) {
	currencies := make([]domain.Currency, 0, len(domain.SupportedCurrencies))
	ledgers := map[domain.Currency]*currencyLedger{}
	for _, t := range txs {
		c := txCurrency(t)
		l, ok := ledgers[c]
		if !ok {
			l = &currencyLedger{}
			ledgers[c] = l
			currencies = append(currencies, c)
		}
		switch t.Type {
		case domain.Income:
			l.income = l.income.Add(t.Amount)
			l.incomeTxs = append(l.incomeTxs, t)
		case domain.Expense:
			l.expense = l.expense.Add(t.Amount)
			l.expenses = append(l.expenses, t)
		}
	}
	return currencies, ledgers
}

func currencyNames(cs []domain.Currency) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = string(c)
	}
	return strings.Join(names, " / ")
}

// GenerateFinanceReport builds the financial analysis report for txs.
func GenerateFinanceReport(txs []domain.Transaction, period domain.ReportPeriod) domain.Report {
	currencies, ledgers := groupByCurrency(txs)
	mainCurrency := domain.CUP
	if len(currencies) > 0 {
		mainCurrency = currencies[0]
	}
	hasUSD := ledgers[domain.USD] != nil

	metadata := []domain.MetadataEntry{
		{Label: "Período", Value: periodLabel(period)},
		{Label: "Fecha de emisión", Value: issueDate(period)},
		{Label: "Monedas de referencia", Value: orNA(currencyNames(currencies))},
		{Label: "Estatus del reporte", Value: reportStatus},
	}

	kpis, fullyCash := financeIndicators(currencies, ledgers)

	sections := []domain.Section{
		financeSummary(len(txs), mainCurrency, ledgers[mainCurrency], hasUSD),
		financeResults(currencies, ledgers),
		financeIncome(currencies, ledgers, hasUSD),
	}
	if expenses := topExpenses(txs); expenses != nil {
		sections = append(sections, *expenses)
	}
	sections = append(sections, kpis, financeConclusions(ledgers[mainCurrency], fullyCash))

	return domain.Report{Title: FinanceReportTitle, Metadata: metadata, Sections: sections}
}

func financeSummary(count int, main domain.Currency, l *currencyLedger, hasUSD bool) domain.ParagraphSection {
	const title = "1. Resumen General de Operaciones"
	if count == 0 {
		return domain.ParagraphSection{
			Title:   title,
			Content: "Durante el periodo analizado no se registraron operaciones financieras. No existe actividad que permita evaluar resultados.",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Durante el periodo analizado, se registraron un total de %d operaciones. ", count)
	if l != nil {
		net := l.net()
		outcome := "un superávit"
		if net.IsNegative() {
			outcome = "un déficit"
		}
		fmt.Fprintf(&b, "En moneda principal (%s), se observa %s operativo de %s. ", main, outcome, FormatAmount(net.Abs()))
	}
	if hasUSD {
		b.WriteString("Se evidencia actividad en divisa extranjera (USD) que requiere atención para su correcta valoración y liquidación. ")
	}
	b.WriteString("El flujo de caja muestra una dinámica mixta con predominio de operaciones corrientes.")
	return domain.ParagraphSection{Title: title, Content: b.String()}
}

func financeResults(currencies []domain.Currency, ledgers map[domain.Currency]*currencyLedger) domain.TableSection {
	section := domain.TableSection{
		Title: "2. Estado de Resultados Parcial",
		Notes: "Resultado consolidado: Se observa un comportamiento financiero diferenciado por moneda. Se recomienda consolidar saldos para un análisis integral.",
	}
	if len(currencies) == 0 {
		section.Headers = []string{"Concepto", "Importe"}
		section.Rows = [][]string{{noData, "-"}}
		return section
	}

	section.Headers = []string{"Concepto"}
	income := []string{"Ingresos totales"}
	expense := []string{"Gastos totales"}
	net := []string{"Resultado neto"}
	for _, c := range currencies {
		l := ledgers[c]
		section.Headers = append(section.Headers, fmt.Sprintf("Importe (%s)", c))
		income = append(income, FormatAmount(l.income))
		expense = append(expense, FormatAmount(l.expense))
		net = append(net, FormatAmount(l.net()))
	}
	section.Rows = [][]string{income, expense, net}
	return section
}

func financeIncome(currencies []domain.Currency, ledgers map[domain.Currency]*currencyLedger, hasUSD bool) domain.ListSection {
	section := domain.ListSection{Title: "3. Análisis de Ingresos"}
	for _, c := range currencies {
		l := ledgers[c]
		if !l.income.IsPositive() {
			continue
		}
		top := l.topIncomeCategory()
		section.Items = append(section.Items, fmt.Sprintf(
			"- **Ingresos en %s:** Total de %s. Principal fuente: %s (%s).",
			c, FormatAmount(l.income), orDefault(top.name, noCategory), FormatAmount(top.total),
		))
	}
	if len(section.Items) == 0 {
		section.Items = []string{"No se registraron ingresos en el periodo."}
	}
	if hasUSD {
		section.Notes = "Observación: Los ingresos en divisa representan activos financieros líquidos disponibles."
	}
	return section
}

// topExpenses returns nil when there are no expenses; the section is omitted.
func topExpenses(txs []domain.Transaction) *domain.TableSection {
	expenses := make([]domain.Transaction, 0)
	for _, t := range txs {
		if t.Type == domain.Expense {
			expenses = append(expenses, t)
		}
	}
	if len(expenses) == 0 {
		return nil
	}

	top := calc.TopN(expenses, topExpenseCount, func(t domain.Transaction) decimal.Decimal { return t.Amount })
	rows := make([][]string, 0, len(top))
	for _, t := range top {
		rows = append(rows, []string{
			orDefault(t.Category, noCategory),
			fmt.Sprintf("%s %s", FormatAmount(t.Amount), txCurrency(t)),
			t.Details.PaymentMethodOr(defaultPayMethod),
			orDefault(t.Description, "-"),
		})
	}
	return &domain.TableSection{
		Title:   "4. Detalle de Gastos Principales",
		Headers: []string{"Categoría", "Monto", "Método", "Observaciones"},
		Rows:    rows,
	}
}

// financeIndicators also reports whether any currency had all of its
// expenses paid in cash.
func financeIndicators(currencies []domain.Currency, ledgers map[domain.Currency]*currencyLedger) (domain.TableSection, bool) {
	section := domain.TableSection{
		Title:   "5. Indicadores de Gestión Financiera",
		Headers: []string{"Indicador", "Valor"},
	}
	fullyCash := false
	for _, c := range currencies {
		l := ledgers[c]
		if !l.income.IsPositive() && !l.expense.IsPositive() {
			continue
		}
		ratio := notAvailable
		if l.income.IsPositive() {
			ratio = l.expense.Div(l.income).StringFixed(2)
		}
		pct := l.cashPercent()
		if pct.Equal(hundred) {
			fullyCash = true
		}
		section.Rows = append(section.Rows,
			[]string{fmt.Sprintf("Relación Gasto/Ingreso (%s)", c), ratio + " : 1"},
			[]string{
				fmt.Sprintf("%% Gastos en Efectivo (%s)", c),
				fmt.Sprintf("%s%% (%s de %s)", pct.StringFixed(0), FormatAmount(l.cashExpense()), FormatAmount(l.expense)),
			},
		)
	}
	if len(section.Rows) == 0 {
		section.Rows = [][]string{{noData, "-"}}
	}
	return section, fullyCash
}

func financeConclusions(main *currencyLedger, fullyCash bool) domain.ListSection {
	balance := "positivo"
	if main != nil && main.net().IsNegative() {
		balance = "negativo"
	}
	payments := "Diversificación adecuada de medios de pago."
	if fullyCash {
		payments = "Alta dependencia del efectivo."
	}
	return domain.ListSection{
		Title: "6. Conclusiones y Recomendaciones",
		Items: []string{
			fmt.Sprintf("1. Situación Financiera: El periodo cierra con un balance neto %s en la moneda principal.", balance),
			"2. Gestión de Gastos: Se recomienda monitorear las categorías con mayor incidencia en el presupuesto.",
			"3. Política de Pagos: " + payments,
		},
	}
}
