package templating

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Ordem dos meses dentro do ano fiscal (agosto a julho)
var fiscalMonths = []string{
	"AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE", "ENERO",
	"FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO", "JULIO",
}

type MonthTotal struct {
	FiscalYear string
	Month      string
	Capex      decimal.Decimal
}

type AreaTotal struct {
	Area  string
	Ord   decimal.Decimal
	Ext   decimal.Decimal
	Total decimal.Decimal
}

// ReceiptSummary é o conteúdo da aba CAPEX PAGADO POR RECIBO: CAPEX por mês de pagamento
// e ano fiscal, e ORD/EXT por área no mês corrente
type ReceiptSummary struct {
	Month   string
	ByMonth []MonthTotal
	ByArea  []AreaTotal
}

// Rows é quantas linhas de dados as duas tabelas ocupam, com uma linha em branco e um cabeçalho entre elas
func (s ReceiptSummary) Rows() int {
	return len(s.ByMonth) + 2 + len(s.ByArea)
}

// SummarizePaidByReceipt agrega o detalhe; a ordem de saída é estável
func SummarizePaidByReceipt(rows []domain.DetailRow, month string) ReceiptSummary {
	type monthKey struct{ fiscalYear, month string }

	byMonth := make(map[monthKey]decimal.Decimal)
	byArea := make(map[string]*AreaTotal)

	for _, row := range rows {
		key := monthKey{row.FiscalYear, row.PaymentMonth}
		byMonth[key] = byMonth[key].Add(row.AmountCapex)

		if row.PaymentMonth != month {
			continue
		}
		total, ok := byArea[row.Area]
		if !ok {
			total = &AreaTotal{Area: row.Area}
			byArea[row.Area] = total
		}
		total.Ord = total.Ord.Add(row.AmountOrd)
		total.Ext = total.Ext.Add(row.AmountExt)
		total.Total = total.Ord.Add(total.Ext)
	}

	summary := ReceiptSummary{Month: month}
	for key, capex := range byMonth {
		summary.ByMonth = append(summary.ByMonth, MonthTotal{FiscalYear: key.fiscalYear, Month: key.month, Capex: capex})
	}
	sort.Slice(summary.ByMonth, func(i, j int) bool {
		a, b := summary.ByMonth[i], summary.ByMonth[j]
		if a.FiscalYear != b.FiscalYear {
			return a.FiscalYear < b.FiscalYear
		}
		return monthPosition(a.Month) < monthPosition(b.Month)
	})

	for _, total := range byArea {
		summary.ByArea = append(summary.ByArea, *total)
	}
	sort.Slice(summary.ByArea, func(i, j int) bool {
		return summary.ByArea[i].Area < summary.ByArea[j].Area
	})

	return summary
}

func monthPosition(month string) int {
	for i, m := range fiscalMonths {
		if m == month {
			return i
		}
	}
	return len(fiscalMonths)
}

func writeReceiptSummary(f *excelize.File, region config.Region, summary ReceiptSummary) error {
	rows := make([][]interface{}, 0, summary.Rows())
	for _, total := range summary.ByMonth {
		rows = append(rows, []interface{}{total.FiscalYear, total.Month, money(total.Capex), ""})
	}

	rows = append(rows,
		[]interface{}{"", "", "", ""},
		[]interface{}{domain.ColArea, domain.ColAmountOrd + " " + summary.Month, domain.ColAmountExt + " " + summary.Month, "TOTAL"},
	)
	for _, total := range summary.ByArea {
		rows = append(rows, []interface{}{total.Area, money(total.Ord), money(total.Ext), money(total.Total)})
	}

	header := []interface{}{domain.ColFiscalYear, domain.ColPaymentMonth, "CAPEX PAGADO", ""}
	return writeRegion(f, region, header, rows)
}
