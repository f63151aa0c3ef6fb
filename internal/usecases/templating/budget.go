package templating

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// ReadBudgetRows lê as linhas de fechamento (configuradas e excluídas) da tabela de orçamento.
// Células vazias ou não numéricas valem zero.
func ReadBudgetRows(template []byte, layout config.RolloverLayout) ([]domain.BudgetRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(template))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir template")
	}
	defer f.Close()

	if err := requireSheet(f, layout.Sheet); err != nil {
		return nil, err
	}

	numbers := append(append([]int{}, layout.Rows...), layout.ExcludedRows...)
	sort.Ints(numbers)

	rows := make([]domain.BudgetRow, 0, len(numbers))
	for _, number := range numbers {
		rows = append(rows, domain.BudgetRow{
			Row:         number,
			Area:        strings.TrimSpace(cellValue(f, layout.Sheet, layout.AreaColumn, number)),
			Remanente:   numeric(cellValue(f, layout.Sheet, layout.RemainderColumn, number)),
			Presupuesto: numeric(cellValue(f, layout.Sheet, layout.BudgetColumn, number)),
			Diferencia:  numeric(cellValue(f, layout.Sheet, layout.DifferenceColumn, number)),
		})
	}
	return rows, nil
}

func cellValue(f *excelize.File, sheet, column string, row int) string {
	if column == "" {
		return ""
	}
	value, err := f.GetCellValue(sheet, fmt.Sprintf("%s%d", column, row), excelize.Options{RawCellValue: true})
	if err != nil {
		return ""
	}
	return value
}

func numeric(value string) decimal.Decimal {
	d, err := utils.ParseDecimal(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
