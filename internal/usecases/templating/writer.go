// Package templating grava o detalhe, o BOSQUETO e o fechamento no template do consolidado
package templating

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/xuri/excelize/v2"
)

// WriteInput reúne tudo o que é gravado no template numa execução
type WriteInput struct {
	Layout       config.TemplateLayout
	DetailRows   []domain.DetailRow
	BosquetoRows []domain.DetailRow
	// Titles só é informado na semana de fechamento
	Titles   []domain.TitleValue
	Rollover []domain.BudgetRow
	// PaidByReceipt é ignorado quando o layout não declara a região
	PaidByReceipt *ReceiptSummary
}

// Write abre o template, grava as regiões declaradas e devolve o novo arquivo.
// Todas as validações acontecem antes da primeira escrita; nada fora das regiões é alterado.
func Write(template []byte, in WriteInput) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(template))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir template")
	}
	defer f.Close()

	if err := validate(f, in); err != nil {
		return nil, err
	}

	if err := writeDetailRegion(f, in.Layout.Detail, in.DetailRows); err != nil {
		return nil, err
	}
	if err := writeDetailRegion(f, in.Layout.Bosqueto, in.BosquetoRows); err != nil {
		return nil, err
	}
	if in.Layout.PaidByReceipt != nil && in.PaidByReceipt != nil {
		if err := writeReceiptSummary(f, *in.Layout.PaidByReceipt, *in.PaidByReceipt); err != nil {
			return nil, err
		}
	}

	for _, title := range in.Titles {
		if err := f.SetCellValue(title.Sheet, title.Cell, title.Value); err != nil {
			return nil, &domain.TemplateLayoutError{Sheet: title.Sheet, Cell: title.Cell, Reason: err.Error()}
		}
	}

	rollover := in.Layout.Rollover
	for _, row := range in.Rollover {
		if rollover.IsExcluded(row.Row) {
			continue
		}
		cell := fmt.Sprintf("%s%d", rollover.RemainderColumn, row.Row)
		if err := f.SetCellValue(rollover.Sheet, cell, money(row.Remanente)); err != nil {
			return nil, &domain.TemplateLayoutError{Sheet: rollover.Sheet, Cell: cell, Reason: err.Error()}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar template")
	}

	logrus.WithFields(logrus.Fields{
		"detail_rows":   len(in.DetailRows),
		"bosqueto_rows": len(in.BosquetoRows),
		"titles":        len(in.Titles),
		"rollover_rows": len(in.Rollover),
	}).Debug("template: consolidado gravado")

	return buf.Bytes(), nil
}

func validate(f *excelize.File, in WriteInput) error {
	regions := []struct {
		region config.Region
		rows   int
	}{
		{in.Layout.Detail, len(in.DetailRows)},
		{in.Layout.Bosqueto, len(in.BosquetoRows)},
	}
	if in.Layout.PaidByReceipt != nil && in.PaidByReceipt != nil {
		regions = append(regions, struct {
			region config.Region
			rows   int
		}{*in.Layout.PaidByReceipt, in.PaidByReceipt.Rows()})
	}

	for _, r := range regions {
		if err := requireSheet(f, r.region.Sheet); err != nil {
			return err
		}
		if _, err := excelize.ColumnNameToNumber(r.region.FirstColumn); err != nil {
			return &domain.TemplateLayoutError{Sheet: r.region.Sheet, Cell: r.region.FirstColumn, Reason: "coluna inicial inválida"}
		}
		if r.rows > r.region.Capacity {
			return &domain.WriteConflictError{Sheet: r.region.Sheet, Capacity: r.region.Capacity, Rows: r.rows}
		}
	}

	for _, title := range in.Titles {
		if err := requireSheet(f, title.Sheet); err != nil {
			return err
		}
	}
	if len(in.Rollover) > 0 {
		if err := requireSheet(f, in.Layout.Rollover.Sheet); err != nil {
			return err
		}
	}
	return nil
}

func requireSheet(f *excelize.File, sheet string) error {
	index, err := f.GetSheetIndex(sheet)
	if err != nil || index < 0 {
		return &domain.TemplateLayoutError{Sheet: sheet, Reason: "aba não encontrada"}
	}
	return nil
}

func writeDetailRegion(f *excelize.File, region config.Region, rows []domain.DetailRow) error {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = rowValues(row)
	}
	return writeRegion(f, region, headerValues(), values)
}

// writeRegion grava cabeçalho e linhas a partir da coluna inicial e limpa
// as linhas antigas da região que sobrariam da execução anterior
func writeRegion(f *excelize.File, region config.Region, header []interface{}, rows [][]interface{}) error {
	firstCol, err := excelize.ColumnNameToNumber(region.FirstColumn)
	if err != nil {
		return &domain.TemplateLayoutError{Sheet: region.Sheet, Cell: region.FirstColumn, Reason: err.Error()}
	}

	width := len(header)
	if err := clearRegion(f, region, firstCol, width); err != nil {
		return err
	}

	headerCell, err := excelize.CoordinatesToCellName(firstCol, region.HeaderRow)
	if err != nil {
		return &domain.TemplateLayoutError{Sheet: region.Sheet, Reason: err.Error()}
	}
	if err := f.SetSheetRow(region.Sheet, headerCell, &header); err != nil {
		return errors.Wrapf(err, "erro ao gravar cabeçalho da aba %s", region.Sheet)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(firstCol, region.FirstRow+i)
		if err != nil {
			return &domain.TemplateLayoutError{Sheet: region.Sheet, Reason: err.Error()}
		}
		if err := f.SetSheetRow(region.Sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "erro ao gravar linha %d da aba %s", region.FirstRow+i, region.Sheet)
		}
	}
	return nil
}

func clearRegion(f *excelize.File, region config.Region, firstCol, width int) error {
	existing, err := f.GetRows(region.Sheet)
	if err != nil {
		return &domain.TemplateLayoutError{Sheet: region.Sheet, Reason: err.Error()}
	}

	last := region.LastRow()
	if len(existing) < last {
		last = len(existing)
	}
	for rowNumber := region.FirstRow; rowNumber <= last; rowNumber++ {
		cells := existing[rowNumber-1]
		for col := firstCol; col < firstCol+width && col <= len(cells); col++ {
			if cells[col-1] == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col, rowNumber)
			if err := f.SetCellValue(region.Sheet, cell, nil); err != nil {
				return errors.Wrapf(err, "erro ao limpar célula %s da aba %s", cell, region.Sheet)
			}
		}
	}
	return nil
}

// BuildBosqueto gera a planilha avulsa do BOSQUETO que o analista corrige antes do processamento
func BuildBosqueto(rows []domain.DetailRow, region config.Region) ([]byte, error) {
	if len(rows) > region.Capacity {
		return nil, &domain.WriteConflictError{Sheet: region.Sheet, Capacity: region.Capacity, Rows: len(rows)}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", region.Sheet); err != nil {
		return nil, errors.Wrap(err, "erro ao criar aba do bosqueto")
	}

	if err := writeDetailRegion(f, region, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar bosqueto")
	}
	return buf.Bytes(), nil
}
