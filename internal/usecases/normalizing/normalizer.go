// Package normalizing converte planilhas heterogêneas no registro canônico DetailRow
package normalizing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/pkg/utils"
)

// Normalize mapeia as linhas pelo nome do cabeçalho para a ordem canônica,
// preservando a ordem de entrada. Qualquer coluna obrigatória ausente ou célula
// inválida falha a planilha inteira.
func Normalize(sheet domain.RawSheet, profile *config.CountryProfile) ([]domain.DetailRow, error) {
	sheet = LocateHeader(sheet, profile)

	index := resolveColumns(sheet.Headers, profile)
	if missing := index.missing(RequiredColumns); len(missing) > 0 {
		return nil, missingColumns(sheet.Name, missing)
	}

	rows := make([]domain.DetailRow, 0, len(sheet.Rows))
	for i, raw := range sheet.Rows {
		if isBlank(raw) {
			continue
		}

		rowNumber := sheet.HeaderRow + i + 1
		row, err := normalizeRow(sheet.Name, rowNumber, raw, index)
		if err != nil {
			return nil, err
		}
		row.Country = profile.Key
		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"sheet":      sheet.Name,
		"country":    profile.Key,
		"header_row": sheet.HeaderRow,
		"rows":       len(rows),
	}).Debug("normalize: planilha normalizada")

	return rows, nil
}

type rowReader struct {
	sheet string
	row   int
	raw   []string
	index columnIndex
	err   error
}

func (r *rowReader) text(column string) string {
	value, _ := r.index.value(r.raw, column)
	return value
}

func (r *rowReader) decimal(column string) decimal.Decimal {
	if r.err != nil {
		return decimal.Zero
	}
	value, _ := r.index.value(r.raw, column)
	d, err := utils.ParseDecimal(value)
	if err != nil {
		r.err = invalidCell(r.sheet, r.row, column, value, err)
		return decimal.Zero
	}
	return d
}

func (r *rowReader) date(column string) *time.Time {
	if r.err != nil {
		return nil
	}
	value, _ := r.index.value(r.raw, column)
	t, err := utils.ParseSheetDate(value)
	if err != nil {
		r.err = invalidCell(r.sheet, r.row, column, value, err)
		return nil
	}
	return t
}

func (r *rowReader) integer(column string) int {
	if r.err != nil {
		return 0
	}
	value, _ := r.index.value(r.raw, column)
	d, err := utils.ParseDecimal(value)
	if err != nil || !d.Equal(d.Truncate(0)) {
		if err == nil {
			err = errors.New("esperado número inteiro")
		}
		r.err = invalidCell(r.sheet, r.row, column, value, err)
		return 0
	}
	return int(d.IntPart())
}

func normalizeRow(sheet string, rowNumber int, raw []string, index columnIndex) (domain.DetailRow, error) {
	r := &rowReader{sheet: sheet, row: rowNumber, raw: raw, index: index}

	row := domain.DetailRow{
		SourceRow:          rowNumber,
		InvoiceNumber:      r.text(domain.ColInvoiceNumber),
		PurchaseOrder:      r.text(domain.ColPurchaseOrder),
		InvoiceType:        r.text(domain.ColInvoiceType),
		BatchName:          r.text(domain.ColBatchName),
		Provider:           r.text(domain.ColProvider),
		TaxID:              r.text(domain.ColTaxID),
		DocumentDate:       r.date(domain.ColDocumentDate),
		Store:              r.text(domain.ColStore),
		Branch:             r.text(domain.ColBranch),
		Amount:             r.decimal(domain.ColAmount),
		Currency:           r.text(domain.ColCurrency),
		DueDate:            r.date(domain.ColDueDate),
		Account:            r.text(domain.ColAccount),
		AccountID:          r.text(domain.ColAccountID),
		PaymentMethod:      r.text(domain.ColPaymentMethod),
		IndependentPayment: r.text(domain.ColIndependentPayment),
		Priority:           r.integer(domain.ColPriority),
		CapexExt:           r.decimal(domain.ColCapexExt),
		CapexOrd:           r.decimal(domain.ColCapexOrd),
		Cadm:               r.decimal(domain.ColCadm),
		CreatedDate:        r.date(domain.ColCreatedDate),
		Requester:          r.text(domain.ColRequester),
		PaymentDate:        r.date(domain.ColPaymentDate),

		StoreLookup: r.text(domain.ColStoreLookup),
		CostCenter:  r.text(domain.ColCostCenter),
		Project:     r.text(domain.ColProject),
		Area:        r.text(domain.ColArea),
		ReceiptDate: r.text(domain.ColReceiptDate),
		Description: r.text(domain.ColDescription),
	}
	if r.err != nil {
		return domain.DetailRow{}, r.err
	}

	row.ID = domain.UniqueID(row.InvoiceNumber, row.Provider)
	return row, nil
}
