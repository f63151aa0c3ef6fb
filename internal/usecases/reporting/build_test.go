package reporting_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/converting"
	"github.com/vfg2006/capex-consolidado/internal/usecases/normalizing"
	"github.com/vfg2006/capex-consolidado/internal/usecases/rating"
	"github.com/vfg2006/capex-consolidado/internal/usecases/reporting"
	"github.com/xuri/excelize/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func vzla(t *testing.T) *config.CountryProfile {
	t.Helper()
	profiles, err := config.LoadProfiles("")
	require.NoError(t, err)
	profile, err := profiles.Get("vzla")
	require.NoError(t, err)
	return profile
}

func rates() *rating.RateTable {
	return rating.NewRateTable("vzla", []domain.RateEntry{
		{Date: date(2026, 1, 30), FeedRate: decimal.NewFromInt(40), CentralBankRate: decimal.RequireFromString("36.5")},
		{Date: date(2026, 2, 6), FeedRate: decimal.NewFromInt(41), CentralBankRate: decimal.NewFromInt(37)},
	}, time.Time{})
}

// bosquetoSheet simula a leitura do BOSQUETO corrigido: título, cabeçalho e linhas
func bosquetoSheet() domain.RawSheet {
	return domain.RawSheet{
		Name: "BOSQUETO",
		Rows: [][]string{
			{"Numero de Factura", "Proveedor", "Monto", "Moneda", "Prioridad", "Monto CAPEX EXT", "Monto CAPEX ORD", "Monto CADM", "AREA"},
			{"F-001", "Proveedor A", "1000", "USD", "78", "1000", "0", "0", "OBRAS"},
			{"F-002", "Proveedor B", "3650", "VES", "69", "0", "60", "40", "TI"},
		},
	}
}

func history() []domain.DetailRow {
	return []domain.DetailRow{
		{ID: "anterior", InvoiceNumber: "F-000", FiscalYear: "2025-2026", PaymentMonth: "ENERO", Area: "TI",
			AmountCapex: decimal.NewFromInt(100), AmountOrd: decimal.NewFromInt(100), RealReconverted: decimal.NewFromInt(100)},
		{ID: domain.UniqueID("F-001", "Proveedor A"), InvoiceNumber: "F-001", FiscalYear: "2025-2026", PaymentMonth: "ENERO",
			RealReconverted: decimal.NewFromInt(999)},
	}
}

func vzlaTemplate(t *testing.T, profile *config.CountryProfile) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	layout := profile.Template
	require.NoError(t, f.SetSheetName("Sheet1", layout.Bosqueto.Sheet))
	for _, sheet := range []string{layout.Detail.Sheet, layout.PaidByReceipt.Sheet, "Graficos", layout.Rollover.Sheet} {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}

	require.NoError(t, f.SetCellValue("Graficos", "G6", "PPTO Enero-2026"))
	require.NoError(t, f.SetCellFormula("Graficos", "A1", "SUM(B1:B2)"))
	for row := 20; row <= 32; row++ {
		require.NoError(t, f.SetCellValue(layout.Rollover.Sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("AREA %d", row)))
		require.NoError(t, f.SetCellValue(layout.Rollover.Sheet, fmt.Sprintf("C%d", row), 100))
		require.NoError(t, f.SetCellValue(layout.Rollover.Sheet, fmt.Sprintf("D%d", row), 40))
		require.NoError(t, f.SetCellValue(layout.Rollover.Sheet, fmt.Sprintf("E%d", row), 60))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func cell(t *testing.T, workbook []byte, sheet, ref string) string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()
	value, err := f.GetCellValue(sheet, ref)
	require.NoError(t, err)
	return value
}

func TestBuild(t *testing.T) {
	profile := vzla(t)
	template := vzlaTemplate(t, profile)

	tests := []struct {
		name      string
		reference time.Time
		sheet     domain.RawSheet
		validate  func(t *testing.T, out *reporting.BuildOutput, err error)
	}{
		{
			name:      "Semana de fechamento reescreve títulos e aplica o traspasse",
			reference: date(2026, 2, 3),
			sheet:     bosquetoSheet(),
			validate: func(t *testing.T, out *reporting.BuildOutput, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2025-2026", out.FiscalYear)
				assert.True(t, out.Close.IsCloseWeek)
				assert.Equal(t, "Febrero-2026", out.Close.Titles.Current)
				require.Len(t, out.Rows, 2)
				require.Len(t, out.Detail, 3)
				assert.Equal(t, "anterior", out.Detail[0].ID)

				// O histórico da própria fatura é ignorado no acumulado do mês
				assert.True(t, out.Rows[0].RealMonthReconverted.Equal(decimal.RequireFromString("1012.5")))

				assert.Equal(t, "PPTO Febrero-2026", cell(t, out.Workbook, "Graficos", "G6"))
				assert.Equal(t, "Remanente Enero-2026", cell(t, out.Workbook, "Presupuesto Mensual", "C18"))
				assert.Equal(t, "120", cell(t, out.Workbook, "Presupuesto Mensual", "C20"))
				assert.Equal(t, "100", cell(t, out.Workbook, "Presupuesto Mensual", "C21"))
				assert.Equal(t, "120", cell(t, out.Workbook, "Presupuesto Mensual", "C32"))
				assert.Equal(t, "F-000", cell(t, out.Workbook, "DETALLE CORREGIDO", "A2"))
				assert.Equal(t, "F-001", cell(t, out.Workbook, "BOSQUETO", "A2"))

				require.Len(t, out.Differences, 12)
				assert.Equal(t, "Enero-2026", out.Differences[0].Month)
			},
		},
		{
			name:      "Fora da semana de fechamento o orçamento fica intacto",
			reference: date(2026, 2, 10),
			sheet:     bosquetoSheet(),
			validate: func(t *testing.T, out *reporting.BuildOutput, err error) {
				require.NoError(t, err)
				assert.False(t, out.Close.IsCloseWeek)
				assert.Empty(t, out.Differences)
				assert.Equal(t, "PPTO Enero-2026", cell(t, out.Workbook, "Graficos", "G6"))
				assert.Equal(t, "100", cell(t, out.Workbook, "Presupuesto Mensual", "C20"))
				assert.Equal(t, "FEBRERO", out.Rows[0].PaymentMonth)
			},
		},
		{
			name:      "Coluna obrigatória ausente interrompe sem artefato",
			reference: date(2026, 2, 3),
			sheet: domain.RawSheet{Name: "BOSQUETO", Rows: [][]string{
				{"Numero de Factura", "Proveedor", "Monto"},
				{"F-001", "Proveedor A", "10"},
			}},
			validate: func(t *testing.T, out *reporting.BuildOutput, err error) {
				assert.Nil(t, out)
				assert.ErrorIs(t, err, normalizing.ErrSchemaMismatch)
			},
		},
		{
			name:      "Data sem taxa interrompe sem artefato",
			reference: date(2026, 2, 17),
			sheet:     bosquetoSheet(),
			validate: func(t *testing.T, out *reporting.BuildOutput, err error) {
				assert.Nil(t, out)
				var missing *converting.MissingRateError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, date(2026, 2, 13), missing.Date)
				assert.Equal(t, "F-001", missing.Invoice)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := reporting.Build(reporting.BuildInput{
				Profile:       profile,
				ReferenceDate: tt.reference,
				Sheet:         tt.sheet,
				Rates:         rates(),
				History:       history(),
				Template:      template,
			})
			tt.validate(t, out, err)
		})
	}
}

func TestBuild_RepeatedInvoiceCountsOnce(t *testing.T) {
	profile := vzla(t)
	template := vzlaTemplate(t, profile)

	build := func(sheet domain.RawSheet) *reporting.BuildOutput {
		out, err := reporting.Build(reporting.BuildInput{
			Profile:       profile,
			ReferenceDate: date(2026, 2, 3),
			Sheet:         sheet,
			Rates:         rates(),
			History:       history(),
			Template:      template,
		})
		require.NoError(t, err)
		return out
	}

	repeated := bosquetoSheet()
	repeated.Rows = [][]string{repeated.Rows[0], repeated.Rows[1], repeated.Rows[1], repeated.Rows[2]}

	want := build(bosquetoSheet())
	got := build(repeated)

	require.Len(t, got.Rows, 2)
	require.Len(t, got.Detail, 3)
	assert.Equal(t, "F-001", got.Rows[0].InvoiceNumber)
	assert.Equal(t, "F-002", got.Rows[1].InvoiceNumber)
	assert.True(t, want.Rows[1].RealMonthReconverted.Equal(got.Rows[1].RealMonthReconverted),
		"acumulado esperado %s, obtido %s", want.Rows[1].RealMonthReconverted, got.Rows[1].RealMonthReconverted)
	assert.Empty(t, cell(t, got.Workbook, "BOSQUETO", "A4"))
}

func TestBuild_SameInputSameWorkbook(t *testing.T) {
	profile := vzla(t)
	input := reporting.BuildInput{
		Profile:       profile,
		ReferenceDate: date(2026, 2, 3),
		Sheet:         bosquetoSheet(),
		Rates:         rates(),
		History:       history(),
		Template:      vzlaTemplate(t, profile),
	}

	first, err := reporting.Build(input)
	require.NoError(t, err)
	second, err := reporting.Build(input)
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, first.Differences, second.Differences)

	a, err := excelize.OpenReader(bytes.NewReader(first.Workbook))
	require.NoError(t, err)
	defer a.Close()
	b, err := excelize.OpenReader(bytes.NewReader(second.Workbook))
	require.NoError(t, err)
	defer b.Close()

	for _, sheet := range a.GetSheetList() {
		rowsA, err := a.GetRows(sheet)
		require.NoError(t, err)
		rowsB, err := b.GetRows(sheet)
		require.NoError(t, err)
		assert.Equal(t, rowsA, rowsB, sheet)
	}
}
