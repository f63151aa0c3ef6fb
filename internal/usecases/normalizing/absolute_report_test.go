package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

func absoluteSheet() domain.RawSheet {
	return domain.RawSheet{
		Name: "Reporte Absoluto",
		Headers: []string{
			"N° Factura", "Tipo de Línea", "Categoría de Compra", "Cta. Cargo",
			"Cta. Cargo Centro", "Cta. Cargo Centro Desc.", "Fecha Recepción", "Descripción",
		},
		Rows: [][]string{
			{"F-001", "Artículo", "CAPEX.OBRAS", "01-110425-000-000-000-000-000-A123-00", "CC100", "Tienda Centro", "2026-01-20", "Remodelación"},
			{"F-002", "Artículo", "", "01-150199-000-000-000-000-000-000-00000", "CC200", "", "", ""},
			{"F-003", "Servicio", "CAPEX", "01-110425-000", "CC300", "Tienda Norte", "2026-01-21", "Servicio"},
			{"F-004", "Artículo", "OPEX", "01-110425-000", "CC400", "Tienda Sur", "2026-01-21", "Papel"},
			{"F-005", "Artículo", "CAPEX", "01-999999-000", "CC500", "Tienda Este", "2026-01-21", "Otro"},
			{"F-006", "Artículo", "CAPEX", "01-110425-X-B777-Y", "CC600", "Tienda Oeste", "46056", "Equipos"},
		},
	}
}

func TestNormalizeAbsoluteReport(t *testing.T) {
	// Quarta-feira, 4 de fevereiro de 2026: sexta-feira da semana anterior é 30 de janeiro
	reference := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)

	lookup, err := NormalizeAbsoluteReport(absoluteSheet(), reference)
	require.NoError(t, err)
	assert.Equal(t, 3, lookup.Len())

	first, ok := lookup.Find("F-001")
	require.True(t, ok)
	assert.Equal(t, "Tienda Centro", first.Store)
	assert.Equal(t, "CC100", first.CostCenter)
	assert.Equal(t, "2026-01-20", first.ReceiptDate)
	assert.Equal(t, "Remodelación", first.Description)
	assert.Equal(t, "A123", first.Project)

	second, ok := lookup.Find("F-002")
	require.True(t, ok)
	assert.Equal(t, noStore, second.Store)
	assert.Equal(t, "2026-01-30", second.ReceiptDate)
	assert.Equal(t, noDescription, second.Description)
	assert.Equal(t, "0000", second.Project)

	sixth, ok := lookup.Find("F-006")
	require.True(t, ok)
	assert.Equal(t, "B777", sixth.Project)
	assert.Equal(t, "2026-02-03", sixth.ReceiptDate)

	for _, filtered := range []string{"F-003", "F-004", "F-005"} {
		_, ok := lookup.Find(filtered)
		assert.False(t, ok, filtered)
	}
}

func TestNormalizeAbsoluteReport_WithoutInvoiceColumn(t *testing.T) {
	_, err := NormalizeAbsoluteReport(domain.RawSheet{Name: "x", Headers: []string{"Proveedor"}}, time.Now())

	var schemaErr *SchemaMismatchError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"Factura"}, schemaErr.Missing)
}

func TestApplyLookup(t *testing.T) {
	reference := time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)
	lookup, err := NormalizeAbsoluteReport(absoluteSheet(), reference)
	require.NoError(t, err)

	rows := []domain.DetailRow{
		{InvoiceNumber: "F-001"},
		{InvoiceNumber: "001-F-006-X", Area: "OPERACIONES"},
		{InvoiceNumber: "Z-999"},
	}

	notFound := ApplyLookup(rows, lookup)
	assert.Equal(t, 1, notFound)

	assert.Equal(t, "CC100", rows[0].CostCenter)
	assert.Equal(t, noArea, rows[0].Area)

	// Busca parcial: o número informado contém o número do reporte
	assert.Equal(t, "CC600", rows[1].CostCenter)
	assert.Equal(t, "OPERACIONES", rows[1].Area)

	assert.Equal(t, domain.NotFoundMarker, rows[2].StoreLookup)
	assert.Equal(t, domain.NotFoundMarker, rows[2].CostCenter)
	assert.Equal(t, domain.NotFoundMarker, rows[2].Project)
	assert.Equal(t, domain.NotFoundMarker, rows[2].ReceiptDate)
	assert.Equal(t, domain.NotFoundMarker, rows[2].Description)

	withoutReport := []domain.DetailRow{{InvoiceNumber: "F-001"}}
	assert.Equal(t, 0, ApplyLookup(withoutReport, nil))
	assert.Equal(t, noAbsoluteReport, withoutReport[0].CostCenter)
}
