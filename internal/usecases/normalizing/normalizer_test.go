package normalizing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

func vzlaProfile(t *testing.T) *config.CountryProfile {
	t.Helper()
	profiles, err := config.LoadProfiles("")
	require.NoError(t, err)
	profile, err := profiles.Get("vzla")
	require.NoError(t, err)
	return profile
}

var paymentHeaders = []string{
	"Numero de Factura", "Proveedor", "Monto", "Moneda", "Prioridad",
	"Monto CAPEX EXT", "Monto CAPEX ORD", "Monto CADM", "Fecha Creación", "Solicitante", "Banco",
}

func paymentSheet() domain.RawSheet {
	return domain.RawSheet{
		Name: "Pagos",
		Rows: [][]string{
			{"REPORTE DE PAGOS"},
			{},
			paymentHeaders,
			{"F-001", "Proveedor A", "1.000,50", "VES", "78", "600", "400", "0", "2026-01-28", "Ana", "Banesco"},
			{"", "", "", "", "", "", "", "", "", "", ""},
			{"F-002", "Proveedor B", "250", "USD", "69", "0", "0", "250", "29/01/2026", "Luis", "Mercantil"},
		},
	}
}

func TestNormalize(t *testing.T) {
	profile := vzlaProfile(t)

	rows, err := Normalize(paymentSheet(), profile)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "F-001", first.InvoiceNumber)
	assert.Equal(t, "vzla", first.Country)
	assert.Equal(t, 4, first.SourceRow)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("1000.50")))
	assert.Equal(t, 78, first.Priority)
	assert.True(t, first.CapexExt.Equal(decimal.NewFromInt(600)))
	require.NotNil(t, first.CreatedDate)
	assert.Equal(t, time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC), *first.CreatedDate)
	assert.Nil(t, first.PaymentDate)
	assert.Equal(t, domain.UniqueID("F-001", "Proveedor A"), first.ID)

	second := rows[1]
	assert.Equal(t, "F-002", second.InvoiceNumber)
	assert.Equal(t, 6, second.SourceRow)
	assert.Equal(t, time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC), *second.CreatedDate)
}

func TestNormalize_ColumnOrderIndependence(t *testing.T) {
	profile := vzlaProfile(t)

	original := domain.RawSheet{
		Name:    "Pagos",
		Headers: []string{"Numero de Factura", "Proveedor", "Monto", "Moneda", "Prioridad", "Monto CAPEX EXT", "Monto CAPEX ORD", "Monto CADM"},
		Rows: [][]string{
			{"F-001", "Proveedor A", "1000", "VES", "78", "600", "400", "0"},
			{"F-002", "Proveedor B", "250", "USD", "69", "0", "0", "250"},
		},
		HeaderRow: 1,
	}
	swapped := domain.RawSheet{
		Name:    "Pagos",
		Headers: []string{"  monto cadm", "MONEDA", "Prioridad", "proveedor", "Monto CAPEX ORD", "Monto", "Monto CAPEX EXT", "NUMERO  DE FACTURA"},
		Rows: [][]string{
			{"0", "VES", "78", "Proveedor A", "400", "1000", "600", "F-001"},
			{"250", "USD", "69", "Proveedor B", "0", "250", "0", "F-002"},
		},
		HeaderRow: 1,
	}

	want, err := Normalize(original, profile)
	require.NoError(t, err)
	got, err := Normalize(swapped, profile)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestNormalize_Aliases(t *testing.T) {
	profile := vzlaProfile(t)

	sheet := domain.RawSheet{
		Name:    "Pagos",
		Headers: []string{"Nro Factura", "Nombre Proveedor", "Monto", "Moneda", "Prioridad Pago", "Monto CAPEX EXT", "Monto CAPEX ORD", "Monto CADM", "Fecha de Pago"},
		Rows: [][]string{
			{"F-010", "Proveedor C", "10", "USD", "70", "10", "0", "0", "46056"},
		},
		HeaderRow: 1,
	}

	rows, err := Normalize(sheet, profile)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "F-010", rows[0].InvoiceNumber)
	assert.Equal(t, "Proveedor C", rows[0].Provider)
	assert.Equal(t, 70, rows[0].Priority)
	require.NotNil(t, rows[0].PaymentDate)
	assert.Equal(t, time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), *rows[0].PaymentDate)
}

func TestNormalize_Errors(t *testing.T) {
	profile := vzlaProfile(t)

	tests := []struct {
		name     string
		sheet    domain.RawSheet
		validate func(t *testing.T, err *SchemaMismatchError)
	}{
		{
			name: "Coluna obrigatória ausente",
			sheet: domain.RawSheet{
				Name:      "Pagos",
				Headers:   []string{"Numero de Factura", "Proveedor", "Monto", "Moneda", "Prioridad", "Monto CAPEX EXT", "Monto CAPEX ORD"},
				Rows:      [][]string{{"F-001", "Proveedor A", "1000", "VES", "78", "600", "400"}},
				HeaderRow: 1,
			},
			validate: func(t *testing.T, err *SchemaMismatchError) {
				assert.Equal(t, "Pagos", err.Sheet)
				assert.Equal(t, []string{domain.ColCadm}, err.Missing)
			},
		},
		{
			name: "Coluna Banco é ignorada mesmo com nome de alias",
			sheet: domain.RawSheet{
				Name:      "Pagos",
				Headers:   []string{"Banco"},
				HeaderRow: 1,
			},
			validate: func(t *testing.T, err *SchemaMismatchError) {
				assert.Equal(t, RequiredColumns, err.Missing)
			},
		},
		{
			name: "Valor numérico inválido identifica linha e coluna",
			sheet: domain.RawSheet{
				Name:    "Pagos",
				Headers: []string{"Numero de Factura", "Proveedor", "Monto", "Moneda", "Prioridad", "Monto CAPEX EXT", "Monto CAPEX ORD", "Monto CADM"},
				Rows: [][]string{
					{"F-001", "Proveedor A", "1000", "VES", "78", "600", "400", "0"},
					{"F-002", "Proveedor B", "mil", "VES", "78", "600", "400", "0"},
				},
				HeaderRow: 1,
			},
			validate: func(t *testing.T, err *SchemaMismatchError) {
				assert.Empty(t, err.Missing)
				assert.Equal(t, 3, err.Row)
				assert.Equal(t, domain.ColAmount, err.Column)
				assert.Equal(t, "mil", err.Value)
			},
		},
		{
			name: "Prioridade fracionada é rejeitada",
			sheet: domain.RawSheet{
				Name:      "Pagos",
				Headers:   []string{"Numero de Factura", "Proveedor", "Monto", "Moneda", "Prioridad", "Monto CAPEX EXT", "Monto CAPEX ORD", "Monto CADM"},
				Rows:      [][]string{{"F-001", "Proveedor A", "1000", "VES", "78.5", "600", "400", "0"}},
				HeaderRow: 1,
			},
			validate: func(t *testing.T, err *SchemaMismatchError) {
				assert.Equal(t, domain.ColPriority, err.Column)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Normalize(tt.sheet, profile)
			assert.Nil(t, rows)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaMismatch)

			var schemaErr *SchemaMismatchError
			require.ErrorAs(t, err, &schemaErr)
			tt.validate(t, schemaErr)
		})
	}
}

func TestLocateHeader(t *testing.T) {
	profile := vzlaProfile(t)

	located := LocateHeader(paymentSheet(), profile)
	assert.Equal(t, 3, located.HeaderRow)
	assert.Equal(t, paymentHeaders, located.Headers)
	assert.Len(t, located.Rows, 3)

	// Sem linha com duas colunas críticas, a primeira linha não vazia vira cabeçalho
	plain := domain.RawSheet{Name: "x", Rows: [][]string{{}, {"A", "B"}, {"1", "2"}}}
	located = LocateHeader(plain, profile)
	assert.Equal(t, 2, located.HeaderRow)
	assert.Equal(t, []string{"A", "B"}, located.Headers)

	empty := LocateHeader(domain.RawSheet{Name: "vazia"}, profile)
	assert.Empty(t, empty.Headers)
}
