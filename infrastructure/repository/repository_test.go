package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

func TestChunk(t *testing.T) {
	ids := make([]string, 2501)
	for i := range ids {
		ids[i] = fmt.Sprintf("id-%d", i)
	}

	batches := chunk(ids, 1000)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 1000)
	assert.Len(t, batches[2], 501)
	assert.Equal(t, "id-2500", batches[2][500])

	assert.Len(t, chunk(ids, 0), 3, "tamanho inválido usa o padrão")
	assert.Empty(t, chunk([]string{}, 10))
}

func TestExistingIDsQuery(t *testing.T) {
	query, args, err := existingIDsQuery("capex_pago", []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM capex_pago WHERE id IN ($1,$2)", query)
	assert.Equal(t, []interface{}{"a", "b"}, args)
}

func TestInsertDetailQuery(t *testing.T) {
	insertedAt := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	payment := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	rows := []domain.DetailRow{
		{ID: "1", Country: "vzla", InvoiceNumber: "F-001", Amount: decimal.NewFromInt(10), PaymentDate: &payment},
		{ID: "2", Country: "vzla", InvoiceNumber: "F-002", Amount: decimal.NewFromInt(20)},
	}

	query, args, err := insertDetailQuery("capex_pago", rows, insertedAt)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO capex_pago (id,country,source_row,"))
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT (id) DO NOTHING"))
	assert.Contains(t, query, "$106")
	require.Len(t, args, 2*len(detailColumns))

	assert.Equal(t, "1", args[0])
	assert.Equal(t, "2", args[len(detailColumns)])
	assert.Equal(t, insertedAt, args[len(detailColumns)-1])
}

func TestListByFiscalYearQuery(t *testing.T) {
	query, args, err := listByFiscalYearQuery("capex_pago", "vzla", "2025-2026")
	require.NoError(t, err)

	assert.Contains(t, query, "FROM capex_pago WHERE country = $1 AND fiscal_year = $2")
	assert.True(t, strings.HasSuffix(query, "ORDER BY inserted_at ASC, source_row ASC, id ASC"))
	assert.NotContains(t, query, ", inserted_at FROM")
	assert.Equal(t, []interface{}{"vzla", "2025-2026"}, args)
}

func TestLatestDifferencesQuery(t *testing.T) {
	query, args, err := latestDifferencesQuery("capex_pago_diferencia", "vzla", "2025-2026")
	require.NoError(t, err)

	assert.Contains(t, query, "executed_at = (SELECT MAX(executed_at) FROM capex_pago_diferencia WHERE country = $3 AND fiscal_year = $4)")
	assert.True(t, strings.HasSuffix(query, "ORDER BY row_number ASC"))
	assert.Equal(t, []interface{}{"vzla", "2025-2026", "vzla", "2025-2026"}, args)
}

func TestInsertDifferenceQuery(t *testing.T) {
	executedAt := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	entries := []domain.DifferenceEntry{
		{ID: "x", Country: "vzla", FiscalYear: "2025-2026", Month: "Enero-2026", Row: 20, Area: "OBRAS", ExecutedAt: executedAt},
	}

	query, args, err := insertDifferenceQuery("capex_pago_diferencia", entries)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO capex_pago_diferencia (id,country,fiscal_year,month,row_number,area,remanente,presupuesto,ejecutado,executed_at) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) ON CONFLICT (id) DO NOTHING",
		query,
	)
	require.Len(t, args, 10)
	assert.Equal(t, 20, args[4])
}

func TestListRatesQuery(t *testing.T) {
	query, args, err := listRatesQuery("tasas_bcv")
	require.NoError(t, err)

	assert.Equal(t, `SELECT "Date", "USD" FROM tasas_bcv WHERE "USD" IS NOT NULL ORDER BY "Date" ASC`, query)
	assert.Empty(t, args)
}

func TestNullTime(t *testing.T) {
	assert.Nil(t, nullTime(sql.NullTime{}))

	loc := time.FixedZone("VET", -4*60*60)
	got := nullTime(sql.NullTime{Valid: true, Time: time.Date(2026, 2, 2, 20, 0, 0, 0, loc)})
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), *got)
}
