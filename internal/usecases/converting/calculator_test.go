package converting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/rating"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func ptr(t time.Time) *time.Time {
	return &t
}

func calcContext(t *testing.T, reference time.Time) CalcContext {
	t.Helper()
	profiles, err := config.LoadProfiles("")
	require.NoError(t, err)
	profile, err := profiles.Get("vzla")
	require.NoError(t, err)
	return CalcContext{ReferenceDate: reference, Profile: profile}
}

func rateTable() *rating.RateTable {
	return rating.NewRateTable("vzla", []domain.RateEntry{
		{Date: day(2026, 1, 30), FeedRate: dec("40"), CentralBankRate: dec("36.5")},
		{Date: day(2026, 2, 2), FeedRate: dec("41"), CentralBankRate: dec("37")},
	}, time.Time{})
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, actual.Equal(dec(expected)), "%s: esperado %s, obtido %s", field, expected, actual.String())
}

func TestEnrich(t *testing.T) {
	reference := day(2026, 2, 4)

	tests := []struct {
		name     string
		rows     []domain.DetailRow
		prior    PriorAggregate
		validate func(t *testing.T, rows []domain.DetailRow)
	}{
		{
			name: "Linha paga em bolívares converte pelo BCV e reconverte pelo FTD",
			rows: []domain.DetailRow{{
				SourceRow: 2, InvoiceNumber: "F-001", Amount: dec("1000"), Currency: "USD", Priority: 78,
				CapexExt: dec("1000"), PaymentDate: ptr(day(2026, 1, 30)),
			}},
			validate: func(t *testing.T, rows []domain.DetailRow) {
				row := rows[0]
				assertDecimal(t, "1000", row.AmountUSD, "usd")
				assertDecimal(t, "1000", row.AmountCapex, "capex")
				assertDecimal(t, "0", row.AmountOpex, "opex")
				assertDecimal(t, "36500.00", row.ConversionVES, "conversion ves")
				assertDecimal(t, "40000", row.ConversionFeedRate, "conversion feed")
				assertDecimal(t, "912.5", row.RealReconverted, "real")
				assertDecimal(t, "912.5", row.RealMonthReconverted, "real mes")
				assertDecimal(t, "36.5", row.CentralBankRate, "bcv")
				assertDecimal(t, "40", row.FeedRate, "ftd")
				assert.Equal(t, CategoryCapex, row.Category)
				assert.Equal(t, CapexTypeExt, row.CapexType)
				assertDecimal(t, "1000", row.AmountExt, "ext")
				assertDecimal(t, "0", row.AmountOrd, "ord")
				assert.Equal(t, "VES", row.PaymentCurrency)
				assert.Equal(t, "VES", row.PaymentMethodCalc)
				assert.Equal(t, "JUEVES", row.PaymentDay)
				assert.Equal(t, 5, row.Week)
				assert.Equal(t, "ENERO", row.PaymentMonth)
				assert.Equal(t, "2025-2026", row.FiscalYear)
			},
		},
		{
			name: "Linha em moeda local usa a taxa da sexta anterior e data de pagamento vazia",
			rows: []domain.DetailRow{{
				SourceRow: 3, InvoiceNumber: "F-002", Amount: dec("3650"), Currency: "VES", Priority: 69,
				CapexOrd: dec("60"), Cadm: dec("40"),
			}},
			validate: func(t *testing.T, rows []domain.DetailRow) {
				row := rows[0]
				assertDecimal(t, "100", row.AmountUSD, "usd")
				assertDecimal(t, "60", row.AmountCapex, "capex")
				assertDecimal(t, "40", row.AmountOpex, "opex")
				assertDecimal(t, "0", row.Validation, "validacion")
				assert.Equal(t, CategoryMixed, row.Category)
				assert.Equal(t, CapexTypeOrd, row.CapexType)
				assertDecimal(t, "60", row.AmountOrd, "ord")
				assert.Equal(t, "USD", row.PaymentCurrency)
				assertDecimal(t, "60", row.ConversionVES, "conversion ves")
				assertDecimal(t, "2400", row.ConversionFeedRate, "conversion feed")
				assertDecimal(t, "60", row.RealReconverted, "real")
				require.NotNil(t, row.PaymentDate)
				assert.Equal(t, day(2026, 1, 30), *row.PaymentDate)
				assert.Equal(t, 4, row.Week)
			},
		},
		{
			name: "Linha sem CAPEX é OPEX integral com prioridade desconhecida",
			rows: []domain.DetailRow{{
				InvoiceNumber: "F-003", Amount: dec("250"), Currency: "USD", Priority: 99, Cadm: dec("250"),
			}},
			validate: func(t *testing.T, rows []domain.DetailRow) {
				row := rows[0]
				assertDecimal(t, "0", row.AmountCapex, "capex")
				assertDecimal(t, "250", row.AmountOpex, "opex")
				assert.Equal(t, CategoryOpex, row.Category)
				assert.Equal(t, CapexTypeNone, row.CapexType)
				assert.Equal(t, "NA", row.PaymentCurrency)
				assert.Equal(t, "USD", row.PaymentMethodCalc)
				assert.Equal(t, "VIERNES", row.PaymentDay)
			},
		},
		{
			name: "CAPEX misto é repartido entre ORD e EXT e arredondado no final",
			rows: []domain.DetailRow{{
				InvoiceNumber: "F-004", Amount: dec("100"), Currency: "USD", Priority: 70,
				CapexExt: dec("1"), CapexOrd: dec("2"),
			}},
			validate: func(t *testing.T, rows []domain.DetailRow) {
				row := rows[0]
				assert.Equal(t, CapexTypeMixed, row.CapexType)
				assertDecimal(t, "66.67", row.AmountOrd, "ord")
				assertDecimal(t, "33.33", row.AmountExt, "ext")
			},
		},
		{
			name: "Real do mês acumula o histórico e a soma corrente",
			rows: []domain.DetailRow{
				{InvoiceNumber: "F-005", Amount: dec("1000"), Currency: "USD", Priority: 78, CapexExt: dec("1"), PaymentDate: ptr(day(2026, 1, 30))},
				{InvoiceNumber: "F-006", Amount: dec("60"), Currency: "USD", Priority: 69, CapexOrd: dec("1")},
				{InvoiceNumber: "F-007", Amount: dec("10"), Currency: "USD", Priority: 69, CapexOrd: dec("1"), PaymentDate: ptr(day(2026, 2, 2))},
			},
			prior: PriorAggregate{"ENERO": dec("100")},
			validate: func(t *testing.T, rows []domain.DetailRow) {
				assertDecimal(t, "1012.5", rows[0].RealMonthReconverted, "linha 1")
				assertDecimal(t, "1072.5", rows[1].RealMonthReconverted, "linha 2")
				assert.Equal(t, "FEBRERO", rows[2].PaymentMonth)
				assertDecimal(t, "10", rows[2].RealMonthReconverted, "linha 3")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Enrich(tt.rows, rateTable(), tt.prior, calcContext(t, reference))
			require.NoError(t, err)
			require.Len(t, rows, len(tt.rows))
			tt.validate(t, rows)
		})
	}
}

func TestEnrich_MissingRate(t *testing.T) {
	rows := []domain.DetailRow{
		{SourceRow: 2, InvoiceNumber: "F-001", Amount: dec("10"), Currency: "USD", Priority: 69, PaymentDate: ptr(day(2026, 1, 30))},
		{SourceRow: 3, InvoiceNumber: "F-002", Amount: dec("10"), Currency: "USD", Priority: 69, PaymentDate: ptr(day(2026, 1, 29))},
	}

	result, err := Enrich(rows, rateTable(), nil, calcContext(t, day(2026, 2, 4)))
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRate)
	assert.ErrorIs(t, err, rating.ErrRateNotFound)

	var missing *MissingRateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 3, missing.Row)
	assert.Equal(t, "F-002", missing.Invoice)
	assert.Equal(t, "vzla", missing.Country)
	assert.Equal(t, day(2026, 1, 29), missing.Date)
}

func TestEnrich_Deterministic(t *testing.T) {
	rows := []domain.DetailRow{
		{InvoiceNumber: "F-001", Amount: dec("1000"), Currency: "USD", Priority: 78, CapexExt: dec("3"), Cadm: dec("1")},
		{InvoiceNumber: "F-002", Amount: dec("3650"), Currency: "VES", Priority: 71, CapexOrd: dec("1")},
	}
	ctx := calcContext(t, day(2026, 2, 4))

	first, err := Enrich(rows, rateTable(), nil, ctx)
	require.NoError(t, err)
	second, err := Enrich(rows, rateTable(), nil, ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Nil(t, rows[0].PaymentDate)
	assert.True(t, rows[0].AmountCapex.IsZero())
}

func TestMonthToDate(t *testing.T) {
	history := []domain.DetailRow{
		{PaymentMonth: "ENERO", FiscalYear: "2025-2026", RealReconverted: dec("10.5")},
		{PaymentMonth: "ENERO", FiscalYear: "2025-2026", RealReconverted: dec("4.5")},
		{PaymentMonth: "ENERO", FiscalYear: "2024-2025", RealReconverted: dec("999")},
		{PaymentMonth: "DICIEMBRE", FiscalYear: "2025-2026", RealReconverted: dec("1")},
	}

	prior := MonthToDate(history, "2025-2026")
	assertDecimal(t, "15", prior["ENERO"], "enero")
	assertDecimal(t, "1", prior["DICIEMBRE"], "diciembre")
}
