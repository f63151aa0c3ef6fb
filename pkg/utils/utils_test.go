package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "", want: "0"},
		{input: "1234.56", want: "1234.56"},
		{input: "1,234.56", want: "1234.56"},
		{input: "1.234,56", want: "1234.56"},
		{input: "1234,56", want: "1234.56"},
		{input: "1.234.567", want: "1234567"},
		{input: "1,234", want: "1234"},
		{input: "36,5", want: "36.5"},
		{input: "36,500", want: "36500"},
		{input: "36.500", want: "36.5"},
		{input: "0,500", want: "0.5"},
		{input: "$ 1,000.00", want: "1000"},
		{input: "(250.10)", want: "-250.1"},
		{input: "-15", want: "-15"},
		{input: "nan", want: "0"},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDecimal(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "36500", RoundMoney(decimal.RequireFromString("36500.000")).String())
	assert.Equal(t, "10.13", RoundMoney(decimal.RequireFromString("10.125")).String())
	assert.Equal(t, "-10.13", RoundMoney(decimal.RequireFromString("-10.125")).String())
	assert.True(t, RoundMoney(decimal.Zero).IsZero())
}

func TestParseSheetDate(t *testing.T) {
	want := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		wantNil bool
		wantErr bool
	}{
		{name: "ISO", input: "2026-02-03"},
		{name: "ISO com hora", input: "2026-02-03 10:15:00"},
		{name: "Dia/mês/ano", input: "03/02/2026"},
		{name: "Serial do Excel", input: "46056"},
		{name: "Serial do Excel com fração", input: "46056.75"},
		{name: "Vazio", input: "  ", wantNil: true},
		{name: "NaT", input: "NaT", wantNil: true},
		{name: "Inválido", input: "ontem", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSheetDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, want, *got)
		})
	}
}

func TestFoldText(t *testing.T) {
	assert.Equal(t, "metodo de pago", FoldText("  Método   de PAGO "))
	assert.Equal(t, "fecha creacion", FoldText("Fecha Creación"))
	assert.Equal(t, "ano fiscal", FoldText("AÑO FISCAL"))
	assert.Equal(t, "descripcion", FoldText("DESCRIPCIÓN"))
}

func TestGenerateArtifactID(t *testing.T) {
	id, err := GenerateArtifactID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
}

func TestLastWeekFriday(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		expected  time.Time
	}{
		{"Segunda-feira volta para a sexta anterior", time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC), time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC)},
		{"Quarta-feira volta para a sexta da semana passada", time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)},
		{"Sexta-feira volta sete dias", time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)},
		{"Domingo pertence à semana iniciada na segunda", time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LastWeekFriday(tt.reference))
		})
	}
}
