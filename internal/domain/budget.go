package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetRow é uma linha da tabela Presupuesto Mensual usada no fechamento
// (C = Remanente, D = Presupuesto, E = Diferencia/Ejecutado)
type BudgetRow struct {
	Row         int             `json:"row"`
	Area        string          `json:"area"`
	Remanente   decimal.Decimal `json:"remanente"`
	Presupuesto decimal.Decimal `json:"presupuesto"`
	Diferencia  decimal.Decimal `json:"diferencia"`
}

// DifferenceEntry é o snapshot persistido das linhas de orçamento após o fechamento
type DifferenceEntry struct {
	ID          string          `json:"id"`
	Country     string          `json:"country"`
	FiscalYear  string          `json:"fiscal_year"`
	Month       string          `json:"month"`
	Row         int             `json:"row"`
	Area        string          `json:"area"`
	Remanente   decimal.Decimal `json:"remanente"`
	Presupuesto decimal.Decimal `json:"presupuesto"`
	Ejecutado   decimal.Decimal `json:"ejecutado"`
	ExecutedAt  time.Time       `json:"executed_at"`
}

// DifferenceID identifica a linha de diferença de um mês; é estável entre execuções
func DifferenceID(country, fiscalYear, month string, row int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%d", country, fiscalYear, month, row)))
	return hex.EncodeToString(sum[:])
}
