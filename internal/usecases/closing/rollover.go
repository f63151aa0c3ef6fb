package closing

import (
	"fmt"
	"slices"
	"time"

	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

// Rollover leva a diferença de cada linha configurada para o remanente: C = E - D + C.
// Linhas fora do conjunto e as excluídas voltam intactas; a entrada não é alterada.
func Rollover(rows []domain.BudgetRow, layout config.RolloverLayout) ([]domain.BudgetRow, error) {
	result := make([]domain.BudgetRow, len(rows))
	copy(result, rows)

	positions := make(map[int]int, len(result))
	for i, row := range result {
		positions[row.Row] = i
	}

	for _, number := range layout.Rows {
		if layout.IsExcluded(number) {
			continue
		}
		pos, ok := positions[number]
		if !ok {
			return nil, &domain.TemplateLayoutError{
				Sheet:  layout.Sheet,
				Cell:   fmt.Sprintf("%s%d", layout.RemainderColumn, number),
				Reason: "linha de fechamento ausente",
			}
		}

		row := result[pos]
		row.Remanente = row.Diferencia.Sub(row.Presupuesto).Add(row.Remanente)
		result[pos] = row
	}

	return result, nil
}

// Snapshot converte as linhas de fechamento no registro persistido de diferenças.
// O ID depende só de país, ano fiscal, mês e linha, então reprocessar o mesmo mês não duplica.
func Snapshot(rows []domain.BudgetRow, layout config.RolloverLayout, country, fiscalYear, month string, executedAt time.Time) []domain.DifferenceEntry {
	entries := make([]domain.DifferenceEntry, 0, len(rows))
	for _, row := range rows {
		if !slices.Contains(layout.Rows, row.Row) || layout.IsExcluded(row.Row) {
			continue
		}
		entries = append(entries, domain.DifferenceEntry{
			ID:          domain.DifferenceID(country, fiscalYear, month, row.Row),
			Country:     country,
			FiscalYear:  fiscalYear,
			Month:       month,
			Row:         row.Row,
			Area:        row.Area,
			Remanente:   row.Remanente,
			Presupuesto: row.Presupuesto,
			Ejecutado:   row.Diferencia,
			ExecutedAt:  executedAt,
		})
	}
	return entries
}
