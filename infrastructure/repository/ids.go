package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/capex-consolidado/infrastructure/database/postgres"
)

const defaultBatchSize = 1000

// chunk divide os ids em lotes para não estourar o limite de parâmetros do postgres
func chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = defaultBatchSize
	}

	var batches [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}

func existingIDsQuery(table string, ids []string) (string, []interface{}, error) {
	return squirrel.
		Select("id").
		From(table).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// existingIDs consulta em lotes quais ids já estão persistidos na tabela
func existingIDs(ctx context.Context, q postgres.Queryer, table string, ids []string, batchSize int) (map[string]bool, error) {
	found := make(map[string]bool)

	for _, batch := range chunk(ids, batchSize) {
		query, args, err := existingIDsQuery(table, batch)
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("erro ao consultar ids existentes em %s: %w", table, err)
		}

		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return nil, fmt.Errorf("erro ao processar resultado: %w", err)
			}
			found[id] = true
		}

		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("erro durante iteração: %w", err)
		}
	}

	return found, nil
}
