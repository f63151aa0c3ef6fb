package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/infrastructure/database/postgres"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

var differenceColumns = []string{
	"id", "country", "fiscal_year", "month", "row_number", "area",
	"remanente", "presupuesto", "ejecutado", "executed_at",
}

type DifferenceRepository interface {
	ExistingIDs(ctx context.Context, table string, ids []string) (map[string]bool, error)
	InsertBatch(ctx context.Context, table string, entries []domain.DifferenceEntry) (int, error)
	LatestByFiscalYear(ctx context.Context, table, country, fiscalYear string) ([]domain.DifferenceEntry, error)
}

type differenceRepository struct {
	conn      *postgres.Connection
	batchSize int
}

func NewDifferenceRepository(conn *postgres.Connection, batchSize int) DifferenceRepository {
	return &differenceRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

func (r *differenceRepository) ExistingIDs(ctx context.Context, table string, ids []string) (map[string]bool, error) {
	return existingIDs(ctx, r.conn, table, ids, r.batchSize)
}

func insertDifferenceQuery(table string, entries []domain.DifferenceEntry) (string, []interface{}, error) {
	builder := squirrel.
		Insert(table).
		Columns(differenceColumns...).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, e := range entries {
		builder = builder.Values(
			e.ID, e.Country, e.FiscalYear, e.Month, e.Row, e.Area,
			e.Remanente, e.Presupuesto, e.Ejecutado, e.ExecutedAt,
		)
	}

	return builder.ToSql()
}

func (r *differenceRepository) InsertBatch(ctx context.Context, table string, entries []domain.DifferenceEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	query, args, err := insertDifferenceQuery(table, entries)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	inserted := 0
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("erro ao inserir diferenças em %s: %w", table, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
		}
		inserted = int(affected)
		return nil
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"table":    table,
		"entries":  len(entries),
		"inserted": inserted,
	}).Debug("repository: diferenças inseridas")

	return inserted, nil
}

func latestDifferencesQuery(table, country, fiscalYear string) (string, []interface{}, error) {
	latest := squirrel.
		Select("MAX(executed_at)").
		From(table).
		Where(squirrel.Eq{"country": country, "fiscal_year": fiscalYear})

	latestSQL, latestArgs, err := latest.ToSql()
	if err != nil {
		return "", nil, err
	}

	return squirrel.
		Select(differenceColumns...).
		From(table).
		Where(squirrel.Eq{"country": country, "fiscal_year": fiscalYear}).
		Where(squirrel.Expr("executed_at = ("+latestSQL+")", latestArgs...)).
		OrderBy("row_number ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// LatestByFiscalYear retorna o snapshot do último fechamento executado no ano fiscal
func (r *differenceRepository) LatestByFiscalYear(ctx context.Context, table, country, fiscalYear string) ([]domain.DifferenceEntry, error) {
	query, args, err := latestDifferencesQuery(table, country, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar diferenças de %s: %w", table, err)
	}
	defer rows.Close()

	entries := make([]domain.DifferenceEntry, 0)
	for rows.Next() {
		var e domain.DifferenceEntry
		if err := rows.Scan(
			&e.ID, &e.Country, &e.FiscalYear, &e.Month, &e.Row, &e.Area,
			&e.Remanente, &e.Presupuesto, &e.Ejecutado, &e.ExecutedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return entries, nil
}
