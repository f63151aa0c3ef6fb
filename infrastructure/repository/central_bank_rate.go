package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/capex-consolidado/infrastructure/database/postgres"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

type CentralBankRateRepository interface {
	ListRates(ctx context.Context, table string) ([]domain.CentralBankRate, error)
}

type centralBankRateRepository struct {
	conn *postgres.Connection
}

func NewCentralBankRateRepository(conn *postgres.Connection) CentralBankRateRepository {
	return &centralBankRateRepository{
		conn: conn,
	}
}

// As colunas da tabela do banco central foram criadas com maiúsculas e precisam de aspas
func listRatesQuery(table string) (string, []interface{}, error) {
	return squirrel.
		Select(pq.QuoteIdentifier("Date"), pq.QuoteIdentifier("USD")).
		From(table).
		Where(squirrel.NotEq{pq.QuoteIdentifier("USD"): nil}).
		OrderBy(pq.QuoteIdentifier("Date") + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *centralBankRateRepository) ListRates(ctx context.Context, table string) ([]domain.CentralBankRate, error) {
	query, args, err := listRatesQuery(table)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar taxas em %s: %w", table, err)
	}
	defer rows.Close()

	var rates []domain.CentralBankRate
	for rows.Next() {
		var rate domain.CentralBankRate
		if err := rows.Scan(&rate.Date, &rate.USD); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		rate.Date = rate.Date.UTC()
		rates = append(rates, rate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return rates, nil
}
