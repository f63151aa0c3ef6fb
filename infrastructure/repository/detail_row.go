package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/infrastructure/database/postgres"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

// 53 colunas por linha; 500 linhas ficam abaixo do limite de 65535 parâmetros
const insertBatchSize = 500

var detailColumns = []string{
	"id", "country", "source_row",
	"invoice_number", "purchase_order", "invoice_type", "batch_name",
	"provider", "tax_id", "document_date", "store", "branch",
	"amount", "currency", "due_date", "account", "account_id",
	"payment_method", "independent_payment", "priority",
	"capex_ext", "capex_ord", "cadm", "created_date", "requester", "payment_date",
	"store_lookup", "cost_center", "project", "area", "receipt_date", "description",
	"amount_usd", "amount_capex", "amount_opex", "validation", "category",
	"payment_currency", "payment_method_calc", "payment_day", "capex_type",
	"amount_ord", "amount_ext", "feed_rate", "central_bank_rate",
	"conversion_ves", "conversion_feed_rate", "real_reconverted", "real_month_reconverted",
	"week", "payment_month", "fiscal_year", "inserted_at",
}

type DetailRowRepository interface {
	ExistingIDs(ctx context.Context, table string, ids []string) (map[string]bool, error)
	InsertBatch(ctx context.Context, table string, rows []domain.DetailRow) (int, error)
	ListByFiscalYear(ctx context.Context, table, country, fiscalYear string) ([]domain.DetailRow, error)
	TableInfo(ctx context.Context, table string) (*domain.TableInfo, error)
}

type detailRowRepository struct {
	conn      *postgres.Connection
	batchSize int
	now       func() time.Time
}

func NewDetailRowRepository(conn *postgres.Connection, batchSize int) DetailRowRepository {
	return &detailRowRepository{
		conn:      conn,
		batchSize: batchSize,
		now:       time.Now,
	}
}

func (r *detailRowRepository) ExistingIDs(ctx context.Context, table string, ids []string) (map[string]bool, error) {
	return existingIDs(ctx, r.conn, table, ids, r.batchSize)
}

// InsertBatch grava as linhas numa única transação; ids já existentes são ignorados
func (r *detailRowRepository) InsertBatch(ctx context.Context, table string, rows []domain.DetailRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	insertedAt := r.now().UTC()
	inserted := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, batch := range chunk(rows, insertBatchSize) {
			query, args, err := insertDetailQuery(table, batch, insertedAt)
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("erro ao inserir linhas em %s: %w", table, err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
			}
			inserted += int(affected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"table":    table,
		"rows":     len(rows),
		"inserted": inserted,
	}).Debug("repository: linhas de detalhe inseridas")

	return inserted, nil
}

func insertDetailQuery(table string, rows []domain.DetailRow, insertedAt time.Time) (string, []interface{}, error) {
	builder := squirrel.
		Insert(table).
		Columns(detailColumns...).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		builder = builder.Values(detailValues(row, insertedAt)...)
	}

	return builder.ToSql()
}

func detailValues(row domain.DetailRow, insertedAt time.Time) []interface{} {
	return []interface{}{
		row.ID, row.Country, row.SourceRow,
		row.InvoiceNumber, row.PurchaseOrder, row.InvoiceType, row.BatchName,
		row.Provider, row.TaxID, row.DocumentDate, row.Store, row.Branch,
		row.Amount, row.Currency, row.DueDate, row.Account, row.AccountID,
		row.PaymentMethod, row.IndependentPayment, row.Priority,
		row.CapexExt, row.CapexOrd, row.Cadm, row.CreatedDate, row.Requester, row.PaymentDate,
		row.StoreLookup, row.CostCenter, row.Project, row.Area, row.ReceiptDate, row.Description,
		row.AmountUSD, row.AmountCapex, row.AmountOpex, row.Validation, row.Category,
		row.PaymentCurrency, row.PaymentMethodCalc, row.PaymentDay, row.CapexType,
		row.AmountOrd, row.AmountExt, row.FeedRate, row.CentralBankRate,
		row.ConversionVES, row.ConversionFeedRate, row.RealReconverted, row.RealMonthReconverted,
		row.Week, row.PaymentMonth, row.FiscalYear, insertedAt,
	}
}

func listByFiscalYearQuery(table, country, fiscalYear string) (string, []interface{}, error) {
	return squirrel.
		Select(detailColumns[:len(detailColumns)-1]...).
		From(table).
		Where(squirrel.Eq{"country": country, "fiscal_year": fiscalYear}).
		OrderBy("inserted_at ASC", "source_row ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// ListByFiscalYear devolve o histórico do ano fiscal na ordem em que foi persistido
func (r *detailRowRepository) ListByFiscalYear(ctx context.Context, table, country, fiscalYear string) ([]domain.DetailRow, error) {
	query, args, err := listByFiscalYearQuery(table, country, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar histórico de %s: %w", table, err)
	}
	defer rows.Close()

	var result []domain.DetailRow
	for rows.Next() {
		row, err := scanDetailRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return result, nil
}

func scanDetailRow(rows *sql.Rows) (domain.DetailRow, error) {
	var (
		row                                             domain.DetailRow
		documentDate, dueDate, createdDate, paymentDate sql.NullTime
	)

	err := rows.Scan(
		&row.ID, &row.Country, &row.SourceRow,
		&row.InvoiceNumber, &row.PurchaseOrder, &row.InvoiceType, &row.BatchName,
		&row.Provider, &row.TaxID, &documentDate, &row.Store, &row.Branch,
		&row.Amount, &row.Currency, &dueDate, &row.Account, &row.AccountID,
		&row.PaymentMethod, &row.IndependentPayment, &row.Priority,
		&row.CapexExt, &row.CapexOrd, &row.Cadm, &createdDate, &row.Requester, &paymentDate,
		&row.StoreLookup, &row.CostCenter, &row.Project, &row.Area, &row.ReceiptDate, &row.Description,
		&row.AmountUSD, &row.AmountCapex, &row.AmountOpex, &row.Validation, &row.Category,
		&row.PaymentCurrency, &row.PaymentMethodCalc, &row.PaymentDay, &row.CapexType,
		&row.AmountOrd, &row.AmountExt, &row.FeedRate, &row.CentralBankRate,
		&row.ConversionVES, &row.ConversionFeedRate, &row.RealReconverted, &row.RealMonthReconverted,
		&row.Week, &row.PaymentMonth, &row.FiscalYear,
	)
	if err != nil {
		return domain.DetailRow{}, err
	}

	row.DocumentDate = nullTime(documentDate)
	row.DueDate = nullTime(dueDate)
	row.CreatedDate = nullTime(createdDate)
	row.PaymentDate = nullTime(paymentDate)

	return row, nil
}

func nullTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time.UTC()
	return &t
}

func (r *detailRowRepository) TableInfo(ctx context.Context, table string) (*domain.TableInfo, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "MAX(inserted_at)").
		From(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	info := &domain.TableInfo{Table: table}
	var lastInserted sql.NullTime
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&info.Rows, &lastInserted); err != nil {
		return nil, fmt.Errorf("erro ao consultar %s: %w", table, err)
	}
	info.LastInsertedAt = nullTime(lastInserted)

	return info, nil
}
