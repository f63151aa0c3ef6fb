package handler

import (
	"context"

	"github.com/vfg2006/capex-consolidado/internal/domain"
)

// TableInspector lê contagens e última carga de uma tabela do warehouse
type TableInspector interface {
	TableInfo(ctx context.Context, table string) (*domain.TableInfo, error)
}

// DifferenceReader lê o último snapshot de diferenças gravado no fechamento
type DifferenceReader interface {
	LatestByFiscalYear(ctx context.Context, table, country, fiscalYear string) ([]domain.DifferenceEntry, error)
}

type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// CronJob é um agendador que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}
