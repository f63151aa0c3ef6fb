package reporting

import (
	"context"

	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/rating"
)

// SheetReader lê uma planilha enviada sem interpretar tipos; sheet vazio significa a primeira aba
type SheetReader interface {
	Read(content []byte, sheet string) (domain.RawSheet, error)
}

// RateLoader carrega o snapshot de taxas do país usado durante toda a execução
type RateLoader interface {
	PreloadAll(ctx context.Context, country string) (*rating.RateTable, error)
}

// DetailRepository persiste as linhas do detalhe de pagamentos no warehouse
type DetailRepository interface {
	ExistingIDs(ctx context.Context, table string, ids []string) (map[string]bool, error)
	InsertBatch(ctx context.Context, table string, rows []domain.DetailRow) (int, error)
	ListByFiscalYear(ctx context.Context, table, country, fiscalYear string) ([]domain.DetailRow, error)
}

// DifferenceRepository persiste o snapshot do orçamento após o fechamento
type DifferenceRepository interface {
	ExistingIDs(ctx context.Context, table string, ids []string) (map[string]bool, error)
	InsertBatch(ctx context.Context, table string, entries []domain.DifferenceEntry) (int, error)
}

// ObjectStore guarda templates e artefatos gerados
type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, content []byte) error
}

// Reporter é a interface consumida pelos handlers HTTP
type Reporter interface {
	// GenerateBosqueto normaliza o relatório de pagamentos e gera o BOSQUETO para correção
	GenerateBosqueto(ctx context.Context, req GenerateRequest) (*domain.BosquetoArtifact, error)

	// Process consolida o BOSQUETO corrigido no template do país
	Process(ctx context.Context, req ProcessRequest) (*domain.RunSummary, error)

	// Artifact devolve um artefato gerado pela chave
	Artifact(ctx context.Context, key string) ([]byte, error)
}
