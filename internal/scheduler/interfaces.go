package scheduler

import (
	"context"

	"github.com/vfg2006/capex-consolidado/infrastructure/storage"
	"github.com/vfg2006/capex-consolidado/internal/usecases/rating"
)

// RateRefresher é a parte do resolvedor de taxas usada pela atualização agendada
type RateRefresher interface {
	ClearCache()
	PreloadAll(ctx context.Context, country string) (*rating.RateTable, error)
}

// ArtifactStore lista e remove artefatos temporários
type ArtifactStore interface {
	List(ctx context.Context, prefix string) ([]storage.ObjectInfo, error)
	Delete(ctx context.Context, key string) error
}
