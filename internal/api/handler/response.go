package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/infrastructure/spreadsheet"
	"github.com/vfg2006/capex-consolidado/infrastructure/storage"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/converting"
	"github.com/vfg2006/capex-consolidado/internal/usecases/normalizing"
	"github.com/vfg2006/capex-consolidado/internal/usecases/rating"
	"github.com/vfg2006/capex-consolidado/internal/usecases/reporting"
	"github.com/vfg2006/capex-consolidado/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// errorCode traduz os erros dos casos de uso para os códigos da API
func errorCode(err error) string {
	var (
		schemaErr *normalizing.SchemaMismatchError
		rateErr   *rating.RateNotFoundError
	)

	switch {
	case errors.As(err, &schemaErr), errors.Is(err, normalizing.ErrSchemaMismatch):
		return apiErrors.ErrSchemaMismatch
	case errors.As(err, &rateErr), errors.Is(err, converting.ErrMissingRate), errors.Is(err, rating.ErrRateNotFound):
		return apiErrors.ErrRateNotFound
	case errors.Is(err, rating.ErrRateSource):
		return apiErrors.ErrExternalService
	case errors.Is(err, domain.ErrTemplateLayout), errors.Is(err, reporting.ErrTemplateNotFound):
		return apiErrors.ErrTemplateLayout
	case errors.Is(err, domain.ErrWriteConflict):
		return apiErrors.ErrWriteConflict
	case errors.Is(err, reporting.ErrArtifactNotFound), errors.Is(err, storage.ErrObjectNotFound):
		return apiErrors.ErrArtifactNotFound
	case errors.Is(err, config.ErrUnknownCountry):
		return apiErrors.ErrUnknownCountry
	case errors.Is(err, reporting.ErrEmptyFile):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, spreadsheet.ErrUnsupportedFormat), errors.Is(err, spreadsheet.ErrNoSheets), errors.Is(err, storage.ErrInvalidKey):
		return apiErrors.ErrInvalidFormat
	case errors.Is(err, context.DeadlineExceeded):
		return apiErrors.ErrCommunication
	default:
		return apiErrors.ErrInternalServer
	}
}

// writeUseCaseError responde com o código mapeado; erros tipados vão como detalhes
func writeUseCaseError(w http.ResponseWriter, err error) {
	code := errorCode(err)

	var details any
	var (
		schemaErr *normalizing.SchemaMismatchError
		rateErr   *rating.RateNotFoundError
		missing   *converting.MissingRateError
		layoutErr *domain.TemplateLayoutError
		writeErr  *domain.WriteConflictError
	)
	switch {
	case errors.As(err, &schemaErr):
		details = schemaErr
	case errors.As(err, &missing):
		details = map[string]any{"row": missing.Row, "invoice": missing.Invoice, "date": domain.DateKey(missing.Date)}
	case errors.As(err, &rateErr):
		details = map[string]any{"country": rateErr.Country, "date": domain.DateKey(rateErr.Date), "missing": rateErr.Missing}
	case errors.As(err, &layoutErr):
		details = layoutErr
	case errors.As(err, &writeErr):
		details = writeErr
	}

	if code == apiErrors.ErrInternalServer {
		logrus.WithError(err).Error("Erro não mapeado na execução")
	}

	apiErrors.WriteError(w, code, err.Error(), details)
}
