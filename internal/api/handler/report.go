package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/usecases/reporting"
	"github.com/vfg2006/capex-consolidado/pkg/apiErrors"
	"github.com/vfg2006/capex-consolidado/pkg/middleware"
	"github.com/vfg2006/capex-consolidado/pkg/utils"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	fieldFile           = "file"
	fieldAbsoluteReport = "reporte_absoluto"
	fieldCountry        = "pais"
	fieldReferenceDate  = "fecha_referencia"
)

// ReportOptions limita uploads e a duração de cada execução
type ReportOptions struct {
	DefaultCountry string
	MaxUploadBytes int64
	RunTimeout     time.Duration
}

type uploadForm struct {
	country   string
	reference *time.Time
}

// parseUploadForm lê o multipart respeitando o limite e resolve país e data de referência
func parseUploadForm(w http.ResponseWriter, r *http.Request, opts ReportOptions) (*uploadForm, bool) {
	if opts.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, opts.MaxUploadBytes)
	}

	if err := r.ParseMultipartForm(opts.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, fmt.Sprintf("Arquivo acima do limite de %d bytes", tooLarge.Limit), nil)
			return nil, false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
		return nil, false
	}

	form := &uploadForm{
		country: strings.ToLower(strings.TrimSpace(r.FormValue(fieldCountry))),
	}
	if form.country == "" {
		form.country = opts.DefaultCountry
	}

	if raw := strings.TrimSpace(r.FormValue(fieldReferenceDate)); raw != "" {
		reference, err := utils.ParseDate(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "fecha_referencia deve estar no formato YYYY-MM-DD", nil)
			return nil, false
		}
		form.reference = reference
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	if !claims.CanAccessCountry(form.country) {
		apiErrors.WriteError(w, apiErrors.ErrCountryNotAllowed, "Operador sem acesso ao país "+form.country, nil)
		return nil, false
	}

	return form, true
}

// readFormFile devolve nil quando o campo é opcional e não foi enviado
func readFormFile(r *http.Request, field string, required bool) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) && !required {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func runContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}

// GenerateBosqueto recebe o relatório de pagamentos (e opcionalmente o reporte absoluto)
// e devolve a chave do BOSQUETO gerado para correção
func GenerateBosqueto(service reporting.Reporter, opts ReportOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateBosqueto")

		form, ok := parseUploadForm(w, r, opts)
		if !ok {
			return
		}

		payment, err := readFormFile(r, fieldFile, true)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo 'file' é obrigatório", nil)
			return
		}
		absolute, err := readFormFile(r, fieldAbsoluteReport, false)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler 'reporte_absoluto'", nil)
			return
		}

		ctx, cancel := runContext(r, opts.RunTimeout)
		defer cancel()

		artifact, err := service.GenerateBosqueto(ctx, reporting.GenerateRequest{
			Country:       form.country,
			Payment:       payment,
			Absolute:      absolute,
			ReferenceDate: form.reference,
		})
		if err != nil {
			logrus.WithError(err).WithField("country", form.country).Error("Erro ao gerar BOSQUETO")
			writeUseCaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"artifact":     artifact,
			"download_url": "/api/v1/artifacts/" + artifact.Key,
		})
	}
}

// UploadBosqueto processa o BOSQUETO corrigido e devolve o resumo da execução
func UploadBosqueto(service reporting.Reporter, opts ReportOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UploadBosqueto")

		form, ok := parseUploadForm(w, r, opts)
		if !ok {
			return
		}

		bosqueto, err := readFormFile(r, fieldFile, true)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo 'file' é obrigatório", nil)
			return
		}

		ctx, cancel := runContext(r, opts.RunTimeout)
		defer cancel()

		summary, err := service.Process(ctx, reporting.ProcessRequest{
			Country:       form.country,
			Bosqueto:      bosqueto,
			ReferenceDate: form.reference,
		})
		if err != nil {
			logrus.WithError(err).WithField("country", form.country).Error("Erro ao processar BOSQUETO")
			writeUseCaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"summary":      summary,
			"download_url": "/api/v1/artifacts/" + summary.ArtifactKey,
		})
	}
}

// DownloadArtifact entrega um xlsx gerado (tmp/ ou output/)
func DownloadArtifact(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(httprouter.ParamsFromContext(r.Context()).ByName("key"), "/")
		if key == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Chave do artefato não informada", nil)
			return
		}

		content, err := service.Artifact(r.Context(), key)
		if err != nil {
			logrus.WithError(err).WithField("key", key).Warn("Artefato não entregue")
			writeUseCaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(key)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(content); err != nil {
			logrus.WithError(err).Error("Erro ao enviar artefato")
		}
	}
}
