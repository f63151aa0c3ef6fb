// Package reporting orquestra a geração do BOSQUETO e o processamento do consolidado
package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/converting"
	"github.com/vfg2006/capex-consolidado/internal/usecases/normalizing"
	"github.com/vfg2006/capex-consolidado/internal/usecases/templating"
	"github.com/vfg2006/capex-consolidado/pkg/metrics"
	"github.com/vfg2006/capex-consolidado/pkg/utils"
)

const (
	TmpPrefix    = "tmp/"
	OutputPrefix = "output/"
)

type GenerateRequest struct {
	Country string
	Payment []byte
	// Absolute é o reporte absoluto opcional usado no lookup de CECO, projeto e descrição
	Absolute      []byte
	ReferenceDate *time.Time
}

type ProcessRequest struct {
	Country       string
	Bosqueto      []byte
	ReferenceDate *time.Time
}

type Service struct {
	profiles    config.Profiles
	reader      SheetReader
	rates       RateLoader
	details     DetailRepository
	differences DifferenceRepository
	store       ObjectStore
	clock       func() time.Time
}

func NewService(
	profiles config.Profiles,
	reader SheetReader,
	rates RateLoader,
	details DetailRepository,
	differences DifferenceRepository,
	store ObjectStore,
) *Service {
	return &Service{
		profiles:    profiles,
		reader:      reader,
		rates:       rates,
		details:     details,
		differences: differences,
		store:       store,
		clock:       time.Now,
	}
}

// WithClock substitui o relógio usado quando a requisição não informa a data de referência
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

func (s *Service) referenceDate(requested *time.Time) time.Time {
	if requested != nil {
		return utils.DateOnly(*requested)
	}
	return utils.DateOnly(s.clock())
}

// GenerateBosqueto normaliza o relatório de pagamentos, aplica o reporte absoluto,
// calcula as colunas derivadas e grava o BOSQUETO em tmp/
func (s *Service) GenerateBosqueto(ctx context.Context, req GenerateRequest) (artifact *domain.BosquetoArtifact, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveReportRun("bosqueto", req.Country, err, time.Since(start))
	}()

	profile, err := s.profiles.Get(req.Country)
	if err != nil {
		return nil, err
	}
	if len(req.Payment) == 0 {
		return nil, ErrEmptyFile
	}

	reference := s.referenceDate(req.ReferenceDate)
	log := logrus.WithFields(logrus.Fields{
		"country":   profile.Key,
		"reference": domain.DateKey(reference),
	})

	sheet, err := s.reader.Read(req.Payment, "")
	if err != nil {
		return nil, err
	}
	rows, err := normalizing.Normalize(sheet, profile)
	if err != nil {
		log.WithError(err).Error("bosqueto: erro ao normalizar relatório de pagamentos")
		return nil, err
	}

	var lookup *normalizing.InvoiceLookup
	if len(req.Absolute) > 0 {
		absolute, err := s.reader.Read(req.Absolute, "")
		if err != nil {
			return nil, err
		}
		lookup, err = normalizing.NormalizeAbsoluteReport(absolute, reference)
		if err != nil {
			log.WithError(err).Error("bosqueto: erro ao normalizar reporte absoluto")
			return nil, err
		}
	}
	notFound := normalizing.ApplyLookup(rows, lookup)

	rates, err := s.rates.PreloadAll(ctx, profile.Key)
	if err != nil {
		return nil, err
	}

	enriched, err := converting.Enrich(rows, rates, nil, converting.CalcContext{ReferenceDate: reference, Profile: profile})
	if err != nil {
		log.WithError(err).Error("bosqueto: erro ao calcular colunas")
		return nil, err
	}

	content, err := templating.BuildBosqueto(enriched, profile.Template.Bosqueto)
	if err != nil {
		return nil, err
	}

	artifactID, err := utils.GenerateArtifactID()
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%sbosqueto_%s.xlsx", TmpPrefix, artifactID)
	if err := s.store.Put(ctx, key, content); err != nil {
		log.WithError(err).Error("bosqueto: erro ao gravar artefato")
		return nil, err
	}

	metrics.AddReportRows(profile.Key, metrics.RowsProcessed, len(enriched))
	log.WithFields(logrus.Fields{
		"rows":      len(enriched),
		"not_found": notFound,
		"key":       key,
	}).Info("bosqueto: arquivo gerado")

	return &domain.BosquetoArtifact{
		Key:         key,
		Country:     profile.Key,
		Rows:        len(enriched),
		NotFound:    notFound,
		GeneratedAt: s.clock().Format(time.RFC3339),
	}, nil
}

// Process consolida o BOSQUETO corrigido: calcula, envia o consolidado ao
// armazenamento e só então persiste as linhas novas e o snapshot de fechamento
func (s *Service) Process(ctx context.Context, req ProcessRequest) (summary *domain.RunSummary, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveReportRun("process", req.Country, err, time.Since(start))
	}()

	profile, err := s.profiles.Get(req.Country)
	if err != nil {
		return nil, err
	}
	if len(req.Bosqueto) == 0 {
		return nil, ErrEmptyFile
	}

	reference := s.referenceDate(req.ReferenceDate)
	runID := uuid.NewString()
	fiscalYear := converting.FiscalYear(utils.LastWeekFriday(reference))
	log := logrus.WithFields(logrus.Fields{
		"run_id":      runID,
		"country":     profile.Key,
		"reference":   domain.DateKey(reference),
		"fiscal_year": fiscalYear,
	})

	sheet, err := s.reader.Read(req.Bosqueto, profile.Template.Bosqueto.Sheet)
	if err != nil {
		return nil, err
	}

	rates, err := s.rates.PreloadAll(ctx, profile.Key)
	if err != nil {
		return nil, err
	}

	history, err := s.details.ListByFiscalYear(ctx, profile.Warehouse.DetailTable, profile.Key, fiscalYear)
	if err != nil {
		log.WithError(err).Error("report-process: erro ao carregar histórico")
		return nil, err
	}

	template, err := s.store.Get(ctx, profile.Template.Path)
	if err != nil {
		log.WithError(err).Error("report-process: erro ao baixar template")
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, profile.Template.Path, err)
	}

	out, err := Build(BuildInput{
		Profile:       profile,
		ReferenceDate: reference,
		Sheet:         sheet,
		Rates:         rates,
		History:       history,
		Template:      template,
	})
	if err != nil {
		log.WithError(err).Error("report-process: erro ao consolidar")
		return nil, err
	}

	key := fmt.Sprintf("%s%s/consolidado_%s.xlsx", OutputPrefix, profile.Key, runID)
	if err := s.store.Put(ctx, key, out.Workbook); err != nil {
		log.WithError(err).Error("report-process: erro ao gravar consolidado")
		return nil, err
	}

	inserted, duplicated, err := s.persistDetail(ctx, profile, out.Rows)
	if err != nil {
		log.WithError(err).Error("report-process: erro ao persistir detalhe")
		return nil, err
	}
	duplicated += out.Repeated

	if out.Close.IsCloseWeek {
		if err := s.persistDifferences(ctx, profile, out.Differences); err != nil {
			log.WithError(err).Error("report-process: erro ao persistir diferenças")
			return nil, err
		}
		metrics.IncCloseExecution(profile.Key)
	}

	metrics.AddReportRows(profile.Key, metrics.RowsProcessed, len(out.Rows))
	metrics.AddReportRows(profile.Key, metrics.RowsInserted, inserted)
	metrics.AddReportRows(profile.Key, metrics.RowsDuplicated, duplicated)

	summary = &domain.RunSummary{
		RunID:          runID,
		Country:        profile.Key,
		ReferenceDate:  domain.DateKey(reference),
		FiscalYear:     out.FiscalYear,
		RowsProcessed:  len(out.Rows),
		RowsInserted:   inserted,
		RowsDuplicated: duplicated,
		DetailRows:     len(out.Detail),
		CloseExecuted:  out.Close.IsCloseWeek,
		Errors:         []string{},
		ArtifactKey:    key,
	}

	log.WithFields(logrus.Fields{
		"rows":           summary.RowsProcessed,
		"inserted":       summary.RowsInserted,
		"duplicated":     summary.RowsDuplicated,
		"close_executed": summary.CloseExecuted,
		"key":            key,
	}).Info("report-process: consolidado gerado")

	return summary, nil
}

// persistDetail grava só as linhas cujo ID ainda não existe; repetidas no lote contam como duplicadas
func (s *Service) persistDetail(ctx context.Context, profile *config.CountryProfile, rows []domain.DetailRow) (int, int, error) {
	unique := dedupByID(rows)

	ids := make([]string, len(unique))
	for i, row := range unique {
		ids[i] = row.ID
	}
	existing, err := s.details.ExistingIDs(ctx, profile.Warehouse.DetailTable, ids)
	if err != nil {
		return 0, 0, err
	}

	fresh := make([]domain.DetailRow, 0, len(unique))
	for _, row := range unique {
		if !existing[row.ID] {
			fresh = append(fresh, row)
		}
	}
	if len(fresh) == 0 {
		return 0, len(rows), nil
	}

	inserted, err := s.details.InsertBatch(ctx, profile.Warehouse.DetailTable, fresh)
	if err != nil {
		return 0, 0, err
	}
	return inserted, len(rows) - inserted, nil
}

func (s *Service) persistDifferences(ctx context.Context, profile *config.CountryProfile, entries []domain.DifferenceEntry) error {
	if len(entries) == 0 {
		return nil
	}

	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	existing, err := s.differences.ExistingIDs(ctx, profile.Warehouse.DifferenceTable, ids)
	if err != nil {
		return err
	}

	fresh := make([]domain.DifferenceEntry, 0, len(entries))
	for _, entry := range entries {
		if !existing[entry.ID] {
			fresh = append(fresh, entry)
		}
	}
	if len(fresh) == 0 {
		return nil
	}

	_, err = s.differences.InsertBatch(ctx, profile.Warehouse.DifferenceTable, fresh)
	return err
}

// Artifact só entrega chaves geradas pelo serviço (tmp/ e output/)
func (s *Service) Artifact(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimPrefix(key, "/")
	if strings.Contains(key, "..") || !(strings.HasPrefix(key, TmpPrefix) || strings.HasPrefix(key, OutputPrefix)) {
		return nil, ErrArtifactNotFound
	}

	content, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrArtifactNotFound, key, err)
	}
	return content, nil
}
