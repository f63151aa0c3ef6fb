package handler

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/infrastructure/storage"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/converting"
	"github.com/vfg2006/capex-consolidado/internal/usecases/reporting"
	"github.com/vfg2006/capex-consolidado/pkg/apiErrors"
	"github.com/vfg2006/capex-consolidado/pkg/utils"
)

const (
	diagnosticTimeout = 10 * time.Second
	templatePrefix    = "template/"
)

// Diagnostics reúne o que os endpoints de diagnóstico consultam
type Diagnostics struct {
	Profiles    config.Profiles
	Tables      TableInspector
	Differences DifferenceReader
	Database    DatabasePinger
	Store       storage.ObjectStore
	Clock       func() time.Time
}

func (d Diagnostics) now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}

// selectedProfiles devolve o perfil pedido em ?pais= ou todos
func (d Diagnostics) selectedProfiles(r *http.Request) ([]*config.CountryProfile, error) {
	if country := r.URL.Query().Get("pais"); country != "" {
		profile, err := d.Profiles.Get(country)
		if err != nil {
			return nil, err
		}
		return []*config.CountryProfile{profile}, nil
	}

	profiles := make([]*config.CountryProfile, 0, len(d.Profiles))
	for _, key := range d.Profiles.Keys() {
		profiles = append(profiles, d.Profiles[key])
	}
	return profiles, nil
}

func TableInfo(d Diagnostics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := d.selectedProfiles(r)
		if err != nil {
			writeUseCaseError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), diagnosticTimeout)
		defer cancel()

		tables := make(map[string]*domain.TableInfo, len(profiles))
		for _, profile := range profiles {
			info, err := d.Tables.TableInfo(ctx, profile.Warehouse.DetailTable)
			if err != nil {
				logrus.WithError(err).WithField("table", profile.Warehouse.DetailTable).Error("Erro ao consultar tabela")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), map[string]string{"country": profile.Key})
				return
			}
			tables[profile.Key] = info
		}

		writeJSON(w, http.StatusOK, tables)
	}
}

func TestConnection(d Diagnostics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), diagnosticTimeout)
		defer cancel()

		start := time.Now()
		if err := d.Database.Ping(ctx); err != nil {
			logrus.WithError(err).Error("Banco de dados indisponível")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status":     "ok",
			"latency_ms": time.Since(start).Milliseconds(),
		})
	}
}

// TestStorage grava, lê e remove um objeto de prova em tmp/
func TestStorage(d Diagnostics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), diagnosticTimeout)
		defer cancel()

		id, err := utils.GenerateArtifactID()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}
		key := reporting.TmpPrefix + "storage_check_" + id + ".txt"
		payload := []byte(d.now().UTC().Format(time.RFC3339))

		step := "put"
		err = d.Store.Put(ctx, key, payload)
		if err == nil {
			step = "get"
			var content []byte
			content, err = d.Store.Get(ctx, key)
			if err == nil && !bytes.Equal(content, payload) {
				err = storage.ErrObjectNotFound
			}
		}
		if err == nil {
			step = "delete"
			err = d.Store.Delete(ctx, key)
		}

		if err != nil {
			logrus.WithError(err).WithField("step", step).Error("Storage indisponível")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), map[string]string{"step": step})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"store":  d.Store.Info(),
		})
	}
}

// BucketInfo resume quantos objetos há em cada prefixo do storage
func BucketInfo(d Diagnostics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), diagnosticTimeout)
		defer cancel()

		prefixes := map[string]any{}
		for _, prefix := range []string{templatePrefix, reporting.TmpPrefix, reporting.OutputPrefix} {
			objects, err := d.Store.List(ctx, prefix)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), map[string]string{"prefix": prefix})
				return
			}

			var size int64
			for _, object := range objects {
				size += object.Size
			}
			prefixes[strings.TrimSuffix(prefix, "/")] = map[string]any{
				"objects": len(objects),
				"bytes":   size,
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"store":    d.Store.Info(),
			"prefixes": prefixes,
		})
	}
}

// LatestDifferences devolve o último snapshot de diferenças do ano fiscal (?fiscal_year=2025-2026)
func LatestDifferences(d Diagnostics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := d.Profiles.Get(httprouter.ParamsFromContext(r.Context()).ByName("country"))
		if err != nil {
			writeUseCaseError(w, err)
			return
		}

		fiscalYear := r.URL.Query().Get("fiscal_year")
		if fiscalYear == "" {
			fiscalYear = converting.FiscalYear(utils.LastWeekFriday(d.now()))
		}

		entries, err := d.Differences.LatestByFiscalYear(r.Context(), profile.Warehouse.DifferenceTable, profile.Key, fiscalYear)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}
		if entries == nil {
			entries = []domain.DifferenceEntry{}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"country":     profile.Key,
			"fiscal_year": fiscalYear,
			"entries":     entries,
		})
	}
}
