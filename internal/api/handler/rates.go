package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/rating"
	"github.com/vfg2006/capex-consolidado/pkg/apiErrors"
)

type rateTableStatus struct {
	Country  string            `json:"country"`
	Entries  int               `json:"entries"`
	LoadedAt time.Time         `json:"loaded_at"`
	Latest   *domain.RateEntry `json:"latest,omitempty"`
}

func tableStatus(table *rating.RateTable) rateTableStatus {
	status := rateTableStatus{
		Country:  table.Country(),
		Entries:  table.Len(),
		LoadedAt: table.LoadedAt(),
	}
	if latest, ok := table.Latest(); ok {
		status.Latest = &latest
	}
	return status
}

// GetRate resolve as taxas vigentes de um país numa data (YYYY-MM-DD)
func GetRate(resolver rating.RateResolver, profiles config.Profiles) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		country := params.ByName("country")

		profile, err := profiles.Get(country)
		if err != nil {
			writeUseCaseError(w, err)
			return
		}

		date, err := time.Parse(time.DateOnly, params.ByName("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data deve estar no formato YYYY-MM-DD", nil)
			return
		}

		entry, err := resolver.Resolve(r.Context(), date, profile.Key)
		if err != nil {
			writeUseCaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

// PreloadRates recarrega o snapshot de taxas do país a partir das fontes
func PreloadRates(resolver rating.RateResolver, profiles config.Profiles) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PreloadRates")

		profile, err := profiles.Get(httprouter.ParamsFromContext(r.Context()).ByName("country"))
		if err != nil {
			writeUseCaseError(w, err)
			return
		}

		table, err := resolver.PreloadAll(r.Context(), profile.Key)
		if err != nil {
			writeUseCaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tableStatus(table))
	}
}

// ListRateCache mostra os países com snapshot carregado
func ListRateCache(resolver rating.RateResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make([]rateTableStatus, 0)
		for _, country := range resolver.Countries() {
			if table := resolver.Snapshot(country); table != nil {
				statuses = append(statuses, tableStatus(table))
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{"countries": statuses})
	}
}

func ClearRateCache(resolver rating.RateResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ClearRateCache")

		cleared := resolver.Countries()
		resolver.ClearCache()

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cache de taxas limpo",
			"cleared": cleared,
		})
	}
}
