package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRateCache  = "rate-cache"
	CronJobTypeTmpCleanup = "tmp-cleanup"
	CronJobTypeAll        = "all"
)

// CronJobServices indexa os agendadores pelo tipo usado na URL
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for cronType := range s {
		types = append(types, cronType)
	}
	sort.Strings(types)
	return types
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == CronJobTypeAll {
			for _, name := range services.types() {
				services[name].TriggerManualSync()
			}
		} else {
			job, ok := services[cronType]
			if !ok || job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de cron job inválido. Valores aceitos: "+strings.Join(append(services.types(), CronJobTypeAll), ", "), nil)
				return
			}
			job.TriggerManualSync()
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
