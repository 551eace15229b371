package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-prediction-api/internal/scheduler"
	"github.com/vfg2006/sales-prediction-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSubmissionCleanup = "submission-cleanup"
	CronJobTypeAll               = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SubmissionCleanupService *scheduler.SubmissionCleanupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSubmissionCleanup, CronJobTypeAll:
			if services.SubmissionCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura de envios não disponível", nil)
				return
			}
			services.SubmissionCleanupService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido: "+cronType, nil)
			return
		}

		logrus.WithField("cron_type", cronType).Info("cron: manual run triggered")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status": "triggered",
			"type":   cronType,
		}); err != nil {
			logrus.WithError(err).Error("cron: error encoding response")
		}
	}
}

// GetCronStatus retorna o estado corrente das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SubmissionCleanupService != nil {
			status[CronJobTypeSubmissionCleanup] = services.SubmissionCleanupService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("cron: error encoding status response")
		}
	}
}
