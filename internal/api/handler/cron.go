package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

const CronJobTypeReportSync = "report-sync"

// ReportSyncTrigger é o agendador exposto nas rotas de cron
type ReportSyncTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	ReportSyncService ReportSyncTrigger
}

// RunReportSync executa manualmente a sincronização de relatórios
func RunReportSync(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunReportSync")

		if services.ReportSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de relatórios não disponível", nil)
			return
		}

		started := services.ReportSyncService.TriggerManualSync()

		message := "Cron job iniciada com sucesso"
		status := http.StatusAccepted
		if !started {
			message = "Cron job já está em execução"
			status = http.StatusConflict
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"message": message,
			"type":    CronJobTypeReportSync,
		})
	}
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.ReportSyncService != nil {
			status[CronJobTypeReportSync] = services.ReportSyncService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
