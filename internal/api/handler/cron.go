package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/internal/scheduler"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
)

// CronJobServices contém os serviços de cron disponíveis para execução
// manual
type CronJobServices struct {
	SummarySnapshotSyncService *scheduler.SummarySnapshotSyncService
}

// RunSnapshotJob dispara manualmente a geração das fotografias de resumo
func RunSnapshotJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSnapshotJob")

		if services.SummarySnapshotSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Snapshot service unavailable")
			return
		}

		services.SummarySnapshotSyncService.TriggerManualSync()

		response := map[string]any{
			"message": "Snapshot job started",
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("cron: erro ao codificar resposta")
		}
	}
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if services.SummarySnapshotSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Snapshot service unavailable")
			return
		}

		status := map[string]any{
			"snapshot": services.SummarySnapshotSyncService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("cron: erro ao codificar resposta")
		}
	}
}
