package handler

import (
	"net/http"

	"github.com/vfg2006/kpi-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// KpiRecords retorna as rotas de manutenção dos registros de KPI
func KpiRecords(service recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/api/kpi",
			Method:  http.MethodGet,
			Handler: ListKpiRecords(service),
		},
		{
			Path:    "/api/kpi",
			Method:  http.MethodPost,
			Handler: CreateKpiRecord(service),
		},
		{
			Path:    "/api/kpi/:id",
			Method:  http.MethodPut,
			Handler: UpdateKpiRecord(service),
		},
		{
			Path:    "/api/kpi/:id",
			Method:  http.MethodDelete,
			Handler: DeleteKpiRecord(service),
		},
		{
			Path:    "/api/kpi/teams",
			Method:  http.MethodGet,
			Handler: ListKpiTeams(service),
		},
	}
}

// KpiReports retorna as rotas de leitura agregada: estatísticas, resumo do
// painel, séries para gráfico, distribuição, alertas e fotografias
func KpiReports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/kpi/stats",
			Method:  http.MethodGet,
			Handler: GetKpiStats(service),
		},
		{
			Path:    "/api/kpi/summary",
			Method:  http.MethodGet,
			Handler: GetKpiSummary(service),
		},
		{
			Path:    "/api/kpi/series/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlySeries(service),
		},
		{
			Path:    "/api/kpi/breakdown",
			Method:  http.MethodGet,
			Handler: GetKpiBreakdown(service),
		},
		{
			Path:    "/api/kpi/alerts",
			Method:  http.MethodGet,
			Handler: GetKpiAlerts(service),
		},
		{
			Path:    "/api/kpi/snapshots",
			Method:  http.MethodGet,
			Handler: GetSummarySnapshots(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/snapshot/run",
			Method:  http.MethodPost,
			Handler: RunSnapshotJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
