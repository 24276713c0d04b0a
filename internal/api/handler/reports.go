package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
)

// GetKpiStats retorna os totais agregados do período e a quebra por time.
// Sem ano informado, agrega a base inteira.
func GetKpiStats(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, verr := parsePeriodQuery(r, 0, 0)
		if verr != nil {
			apiErrors.WriteValidationError(w, verr.Message, verr.Field)
			return
		}

		stats, err := service.GetStats(year, month)
		if err != nil {
			logger.WithError(err).Error("kpi-stats: erro ao agregar estatísticas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to compute KPI stats")
			return
		}

		logger.WithFields(log.Fields{
			"year":  year,
			"month": int(month),
			"teams": len(stats.Teams),
		}).Info("kpi-stats: estatísticas agregadas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("kpi-stats: erro ao codificar resposta")
		}
	})
}

// GetKpiSummary retorna os cartões do painel de um período/time: resumo do
// mês, ritmo semanal e acumulado do ano. Sem período informado, usa o mês
// corrente.
func GetKpiSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		now := time.Now()
		year, month, verr := parsePeriodQuery(r, now.Year(), now.Month())
		if verr != nil {
			apiErrors.WriteValidationError(w, verr.Message, verr.Field)
			return
		}

		team := r.URL.Query().Get("team")

		summary, err := service.GetDashboardSummary(year, month, team)
		if err != nil {
			logger.WithError(err).Error("kpi-summary: erro ao montar resumo do painel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to compute KPI summary")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("kpi-summary: erro ao codificar resposta")
		}
	})
}

// GetMonthlySeries retorna a série mensal pronta para gráfico, ordenada
// ascendente por data
func GetMonthlySeries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, verr := parseKpiFilters(r)
		if verr != nil {
			apiErrors.WriteValidationError(w, verr.Message, verr.Field)
			return
		}

		series, err := service.GetMonthlySeries(*filters)
		if err != nil {
			logger.WithError(err).Error("kpi-series: erro ao montar série mensal")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to compute monthly series")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithError(err).Error("kpi-series: erro ao codificar resposta")
		}
	})
}

// GetKpiBreakdown retorna a distribuição do Ship OK entre depósitos
// confirmados, estratégico e retenção
func GetKpiBreakdown(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		now := time.Now()
		year, month, verr := parsePeriodQuery(r, now.Year(), now.Month())
		if verr != nil {
			apiErrors.WriteValidationError(w, verr.Message, verr.Field)
			return
		}

		team := r.URL.Query().Get("team")

		breakdown, err := service.GetBreakdown(year, month, team)
		if err != nil {
			logger.WithError(err).Error("kpi-breakdown: erro ao montar distribuição")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to compute KPI breakdown")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(breakdown); err != nil {
			logger.WithError(err).Error("kpi-breakdown: erro ao codificar resposta")
		}
	})
}

// GetKpiAlerts retorna os registros com meta definida e progresso abaixo
// da faixa de atenção
func GetKpiAlerts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		alerts, err := service.GetAlerts()
		if err != nil {
			logger.WithError(err).Error("kpi-alerts: erro ao montar alertas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to compute KPI alerts")
			return
		}

		logger.WithField("alerts", len(alerts)).Info("kpi-alerts: alertas montados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(alerts); err != nil {
			logger.WithError(err).Error("kpi-alerts: erro ao codificar resposta")
		}
	})
}

// GetSummarySnapshots retorna as fotografias de resumo persistidas de um
// período (mm-yyyy), ordenadas por progresso decrescente
func GetSummarySnapshots(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteValidationError(w, "period is required", "period")
			return
		}

		snapshots, err := service.GetSnapshots(period)
		if err != nil {
			logger.WithError(err).WithField("period", period).Error("kpi-snapshots: erro ao buscar fotografias")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch summary snapshots")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logger.WithError(err).Error("kpi-snapshots: erro ao codificar resposta")
		}
	})
}

// parsePeriodQuery extrai ano e mês da query string, usando os valores
// informados como padrão quando ausentes
func parsePeriodQuery(r *http.Request, defaultYear int, defaultMonth time.Month) (int, time.Month, *domain.ValidationError) {
	year := defaultYear
	month := defaultMonth

	if rawYear := r.URL.Query().Get("year"); rawYear != "" {
		parsed, err := strconv.Atoi(rawYear)
		if err != nil || parsed < 1 {
			return 0, 0, &domain.ValidationError{Field: "year", Message: "year must be a positive integer"}
		}
		year = parsed
	}

	if rawMonth := r.URL.Query().Get("month"); rawMonth != "" {
		parsed, err := strconv.Atoi(rawMonth)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, &domain.ValidationError{Field: "month", Message: "month must be between 1 and 12"}
		}
		month = time.Month(parsed)
	}

	return year, month, nil
}
