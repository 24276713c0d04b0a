package reporting

import (
	"time"

	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

// Reporter é a fonte única das métricas derivadas: tanto o endpoint de
// estatísticas quanto os dados prontos para gráfico saem daqui, nunca de
// um recálculo no cliente
type Reporter interface {
	// GetStats retorna os totais agregados e a quebra por time.
	// Ano e mês zerados significam sem filtro de período.
	GetStats(year int, month time.Month) (*domain.KpiStats, error)

	// GetDashboardSummary reúne os cartões do painel de um período/time
	GetDashboardSummary(year int, month time.Month, team string) (*domain.DashboardSummary, error)

	// GetMonthlySeries retorna os baldes mensais ordenados ascendente
	GetMonthlySeries(filters domain.KpiFilters) ([]domain.MonthlyPoint, error)

	// GetBreakdown retorna a distribuição do Ship OK por categoria
	GetBreakdown(year int, month time.Month, team string) ([]domain.BreakdownSlice, error)

	// GetAlerts retorna os registros abaixo da faixa de atenção
	GetAlerts() ([]domain.KpiAlert, error)

	// GetSnapshots retorna as fotografias de resumo de um período (mm-yyyy)
	GetSnapshots(period string) ([]*domain.SummarySnapshot, error)
}
