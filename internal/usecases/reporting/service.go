// Package reporting implementa o motor de agregação dos KPIs. A agregação
// existe em um único lugar, no servidor: os consumidores leem o resultado
// pronto em vez de recalcular por conta própria.
package reporting

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

// OverallTeam é o valor de filtro que representa todos os times
const OverallTeam = "overall"

var ErrDatabaseOperation = errors.New("erro de operação no banco de dados")

type Service struct {
	recordRepo   repository.KpiRecordRepository
	snapshotRepo repository.SummarySnapshotRepository
	now          func() time.Time
}

func NewService(
	recordRepo repository.KpiRecordRepository,
	snapshotRepo repository.SummarySnapshotRepository,
) *Service {
	return &Service{
		recordRepo:   recordRepo,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

// WithClock troca a fonte de tempo, usado nos testes do acompanhamento
// semanal
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetStats retorna os totais do período e a quebra por time
func (s *Service) GetStats(year int, month time.Month) (*domain.KpiStats, error) {
	filters := domain.KpiFilters{}

	if year > 0 {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		if month > 0 {
			start, end = utils.MonthBounds(year, month)
		}
		filters.StartDate = &start
		filters.EndDate = &end
	}

	records, err := s.recordRepo.List(filters)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	summary := Summarize(records)

	return &domain.KpiStats{
		TotalTarget: summary.TotalTarget,
		TotalShipOk: summary.TotalShipOk,
		Teams:       SummarizeByTeam(records),
	}, nil
}

// GetDashboardSummary monta os cartões do painel: resumo do mês, ritmo
// semanal e acumulado do ano
func (s *Service) GetDashboardSummary(year int, month time.Month, team string) (*domain.DashboardSummary, error) {
	team = normalizeTeam(team)

	// Busca o ano inteiro de uma vez: o acumulado precisa dos meses
	// anteriores e a meta anual pode ter sido lançada em qualquer mês
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	yearRecords, err := s.recordRepo.List(domain.KpiFilters{
		StartDate: &start,
		EndDate:   &end,
		Team:      team,
	})
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	monthRecords := make([]*domain.KpiRecord, 0, len(yearRecords))
	for _, r := range yearRecords {
		if r.Date.Month() == month {
			monthRecords = append(monthRecords, r)
		}
	}

	summary := Summarize(monthRecords)
	if team != "" {
		summary.Team = team
	}

	displayTeam := team
	if displayTeam == "" {
		displayTeam = OverallTeam
	}

	return &domain.DashboardSummary{
		Period:  fmt.Sprintf("%02d-%04d", int(month), year),
		Team:    displayTeam,
		Summary: summary,
		Pacing:  PaceWeekly(summary.TotalTarget, summary.TotalShipOk, s.now()),
		YTD:     YearToDate(yearRecords, year, month, ""),
	}, nil
}

// GetMonthlySeries retorna a série mensal pronta para gráfico
func (s *Service) GetMonthlySeries(filters domain.KpiFilters) ([]domain.MonthlyPoint, error) {
	filters.Team = normalizeTeam(filters.Team)

	records, err := s.recordRepo.List(filters)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return MonthlySeries(records), nil
}

// GetBreakdown retorna a distribuição do Ship OK do período
func (s *Service) GetBreakdown(year int, month time.Month, team string) ([]domain.BreakdownSlice, error) {
	filters := domain.KpiFilters{Team: normalizeTeam(team)}

	if year > 0 {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		if month > 0 {
			start, end = utils.MonthBounds(year, month)
		}
		filters.StartDate = &start
		filters.EndDate = &end
	}

	records, err := s.recordRepo.List(filters)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return Breakdown(records), nil
}

// GetAlerts retorna os registros com meta definida e progresso abaixo de 80%
func (s *Service) GetAlerts() ([]domain.KpiAlert, error) {
	records, err := s.recordRepo.List(domain.KpiFilters{})
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return Alerts(records), nil
}

// GetSnapshots retorna as fotografias de resumo persistidas de um período
func (s *Service) GetSnapshots(period string) ([]*domain.SummarySnapshot, error) {
	snapshots, err := s.snapshotRepo.GetByPeriod(period)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return snapshots, nil
}

// normalizeTeam converte o marcador "overall" em ausência de filtro
func normalizeTeam(team string) string {
	if team == OverallTeam {
		return ""
	}
	return team
}
