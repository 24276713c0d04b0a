package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

// weeksInMonth é a aproximação fixa de quatro semanas por mês usada no
// acompanhamento semanal. Não considera meses de cinco semanas.
const weeksInMonth = 4

// Summarize agrega um conjunto filtrado de registros em um resumo único.
// Toda razão segue a convenção de Ratio: denominador zero resulta em 0.
func Summarize(records []*domain.KpiRecord) domain.KpiSummary {
	summary := domain.KpiSummary{}

	for _, r := range records {
		summary.TotalTarget += r.Target
		summary.TotalShipOk += r.ShipOk()
		summary.QualifiedInquiries += r.QualifiedInquiries
		summary.NewDeposits += r.NewDeposit
		summary.Upsell += r.Upsell
	}

	summary.Progress = utils.RoundWithTwoDecimalPlace(domain.Ratio(summary.TotalShipOk, summary.TotalTarget))
	summary.Status = domain.StatusForProgress(summary.Progress)
	summary.UpsellRate = utils.RoundWithTwoDecimalPlace(domain.Ratio(summary.Upsell, summary.TotalShipOk))
	summary.ConversionRate = utils.RoundWithTwoDecimalPlace(domain.Ratio(summary.NewDeposits, summary.QualifiedInquiries))

	return summary
}

// SummarizeByTeam agrega os registros por time, em ordem alfabética de nome
func SummarizeByTeam(records []*domain.KpiRecord) []domain.TeamStats {
	byTeam := make(map[string]*domain.TeamStats)

	for _, r := range records {
		stats, ok := byTeam[r.Team]
		if !ok {
			stats = &domain.TeamStats{Name: r.Team}
			byTeam[r.Team] = stats
		}
		stats.Target += r.Target
		stats.ShipOk += r.ShipOk()
	}

	teams := make([]domain.TeamStats, 0, len(byTeam))
	for _, stats := range byTeam {
		stats.Progress = utils.RoundWithTwoDecimalPlace(domain.Ratio(stats.ShipOk, stats.Target))
		teams = append(teams, *stats)
	}

	sort.Slice(teams, func(i, j int) bool {
		return teams[i].Name < teams[j].Name
	})

	return teams
}

// MonthlySeries agrupa os registros em baldes por (ano, mês) e retorna a
// série ordenada ascendente por data, pronta para gráfico. A data do balde
// é a do primeiro registro visto naquele mês.
func MonthlySeries(records []*domain.KpiRecord) []domain.MonthlyPoint {
	type bucketKey struct {
		year  int
		month time.Month
	}

	buckets := make(map[bucketKey]*domain.MonthlyPoint)

	for _, r := range records {
		key := bucketKey{year: r.Date.Year(), month: r.Date.Month()}

		point, ok := buckets[key]
		if !ok {
			point = &domain.MonthlyPoint{Date: r.Date}
			buckets[key] = point
		}

		point.Target += r.Target
		point.ShipOk += r.ShipOk()
		point.Strategic += r.Strategic
		point.Retention += r.Retention
	}

	series := make([]domain.MonthlyPoint, 0, len(buckets))
	for _, point := range buckets {
		point.Progress = utils.RoundWithTwoDecimalPlace(domain.Ratio(point.ShipOk, point.Target))
		series = append(series, *point)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date.Time)
	})

	return series
}

// Breakdown calcula a distribuição do Ship OK entre depósitos confirmados,
// estratégico e retenção. Categorias com valor zero são omitidas e os
// percentuais são arredondados para uma casa decimal.
func Breakdown(records []*domain.KpiRecord) []domain.BreakdownSlice {
	var newDeposit, strategic, retention float64

	for _, r := range records {
		newDeposit += r.NewDepositShipOk
		strategic += r.Strategic
		retention += r.Retention
	}

	total := newDeposit + strategic + retention

	slices := []domain.BreakdownSlice{
		{Name: "New Deposit", Value: newDeposit},
		{Name: "Strategic", Value: strategic},
		{Name: "Retention", Value: retention},
	}

	result := make([]domain.BreakdownSlice, 0, len(slices))
	for _, slice := range slices {
		if slice.Value == 0 {
			continue
		}
		slice.Percent = utils.RoundWithOneDecimalPlace(domain.Ratio(slice.Value, total))
		result = append(result, slice)
	}

	return result
}

// PaceWeekly calcula o acompanhamento semanal do mês: a meta mensal é
// dividida em quatro semanas e a semana corrente vem do dia do mês de now
func PaceWeekly(totalTarget, totalShipOk float64, now time.Time) domain.WeeklyPacing {
	weeklyTarget := totalTarget / weeksInMonth

	currentWeek := (now.Day() + 6) / 7 // ceil(dia/7)
	if currentWeek > weeksInMonth {
		currentWeek = weeksInMonth
	}

	targetToDate := weeklyTarget * float64(currentWeek)

	status := domain.StatusBehindSchedule
	if totalShipOk >= targetToDate {
		status = domain.StatusOnTrack
	}

	return domain.WeeklyPacing{
		WeeklyTarget: utils.RoundWithTwoDecimalPlace(weeklyTarget),
		CurrentWeek:  currentWeek,
		TargetToDate: utils.RoundWithTwoDecimalPlace(targetToDate),
		Status:       status,
	}
}

// YearToDate acumula o Ship OK de janeiro até o mês selecionado do ano,
// para o time informado (vazio = todos). A meta anual é o último valor não
// nulo de ytdTarget escrito por time dentro do ano, somado entre os times.
func YearToDate(records []*domain.KpiRecord, year int, month time.Month, team string) domain.YTDSummary {
	var shipOk float64

	for _, r := range records {
		if r.Date.Year() != year || r.Date.Month() > month {
			continue
		}
		if team != "" && r.Team != team {
			continue
		}
		shipOk += r.NewDepositShipOk
	}

	target := latestYtdTargets(records, year, team)
	progress := utils.RoundWithTwoDecimalPlace(domain.Ratio(shipOk, target))

	return domain.YTDSummary{
		ShipOk:   shipOk,
		Target:   target,
		Progress: progress,
		Status:   domain.StatusForProgress(progress),
	}
}

// latestYtdTargets encontra, por time, o último ytdTarget não nulo lançado
// no ano (por data e, em empate, por ordem de criação) e soma os valores
func latestYtdTargets(records []*domain.KpiRecord, year int, team string) float64 {
	ordered := make([]*domain.KpiRecord, 0, len(records))
	for _, r := range records {
		if r.Date.Year() != year || r.YtdTarget <= 0 {
			continue
		}
		ordered = append(ordered, r)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date.Time) {
			return ordered[i].Date.Before(ordered[j].Date.Time)
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	targetByTeam := make(map[string]float64)
	for _, r := range ordered {
		targetByTeam[r.Team] = r.YtdTarget
	}

	if team != "" {
		return targetByTeam[team]
	}

	var total float64
	for _, target := range targetByTeam {
		total += target
	}
	return total
}

// Alerts aponta os registros com meta definida e progresso abaixo da faixa
// de atenção (80%)
func Alerts(records []*domain.KpiRecord) []domain.KpiAlert {
	alerts := make([]domain.KpiAlert, 0)

	for _, r := range records {
		if r.Target <= 0 {
			continue
		}

		progress := utils.RoundWithTwoDecimalPlace(domain.Ratio(r.NewDepositShipOk, r.Target))
		if progress >= 80 {
			continue
		}

		alerts = append(alerts, domain.KpiAlert{
			RecordID: r.ID,
			Team:     r.Team,
			Date:     r.Date,
			Target:   r.Target,
			ShipOk:   r.NewDepositShipOk,
			Progress: progress,
			Status:   domain.StatusForProgress(progress),
		})
	}

	return alerts
}
