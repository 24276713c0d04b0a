package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

func record(date domain.CalendarDate, team string, target, shipOk, strategic, retention float64) *domain.KpiRecord {
	return &domain.KpiRecord{
		Date:             date,
		Team:             team,
		Target:           target,
		NewDepositShipOk: shipOk,
		Strategic:        strategic,
		Retention:        retention,
	}
}

func TestSummarize(t *testing.T) {
	t.Run("Ship OK soma depósitos confirmados, estratégico e retenção", func(t *testing.T) {
		records := []*domain.KpiRecord{
			record(domain.NewCalendarDate(2024, time.March, 1), "KENYA", 100, 10, 2, 1),
		}

		summary := Summarize(records)

		assert.Equal(t, 100.0, summary.TotalTarget)
		assert.Equal(t, 13.0, summary.TotalShipOk)
		assert.Equal(t, 13.0, summary.Progress)
		assert.Equal(t, domain.StatusCritical, summary.Status)
	})

	t.Run("Base vazia produz zeros, sem NaN", func(t *testing.T) {
		summary := Summarize(nil)

		assert.Equal(t, 0.0, summary.TotalTarget)
		assert.Equal(t, 0.0, summary.Progress)
		assert.Equal(t, 0.0, summary.UpsellRate)
		assert.Equal(t, 0.0, summary.ConversionRate)
		assert.Equal(t, domain.StatusCritical, summary.Status)
	})

	t.Run("Taxas derivadas são arredondadas em duas casas", func(t *testing.T) {
		records := []*domain.KpiRecord{
			{
				Team:               "KENYA",
				Target:             90,
				NewDepositShipOk:   80,
				QualifiedInquiries: 3,
				NewDeposit:         1,
				Upsell:             1,
			},
		}

		summary := Summarize(records)

		assert.Equal(t, 88.89, summary.Progress)
		assert.Equal(t, domain.StatusOnTrack, summary.Status)
		assert.Equal(t, 1.25, summary.UpsellRate)
		assert.Equal(t, 33.33, summary.ConversionRate)
	})
}

func TestSummarizeByTeam(t *testing.T) {
	records := []*domain.KpiRecord{
		record(domain.NewCalendarDate(2024, time.March, 1), "TRUCKS", 100, 70, 5, 5),
		record(domain.NewCalendarDate(2024, time.March, 1), "KENYA", 200, 100, 0, 0),
		record(domain.NewCalendarDate(2024, time.April, 1), "KENYA", 100, 50, 0, 0),
	}

	teams := SummarizeByTeam(records)

	require.Len(t, teams, 2)

	// Ordenados alfabeticamente por nome
	assert.Equal(t, "KENYA", teams[0].Name)
	assert.Equal(t, 300.0, teams[0].Target)
	assert.Equal(t, 150.0, teams[0].ShipOk)
	assert.Equal(t, 50.0, teams[0].Progress)

	assert.Equal(t, "TRUCKS", teams[1].Name)
	assert.Equal(t, 80.0, teams[1].ShipOk)
	assert.Equal(t, 80.0, teams[1].Progress)
}

func TestMonthlySeries(t *testing.T) {
	records := []*domain.KpiRecord{
		// Listagem chega em ordem decrescente de data; a série sai ascendente
		record(domain.NewCalendarDate(2024, time.March, 15), "KENYA", 50, 20, 0, 0),
		record(domain.NewCalendarDate(2024, time.March, 1), "TRUCKS", 50, 20, 5, 5),
		record(domain.NewCalendarDate(2024, time.January, 1), "KENYA", 100, 80, 0, 0),
	}

	series := MonthlySeries(records)

	require.Len(t, series, 2)

	assert.Equal(t, time.January, series[0].Date.Month())
	assert.Equal(t, 100.0, series[0].Target)
	assert.Equal(t, 80.0, series[0].ShipOk)
	assert.Equal(t, 80.0, series[0].Progress)

	// Registros do mesmo mês são fundidos em um único balde
	assert.Equal(t, time.March, series[1].Date.Month())
	assert.Equal(t, 100.0, series[1].Target)
	assert.Equal(t, 50.0, series[1].ShipOk)
	assert.Equal(t, 5.0, series[1].Strategic)
	assert.Equal(t, 5.0, series[1].Retention)
	assert.Equal(t, 50.0, series[1].Progress)
}

func TestBreakdown(t *testing.T) {
	t.Run("Percentuais com uma casa decimal", func(t *testing.T) {
		records := []*domain.KpiRecord{
			{NewDepositShipOk: 20, Retention: 10},
		}

		breakdown := Breakdown(records)

		require.Len(t, breakdown, 2)
		assert.Equal(t, "New Deposit", breakdown[0].Name)
		assert.Equal(t, 20.0, breakdown[0].Value)
		assert.Equal(t, 66.7, breakdown[0].Percent)
		assert.Equal(t, "Retention", breakdown[1].Name)
		assert.Equal(t, 33.3, breakdown[1].Percent)
	})

	t.Run("Categorias zeradas são omitidas", func(t *testing.T) {
		records := []*domain.KpiRecord{
			{NewDepositShipOk: 10},
		}

		breakdown := Breakdown(records)

		require.Len(t, breakdown, 1)
		assert.Equal(t, "New Deposit", breakdown[0].Name)
		assert.Equal(t, 100.0, breakdown[0].Percent)
	})

	t.Run("Base vazia produz distribuição vazia", func(t *testing.T) {
		assert.Empty(t, Breakdown(nil))
	})
}

func TestPaceWeekly(t *testing.T) {
	tests := []struct {
		name         string
		day          int
		shipOk       float64
		expectedWeek int
		expectedToDt float64
		expectedStat string
	}{
		{
			name:         "Dia 1 é a primeira semana",
			day:          1,
			shipOk:       25,
			expectedWeek: 1,
			expectedToDt: 25,
			expectedStat: domain.StatusOnTrack,
		},
		{
			name:         "Dia 7 ainda é a primeira semana",
			day:          7,
			shipOk:       10,
			expectedWeek: 1,
			expectedToDt: 25,
			expectedStat: domain.StatusBehindSchedule,
		},
		{
			name:         "Dia 8 abre a segunda semana",
			day:          8,
			shipOk:       50,
			expectedWeek: 2,
			expectedToDt: 50,
			expectedStat: domain.StatusOnTrack,
		},
		{
			name:         "Dia 29 não passa da quarta semana",
			day:          29,
			shipOk:       70,
			expectedWeek: 4,
			expectedToDt: 100,
			expectedStat: domain.StatusBehindSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2024, time.March, tt.day, 12, 0, 0, 0, time.UTC)

			pacing := PaceWeekly(100, tt.shipOk, now)

			assert.Equal(t, 25.0, pacing.WeeklyTarget)
			assert.Equal(t, tt.expectedWeek, pacing.CurrentWeek)
			assert.Equal(t, tt.expectedToDt, pacing.TargetToDate)
			assert.Equal(t, tt.expectedStat, pacing.Status)
		})
	}

	t.Run("Meta zero mantém ritmo em dia", func(t *testing.T) {
		pacing := PaceWeekly(0, 0, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, domain.StatusOnTrack, pacing.Status)
	})
}

func TestYearToDate(t *testing.T) {
	createdAt := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

	records := []*domain.KpiRecord{
		{
			Date:             domain.NewCalendarDate(2024, time.January, 1),
			Team:             "KENYA",
			NewDepositShipOk: 30,
			YtdTarget:        1000,
			CreatedAt:        createdAt,
		},
		{
			Date:             domain.NewCalendarDate(2024, time.February, 1),
			Team:             "KENYA",
			NewDepositShipOk: 40,
			YtdTarget:        1200,
			CreatedAt:        createdAt.AddDate(0, 1, 0),
		},
		{
			Date:             domain.NewCalendarDate(2024, time.March, 1),
			Team:             "TRUCKS",
			NewDepositShipOk: 50,
			YtdTarget:        800,
			CreatedAt:        createdAt.AddDate(0, 2, 0),
		},
		// Fora do ano: ignorado
		{
			Date:             domain.NewCalendarDate(2023, time.December, 1),
			Team:             "KENYA",
			NewDepositShipOk: 999,
			YtdTarget:        5000,
			CreatedAt:        createdAt.AddDate(-1, 0, 0),
		},
	}

	t.Run("Acumula de janeiro até o mês selecionado", func(t *testing.T) {
		ytd := YearToDate(records, 2024, time.February, "")

		assert.Equal(t, 70.0, ytd.ShipOk)
		// Meta anual: último ytdTarget por time dentro do ano, somado
		assert.Equal(t, 2000.0, ytd.Target)
		assert.Equal(t, 3.5, ytd.Progress)
		assert.Equal(t, domain.StatusCritical, ytd.Status)
	})

	t.Run("Meses após o selecionado ficam de fora do acumulado", func(t *testing.T) {
		ytd := YearToDate(records, 2024, time.January, "")
		assert.Equal(t, 30.0, ytd.ShipOk)
	})

	t.Run("Filtro por time restringe acumulado e meta", func(t *testing.T) {
		ytd := YearToDate(records, 2024, time.March, "KENYA")

		assert.Equal(t, 70.0, ytd.ShipOk)
		assert.Equal(t, 1200.0, ytd.Target)
	})

	t.Run("Último lançamento do time prevalece na meta anual", func(t *testing.T) {
		total := latestYtdTargets(records, 2024, "")
		assert.Equal(t, 2000.0, total)

		kenya := latestYtdTargets(records, 2024, "KENYA")
		assert.Equal(t, 1200.0, kenya)
	})

	t.Run("Empate de data resolve pela ordem de criação", func(t *testing.T) {
		sameDay := []*domain.KpiRecord{
			{
				Date:      domain.NewCalendarDate(2024, time.March, 1),
				Team:      "KENYA",
				YtdTarget: 1000,
				CreatedAt: createdAt,
			},
			{
				Date:      domain.NewCalendarDate(2024, time.March, 1),
				Team:      "KENYA",
				YtdTarget: 1500,
				CreatedAt: createdAt.Add(time.Hour),
			},
		}

		assert.Equal(t, 1500.0, latestYtdTargets(sameDay, 2024, "KENYA"))
	})
}

func TestAlerts(t *testing.T) {
	records := []*domain.KpiRecord{
		// Sem meta: nunca alerta
		{ID: 1, Team: "KENYA", Target: 0, NewDepositShipOk: 0},
		// 79% de progresso: alerta em risco
		{ID: 2, Team: "TRUCKS", Target: 100, NewDepositShipOk: 79},
		// 80% de progresso: fora da faixa de alerta
		{ID: 3, Team: "MALAWI", Target: 100, NewDepositShipOk: 80},
		// 30% de progresso: alerta crítico
		{ID: 4, Team: "CYPRUS", Target: 100, NewDepositShipOk: 30},
	}

	alerts := Alerts(records)

	require.Len(t, alerts, 2)

	assert.Equal(t, 2, alerts[0].RecordID)
	assert.Equal(t, 79.0, alerts[0].Progress)
	assert.Equal(t, domain.StatusAtRisk, alerts[0].Status)

	assert.Equal(t, 4, alerts[1].RecordID)
	assert.Equal(t, domain.StatusCritical, alerts[1].Status)
}
