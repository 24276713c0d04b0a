package domain

import "time"

// Faixas de classificação de progresso. São constantes de negócio fixas,
// não configuráveis.
const (
	StatusOnTrack  = "On Track"
	StatusAtRisk   = "At Risk"
	StatusCritical = "Critical"

	StatusBehindSchedule = "Behind Schedule"

	onTrackThreshold = 80.0
	atRiskThreshold  = 50.0
)

// Ratio calcula part/whole em percentual. Divisão por zero resulta em 0,
// nunca NaN ou Inf — a convenção vale para todo percentual derivado.
func Ratio(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return (part / whole) * 100
}

// StatusForProgress classifica um percentual de progresso nas três faixas
func StatusForProgress(progress float64) string {
	switch {
	case progress >= onTrackThreshold:
		return StatusOnTrack
	case progress >= atRiskThreshold:
		return StatusAtRisk
	default:
		return StatusCritical
	}
}

// KpiSummary é o resumo derivado de um conjunto filtrado de registros.
// Nunca é persistido: é recalculado a cada leitura.
type KpiSummary struct {
	Team               string  `json:"team"`
	TotalTarget        float64 `json:"totalTarget"`
	TotalShipOk        float64 `json:"totalShipOk"`
	QualifiedInquiries float64 `json:"qualifiedInquiries"`
	NewDeposits        float64 `json:"newDeposits"`
	Upsell             float64 `json:"upsell"`
	Progress           float64 `json:"progress"`
	Status             string  `json:"status"`
	UpsellRate         float64 `json:"upsellRate"`
	ConversionRate     float64 `json:"conversionRate"`
}

// TeamStats é a linha por time da resposta de estatísticas
type TeamStats struct {
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	ShipOk   float64 `json:"shipOk"`
	Progress float64 `json:"progress"`
}

// KpiStats é a resposta agregada do endpoint de estatísticas
type KpiStats struct {
	TotalTarget float64     `json:"totalTarget"`
	TotalShipOk float64     `json:"totalShipOk"`
	Teams       []TeamStats `json:"teams"`
}

// MonthlyPoint é um balde mensal pronto para gráfico, ordenado ascendente
type MonthlyPoint struct {
	Date      CalendarDate `json:"date"`
	Target    float64      `json:"target"`
	ShipOk    float64      `json:"shipOk"`
	Strategic float64      `json:"strategic"`
	Retention float64      `json:"retention"`
	Progress  float64      `json:"progress"`
}

// BreakdownSlice é uma categoria da distribuição do Ship OK.
// Categorias com valor zero são omitidas da distribuição.
type BreakdownSlice struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// WeeklyPacing é o acompanhamento semanal dentro do mês: a meta mensal é
// dividida em quatro semanas fixas, sem ajuste de calendário
type WeeklyPacing struct {
	WeeklyTarget float64 `json:"weeklyTarget"`
	CurrentWeek  int     `json:"currentWeek"`
	TargetToDate float64 `json:"targetToDate"`
	Status       string  `json:"status"`
}

// YTDSummary é o acumulado de janeiro até o mês selecionado
type YTDSummary struct {
	ShipOk   float64 `json:"shipOk"`
	Target   float64 `json:"target"`
	Progress float64 `json:"progress"`
	Status   string  `json:"status"`
}

// DashboardSummary reúne os cartões do painel em uma única resposta
type DashboardSummary struct {
	Period  string       `json:"period"` // Formato mm-yyyy (ex: 03-2024)
	Team    string       `json:"team"`
	Summary KpiSummary   `json:"summary"`
	Pacing  WeeklyPacing `json:"pacing"`
	YTD     YTDSummary   `json:"ytd"`
}

// KpiAlert aponta um registro abaixo da faixa de atenção (progresso < 80%)
type KpiAlert struct {
	RecordID int          `json:"recordId"`
	Team     string       `json:"team"`
	Date     CalendarDate `json:"date"`
	Target   float64      `json:"target"`
	ShipOk   float64      `json:"shipOk"`
	Progress float64      `json:"progress"`
	Status   string       `json:"status"`
}

// SummarySnapshot é a fotografia persistida do resumo mensal de um time,
// gerada pelo agendador noturno
type SummarySnapshot struct {
	ID          string    `json:"id"`
	Period      string    `json:"period"` // Formato mm-yyyy (ex: 01-2024)
	Team        string    `json:"team"`
	TotalTarget float64   `json:"totalTarget"`
	TotalShipOk float64   `json:"totalShipOk"`
	Progress    float64   `json:"progress"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
