// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Metric é um valor numérico de KPI que aceita tanto número quanto string
// numérica no JSON de entrada (os formulários enviam os campos como texto)
type Metric float64

// UnmarshalJSON implementa a coerção de string numérica para número
func (m *Metric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	// Valores entre aspas são aceitos e convertidos
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
		if len(data) == 0 {
			*m = 0
			return nil
		}
	}

	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("valor numérico inválido: %s", string(data))
	}

	*m = Metric(value)
	return nil
}

func (m Metric) Float64() float64 {
	return float64(m)
}

// CalendarDate é uma data de calendário serializada no formato YYYY-MM-DD
type CalendarDate struct {
	time.Time
}

func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseCalendarDate(value string) (CalendarDate, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return CalendarDate{}, err
	}
	return CalendarDate{Time: t}, nil
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	value := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if value == "" || value == "null" {
		return fmt.Errorf("data inválida: %q", value)
	}

	parsed, err := ParseCalendarDate(value)
	if err != nil {
		return fmt.Errorf("data inválida: %q", value)
	}

	*d = parsed
	return nil
}

// KpiRecord é o registro de performance de um time em uma data de referência
type KpiRecord struct {
	ID   int          `json:"id"`
	Date CalendarDate `json:"date"`
	Team string       `json:"team"`

	// Metas
	Target    float64 `json:"target"`
	YtdTarget float64 `json:"ytdTarget"`

	// Funil de vendas
	QualifiedInquiries float64 `json:"qualifiedInquiries"`
	NewRegister        float64 `json:"newRegister"`
	NewDeposit         float64 `json:"newDeposit"`

	// Componentes do Ship OK
	NewDepositShipOk float64 `json:"newDepositShipOk"`
	Strategic        float64 `json:"strategic"`
	Retention        float64 `json:"retention"`
	Upsell           float64 `json:"upsell"`

	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShipOk retorna o volume realizado do registro: depósitos confirmados
// somados às conversões estratégicas e de retenção
func (r KpiRecord) ShipOk() float64 {
	return r.NewDepositShipOk + r.Strategic + r.Retention
}

// KpiRecordInput é o payload de criação de um registro de KPI.
// Os campos numéricos são ponteiros para distinguir ausência de zero.
type KpiRecordInput struct {
	Date               string  `json:"date"`
	Team               string  `json:"team"`
	Target             *Metric `json:"target"`
	YtdTarget          *Metric `json:"ytdTarget"`
	QualifiedInquiries *Metric `json:"qualifiedInquiries"`
	NewRegister        *Metric `json:"newRegister"`
	NewDeposit         *Metric `json:"newDeposit"`
	NewDepositShipOk   *Metric `json:"newDepositShipOk"`
	Strategic          *Metric `json:"strategic"`
	Retention          *Metric `json:"retention"`
	Upsell             *Metric `json:"upsell"`
	Notes              *string `json:"notes"`
}

// KpiRecordPatch é o payload de atualização parcial: somente os campos
// presentes são validados e aplicados
type KpiRecordPatch struct {
	Date               *string `json:"date"`
	Team               *string `json:"team"`
	Target             *Metric `json:"target"`
	YtdTarget          *Metric `json:"ytdTarget"`
	QualifiedInquiries *Metric `json:"qualifiedInquiries"`
	NewRegister        *Metric `json:"newRegister"`
	NewDeposit         *Metric `json:"newDeposit"`
	NewDepositShipOk   *Metric `json:"newDepositShipOk"`
	Strategic          *Metric `json:"strategic"`
	Retention          *Metric `json:"retention"`
	Upsell             *Metric `json:"upsell"`
	Notes              *string `json:"notes"`
}

// IsEmpty indica se o patch não altera nenhum campo
func (p KpiRecordPatch) IsEmpty() bool {
	return p.Date == nil && p.Team == nil && p.Target == nil &&
		p.YtdTarget == nil && p.QualifiedInquiries == nil &&
		p.NewRegister == nil && p.NewDeposit == nil &&
		p.NewDepositShipOk == nil && p.Strategic == nil &&
		p.Retention == nil && p.Upsell == nil && p.Notes == nil
}

// KpiFilters restringe a listagem de registros por período e time
type KpiFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Team      string
}
