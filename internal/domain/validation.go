package domain

import "fmt"

// ValidationError aponta o primeiro campo inválido de um payload.
// Field usa o nome do campo no JSON (camelCase), igual ao que o cliente enviou.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// metricField associa o nome JSON de um campo numérico ao seu valor e à
// obrigatoriedade, na ordem em que os campos são validados
type metricField struct {
	name     string
	value    *Metric
	required bool
}

// Validate valida o payload de criação e retorna o primeiro campo inválido
func (in KpiRecordInput) Validate() *ValidationError {
	if in.Date == "" {
		return newValidationError("date", "date is required")
	}
	if _, err := ParseCalendarDate(in.Date); err != nil {
		return newValidationError("date", "date must be in YYYY-MM-DD format")
	}
	if in.Team == "" {
		return newValidationError("team", "team is required")
	}

	fields := []metricField{
		{"target", in.Target, true},
		{"ytdTarget", in.YtdTarget, false},
		{"qualifiedInquiries", in.QualifiedInquiries, true},
		{"newRegister", in.NewRegister, true},
		{"newDeposit", in.NewDeposit, true},
		{"newDepositShipOk", in.NewDepositShipOk, true},
		{"strategic", in.Strategic, true},
		{"retention", in.Retention, true},
		{"upsell", in.Upsell, true},
	}

	return validateMetrics(fields)
}

// Validate valida somente os campos presentes no patch
func (p KpiRecordPatch) Validate() *ValidationError {
	if p.Date != nil {
		if *p.Date == "" {
			return newValidationError("date", "date must not be empty")
		}
		if _, err := ParseCalendarDate(*p.Date); err != nil {
			return newValidationError("date", "date must be in YYYY-MM-DD format")
		}
	}
	if p.Team != nil && *p.Team == "" {
		return newValidationError("team", "team must not be empty")
	}

	fields := []metricField{
		{"target", p.Target, false},
		{"ytdTarget", p.YtdTarget, false},
		{"qualifiedInquiries", p.QualifiedInquiries, false},
		{"newRegister", p.NewRegister, false},
		{"newDeposit", p.NewDeposit, false},
		{"newDepositShipOk", p.NewDepositShipOk, false},
		{"strategic", p.Strategic, false},
		{"retention", p.Retention, false},
		{"upsell", p.Upsell, false},
	}

	return validateMetrics(fields)
}

func validateMetrics(fields []metricField) *ValidationError {
	for _, f := range fields {
		if f.value == nil {
			if f.required {
				return newValidationError(f.name, fmt.Sprintf("%s is required", f.name))
			}
			continue
		}
		if f.value.Float64() < 0 {
			return newValidationError(f.name, fmt.Sprintf("%s must be zero or positive", f.name))
		}
	}
	return nil
}
