package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricPtr(v float64) *Metric {
	m := Metric(v)
	return &m
}

func validInput() *KpiRecordInput {
	return &KpiRecordInput{
		Date:               "2024-03-01",
		Team:               "KENYA",
		Target:             metricPtr(100),
		QualifiedInquiries: metricPtr(250),
		NewRegister:        metricPtr(120),
		NewDeposit:         metricPtr(40),
		NewDepositShipOk:   metricPtr(10),
		Strategic:          metricPtr(2),
		Retention:          metricPtr(1),
		Upsell:             metricPtr(5),
	}
}

func TestKpiRecordInput_Validate(t *testing.T) {
	t.Run("Payload completo é aceito", func(t *testing.T) {
		assert.Nil(t, validInput().Validate())
	})

	t.Run("Data ausente é o primeiro erro reportado", func(t *testing.T) {
		input := validInput()
		input.Date = ""
		input.Team = ""

		verr := input.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, "date", verr.Field)
		assert.Equal(t, "date is required", verr.Message)
	})

	t.Run("Data fora do formato YYYY-MM-DD é rejeitada", func(t *testing.T) {
		input := validInput()
		input.Date = "01/03/2024"

		verr := input.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, "date", verr.Field)
	})

	t.Run("Métrica obrigatória ausente aponta o campo no JSON", func(t *testing.T) {
		input := validInput()
		input.NewDepositShipOk = nil

		verr := input.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, "newDepositShipOk", verr.Field)
		assert.Equal(t, "newDepositShipOk is required", verr.Message)
	})

	t.Run("Métrica negativa é rejeitada", func(t *testing.T) {
		input := validInput()
		input.Target = metricPtr(-1)

		verr := input.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, "target", verr.Field)
		assert.Equal(t, "target must be zero or positive", verr.Message)
	})

	t.Run("Meta anual é opcional mas não pode ser negativa", func(t *testing.T) {
		input := validInput()
		input.YtdTarget = nil
		assert.Nil(t, input.Validate())

		input.YtdTarget = metricPtr(-10)
		verr := input.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, "ytdTarget", verr.Field)
	})

	t.Run("Valor zero é aceito", func(t *testing.T) {
		input := validInput()
		input.Strategic = metricPtr(0)
		assert.Nil(t, input.Validate())
	})
}

func TestKpiRecordPatch_Validate(t *testing.T) {
	t.Run("Patch vazio é aceito", func(t *testing.T) {
		assert.Nil(t, KpiRecordPatch{}.Validate())
	})

	t.Run("Somente os campos presentes são validados", func(t *testing.T) {
		patch := KpiRecordPatch{Target: metricPtr(50)}
		assert.Nil(t, patch.Validate())
	})

	t.Run("Campo presente negativo é rejeitado", func(t *testing.T) {
		patch := KpiRecordPatch{Retention: metricPtr(-5)}

		verr := patch.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, "retention", verr.Field)
	})

	t.Run("Time presente não pode ser vazio", func(t *testing.T) {
		team := ""
		patch := KpiRecordPatch{Team: &team}

		verr := patch.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, "team", verr.Field)
	})

	t.Run("Data presente precisa estar no formato YYYY-MM-DD", func(t *testing.T) {
		date := "15-03-2024"
		patch := KpiRecordPatch{Date: &date}

		verr := patch.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, "date", verr.Field)
	})
}

func TestStatusForProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		expected string
	}{
		{"80 por cento está na meta", 80, StatusOnTrack},
		{"Acima de 80 está na meta", 95.5, StatusOnTrack},
		{"Entre 50 e 80 está em risco", 65, StatusAtRisk},
		{"Exatamente 50 está em risco", 50, StatusAtRisk},
		{"Abaixo de 50 é crítico", 49.99, StatusCritical},
		{"Zero é crítico", 0, StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusForProgress(tt.progress))
		})
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 50.0, Ratio(5, 10))

	// Denominador zero nunca produz NaN ou Inf
	assert.Equal(t, 0.0, Ratio(5, 0))
	assert.Equal(t, 0.0, Ratio(0, 0))
}
