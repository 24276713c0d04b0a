package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestRun(t *testing.T) {
	t.Run("Banco vazio recebe a carga completa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockKpiRecordRepository(ctrl)
		cfg := &config.Config{Seed: config.Seed{Enabled: true}}

		mockRepo.EXPECT().List(domain.KpiFilters{}).Return([]*domain.KpiRecord{}, nil)
		mockRepo.EXPECT().
			Create(gomock.Any()).
			Return(&domain.KpiRecord{ID: 1}, nil).
			Times(len(teams) * monthsOfHistory)

		require.NoError(t, Run(mockRepo, cfg))
	})

	t.Run("Banco com registros não recebe carga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockKpiRecordRepository(ctrl)
		cfg := &config.Config{Seed: config.Seed{Enabled: true}}

		mockRepo.EXPECT().List(domain.KpiFilters{}).Return([]*domain.KpiRecord{{ID: 1}}, nil)

		require.NoError(t, Run(mockRepo, cfg))
	})

	t.Run("Carga desabilitada não toca o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockKpiRecordRepository(ctrl)
		cfg := &config.Config{Seed: config.Seed{Enabled: false}}

		require.NoError(t, Run(mockRepo, cfg))
	})
}

func TestBuildSeedRecords(t *testing.T) {
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	inputs := buildSeedRecords(now)

	require.Len(t, inputs, len(teams)*monthsOfHistory)

	// Três meses de histórico terminando no mês corrente
	assert.Equal(t, "2024-01-01", inputs[0].Date)
	assert.Equal(t, "2024-03-01", inputs[len(inputs)-1].Date)

	for _, input := range inputs {
		// Todos os registros de demonstração passam pela validação de criação
		assert.Nil(t, input.Validate())

		require.NotNil(t, input.Notes)
		assert.Equal(t, seedNotes, *input.Notes)
	}
}
