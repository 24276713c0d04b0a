package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

// SummarySnapshotSyncConfig representa a configuração do agendador de
// fotografias de resumo mensal
type SummarySnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SummarySnapshotSyncService gerencia o agendamento e a geração das
// fotografias de resumo mensal por time. Cada execução recalcula o mês
// corrente e sobrescreve a fotografia existente do mesmo período.
type SummarySnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SummarySnapshotSyncConfig
	recordRepo          repository.KpiRecordRepository
	snapshotRepo        repository.SummarySnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSummarySnapshotSyncService cria uma nova instância do serviço de
// fotografias de resumo
func NewSummarySnapshotSyncService(
	recordRepo repository.KpiRecordRepository,
	snapshotRepo repository.SummarySnapshotRepository,
	appConfig *config.Config,
) *SummarySnapshotSyncService {
	snapshotConfig := SummarySnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"sync_enabled":  snapshotConfig.SyncEnabled,
	}).Info("Configuração do agendador de fotografias de resumo carregada")

	return &SummarySnapshotSyncService{
		scheduler:    scheduler,
		config:       snapshotConfig,
		recordRepo:   recordRepo,
		snapshotRepo: snapshotRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *SummarySnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Geração de fotografias de resumo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fotografias de resumo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSummarySnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de fotografias de resumo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fotografias de resumo")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSummarySnapshots recalcula e persiste as fotografias de resumo do mês
// corrente, uma por time
func (s *SummarySnapshotSyncService) syncSummarySnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de fotografias de resumo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	now := time.Now()
	period := fmt.Sprintf("%02d-%04d", int(now.Month()), now.Year())

	logrus.WithField("period", period).Info("Iniciando geração de fotografias de resumo do período")

	teams, err := s.processPeriod(now.Year(), now.Month(), period)
	if err != nil {
		logrus.WithError(err).WithField("period", period).Error("Erro ao gerar fotografias de resumo")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"period":   period,
		"teams":    teams,
	}).Info("Geração de fotografias de resumo concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processPeriod agrega os registros do mês por time e salva uma fotografia
// para cada um. Retorna a quantidade de times processados.
func (s *SummarySnapshotSyncService) processPeriod(year int, month time.Month, period string) (int, error) {
	start, end := utils.MonthBounds(year, month)

	records, err := s.recordRepo.List(domain.KpiFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar registros do período: %w", err)
	}

	if len(records) == 0 {
		logrus.WithField("period", period).Info("Nenhum registro encontrado para o período, nada a fotografar")
		return 0, nil
	}

	teamStats := reporting.SummarizeByTeam(records)

	for _, stats := range teamStats {
		id, err := utils.GenerateID()
		if err != nil {
			return 0, fmt.Errorf("erro ao gerar id da fotografia: %w", err)
		}

		snapshot := &domain.SummarySnapshot{
			ID:          id,
			Period:      period,
			Team:        stats.Name,
			TotalTarget: stats.Target,
			TotalShipOk: stats.ShipOk,
			Progress:    stats.Progress,
		}

		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			return 0, fmt.Errorf("erro ao salvar fotografia do time %s: %w", stats.Name, err)
		}

		logrus.WithFields(logrus.Fields{
			"period": period,
			"team":   stats.Name,
		}).Info("Fotografia de resumo salva com sucesso")
	}

	return len(teamStats), nil
}

// TriggerManualSync inicia manualmente a geração das fotografias de resumo
func (s *SummarySnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de fotografias de resumo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de fotografias de resumo")
	go s.syncSummarySnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *SummarySnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
