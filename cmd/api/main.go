package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/api"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/scheduler"
	"github.com/vfg2006/kpi-dashboard-api/internal/seeder"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Aplica as migrações antes de abrir o pool da aplicação
	if err := migration.Run(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações do banco de dados")
	}
	logrus.Info("Migrações do banco de dados aplicadas com sucesso")

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	kpiRecordRepo := repository.NewKpiRecordRepository(pgConn)
	summarySnapshotRepo := repository.NewSummarySnapshotRepository(pgConn)

	// Carga de dados de demonstração na primeira subida; falha de seed não
	// derruba a aplicação
	if err := seeder.Run(kpiRecordRepo, cfg); err != nil {
		logrus.WithError(err).Error("Erro na carga de dados de demonstração")
	}

	recordingService := recording.NewService(kpiRecordRepo)
	reportingService := reporting.NewService(kpiRecordRepo, summarySnapshotRepo)

	// Inicializa o agendador de fotografias de resumo mensal
	snapshotSyncService := scheduler.NewSummarySnapshotSyncService(
		kpiRecordRepo,
		summarySnapshotRepo,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fotografias de resumo")
	} else {
		logrus.Info("Agendador de fotografias de resumo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		recordingService,
		reportingService,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
