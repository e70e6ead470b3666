package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/adboard-api/infrastructure/repository"
	"github.com/vfg2006/adboard-api/internal/api"
	"github.com/vfg2006/adboard-api/internal/config"
	"github.com/vfg2006/adboard-api/internal/scheduler"
	"github.com/vfg2006/adboard-api/internal/usecases/insighting"
	"github.com/vfg2006/adboard-api/internal/usecases/perioding"
	"github.com/vfg2006/adboard-api/internal/usecases/project"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	projectRepo := repository.NewProjectRepository(pgConn)
	dailyRowRepo := repository.NewDailyRowRepository(pgConn)
	monthlyAggregateRepo := repository.NewMonthlyAggregateRepository(pgConn)

	periodResolver := perioding.NewService(cfg.Timezone)

	insightService := insighting.NewService(
		cfg,
		periodResolver,
		projectRepo,
		dailyRowRepo,
		monthlyAggregateRepo,
	)

	projectService := project.NewService(projectRepo, cfg)

	// Inicializa os agendadores de manutenção
	retentionService := scheduler.NewRetentionService(dailyRowRepo, cfg)

	monthlyRollupService := scheduler.NewMonthlyRollupService(
		projectRepo,
		monthlyAggregateRepo,
		insightService,
		cfg,
	)

	// Inicia os agendadores em background
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de linhas diárias")
	} else {
		logrus.Info("Agendador de retenção de linhas diárias iniciado com sucesso")
	}

	if err := monthlyRollupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o consolidador mensal")
	} else {
		logrus.Info("Consolidador mensal iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		projectService,
		retentionService,
		monthlyRollupService,
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
