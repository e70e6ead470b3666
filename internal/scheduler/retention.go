package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adboard-api/infrastructure/repository"
	"github.com/vfg2006/adboard-api/internal/config"
)

// JobStatus resume o estado de execução de um job agendado
type JobStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

// RetentionService gerencia a limpeza periódica de linhas diárias antigas
type RetentionService struct {
	scheduler    *gocron.Scheduler
	config       config.Retention
	dailyRowRepo repository.DailyRowRepository

	runMutex        sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

// NewRetentionService cria uma nova instância do serviço de retenção
func NewRetentionService(
	dailyRowRepo repository.DailyRowRepository,
	appConfig *config.Config,
) *RetentionService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.Retention.CronSchedule,
		"keep_days":     appConfig.Retention.KeepDays,
		"enabled":       appConfig.Retention.Enabled,
	}).Info("Configuração do agendador de retenção carregada")

	return &RetentionService{
		scheduler:    scheduler,
		config:       appConfig.Retention,
		dailyRowRepo: dailyRowRepo,
	}
}

// Start inicia o agendador
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de retenção desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de linhas diárias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRetention()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de retenção: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a limpeza fora do agendamento
func (s *RetentionService) TriggerManualSync() {
	go s.runRetention()
}

// Status retorna o estado atual do job de retenção
func (s *RetentionService) Status() JobStatus {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := JobStatus{Running: s.running}
	if !s.lastStartedAt.IsZero() {
		startedAt := s.lastStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastCompletedAt.IsZero() {
		completedAt := s.lastCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}

func (s *RetentionService) runRetention() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Limpeza de retenção já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	logrus.WithField("keep_days", s.config.KeepDays).Info("Iniciando limpeza de linhas diárias antigas")

	deleted, err := s.dailyRowRepo.DeleteOlderThan(s.config.KeepDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao apagar linhas diárias antigas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"deleted_rows": deleted,
		"keep_days":    s.config.KeepDays,
	}).Info("Limpeza de linhas diárias concluída")
}
