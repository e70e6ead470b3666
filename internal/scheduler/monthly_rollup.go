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
	"github.com/vfg2006/adboard-api/internal/domain"
	"github.com/vfg2006/adboard-api/internal/usecases/insighting"
)

// MonthlyRollupService consolida as linhas diárias de cada projeto ativo em
// um registro mensal materializado, usado pelos relatórios mensais
type MonthlyRollupService struct {
	scheduler      *gocron.Scheduler
	config         config.MonthlyRollup
	projectRepo    repository.ProjectRepository
	monthlyRepo    repository.MonthlyAggregateRepository
	insightService insighting.Insighter

	runMutex        sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

// NewMonthlyRollupService cria uma nova instância do consolidador mensal
func NewMonthlyRollupService(
	projectRepo repository.ProjectRepository,
	monthlyRepo repository.MonthlyAggregateRepository,
	insightService insighting.Insighter,
	appConfig *config.Config,
) *MonthlyRollupService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       appConfig.MonthlyRollup.CronSchedule,
		"month_lookback":      appConfig.MonthlyRollup.MonthLookBack,
		"max_concurrent_jobs": appConfig.MonthlyRollup.MaxConcurrentJobs,
		"enabled":             appConfig.MonthlyRollup.Enabled,
	}).Info("Configuração do consolidador mensal carregada")

	return &MonthlyRollupService{
		scheduler:      scheduler,
		config:         appConfig.MonthlyRollup,
		projectRepo:    projectRepo,
		monthlyRepo:    monthlyRepo,
		insightService: insightService,
	}
}

// Start inicia o agendador
func (s *MonthlyRollupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Consolidação mensal desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação mensal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRollup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação mensal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de consolidação mensal")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a consolidação fora do agendamento
func (s *MonthlyRollupService) TriggerManualSync() {
	go s.runRollup()
}

// Status retorna o estado atual do job de consolidação
func (s *MonthlyRollupService) Status() JobStatus {
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

func (s *MonthlyRollupService) runRollup() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Consolidação mensal já em andamento, ignorando")
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

	startTime := time.Now()

	activeProjects, err := s.projectRepo.ListProjects([]domain.ProjectStatus{domain.ProjectStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar projetos para consolidação mensal")
		return
	}

	if len(activeProjects) == 0 {
		logrus.Info("Nenhum projeto ativo encontrado para consolidação mensal")
		return
	}

	months := s.monthsToProcess()

	logrus.WithFields(logrus.Fields{
		"projects": len(activeProjects),
		"months":   len(months),
	}).Info("Iniciando consolidação mensal")

	s.processRollups(activeProjects, months)

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"projects": len(activeProjects),
	}).Info("Consolidação mensal concluída")
}

// monthsToProcess retorna o primeiro dia de cada mês a consolidar, do mês
// passado até o limite de lookback configurado
func (s *MonthlyRollupService) monthsToProcess() []time.Time {
	lookback := s.config.MonthLookBack
	if lookback < 1 {
		lookback = 1
	}

	firstOfThisMonth := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]time.Time, 0, lookback)
	for i := 1; i <= lookback; i++ {
		months = append(months, firstOfThisMonth.AddDate(0, -i, 0))
	}

	return months
}

// processRollups consolida cada (projeto, mês) com um número limitado de
// workers concorrentes
func (s *MonthlyRollupService) processRollups(projects []*domain.Project, months []time.Time) {
	maxConcurrent := s.config.MaxConcurrentJobs
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for _, project := range projects {
		wg.Add(1)

		go func(project *domain.Project) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			for _, month := range months {
				if err := s.rollupProjectMonth(project, month); err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"project_id": project.ID,
						"month":      month.Format("01-2006"),
					}).Error("Erro ao consolidar mês do projeto")
				}
			}
		}(project)
	}

	wg.Wait()
}

func (s *MonthlyRollupService) rollupProjectMonth(project *domain.Project, month time.Time) error {
	rng := domain.DateRange{
		Since: month,
		Until: month.AddDate(0, 1, -1),
	}

	totals, err := s.insightService.PeriodTotalsForRange(project, rng)
	if err != nil {
		return fmt.Errorf("erro ao calcular totais do mês: %w", err)
	}

	aggregate := &domain.MonthlyAggregate{
		ProjectID: project.ID,
		Period:    month,
		Totals:    totals,
	}

	if err := s.monthlyRepo.SaveOrUpdate(aggregate); err != nil {
		return fmt.Errorf("erro ao salvar consolidado mensal: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"project_id": project.ID,
		"month":      month.Format("01-2006"),
		"spend":      totals.Spend,
	}).Debug("Consolidado mensal salvo")

	return nil
}
