package insighting

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adboard-api/infrastructure/repository"
	"github.com/vfg2006/adboard-api/internal/config"
	"github.com/vfg2006/adboard-api/internal/domain"
	"github.com/vfg2006/adboard-api/internal/usecases/perioding"
)

// Service implementa a interface Insighter sobre o armazenamento de linhas
// diárias. O motor é somente leitura: cada chamada produz um grafo de
// resultado novo e independente, sem estado compartilhado entre invocações.
type Service struct {
	cfg                        *config.Config
	resolver                   perioding.Resolver
	projectRepository          repository.ProjectRepository
	dailyRowRepository         repository.DailyRowRepository
	monthlyAggregateRepository repository.MonthlyAggregateRepository
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	cfg *config.Config,
	resolver perioding.Resolver,
	projectRepo repository.ProjectRepository,
	dailyRowRepo repository.DailyRowRepository,
	monthlyAggregateRepo repository.MonthlyAggregateRepository,
) Insighter {
	return &Service{
		cfg:                        cfg,
		resolver:                   resolver,
		projectRepository:          projectRepo,
		dailyRowRepository:         dailyRowRepo,
		monthlyAggregateRepository: monthlyAggregateRepo,
	}
}

// ResolvePeriod converte um preset em um período concreto no fuso informado
func (s *Service) ResolvePeriod(preset domain.Preset, timezone string, custom *domain.DateRange) (*domain.ResolvedPeriod, error) {
	return s.resolver.Resolve(preset, timezone, custom)
}

// LoadComparison executa a operação composta de ponta a ponta: resolução do
// período, derivação do período anterior, busca paginada das linhas dos dois
// períodos em paralelo, agregação diária e montagem da comparação.
func (s *Service) LoadComparison(
	projectExternalID string,
	preset domain.Preset,
	custom *domain.DateRange,
	opts ComparisonOptions,
) (*domain.PeriodComparison, error) {
	project, err := s.projectRepository.GetProjectByExternalID(projectExternalID)
	if err != nil {
		logrus.WithError(err).WithField("project_id", projectExternalID).
			Error("insights: erro ao buscar projeto no repositório")
		return nil, err
	}

	if project == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectExternalID)
	}

	// Validação de preset e intervalo acontece antes de qualquer busca
	period, err := s.resolver.Resolve(preset, project.Timezone, custom)
	if err != nil {
		return nil, err
	}

	previousRange := s.resolver.PreviousPeriod(*period)

	var (
		currentRows  []*domain.DailyRow
		previousRows []*domain.DailyRow
		currentErr   error
		previousErr  error
	)

	// As buscas dos dois períodos são independentes e rodam em paralelo;
	// a paginação interna de cada uma é estritamente sequencial
	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		currentRows, currentErr = s.fetchAllRows(project.ID, period.Range())
	}()

	if previousRange != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			previousRows, previousErr = s.fetchAllRows(project.ID, *previousRange)
		}()
	}

	wg.Wait()

	// Estouro do limite de páginas indica intervalo corrompido e falha a
	// operação; falhas do armazenamento degradam para resultado parcial
	if errors.Is(currentErr, ErrPaginationLimitExceeded) {
		return nil, currentErr
	}

	if errors.Is(previousErr, ErrPaginationLimitExceeded) {
		return nil, previousErr
	}

	partial := currentErr != nil || previousErr != nil
	if partial {
		logrus.WithFields(logrus.Fields{
			"project_id":  project.ID,
			"current_ok":  currentErr == nil,
			"previous_ok": previousErr == nil,
		}).Warn("insights: busca incompleta, montando comparação com dados parciais")
	}

	current := aggregateDaily(currentRows)
	if opts.FillDense {
		current = fillDense(current, period.Range())
	}

	comparison := &domain.PeriodComparison{
		Period:        *period,
		Current:       current,
		CurrentTotals: periodTotals(current, period.DayCount),
		Partial:       partial,
	}

	if previousRange != nil {
		previous := aggregateDaily(previousRows)
		if opts.FillDense {
			previous = fillDense(previous, *previousRange)
		}

		comparison.PreviousPeriod = previousRange
		comparison.Previous = previous
		comparison.PreviousTotals = periodTotals(previous, previousRange.Days())
		comparison.Changes = domain.BuildChanges(comparison.CurrentTotals, comparison.PreviousTotals)
	}

	return comparison, nil
}

// PeriodTotalsForRange calcula os totais de um intervalo arbitrário de datas.
// Usado pelo consolidador mensal para materializar o fechamento de cada mês.
func (s *Service) PeriodTotalsForRange(project *domain.Project, rng domain.DateRange) (*domain.PeriodTotals, error) {
	rows, err := s.fetchAllRows(project.ID, rng)
	if err != nil {
		return nil, err
	}

	return periodTotals(aggregateDaily(rows), rng.Days()), nil
}

// GetMonthlyReports retorna os consolidados mensais de todos os projetos
// ativos para o período informado (formato mm-yyyy)
func (s *Service) GetMonthlyReports(period string) ([]*domain.MonthlyReport, error) {
	periodDate, err := parseMonthYearToPeriod(period)
	if err != nil {
		return nil, err
	}

	activeProjects, err := s.projectRepository.ListProjects([]domain.ProjectStatus{domain.ProjectStatusActive})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar projetos: %w", err)
	}

	reports := make([]*domain.MonthlyReport, 0, len(activeProjects))

	for _, project := range activeProjects {
		aggregate, err := s.monthlyAggregateRepository.GetByProjectIDAndPeriod(project.ID, periodDate)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"project_id": project.ID,
				"period":     period,
			}).Error("insights: erro ao buscar consolidado mensal")
			continue
		}

		if aggregate == nil {
			continue
		}

		name := project.Name
		if project.Nickname != nil && *project.Nickname != "" {
			name = *project.Nickname
		}

		reports = append(reports, &domain.MonthlyReport{
			ProjectID:   project.ID,
			ProjectName: name,
			Period:      period,
			Currency:    project.Currency,
			Totals:      aggregate.Totals,
		})
	}

	return reports, nil
}

// GetAvailableMonthlyPeriods retorna os períodos (meses e anos) disponíveis
// na tabela de consolidados mensais
func (s *Service) GetAvailableMonthlyPeriods() (*domain.AvailablePeriods, error) {
	allPeriods, err := s.monthlyAggregateRepository.GetAllPeriods()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar períodos dos consolidados mensais: %w", err)
	}

	periodMap := make(map[string]bool)
	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)

	for _, period := range allPeriods {
		periodMap[period] = true

		// Extrair ano e mês do período (formato mm-yyyy)
		if len(period) == 7 {
			monthMap[period[:2]] = true
			yearMap[period[3:]] = true
		}
	}

	periods := make([]string, 0, len(periodMap))
	for period := range periodMap {
		periods = append(periods, period)
	}

	years := make([]string, 0, len(yearMap))
	for year := range yearMap {
		years = append(years, year)
	}

	months := make([]string, 0, len(monthMap))
	for month := range monthMap {
		months = append(months, month)
	}

	sort.Strings(periods)
	sort.Strings(years)
	sort.Strings(months)

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}

// parseMonthYearToPeriod converte um período no formato "mm-yyyy" para o
// primeiro dia do mês correspondente
func parseMonthYearToPeriod(period string) (time.Time, error) {
	t, err := time.Parse("01-2006", period)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q, esperado mm-yyyy: %w", period, err)
	}
	return t, nil
}
