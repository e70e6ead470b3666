package insighting

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adboard-api/internal/config"
	"github.com/vfg2006/adboard-api/internal/domain"
	"github.com/vfg2006/adboard-api/internal/usecases/perioding"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Insights: config.Insights{
			PageSize: 1000,
			MaxPages: 50,
		},
		Timezone: config.Timezone{
			DefaultUTCOffsetHours: -3,
		},
	}
}

func newTestService(
	t *testing.T,
	cfg *config.Config,
	now time.Time,
) (*Service, *mocks.MockProjectRepository, *mocks.MockDailyRowRepository, *mocks.MockMonthlyAggregateRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)

	projectRepo := mocks.NewMockProjectRepository(ctrl)
	dailyRowRepo := mocks.NewMockDailyRowRepository(ctrl)
	monthlyRepo := mocks.NewMockMonthlyAggregateRepository(ctrl)

	resolver := perioding.NewService(cfg.Timezone).(*perioding.Service).
		WithClock(func() time.Time { return now })

	service := NewService(cfg, resolver, projectRepo, dailyRowRepo, monthlyRepo).(*Service)
	return service, projectRepo, dailyRowRepo, monthlyRepo
}

func testProject() *domain.Project {
	return &domain.Project{
		ID:         "prj001",
		ExternalID: "prj_lojas_sul",
		Name:       "Lojas Sul",
		Timezone:   "America/Sao_Paulo",
		Currency:   "BRL",
		Status:     domain.ProjectStatusActive,
	}
}

// makeRows gera linhas de uma única entidade, uma por dia a partir da data
// inicial, repetindo o padrão de métricas informado
func makeRows(entityID string, start time.Time, count int, spend float64, impressions, clicks int) []*domain.DailyRow {
	rows := make([]*domain.DailyRow, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, &domain.DailyRow{
			ID:          fmt.Sprintf("%s-%d", entityID, i),
			ProjectID:   "prj001",
			EntityID:    entityID,
			Date:        start.AddDate(0, 0, i%30),
			Spend:       spend,
			Impressions: impressions,
			Clicks:      clicks,
		})
	}
	return rows
}

func TestService_LoadComparison(t *testing.T) {
	noon := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("projeto inexistente interrompe antes de qualquer busca", func(t *testing.T) {
		service, projectRepo, _, _ := newTestService(t, newTestConfig(), noon)

		projectRepo.EXPECT().GetProjectByExternalID("prj_fantasma").Return(nil, nil)

		comparison, err := service.LoadComparison("prj_fantasma", domain.PresetLast7d, nil, ComparisonOptions{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProjectNotFound)
		assert.Nil(t, comparison)
	})

	t.Run("preset inválido falha antes de tocar o armazenamento", func(t *testing.T) {
		service, projectRepo, _, _ := newTestService(t, newTestConfig(), noon)

		projectRepo.EXPECT().GetProjectByExternalID("prj_lojas_sul").Return(testProject(), nil)

		comparison, err := service.LoadComparison("prj_lojas_sul", domain.Preset("quinzena_mistica"), nil, ComparisonOptions{})

		require.Error(t, err)
		assert.ErrorIs(t, err, perioding.ErrInvalidPreset)
		assert.Nil(t, comparison)
	})

	t.Run("comparação completa com variações sobre os totais", func(t *testing.T) {
		service, projectRepo, dailyRowRepo, _ := newTestService(t, newTestConfig(), noon)

		projectRepo.EXPECT().GetProjectByExternalID("prj_lojas_sul").Return(testProject(), nil)

		// last_7d: 08/06 a 14/06; anterior: 01/06 a 07/06
		currentSince := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)
		previousSince := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		currentRows := makeRows("camp_a", currentSince, 7, 20.0, 1000, 20)
		previousRows := makeRows("camp_a", previousSince, 7, 10.0, 1000, 10)

		dailyRowRepo.EXPECT().
			GetPageByDateRange("prj001", currentSince, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), 0, 1000).
			Return(currentRows, nil)

		dailyRowRepo.EXPECT().
			GetPageByDateRange("prj001", previousSince, time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), 0, 1000).
			Return(previousRows, nil)

		comparison, err := service.LoadComparison("prj_lojas_sul", domain.PresetLast7d, nil, ComparisonOptions{})

		require.NoError(t, err)
		require.NotNil(t, comparison)
		assert.False(t, comparison.Partial)

		assert.Len(t, comparison.Current, 7)
		assert.Len(t, comparison.Previous, 7)

		require.NotNil(t, comparison.CurrentTotals)
		require.NotNil(t, comparison.PreviousTotals)
		assert.Equal(t, 140.0, comparison.CurrentTotals.Spend)
		assert.Equal(t, 70.0, comparison.PreviousTotals.Spend)
		assert.Equal(t, 7, comparison.CurrentTotals.DayCount)

		require.NotNil(t, comparison.Changes)
		assert.Equal(t, 100.0, comparison.Changes[domain.ChangeSpend])
		assert.Equal(t, 0.0, comparison.Changes[domain.ChangeImpressions])
		assert.Equal(t, 100.0, comparison.Changes[domain.ChangeClicks])
		// CTR dobrou: 2% contra 1%
		assert.Equal(t, 100.0, comparison.Changes[domain.ChangeCTR])
	})

	t.Run("paginação sequencial percorre três páginas preservando a ordem", func(t *testing.T) {
		service, projectRepo, dailyRowRepo, _ := newTestService(t, newTestConfig(), noon)

		projectRepo.EXPECT().GetProjectByExternalID("prj_lojas_sul").Return(testProject(), nil)

		// Período customizado sem comparação não dispara a segunda busca
		custom := &domain.DateRange{
			Since: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Until: time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC),
		}

		allRows := makeRows("camp_a", custom.Since, 2500, 1.0, 100, 1)

		gomock.InOrder(
			dailyRowRepo.EXPECT().
				GetPageByDateRange("prj001", custom.Since, custom.Until, 0, 1000).
				Return(allRows[0:1000], nil),
			dailyRowRepo.EXPECT().
				GetPageByDateRange("prj001", custom.Since, custom.Until, 1000, 1000).
				Return(allRows[1000:2000], nil),
			dailyRowRepo.EXPECT().
				GetPageByDateRange("prj001", custom.Since, custom.Until, 2000, 1000).
				Return(allRows[2000:2500], nil),
		)

		// O período anterior de um custom tem o mesmo comprimento
		dailyRowRepo.EXPECT().
			GetPageByDateRange("prj001", gomock.Any(), gomock.Any(), 0, 1000).
			Return(nil, nil)

		comparison, err := service.LoadComparison("prj_lojas_sul", domain.PresetCustom, custom, ComparisonOptions{})

		require.NoError(t, err)
		require.NotNil(t, comparison)
		assert.False(t, comparison.Partial)

		// 2500 linhas da mesma entidade em 30 datas distintas
		assert.Len(t, comparison.Current, 30)
		assert.InDelta(t, 2500.0, comparison.CurrentTotals.Spend, 1e-9)
		assert.Equal(t, 2500*100, comparison.CurrentTotals.Impressions)
	})

	t.Run("estouro do máximo de páginas falha a operação inteira", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Insights.MaxPages = 2
		service, projectRepo, dailyRowRepo, _ := newTestService(t, cfg, noon)

		projectRepo.EXPECT().GetProjectByExternalID("prj_lojas_sul").Return(testProject(), nil)

		fullPage := makeRows("camp_a", time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), 1000, 1.0, 100, 1)

		// Toda página volta cheia, nunca esgotando o intervalo
		dailyRowRepo.EXPECT().
			GetPageByDateRange("prj001", gomock.Any(), gomock.Any(), gomock.Any(), 1000).
			Return(fullPage, nil).
			AnyTimes()

		comparison, err := service.LoadComparison("prj_lojas_sul", domain.PresetLast7d, nil, ComparisonOptions{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPaginationLimitExceeded)
		assert.Nil(t, comparison)
	})

	t.Run("falha do armazenamento no período anterior degrada para resultado parcial", func(t *testing.T) {
		service, projectRepo, dailyRowRepo, _ := newTestService(t, newTestConfig(), noon)

		projectRepo.EXPECT().GetProjectByExternalID("prj_lojas_sul").Return(testProject(), nil)

		currentSince := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)
		currentRows := makeRows("camp_a", currentSince, 7, 20.0, 1000, 20)

		dailyRowRepo.EXPECT().
			GetPageByDateRange("prj001", currentSince, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), 0, 1000).
			Return(currentRows, nil)

		dailyRowRepo.EXPECT().
			GetPageByDateRange("prj001", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), 0, 1000).
			Return(nil, errors.New("connection reset by peer"))

		comparison, err := service.LoadComparison("prj_lojas_sul", domain.PresetLast7d, nil, ComparisonOptions{})

		require.NoError(t, err)
		require.NotNil(t, comparison)
		assert.True(t, comparison.Partial)

		// O período atual permanece íntegro
		assert.Equal(t, 140.0, comparison.CurrentTotals.Spend)
		// O anterior vira o prefixo coletado (vazio neste caso)
		require.NotNil(t, comparison.PreviousTotals)
		assert.Equal(t, 0.0, comparison.PreviousTotals.Spend)
	})

	t.Run("preenchimento denso produz série contínua nos dois períodos", func(t *testing.T) {
		service, projectRepo, dailyRowRepo, _ := newTestService(t, newTestConfig(), noon)

		projectRepo.EXPECT().GetProjectByExternalID("prj_lojas_sul").Return(testProject(), nil)

		// Apenas um dia com linhas em cada período
		currentRows := makeRows("camp_a", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 1, 20.0, 1000, 20)
		previousRows := makeRows("camp_a", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), 1, 10.0, 500, 5)

		dailyRowRepo.EXPECT().
			GetPageByDateRange("prj001", time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), 0, 1000).
			Return(currentRows, nil)
		dailyRowRepo.EXPECT().
			GetPageByDateRange("prj001", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), 0, 1000).
			Return(previousRows, nil)

		comparison, err := service.LoadComparison("prj_lojas_sul", domain.PresetLast7d, nil, ComparisonOptions{FillDense: true})

		require.NoError(t, err)
		assert.Len(t, comparison.Current, 7)
		assert.Len(t, comparison.Previous, 7)

		// Os totais não são afetados pelos zeros inseridos
		assert.Equal(t, 20.0, comparison.CurrentTotals.Spend)
		assert.Equal(t, 10.0, comparison.PreviousTotals.Spend)
	})
}

func TestService_PeriodTotalsForRange(t *testing.T) {
	noon := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	service, _, dailyRowRepo, _ := newTestService(t, newTestConfig(), noon)

	rng := domain.DateRange{
		Since: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
	}

	rows := makeRows("camp_a", rng.Since, 10, 15.0, 1500, 30)

	dailyRowRepo.EXPECT().
		GetPageByDateRange("prj001", rng.Since, rng.Until, 0, 1000).
		Return(rows, nil)

	totals, err := service.PeriodTotalsForRange(testProject(), rng)

	require.NoError(t, err)
	require.NotNil(t, totals)
	assert.Equal(t, 31, totals.DayCount)
	assert.Equal(t, 150.0, totals.Spend)
	assert.Equal(t, 15000, totals.Impressions)
	assert.Equal(t, 2.0, totals.CTR)
}

func TestService_GetMonthlyReports(t *testing.T) {
	noon := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("período mal formado é rejeitado", func(t *testing.T) {
		service, _, _, _ := newTestService(t, newTestConfig(), noon)

		reports, err := service.GetMonthlyReports("2024/05")

		require.Error(t, err)
		assert.Nil(t, reports)
	})

	t.Run("apelido do projeto tem preferência sobre o nome", func(t *testing.T) {
		service, projectRepo, _, monthlyRepo := newTestService(t, newTestConfig(), noon)

		nickname := "Sul"
		withNickname := testProject()
		withNickname.Nickname = &nickname

		other := &domain.Project{
			ID:       "prj002",
			Name:     "Ótica Center",
			Timezone: "America/Sao_Paulo",
			Currency: "BRL",
			Status:   domain.ProjectStatusActive,
		}

		projectRepo.EXPECT().
			ListProjects([]domain.ProjectStatus{domain.ProjectStatusActive}).
			Return([]*domain.Project{withNickname, other}, nil)

		period := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		totals := &domain.PeriodTotals{DayCount: 31, MetricSums: domain.MetricSums{Spend: 500}}

		monthlyRepo.EXPECT().
			GetByProjectIDAndPeriod("prj001", period).
			Return(&domain.MonthlyAggregate{ProjectID: "prj001", Period: period, Totals: totals}, nil)

		// Projeto sem consolidado no período fica fora do relatório
		monthlyRepo.EXPECT().
			GetByProjectIDAndPeriod("prj002", period).
			Return(nil, nil)

		reports, err := service.GetMonthlyReports("05-2024")

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, "Sul", reports[0].ProjectName)
		assert.Equal(t, "05-2024", reports[0].Period)
		assert.Equal(t, "BRL", reports[0].Currency)
		assert.Equal(t, 500.0, reports[0].Totals.Spend)
	})
}

func TestService_GetAvailableMonthlyPeriods(t *testing.T) {
	noon := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	service, _, _, monthlyRepo := newTestService(t, newTestConfig(), noon)

	monthlyRepo.EXPECT().
		GetAllPeriods().
		Return([]string{"03-2024", "01-2024", "02-2024", "12-2023", "01-2024"}, nil)

	periods, err := service.GetAvailableMonthlyPeriods()

	require.NoError(t, err)
	require.NotNil(t, periods)

	assert.Equal(t, []string{"01-2024", "02-2024", "03-2024", "12-2023"}, periods.Periods)
	assert.Equal(t, []string{"2023", "2024"}, periods.Years)
	assert.Equal(t, []string{"01", "02", "03", "12"}, periods.Months)
}
