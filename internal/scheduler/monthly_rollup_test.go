package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adboard-api/internal/config"
	"github.com/vfg2006/adboard-api/internal/domain"
	"github.com/vfg2006/adboard-api/internal/usecases/insighting"
	"github.com/vfg2006/adboard-api/internal/usecases/perioding"
	"go.uber.org/mock/gomock"
)

func newRollupFixture(t *testing.T, lookback int) (*MonthlyRollupService, *mocks.MockProjectRepository, *mocks.MockDailyRowRepository, *mocks.MockMonthlyAggregateRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)

	projectRepo := mocks.NewMockProjectRepository(ctrl)
	dailyRowRepo := mocks.NewMockDailyRowRepository(ctrl)
	monthlyRepo := mocks.NewMockMonthlyAggregateRepository(ctrl)

	cfg := &config.Config{
		Insights: config.Insights{PageSize: 1000, MaxPages: 50},
		Timezone: config.Timezone{DefaultUTCOffsetHours: -3},
		MonthlyRollup: config.MonthlyRollup{
			CronSchedule:      "0 5 1 * *",
			MonthLookBack:     lookback,
			MaxConcurrentJobs: 2,
			Enabled:           false,
		},
	}

	resolver := perioding.NewService(cfg.Timezone)
	insightService := insighting.NewService(cfg, resolver, projectRepo, dailyRowRepo, monthlyRepo)

	service := NewMonthlyRollupService(projectRepo, monthlyRepo, insightService, cfg)
	return service, projectRepo, dailyRowRepo, monthlyRepo
}

func TestMonthlyRollupService_MonthsToProcess(t *testing.T) {
	tests := []struct {
		name     string
		lookback int
		expected int
	}{
		{name: "lookback padrão cobre apenas o mês passado", lookback: 1, expected: 1},
		{name: "lookback maior cobre meses anteriores", lookback: 3, expected: 3},
		{name: "lookback inválido é grampeado em um mês", lookback: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _ := newRollupFixture(t, tt.lookback)

			months := service.monthsToProcess()
			require.Len(t, months, tt.expected)

			firstOfThisMonth := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.UTC)

			for i, month := range months {
				// Sempre o primeiro dia do mês, começando no mês passado
				assert.Equal(t, firstOfThisMonth.AddDate(0, -(i+1), 0), month)
				assert.Equal(t, 1, month.Day())
			}
		})
	}
}

func TestMonthlyRollupService_RollupProjectMonth(t *testing.T) {
	service, _, dailyRowRepo, monthlyRepo := newRollupFixture(t, 1)

	project := &domain.Project{
		ID:       "prj001",
		Name:     "Lojas Sul",
		Timezone: "America/Sao_Paulo",
		Currency: "BRL",
		Status:   domain.ProjectStatusActive,
	}

	month := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	endOfMonth := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	rows := []*domain.DailyRow{
		{ProjectID: "prj001", EntityID: "camp_a", Date: month, Spend: 100, Impressions: 1000, Clicks: 10},
		{ProjectID: "prj001", EntityID: "camp_a", Date: month.AddDate(0, 0, 1), Spend: 50, Impressions: 500, Clicks: 5},
	}

	dailyRowRepo.EXPECT().
		GetPageByDateRange("prj001", month, endOfMonth, 0, 1000).
		Return(rows, nil)

	monthlyRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(aggregate *domain.MonthlyAggregate) error {
			assert.Equal(t, "prj001", aggregate.ProjectID)
			assert.Equal(t, month, aggregate.Period)

			require.NotNil(t, aggregate.Totals)
			assert.Equal(t, 31, aggregate.Totals.DayCount)
			assert.Equal(t, 150.0, aggregate.Totals.Spend)
			assert.Equal(t, 1500, aggregate.Totals.Impressions)
			assert.Equal(t, 1.0, aggregate.Totals.CTR)
			return nil
		})

	err := service.rollupProjectMonth(project, month)
	require.NoError(t, err)
}

func TestMonthlyRollupService_ProcessRollups(t *testing.T) {
	service, _, dailyRowRepo, monthlyRepo := newRollupFixture(t, 1)

	projects := []*domain.Project{
		{ID: "prj001", Name: "Lojas Sul", Timezone: "America/Sao_Paulo", Currency: "BRL", Status: domain.ProjectStatusActive},
		{ID: "prj002", Name: "Ótica Center", Timezone: "America/Sao_Paulo", Currency: "BRL", Status: domain.ProjectStatusActive},
		{ID: "prj003", Name: "MX Retail", Timezone: "America/Mexico_City", Currency: "MXN", Status: domain.ProjectStatusActive},
	}

	month := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	// Cada projeto passa por uma busca de linhas e um upsert do consolidado,
	// mesmo quando o mês não tem nenhuma linha
	dailyRowRepo.EXPECT().
		GetPageByDateRange(gomock.Any(), month, month.AddDate(0, 1, -1), 0, 1000).
		Return(nil, nil).
		Times(len(projects))

	monthlyRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil).
		Times(len(projects))

	service.processRollups(projects, []time.Time{month})
}

func TestMonthlyRollupService_Status(t *testing.T) {
	service, _, _, _ := newRollupFixture(t, 1)

	status := service.Status()
	assert.False(t, status.Running)
	assert.Nil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)
}
