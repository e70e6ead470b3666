package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adboard-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newRetentionFixture(t *testing.T, enabled bool) (*RetentionService, *mocks.MockDailyRowRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	dailyRowRepo := mocks.NewMockDailyRowRepository(ctrl)

	cfg := &config.Config{
		Retention: config.Retention{
			CronSchedule: "0 4 * * *",
			KeepDays:     400,
			Enabled:      enabled,
		},
	}

	return NewRetentionService(dailyRowRepo, cfg), dailyRowRepo
}

func TestRetentionService_Start_Disabled(t *testing.T) {
	service, _ := newRetentionFixture(t, false)

	// Desabilitado, o Start não agenda nada e não toca o repositório
	err := service.Start(context.Background())
	require.NoError(t, err)
}

func TestRetentionService_RunRetention(t *testing.T) {
	t.Run("apaga linhas além da janela de retenção", func(t *testing.T) {
		service, dailyRowRepo := newRetentionFixture(t, true)

		dailyRowRepo.EXPECT().DeleteOlderThan(400).Return(int64(1234), nil)

		service.runRetention()

		status := service.Status()
		assert.False(t, status.Running)
		assert.NotNil(t, status.LastStartedAt)
		assert.NotNil(t, status.LastCompletedAt)
	})

	t.Run("erro do repositório não derruba o job", func(t *testing.T) {
		service, dailyRowRepo := newRetentionFixture(t, true)

		dailyRowRepo.EXPECT().DeleteOlderThan(400).Return(int64(0), errors.New("deadlock detected"))

		service.runRetention()

		// O estado é liberado mesmo com erro
		status := service.Status()
		assert.False(t, status.Running)
		assert.NotNil(t, status.LastCompletedAt)
	})
}
