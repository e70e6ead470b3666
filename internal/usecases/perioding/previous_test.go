package perioding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adboard-api/internal/domain"
)

func TestService_PreviousPeriod(t *testing.T) {
	resolver := newTestResolver(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		period   domain.ResolvedPeriod
		expected *domain.DateRange
	}{
		{
			name: "mesmo comprimento termina um dia antes do início",
			period: domain.ResolvedPeriod{
				Preset:             domain.PresetLast7d,
				Since:              date(2024, 6, 8),
				Until:              date(2024, 6, 14),
				DayCount:           7,
				ComparisonStrategy: domain.CompareSameLength,
			},
			expected: &domain.DateRange{
				Since: date(2024, 6, 1),
				Until: date(2024, 6, 7),
			},
		},
		{
			name: "mês até agora compara com o mês anterior até o mesmo dia",
			period: domain.ResolvedPeriod{
				Preset:             domain.PresetThisMonth,
				Since:              date(2024, 6, 1),
				Until:              date(2024, 6, 15),
				DayCount:           15,
				ComparisonStrategy: domain.ComparePreviousCalendarMonth,
			},
			expected: &domain.DateRange{
				Since: date(2024, 5, 1),
				Until: date(2024, 5, 15),
			},
		},
		{
			name: "dia do mês inexistente no mês anterior é grampeado no último dia",
			period: domain.ResolvedPeriod{
				Preset:             domain.PresetThisMonth,
				Since:              date(2024, 3, 1),
				Until:              date(2024, 3, 31),
				DayCount:           31,
				ComparisonStrategy: domain.ComparePreviousCalendarMonth,
			},
			expected: &domain.DateRange{
				Since: date(2024, 2, 1),
				Until: date(2024, 2, 29),
			},
		},
		{
			name: "mês passado compara com o mês cheio anterior a ele",
			period: domain.ResolvedPeriod{
				Preset:             domain.PresetLastMonth,
				Since:              date(2024, 5, 1),
				Until:              date(2024, 5, 31),
				DayCount:           31,
				ComparisonStrategy: domain.CompareTwoMonthsPrior,
			},
			expected: &domain.DateRange{
				Since: date(2024, 4, 1),
				Until: date(2024, 4, 30),
			},
		},
		{
			name: "mês passado em janeiro compara com dezembro do ano anterior",
			period: domain.ResolvedPeriod{
				Preset:             domain.PresetLastMonth,
				Since:              date(2024, 12, 1),
				Until:              date(2024, 12, 31),
				DayCount:           31,
				ComparisonStrategy: domain.CompareTwoMonthsPrior,
			},
			expected: &domain.DateRange{
				Since: date(2024, 11, 1),
				Until: date(2024, 11, 30),
			},
		},
		{
			name: "ano até agora compara com as mesmas datas do ano anterior",
			period: domain.ResolvedPeriod{
				Preset:             domain.PresetThisYear,
				Since:              date(2024, 1, 1),
				Until:              date(2024, 6, 15),
				DayCount:           167,
				ComparisonStrategy: domain.ComparePreviousCalendarYear,
			},
			expected: &domain.DateRange{
				Since: date(2023, 1, 1),
				Until: date(2023, 6, 15),
			},
		},
		{
			name: "29 de fevereiro é grampeado em 28 no ano não bissexto",
			period: domain.ResolvedPeriod{
				Preset:             domain.PresetThisYear,
				Since:              date(2024, 1, 1),
				Until:              date(2024, 2, 29),
				DayCount:           60,
				ComparisonStrategy: domain.ComparePreviousCalendarYear,
			},
			expected: &domain.DateRange{
				Since: date(2023, 1, 1),
				Until: date(2023, 2, 28),
			},
		},
		{
			name: "estratégia nula não gera período de comparação",
			period: domain.ResolvedPeriod{
				Preset:             domain.PresetCustom,
				Since:              date(2024, 6, 1),
				Until:              date(2024, 6, 10),
				DayCount:           10,
				ComparisonStrategy: domain.CompareNone,
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := resolver.PreviousPeriod(tt.period)

			if tt.expected == nil {
				assert.Nil(t, previous)
				return
			}

			require.NotNil(t, previous)
			assert.Equal(t, tt.expected.Since, previous.Since)
			assert.Equal(t, tt.expected.Until, previous.Until)
		})
	}
}

// TestService_PreviousPeriod_SameLengthRoundTrip verifica que a estratégia de
// mesmo comprimento sempre preserva o número de dias do período original
func TestService_PreviousPeriod_SameLengthRoundTrip(t *testing.T) {
	resolver := newTestResolver(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	presets := []domain.Preset{
		domain.PresetYesterday,
		domain.PresetLast7d,
		domain.PresetLast14d,
		domain.PresetLast30d,
		domain.PresetLast60d,
		domain.PresetLast90d,
	}

	for _, preset := range presets {
		t.Run(string(preset), func(t *testing.T) {
			period, err := resolver.Resolve(preset, "America/Sao_Paulo", nil)
			require.NoError(t, err)

			previous := resolver.PreviousPeriod(*period)
			require.NotNil(t, previous)

			assert.Equal(t, period.DayCount, previous.Days())
			// O período anterior termina exatamente um dia antes do início do atual
			assert.Equal(t, period.Since.AddDate(0, 0, -1), previous.Until)
		})
	}
}
