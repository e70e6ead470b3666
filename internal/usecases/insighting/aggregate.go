package insighting

import (
	"sort"
	"time"

	"github.com/vfg2006/adboard-api/internal/domain"
)

// aggregateDaily agrupa as linhas por data de calendário e soma os campos
// aditivos de todas as entidades daquela data. As métricas derivadas são
// recalculadas sobre as somas — somar razões entre linhas seria inválido.
// A saída é ordenada por data ascendente.
func aggregateDaily(rows []*domain.DailyRow) []*domain.DailyAggregate {
	byDate := make(map[string]*domain.DailyAggregate)

	for _, row := range rows {
		key := row.Date.Format(time.DateOnly)

		aggregate, exists := byDate[key]
		if !exists {
			aggregate = &domain.DailyAggregate{
				Date: time.Date(row.Date.Year(), row.Date.Month(), row.Date.Day(), 0, 0, 0, 0, time.UTC),
			}
			byDate[key] = aggregate
		}

		aggregate.AddRow(row)
	}

	aggregates := make([]*domain.DailyAggregate, 0, len(byDate))
	for _, aggregate := range byDate {
		aggregate.DerivedMetrics = aggregate.Derive()
		aggregates = append(aggregates, aggregate)
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].Date.Before(aggregates[j].Date)
	})

	return aggregates
}

// fillDense insere um agregado zerado para cada data do intervalo que não
// apareceu em nenhuma linha. Só é aplicado quando o chamador pede uma série
// contínua: o motor não fabrica zeros silenciosamente.
func fillDense(aggregates []*domain.DailyAggregate, rng domain.DateRange) []*domain.DailyAggregate {
	existing := make(map[string]*domain.DailyAggregate, len(aggregates))
	for _, aggregate := range aggregates {
		existing[aggregate.Date.Format(time.DateOnly)] = aggregate
	}

	dense := make([]*domain.DailyAggregate, 0, rng.Days())
	for date := rng.Since; !date.After(rng.Until); date = date.AddDate(0, 0, 1) {
		if aggregate, ok := existing[date.Format(time.DateOnly)]; ok {
			dense = append(dense, aggregate)
			continue
		}
		dense = append(dense, &domain.DailyAggregate{Date: date})
	}

	return dense
}

// periodTotals soma os agregados diários em um único registro de período,
// recalculando as métricas derivadas sobre as somas do período inteiro
// (a média das razões diárias não representaria o período corretamente)
func periodTotals(aggregates []*domain.DailyAggregate, dayCount int) *domain.PeriodTotals {
	totals := &domain.PeriodTotals{DayCount: dayCount}

	for _, aggregate := range aggregates {
		totals.MetricSums.Merge(aggregate.MetricSums)
	}

	totals.DerivedMetrics = totals.MetricSums.Derive()
	return totals
}
