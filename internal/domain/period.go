package domain

import "time"

// Preset identifica um atalho nomeado de período (ex: "últimos 30 dias")
type Preset string

const (
	PresetYesterday Preset = "yesterday"
	PresetLast7d    Preset = "last_7d"
	PresetLast14d   Preset = "last_14d"
	PresetLast30d   Preset = "last_30d"
	PresetLast60d   Preset = "last_60d"
	PresetLast90d   Preset = "last_90d"
	PresetThisMonth Preset = "this_month"
	PresetLastMonth Preset = "last_month"
	PresetThisYear  Preset = "this_year"
	PresetLastYear  Preset = "last_year"
	PresetCustom    Preset = "custom"
)

// ComparisonStrategy determina como o período anterior é derivado do período atual
type ComparisonStrategy string

const (
	CompareSameLength            ComparisonStrategy = "same_length"
	ComparePreviousCalendarMonth ComparisonStrategy = "previous_calendar_month"
	ComparePreviousCalendarYear  ComparisonStrategy = "previous_calendar_year"
	CompareTwoMonthsPrior        ComparisonStrategy = "two_months_prior"
	CompareNone                  ComparisonStrategy = "none"
)

// DateRange representa um intervalo fechado de datas de calendário (since <= until)
type DateRange struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

// Days retorna a quantidade de dias do intervalo, contando as duas pontas
func (r DateRange) Days() int {
	return int(r.Until.Sub(r.Since).Hours()/24) + 1
}

// ResolvedPeriod é o resultado da resolução de um preset em datas concretas
type ResolvedPeriod struct {
	Preset             Preset             `json:"preset"`
	Since              time.Time          `json:"since"`
	Until              time.Time          `json:"until"`
	DayCount           int                `json:"day_count"`
	ComparisonStrategy ComparisonStrategy `json:"comparison_strategy"`
}

// Range retorna o intervalo de datas do período resolvido
func (p ResolvedPeriod) Range() DateRange {
	return DateRange{Since: p.Since, Until: p.Until}
}
