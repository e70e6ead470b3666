package domain

import (
	"time"

	"github.com/vfg2006/adboard-api/pkg/utils"
)

// MetricSums agrupa os campos aditivos, que podem ser somados entre linhas
type MetricSums struct {
	Spend            float64 `json:"spend"`
	Impressions      int     `json:"impressions"`
	Clicks           int     `json:"clicks"`
	Reach            int     `json:"reach"`
	Conversions      int     `json:"conversions"`
	ConversionValue  float64 `json:"conversion_value"`
	MessagingReplies int     `json:"messaging_replies"`
	ProfileVisits    int     `json:"profile_visits"`
}

// DerivedMetrics agrupa as métricas de razão, sempre recalculadas a partir das
// somas aditivas e nunca somadas diretamente entre linhas
type DerivedMetrics struct {
	CTR  float64 `json:"ctr"`
	CPM  float64 `json:"cpm"`
	CPC  float64 `json:"cpc"`
	ROAS float64 `json:"roas"`
	CPA  float64 `json:"cpa"`
}

// DailyAggregate representa as métricas agregadas de um único dia de calendário
type DailyAggregate struct {
	Date time.Time `json:"date"`
	MetricSums
	DerivedMetrics
}

// PeriodTotals representa as somas de um período inteiro, com as métricas
// derivadas recalculadas sobre as somas do período (não a média dos dias)
type PeriodTotals struct {
	DayCount int `json:"day_count"`
	MetricSums
	DerivedMetrics
}

// AddRow acumula os campos aditivos de uma linha diária nas somas
func (m *MetricSums) AddRow(row *DailyRow) {
	m.Spend += row.Spend
	m.Impressions += row.Impressions
	m.Clicks += row.Clicks
	m.Reach += row.Reach
	m.Conversions += row.Conversions
	m.ConversionValue += row.ConversionValue
	m.MessagingReplies += row.MessagingReplies
	m.ProfileVisits += row.ProfileVisits
}

// Merge acumula outras somas aditivas nestas somas
func (m *MetricSums) Merge(other MetricSums) {
	m.Spend += other.Spend
	m.Impressions += other.Impressions
	m.Clicks += other.Clicks
	m.Reach += other.Reach
	m.Conversions += other.Conversions
	m.ConversionValue += other.ConversionValue
	m.MessagingReplies += other.MessagingReplies
	m.ProfileVisits += other.ProfileVisits
}

// Derive calcula as métricas de razão a partir das somas aditivas.
// Denominador zero resulta em 0, nunca em NaN ou infinito:
// o frontend assume valores numéricos renderizáveis em todos os campos.
func (m MetricSums) Derive() DerivedMetrics {
	return DerivedMetrics{
		CTR:  utils.SafeRatio(float64(m.Clicks)*100, float64(m.Impressions)),
		CPM:  utils.SafeRatio(m.Spend*1000, float64(m.Impressions)),
		CPC:  utils.SafeRatio(m.Spend, float64(m.Clicks)),
		ROAS: utils.SafeRatio(m.ConversionValue, m.Spend),
		CPA:  utils.SafeRatio(m.Spend, float64(m.Conversions)),
	}
}
