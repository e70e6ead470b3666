package domain

import (
	"github.com/vfg2006/adboard-api/pkg/utils"
)

// Nomes dos campos comparáveis no mapa de variações percentuais
const (
	ChangeSpend            = "spend"
	ChangeImpressions      = "impressions"
	ChangeClicks           = "clicks"
	ChangeReach            = "reach"
	ChangeConversions      = "conversions"
	ChangeConversionValue  = "conversion_value"
	ChangeMessagingReplies = "messaging_replies"
	ChangeProfileVisits    = "profile_visits"
	ChangeCTR              = "ctr"
	ChangeCPM              = "cpm"
	ChangeCPC              = "cpc"
	ChangeROAS             = "roas"
	ChangeCPA              = "cpa"
)

// PeriodComparison é o resultado completo de uma comparação de períodos.
// Criado novo a cada resolução e nunca alterado depois de montado.
type PeriodComparison struct {
	Period         ResolvedPeriod     `json:"period"`
	PreviousPeriod *DateRange         `json:"previous_period,omitempty"`
	Current        []*DailyAggregate  `json:"current"`
	Previous       []*DailyAggregate  `json:"previous,omitempty"`
	CurrentTotals  *PeriodTotals      `json:"current_totals"`
	PreviousTotals *PeriodTotals      `json:"previous_totals,omitempty"`
	Changes        map[string]float64 `json:"changes,omitempty"`
	Partial        bool               `json:"partial"`
}

// PercentChange calcula a variação percentual entre o valor atual e o anterior.
// Quando o anterior é zero, crescimento vira 100 e estabilidade vira 0, para
// que o consumidor nunca receba divisão por zero.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

// BuildChanges monta o mapa de variações percentuais entre os totais de dois
// períodos. Retorna nil quando não existe período anterior, para que o
// consumidor consiga distinguir "estável" de "incomparável".
func BuildChanges(current, previous *PeriodTotals) map[string]float64 {
	if current == nil || previous == nil {
		return nil
	}

	return map[string]float64{
		ChangeSpend:            PercentChange(current.Spend, previous.Spend),
		ChangeImpressions:      PercentChange(float64(current.Impressions), float64(previous.Impressions)),
		ChangeClicks:           PercentChange(float64(current.Clicks), float64(previous.Clicks)),
		ChangeReach:            PercentChange(float64(current.Reach), float64(previous.Reach)),
		ChangeConversions:      PercentChange(float64(current.Conversions), float64(previous.Conversions)),
		ChangeConversionValue:  PercentChange(current.ConversionValue, previous.ConversionValue),
		ChangeMessagingReplies: PercentChange(float64(current.MessagingReplies), float64(previous.MessagingReplies)),
		ChangeProfileVisits:    PercentChange(float64(current.ProfileVisits), float64(previous.ProfileVisits)),
		ChangeCTR:              PercentChange(current.CTR, previous.CTR),
		ChangeCPM:              PercentChange(current.CPM, previous.CPM),
		ChangeCPC:              PercentChange(current.CPC, previous.CPC),
		ChangeROAS:             PercentChange(current.ROAS, previous.ROAS),
		ChangeCPA:              PercentChange(current.CPA, previous.CPA),
	}
}
