package perioding

import (
	"time"

	"github.com/vfg2006/adboard-api/internal/domain"
)

// PreviousPeriod calcula o intervalo de comparação de um período resolvido,
// de acordo com a estratégia carregada no próprio período. Retorna nil quando
// a estratégia é None: o chamador pula a comparação por completo.
func (s *Service) PreviousPeriod(period domain.ResolvedPeriod) *domain.DateRange {
	switch period.ComparisonStrategy {
	case domain.CompareSameLength:
		// Termina exatamente um dia antes do início e tem o mesmo comprimento
		until := period.Since.AddDate(0, 0, -1)
		since := until.AddDate(0, 0, -(period.DayCount - 1))
		return &domain.DateRange{Since: since, Until: until}

	case domain.ComparePreviousCalendarMonth:
		// Mês anterior truncado no mesmo dia do mês de "hoje", espelhando
		// "mês até agora" contra "mês passado até o mesmo dia"
		firstOfCurrent := time.Date(period.Since.Year(), period.Since.Month(), 1, 0, 0, 0, 0, time.UTC)
		since := firstOfCurrent.AddDate(0, -1, 0)
		lastOfPrevious := firstOfCurrent.AddDate(0, 0, -1)

		day := period.Until.Day()
		if day > lastOfPrevious.Day() {
			day = lastOfPrevious.Day()
		}

		until := time.Date(since.Year(), since.Month(), day, 0, 0, 0, 0, time.UTC)
		return &domain.DateRange{Since: since, Until: until}

	case domain.CompareTwoMonthsPrior:
		// O período atual já representa "mês passado", então a comparação é o
		// mês cheio imediatamente anterior a ele
		firstOfCurrent := time.Date(period.Since.Year(), period.Since.Month(), 1, 0, 0, 0, 0, time.UTC)
		since := firstOfCurrent.AddDate(0, -1, 0)
		until := firstOfCurrent.AddDate(0, 0, -1)
		return &domain.DateRange{Since: since, Until: until}

	case domain.ComparePreviousCalendarYear:
		return &domain.DateRange{
			Since: shiftYearBack(period.Since),
			Until: shiftYearBack(period.Until),
		}
	}

	return nil
}

// shiftYearBack desloca uma data exatamente um ano de calendário para trás.
// 29 de fevereiro é grampeado em 28 quando o ano de destino não é bissexto.
func shiftYearBack(t time.Time) time.Time {
	day := t.Day()
	if t.Month() == time.February && day == 29 {
		day = 28
	}
	return time.Date(t.Year()-1, t.Month(), day, 0, 0, 0, 0, time.UTC)
}
