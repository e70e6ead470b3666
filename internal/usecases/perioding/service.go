package perioding

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adboard-api/internal/config"
	"github.com/vfg2006/adboard-api/internal/domain"
)

// Resolver define a interface de resolução de períodos de calendário
type Resolver interface {
	// Resolve converte um preset (ou intervalo customizado) em datas concretas
	Resolve(preset domain.Preset, timezone string, custom *domain.DateRange) (*domain.ResolvedPeriod, error)

	// PreviousPeriod calcula o período de comparação de um período resolvido
	PreviousPeriod(period domain.ResolvedPeriod) *domain.DateRange

	// Today retorna a data de "hoje" no fuso horário do projeto
	Today(timezone string) time.Time
}

// utcOffsetHours é uma tabela fixa de offsets UTC por fuso horário.
// Simplificação deliberada: sem regras IANA nem horário de verão, então a
// fronteira de "hoje" pode divergir em até uma hora durante transições de DST.
var utcOffsetHours = map[string]int{
	"UTC":                 0,
	"America/Sao_Paulo":   -3,
	"America/Manaus":      -4,
	"America/Rio_Branco":  -5,
	"America/New_York":    -5,
	"America/Chicago":     -6,
	"America/Denver":      -7,
	"America/Los_Angeles": -8,
	"America/Mexico_City": -6,
	"America/Bogota":      -5,
	"America/Buenos_Aires": -3,
	"America/Santiago":    -4,
	"Europe/London":       0,
	"Europe/Lisbon":       0,
	"Europe/Madrid":       1,
	"Europe/Paris":        1,
	"Europe/Berlin":       1,
	"Europe/Rome":         1,
	"Asia/Dubai":          4,
	"Asia/Tokyo":          9,
	"Australia/Sydney":    10,
}

// Service implementa a interface Resolver. Cada resolução é uma função pura
// das entradas explícitas: não há estado mutável compartilhado entre chamadas.
type Service struct {
	offsets       map[string]int
	defaultOffset int
	now           func() time.Time
}

// NewService cria uma nova instância do resolvedor de períodos
func NewService(cfg config.Timezone) Resolver {
	offsets := make(map[string]int, len(utcOffsetHours))
	for tz, offset := range utcOffsetHours {
		offsets[tz] = offset
	}

	return &Service{
		offsets:       offsets,
		defaultOffset: cfg.DefaultUTCOffsetHours,
		now:           time.Now,
	}
}

// WithClock substitui a fonte de tempo do serviço. Usado em testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Today calcula a data de "hoje" no fuso horário informado, aplicando o offset
// fixo da tabela. Fusos desconhecidos caem no offset padrão configurado.
func (s *Service) Today(timezone string) time.Time {
	offset, ok := s.offsets[timezone]
	if !ok {
		logrus.WithFields(logrus.Fields{
			"timezone":       timezone,
			"default_offset": s.defaultOffset,
		}).Debug("perioding: fuso horário desconhecido, usando offset padrão")
		offset = s.defaultOffset
	}

	shifted := s.now().UTC().Add(time.Duration(offset) * time.Hour)
	return midnight(shifted)
}

// Resolve converte um preset em um período concreto de calendário, usando o
// "hoje" do fuso horário do projeto como âncora para toda a aritmética.
func (s *Service) Resolve(preset domain.Preset, timezone string, custom *domain.DateRange) (*domain.ResolvedPeriod, error) {
	if preset == domain.PresetCustom {
		return resolveCustom(custom)
	}

	today := s.Today(timezone)

	switch preset {
	case domain.PresetYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return newPeriod(preset, yesterday, yesterday, domain.CompareSameLength), nil

	case domain.PresetLast7d:
		return lastDays(preset, today, 7), nil
	case domain.PresetLast14d:
		return lastDays(preset, today, 14), nil
	case domain.PresetLast30d:
		return lastDays(preset, today, 30), nil
	case domain.PresetLast60d:
		return lastDays(preset, today, 60), nil
	case domain.PresetLast90d:
		return lastDays(preset, today, 90), nil

	case domain.PresetThisMonth:
		since := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return newPeriod(preset, since, today, domain.ComparePreviousCalendarMonth), nil

	case domain.PresetLastMonth:
		firstOfThisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		since := firstOfThisMonth.AddDate(0, -1, 0)
		until := firstOfThisMonth.AddDate(0, 0, -1)
		return newPeriod(preset, since, until, domain.CompareTwoMonthsPrior), nil

	case domain.PresetThisYear:
		since := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return newPeriod(preset, since, today, domain.ComparePreviousCalendarYear), nil

	case domain.PresetLastYear:
		since := time.Date(today.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
		until := time.Date(today.Year()-1, time.December, 31, 0, 0, 0, 0, time.UTC)
		return newPeriod(preset, since, until, domain.ComparePreviousCalendarYear), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidPreset, preset)
}

// resolveCustom valida e resolve um intervalo customizado. A estratégia de
// comparação de períodos customizados é sempre a de mesmo comprimento.
func resolveCustom(custom *domain.DateRange) (*domain.ResolvedPeriod, error) {
	if custom == nil || custom.Since.IsZero() || custom.Until.IsZero() {
		return nil, fmt.Errorf("%w: período customizado exige data inicial e final", ErrInvalidRange)
	}

	since := midnight(custom.Since)
	until := midnight(custom.Until)

	if since.After(until) {
		return nil, fmt.Errorf("%w: data inicial posterior à final", ErrInvalidRange)
	}

	return newPeriod(domain.PresetCustom, since, until, domain.CompareSameLength), nil
}

// lastDays resolve presets do tipo last_Nd: os N dias completos terminando ontem
func lastDays(preset domain.Preset, today time.Time, n int) *domain.ResolvedPeriod {
	since := today.AddDate(0, 0, -n)
	until := today.AddDate(0, 0, -1)
	return newPeriod(preset, since, until, domain.CompareSameLength)
}

func newPeriod(preset domain.Preset, since, until time.Time, strategy domain.ComparisonStrategy) *domain.ResolvedPeriod {
	return &domain.ResolvedPeriod{
		Preset:             preset,
		Since:              since,
		Until:              until,
		DayCount:           domain.DateRange{Since: since, Until: until}.Days(),
		ComparisonStrategy: strategy,
	}
}

// midnight normaliza um instante para a meia-noite UTC da mesma data de calendário
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
