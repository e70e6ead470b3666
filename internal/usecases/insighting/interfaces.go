package insighting

import (
	"github.com/vfg2006/adboard-api/internal/domain"
)

// ComparisonOptions controla detalhes da montagem da comparação
type ComparisonOptions struct {
	// FillDense preenche com zeros as datas do período sem nenhuma linha,
	// produzindo uma série contínua para gráficos
	FillDense bool
}

// Insighter é a interface exposta para as camadas de apresentação e exportação
type Insighter interface {
	// ResolvePeriod converte um preset em um período concreto no fuso do projeto
	ResolvePeriod(preset domain.Preset, timezone string, custom *domain.DateRange) (*domain.ResolvedPeriod, error)

	// LoadComparison executa a operação completa: resolve o período, deriva o
	// período anterior, busca e agrega as linhas dos dois e monta a comparação
	LoadComparison(projectExternalID string, preset domain.Preset, custom *domain.DateRange, opts ComparisonOptions) (*domain.PeriodComparison, error)

	// PeriodTotalsForRange calcula os totais de um intervalo arbitrário de datas
	PeriodTotalsForRange(project *domain.Project, rng domain.DateRange) (*domain.PeriodTotals, error)

	// GetMonthlyReports retorna os consolidados mensais de todos os projetos
	// ativos para um período no formato mm-yyyy
	GetMonthlyReports(period string) ([]*domain.MonthlyReport, error)

	// GetAvailableMonthlyPeriods retorna os períodos disponíveis nos consolidados mensais
	GetAvailableMonthlyPeriods() (*domain.AvailablePeriods, error)
}
