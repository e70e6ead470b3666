package domain

import (
	"time"
)

// MonthlyAggregate representa o consolidado mensal de um projeto armazenado no banco
type MonthlyAggregate struct {
	ID        string        `json:"id"`
	ProjectID string        `json:"project_id"`
	Period    time.Time     `json:"period"` // primeiro dia do mês
	Totals    *PeriodTotals `json:"totals"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// MonthlyReport é o relatório mensal de um projeto entregue pela API
type MonthlyReport struct {
	ProjectID   string        `json:"project_id"`
	ProjectName string        `json:"project_name"`
	Period      string        `json:"period"` // formato mm-yyyy
	Currency    string        `json:"currency"`
	Totals      *PeriodTotals `json:"totals"`
}
