package domain

import (
	"time"
)

// DailyRow representa uma linha diária de métricas de uma entidade de anúncio
// (campanha, conjunto ou anúncio) armazenada no banco. Imutável após a leitura.
type DailyRow struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	EntityID         string    `json:"entity_id"`
	EntityName       string    `json:"entity_name,omitempty"`
	Date             time.Time `json:"date"`
	Spend            float64   `json:"spend"`
	Impressions      int       `json:"impressions"`
	Clicks           int       `json:"clicks"`
	Reach            int       `json:"reach"`
	Conversions      int       `json:"conversions"`
	ConversionValue  float64   `json:"conversion_value"`
	MessagingReplies int       `json:"messaging_replies"`
	ProfileVisits    int       `json:"profile_visits"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
