package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "ACTIVE"
	ProjectStatusInactive ProjectStatus = "INACTIVE"
)

// Project representa um projeto de conta de anúncios acompanhado pelo painel
type Project struct {
	ID         string        `json:"id"`
	ExternalID string        `json:"external_id"`
	Name       string        `json:"name"`
	Nickname   *string       `json:"nickname,omitempty"`
	Timezone   string        `json:"timezone"`
	Currency   string        `json:"currency"`
	Status     ProjectStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// UpdatableProjectFields são os campos que podem ser alterados via API
type UpdatableProjectFields struct {
	Nickname *string        `json:"nickname,omitempty"`
	Timezone *string        `json:"timezone,omitempty"`
	Currency *string        `json:"currency,omitempty"`
	Status   *ProjectStatus `json:"status,omitempty"`
}
