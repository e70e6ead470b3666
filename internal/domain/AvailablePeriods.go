package domain

// AvailablePeriods representa os períodos disponíveis nos consolidados mensais
type AvailablePeriods struct {
	Periods []string `json:"periods"` // formato mm-yyyy
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
