package utils

import "time"

// DateLayout é o formato de data usado em query params e no banco
const DateLayout = "2006-01-02"

// ParseDate converte uma string yyyy-mm-dd em *time.Time.
// String vazia resulta na data zero, não em erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatDate formata uma data no layout yyyy-mm-dd
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
