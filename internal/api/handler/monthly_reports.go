package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vfg2006/adboard-api/internal/usecases/insighting"
	"github.com/vfg2006/adboard-api/pkg/log"
)

// GetMonthlyReports retorna os consolidados mensais de todos os projetos
// ativos para um período específico
func GetMonthlyReports(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		year := r.URL.Query().Get("year")

		if month == "" || year == "" {
			http.Error(w, "É necessário informar mês e ano nos parâmetros", http.StatusBadRequest)
			return
		}

		// Validar mês (entre 01 e 12)
		if len(month) != 2 || month < "01" || month > "12" {
			http.Error(w, "Mês inválido. Use formato de dois dígitos (01-12)", http.StatusBadRequest)
			return
		}

		// Validar ano (4 dígitos)
		if len(year) != 4 {
			http.Error(w, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", http.StatusBadRequest)
			return
		}

		// Formar o período no formato esperado mm-yyyy
		period := fmt.Sprintf("%s-%s", month, year)

		logger.WithFields(log.Fields{
			"month":  month,
			"year":   year,
			"period": period,
		}).Info("monthly-reports: buscando consolidados mensais")

		reports, err := service.GetMonthlyReports(period)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"period": period,
			}).Error("monthly-reports: erro ao buscar consolidados mensais")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"period":            period,
			"projects_returned": len(reports),
		}).Info("monthly-reports: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reports); err != nil {
			logger.WithError(err).Error("monthly-reports: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAvailableMonthlyPeriods retorna os períodos (meses e anos) com
// consolidados mensais disponíveis
func GetAvailableMonthlyPeriods(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("monthly-periods: buscando períodos disponíveis")

		availablePeriods, err := service.GetAvailableMonthlyPeriods()
		if err != nil {
			logger.WithError(err).Error("monthly-periods: erro ao buscar períodos disponíveis")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"total_periods": len(availablePeriods.Periods),
			"years":         availablePeriods.Years,
			"months":        availablePeriods.Months,
		}).Info("monthly-periods: períodos disponíveis recuperados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(availablePeriods); err != nil {
			logger.WithError(err).Error("monthly-periods: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
