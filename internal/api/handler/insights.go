package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/adboard-api/internal/domain"
	"github.com/vfg2006/adboard-api/internal/usecases/insighting"
	"github.com/vfg2006/adboard-api/internal/usecases/perioding"
	"github.com/vfg2006/adboard-api/pkg/apiErrors"
	"github.com/vfg2006/adboard-api/pkg/log"
	"github.com/vfg2006/adboard-api/pkg/utils"
)

// parseCustomRange monta o intervalo customizado a partir dos parâmetros
// start_date e end_date. Retorna nil quando nenhum dos dois foi informado.
func parseCustomRange(r *http.Request) (*domain.DateRange, error) {
	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")

	if startParam == "" && endParam == "" {
		return nil, nil
	}

	startDate, err := utils.ParseDate(startParam)
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(endParam)
	if err != nil {
		return nil, err
	}

	return &domain.DateRange{
		Since: *startDate,
		Until: *endDate,
	}, nil
}

// GetProjectComparison retorna a comparação de métricas do projeto entre o
// período pedido e o período anterior equivalente
func GetProjectComparison(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do projeto é obrigatório", nil)
			return
		}

		custom, err := parseCustomRange(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"project_id": id,
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("insights: parâmetros de data inválidos")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato yyyy-mm-dd", nil)
			return
		}

		// Sem preset explícito, datas customizadas valem como preset custom;
		// sem nenhum dos dois, cai no período padrão do painel
		presetParam := r.URL.Query().Get("preset")
		if presetParam == "" {
			if custom != nil {
				presetParam = string(domain.PresetCustom)
			} else {
				presetParam = string(domain.PresetLast30d)
			}
		}
		preset := domain.Preset(presetParam)

		opts := insighting.ComparisonOptions{
			FillDense: r.URL.Query().Get("fill") == "1",
		}

		logger.WithFields(log.Fields{
			"project_id": id,
			"preset":     preset,
			"fill_dense": opts.FillDense,
		}).Info("insights: montando comparação de períodos")

		comparison, err := service.LoadComparison(id, preset, custom, opts)
		if err != nil {
			logger.WithFields(log.Fields{
				"project_id": id,
				"preset":     preset,
				"error":      err.Error(),
			}).Error("insights: falha ao montar comparação de períodos")

			switch {
			case errors.Is(err, perioding.ErrInvalidPreset):
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Preset de período inválido", map[string]any{
					"preset": preset,
				})

			case errors.Is(err, perioding.ErrInvalidRange):
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Intervalo de datas inválido", nil)

			case errors.Is(err, insighting.ErrProjectNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Projeto não encontrado", map[string]any{
					"project_id": id,
				})

			case errors.Is(err, insighting.ErrPaginationLimitExceeded):
				apiErrors.WriteError(w, apiErrors.ErrResultTruncated, "Volume de dados do período excede o limite de paginação", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar comparação de períodos", nil)
			}
			return
		}

		if comparison.Partial {
			logger.WithFields(log.Fields{
				"project_id": id,
				"preset":     preset,
			}).Warn("insights: comparação montada com dados parciais")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(comparison); err != nil {
			logger.WithError(err).Error("insights: falha ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ResolvePeriod devolve as datas concretas de um preset sem consultar métricas.
// Útil para o front exibir o intervalo antes de pedir a comparação.
func ResolvePeriod(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		presetParam := r.URL.Query().Get("preset")
		if presetParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Preset de período é obrigatório", nil)
			return
		}
		preset := domain.Preset(presetParam)

		timezone := r.URL.Query().Get("timezone")

		custom, err := parseCustomRange(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"preset": preset,
				"error":  err.Error(),
			}).Warn("periods: parâmetros de data inválidos")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato yyyy-mm-dd", nil)
			return
		}

		period, err := service.ResolvePeriod(preset, timezone, custom)
		if err != nil {
			logger.WithFields(log.Fields{
				"preset":   preset,
				"timezone": timezone,
				"error":    err.Error(),
			}).Warn("periods: falha ao resolver período")

			switch {
			case errors.Is(err, perioding.ErrInvalidPreset):
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Preset de período inválido", map[string]any{
					"preset": preset,
				})

			case errors.Is(err, perioding.ErrInvalidRange):
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Intervalo de datas inválido", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao resolver período", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"preset": preset,
			"since":  period.Since.Format(time.DateOnly),
			"until":  period.Until.Format(time.DateOnly),
		}).Debug("periods: período resolvido")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(period); err != nil {
			logger.WithError(err).Error("periods: falha ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
