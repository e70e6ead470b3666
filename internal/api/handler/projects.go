package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adboard-api/internal/domain"
	"github.com/vfg2006/adboard-api/internal/usecases/project"
	"github.com/vfg2006/adboard-api/pkg/apiErrors"
)

func ProjectList(service project.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		availableStatus := make([]domain.ProjectStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.ProjectStatus(status))
			}
		}

		projects, err := service.ListProjects(availableStatus)
		if err != nil {
			logrus.Error("Error listing projects:", err)

			// Verificar se é um ProjectError para obter detalhes específicos do erro
			var projectErr *project.ProjectError
			if errors.As(err, &projectErr) {
				apiErrors.WriteError(w, projectErr.Code, projectErr.Error(), nil)
				return
			}

			if errors.Is(err, project.ErrFetchProjects) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar projetos no banco de dados", nil)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar projetos", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(projects); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetProject(service project.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		proj, err := service.GetProjectByExternalID(id)
		if err != nil {
			logrus.Error("Error fetching project:", err)
			writeProjectError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(proj); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateProject(service project.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProject")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do projeto é obrigatório", nil)
			return
		}

		var fields domain.UpdatableProjectFields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		updated, err := service.UpdateProject(id, fields)
		if err != nil {
			logrus.Error("Error updating project:", err)
			writeProjectError(w, err, id)
			return
		}

		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeProjectError traduz os erros do caso de uso de projetos em respostas HTTP
func writeProjectError(w http.ResponseWriter, err error, projectID string) {
	var projectErr *project.ProjectError
	if errors.As(err, &projectErr) {
		apiErrors.WriteError(w, projectErr.Code, projectErr.Error(), map[string]any{
			"project_id": projectID,
		})
		return
	}

	switch {
	case errors.Is(err, project.ErrProjectIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do projeto é obrigatório", nil)

	case errors.Is(err, project.ErrProjectNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Projeto não encontrado", map[string]any{
			"project_id": projectID,
		})

	case errors.Is(err, project.ErrInvalidCurrency) || errors.Is(err, project.ErrInvalidTimezone):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, project.ErrFetchProjects) || errors.Is(err, project.ErrUpdateProject):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar projetos no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar projeto", nil)
	}
}
