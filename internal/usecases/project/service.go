package project

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adboard-api/infrastructure/repository"
	"github.com/vfg2006/adboard-api/internal/config"
	"github.com/vfg2006/adboard-api/internal/domain"
	"github.com/vfg2006/adboard-api/pkg/apiErrors"
)

type ProjectService interface {
	ListProjects(availableStatus []domain.ProjectStatus) ([]*domain.Project, error)
	GetProjectByExternalID(externalID string) (*domain.Project, error)
	UpdateProject(externalID string, fields domain.UpdatableProjectFields) (*domain.Project, error)
}

type Service struct {
	projectRepository repository.ProjectRepository
	cfg               *config.Config
}

func NewService(projectRepository repository.ProjectRepository, cfg *config.Config) ProjectService {
	return &Service{
		projectRepository: projectRepository,
		cfg:               cfg,
	}
}

func (s *Service) ListProjects(availableStatus []domain.ProjectStatus) ([]*domain.Project, error) {
	projects, err := s.projectRepository.ListProjects(availableStatus)
	if err != nil {
		logrus.WithError(err).Error("projects: erro ao listar projetos no banco de dados")
		return nil, NewProjectError(ErrFetchProjects, apiErrors.ErrDatabaseOperation, "Falha ao listar projetos no banco de dados")
	}

	return projects, nil
}

func (s *Service) GetProjectByExternalID(externalID string) (*domain.Project, error) {
	if externalID == "" {
		return nil, NewProjectError(ErrProjectIDRequired, apiErrors.ErrMissingRequiredData, "Identificador do projeto não informado")
	}

	project, err := s.projectRepository.GetProjectByExternalID(externalID)
	if err != nil {
		logrus.WithError(err).WithField("project_id", externalID).
			Error("projects: erro ao buscar projeto no banco de dados")
		return nil, NewProjectError(ErrFetchProjects, apiErrors.ErrDatabaseOperation, "Falha ao buscar projeto no banco de dados")
	}

	if project == nil {
		return nil, NewProjectError(ErrProjectNotFound, apiErrors.ErrResourceNotFound, "Projeto não encontrado")
	}

	return project, nil
}

func (s *Service) UpdateProject(externalID string, fields domain.UpdatableProjectFields) (*domain.Project, error) {
	project, err := s.GetProjectByExternalID(externalID)
	if err != nil {
		return nil, err
	}

	// Moeda deve ser um código ISO de três letras; o motor nunca usa a moeda
	// em cálculo, apenas a repassa para a formatação
	if fields.Currency != nil && len(*fields.Currency) != 3 {
		return nil, NewProjectError(ErrInvalidCurrency, apiErrors.ErrInvalidFormat, "Código de moeda deve ter três letras")
	}

	if fields.Timezone != nil && *fields.Timezone == "" {
		return nil, NewProjectError(ErrInvalidTimezone, apiErrors.ErrInvalidFormat, "Fuso horário não pode ser vazio")
	}

	updated, err := s.projectRepository.UpdateProject(project.ID, fields)
	if err != nil {
		logrus.WithError(err).WithField("project_id", project.ID).
			Error("projects: erro ao atualizar projeto")
		return nil, NewProjectError(ErrUpdateProject, apiErrors.ErrDatabaseOperation, "Falha ao atualizar projeto")
	}

	return updated, nil
}
