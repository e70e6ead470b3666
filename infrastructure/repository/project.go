package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/adboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/adboard-api/internal/domain"
)

const (
	projectsTable = "projects p"
)

type ProjectRepository interface {
	GetProjectByID(projectID string) (*domain.Project, error)
	GetProjectByExternalID(externalID string) (*domain.Project, error)
	ListProjects(availableStatus []domain.ProjectStatus) ([]*domain.Project, error)
	UpdateProject(projectID string, fields domain.UpdatableProjectFields) (*domain.Project, error)
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func (r *projectRepository) GetProjectByID(projectID string) (*domain.Project, error) {
	return r.getProject(squirrel.Eq{"p.id": projectID})
}

func (r *projectRepository) GetProjectByExternalID(externalID string) (*domain.Project, error) {
	return r.getProject(squirrel.Eq{"p.external_id": externalID})
}

func (r *projectRepository) getProject(whereClause map[string]interface{}) (*domain.Project, error) {
	query, args, err := squirrel.
		Select("p.id, p.external_id, p.name, p.nickname, p.timezone, p.currency, p.status, p.created_at, p.updated_at").
		From(projectsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	project := &domain.Project{}
	err = row.Scan(
		&project.ID,
		&project.ExternalID,
		&project.Name,
		&project.Nickname,
		&project.Timezone,
		&project.Currency,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear projeto: %w", err)
	}

	return project, nil
}

func (r *projectRepository) ListProjects(availableStatus []domain.ProjectStatus) ([]*domain.Project, error) {
	queryBuilder := squirrel.
		Select("p.id, p.external_id, p.name, p.nickname, p.timezone, p.currency, p.status, p.created_at, p.updated_at").
		From(projectsTable).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"p.status": availableStatus})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project := &domain.Project{}
		err = rows.Scan(
			&project.ID,
			&project.ExternalID,
			&project.Name,
			&project.Nickname,
			&project.Timezone,
			&project.Currency,
			&project.Status,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear projeto: %w", err)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return projects, nil
}

func (r *projectRepository) UpdateProject(projectID string, fields domain.UpdatableProjectFields) (*domain.Project, error) {
	updateBuilder := squirrel.
		Update("projects").
		Where(squirrel.Eq{"id": projectID}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if fields.Nickname != nil {
		updateBuilder = updateBuilder.Set("nickname", *fields.Nickname)
	}
	if fields.Timezone != nil {
		updateBuilder = updateBuilder.Set("timezone", *fields.Timezone)
	}
	if fields.Currency != nil {
		updateBuilder = updateBuilder.Set("currency", *fields.Currency)
	}
	if fields.Status != nil {
		updateBuilder = updateBuilder.Set("status", *fields.Status)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return r.GetProjectByID(projectID)
}
