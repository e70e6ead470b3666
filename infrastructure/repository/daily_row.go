package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/adboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/adboard-api/internal/domain"
	"github.com/vfg2006/adboard-api/pkg/utils"
)

const (
	dailyRowsTable = "daily_metric_rows dr"

	// MaxPageSize é o teto rígido de linhas por requisição de página.
	// Consultas acima disso devem paginar com offset.
	MaxPageSize = 1000
)

type DailyRowRepository interface {
	// GetPageByDateRange retorna uma página de linhas diárias ordenadas por
	// data ascendente. O limite é grampeado em MaxPageSize.
	GetPageByDateRange(projectID string, startDate, endDate time.Time, offset, limit int) ([]*domain.DailyRow, error)
	SaveOrUpdate(row *domain.DailyRow) error
	DeleteOlderThan(days int) (int64, error)
}

type dailyRowRepository struct {
	conn *postgres.Connection
}

func NewDailyRowRepository(conn *postgres.Connection) DailyRowRepository {
	return &dailyRowRepository{
		conn: conn,
	}
}

func (r *dailyRowRepository) GetPageByDateRange(projectID string, startDate, endDate time.Time, offset, limit int) ([]*domain.DailyRow, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	query, args, err := squirrel.
		Select(`dr.id, dr.project_id, dr.entity_id, dr.entity_name, dr.date,
			dr.spend, dr.impressions, dr.clicks, dr.reach, dr.conversions,
			dr.conversion_value, dr.messaging_replies, dr.profile_visits,
			dr.created_at, dr.updated_at`).
		From(dailyRowsTable).
		Where(squirrel.Eq{"dr.project_id": projectID}).
		Where(squirrel.GtOrEq{"dr.date": utils.FormatDate(startDate)}).
		Where(squirrel.LtOrEq{"dr.date": utils.FormatDate(endDate)}).
		OrderBy("dr.date ASC", "dr.entity_id ASC", "dr.id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	dailyRows := make([]*domain.DailyRow, 0, limit)
	for rows.Next() {
		dailyRow, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha diária: %w", err)
		}
		dailyRows = append(dailyRows, dailyRow)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return dailyRows, nil
}

func (r *dailyRowRepository) SaveOrUpdate(dailyRow *domain.DailyRow) error {
	if dailyRow.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar identificador da linha diária: %w", err)
		}
		dailyRow.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert("daily_metric_rows").
		Columns(
			"id", "project_id", "entity_id", "entity_name", "date",
			"spend", "impressions", "clicks", "reach", "conversions",
			"conversion_value", "messaging_replies", "profile_visits",
		).
		Values(
			dailyRow.ID,
			dailyRow.ProjectID,
			dailyRow.EntityID,
			dailyRow.EntityName,
			utils.FormatDate(dailyRow.Date),
			dailyRow.Spend,
			dailyRow.Impressions,
			dailyRow.Clicks,
			dailyRow.Reach,
			dailyRow.Conversions,
			dailyRow.ConversionValue,
			dailyRow.MessagingReplies,
			dailyRow.ProfileVisits,
		).
		Suffix(`
			ON CONFLICT (project_id, entity_id, date) DO UPDATE SET
				entity_name = EXCLUDED.entity_name,
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				reach = EXCLUDED.reach,
				conversions = EXCLUDED.conversions,
				conversion_value = EXCLUDED.conversion_value,
				messaging_replies = EXCLUDED.messaging_replies,
				profile_visits = EXCLUDED.profile_visits,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailyRowRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := utils.FormatDate(time.Now().AddDate(0, 0, -days))

	query, args, err := squirrel.
		Delete("daily_metric_rows").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *dailyRowRepository) scanRow(rows *sql.Rows) (*domain.DailyRow, error) {
	dailyRow := &domain.DailyRow{}

	err := rows.Scan(
		&dailyRow.ID,
		&dailyRow.ProjectID,
		&dailyRow.EntityID,
		&dailyRow.EntityName,
		&dailyRow.Date,
		&dailyRow.Spend,
		&dailyRow.Impressions,
		&dailyRow.Clicks,
		&dailyRow.Reach,
		&dailyRow.Conversions,
		&dailyRow.ConversionValue,
		&dailyRow.MessagingReplies,
		&dailyRow.ProfileVisits,
		&dailyRow.CreatedAt,
		&dailyRow.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return dailyRow, nil
}
