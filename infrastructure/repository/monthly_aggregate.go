package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/adboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/adboard-api/internal/domain"
	"github.com/vfg2006/adboard-api/pkg/utils"
)

const (
	monthlyAggregatesTable = "monthly_aggregates ma"
)

type MonthlyAggregateRepository interface {
	GetByProjectIDAndPeriod(projectID string, date time.Time) (*domain.MonthlyAggregate, error)
	SaveOrUpdate(aggregate *domain.MonthlyAggregate) error
	GetAllPeriods() ([]string, error)
	DeleteOlderThan(months int) (int64, error)
}

type monthlyAggregateRepository struct {
	conn *postgres.Connection
}

func NewMonthlyAggregateRepository(conn *postgres.Connection) MonthlyAggregateRepository {
	return &monthlyAggregateRepository{
		conn: conn,
	}
}

func (r *monthlyAggregateRepository) GetByProjectIDAndPeriod(projectID string, date time.Time) (*domain.MonthlyAggregate, error) {
	// Período armazenado no formato mm-yyyy
	period := fmt.Sprintf("%02d-%04d", int(date.Month()), date.Year())

	query, args, err := squirrel.
		Select("ma.id, ma.project_id, ma.period, ma.totals, ma.created_at, ma.updated_at").
		From(monthlyAggregatesTable).
		Where(squirrel.Eq{"ma.project_id": projectID, "ma.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	aggregate := &domain.MonthlyAggregate{}
	var periodStr string
	var totalsJSON []byte

	err = row.Scan(
		&aggregate.ID,
		&aggregate.ProjectID,
		&periodStr,
		&totalsJSON,
		&aggregate.CreatedAt,
		&aggregate.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear consolidado mensal: %w", err)
	}

	periodDate, err := time.Parse("01-2006", periodStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter período: %w", err)
	}
	aggregate.Period = periodDate

	if totalsJSON != nil {
		totals := &domain.PeriodTotals{}
		if err := json.Unmarshal(totalsJSON, totals); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de totals: %w", err)
		}
		aggregate.Totals = totals
	}

	return aggregate, nil
}

func (r *monthlyAggregateRepository) SaveOrUpdate(aggregate *domain.MonthlyAggregate) error {
	var totalsJSON []byte
	var err error

	if aggregate.Totals != nil {
		totalsJSON, err = json.Marshal(aggregate.Totals)
		if err != nil {
			return fmt.Errorf("erro ao serializar totals para JSON: %w", err)
		}
	}

	if aggregate.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar identificador do consolidado mensal: %w", err)
		}
		aggregate.ID = id
	}

	period := fmt.Sprintf("%02d-%04d", int(aggregate.Period.Month()), aggregate.Period.Year())

	query := squirrel.StatementBuilder.
		Insert("monthly_aggregates").
		Columns("id", "project_id", "period", "totals").
		Values(aggregate.ID, aggregate.ProjectID, period, totalsJSON).
		Suffix(`
			ON CONFLICT (project_id, period) DO UPDATE SET
				totals = EXCLUDED.totals,
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

func (r *monthlyAggregateRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT ma.period").
		From(monthlyAggregatesTable).
		OrderBy("ma.period ASC").
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

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func (r *monthlyAggregateRepository) DeleteOlderThan(months int) (int64, error) {
	cutoff := time.Now().AddDate(0, -months, 0)
	cutoffPeriod := fmt.Sprintf("%02d-%04d", int(cutoff.Month()), cutoff.Year())

	// O período é texto mm-yyyy, então o corte compara ano e mês separadamente
	query, args, err := squirrel.
		Delete("monthly_aggregates").
		Where(squirrel.Expr(
			"(substring(period from 4 for 4) || substring(period from 1 for 2)) < ?",
			cutoffPeriod[3:]+cutoffPeriod[:2],
		)).
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
