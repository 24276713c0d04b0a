package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

const (
	summarySnapshotsTable = "kpi_summary_snapshots"
)

type SummarySnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.SummarySnapshot) error
	GetByPeriod(period string) ([]*domain.SummarySnapshot, error)
}

type summarySnapshotRepository struct {
	conn *postgres.Connection
}

func NewSummarySnapshotRepository(conn *postgres.Connection) SummarySnapshotRepository {
	return &summarySnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere a fotografia do resumo mensal de um time ou atualiza
// a existente do mesmo período
func (r *summarySnapshotRepository) SaveOrUpdate(snapshot *domain.SummarySnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(summarySnapshotsTable).
		Columns("id", "period", "team", "total_target", "total_ship_ok", "progress").
		Values(
			snapshot.ID,
			snapshot.Period,
			snapshot.Team,
			snapshot.TotalTarget,
			snapshot.TotalShipOk,
			snapshot.Progress,
		).
		Suffix(`
			ON CONFLICT (period, team) DO UPDATE SET
				total_target = EXCLUDED.total_target,
				total_ship_ok = EXCLUDED.total_ship_ok,
				progress = EXCLUDED.progress,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetByPeriod retorna as fotografias de um período (mm-yyyy), ordenadas por
// progresso decrescente
func (r *summarySnapshotRepository) GetByPeriod(period string) ([]*domain.SummarySnapshot, error) {
	query, args, err := squirrel.
		Select("id, period, team, total_target, total_ship_ok, progress, created_at, updated_at").
		From(summarySnapshotsTable).
		Where(squirrel.Eq{"period": period}).
		OrderBy("progress DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.SummarySnapshot, 0)
	for rows.Next() {
		snapshot := &domain.SummarySnapshot{}
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.Period,
			&snapshot.Team,
			&snapshot.TotalTarget,
			&snapshot.TotalShipOk,
			&snapshot.Progress,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fotografia de resumo: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}
