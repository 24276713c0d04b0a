package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

const (
	kpiRecordsTable   = "kpi_records"
	kpiRecordsColumns = "id, date, team, target, ytd_target, qualified_inquiries, " +
		"new_register, new_deposit, new_deposit_ship_ok, strategic, retention, " +
		"upsell, notes, created_at"
)

type KpiRecordRepository interface {
	List(filters domain.KpiFilters) ([]*domain.KpiRecord, error)
	GetByID(id int) (*domain.KpiRecord, error)
	Create(input *domain.KpiRecordInput) (*domain.KpiRecord, error)
	Update(id int, patch *domain.KpiRecordPatch) (*domain.KpiRecord, error)
	Delete(id int) (bool, error)
	DistinctTeams() ([]string, error)
}

type kpiRecordRepository struct {
	conn *postgres.Connection
}

func NewKpiRecordRepository(conn *postgres.Connection) KpiRecordRepository {
	return &kpiRecordRepository{
		conn: conn,
	}
}

// List retorna os registros filtrados por período e/ou time, ordenados por
// data decrescente. Sem filtros, retorna todos os registros.
func (r *kpiRecordRepository) List(filters domain.KpiFilters) ([]*domain.KpiRecord, error) {
	builder := squirrel.
		Select(kpiRecordsColumns).
		From(kpiRecordsTable).
		OrderBy("date DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": filters.StartDate.Format(time.DateOnly)})
	}
	if filters.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": filters.EndDate.Format(time.DateOnly)})
	}
	if filters.Team != "" {
		builder = builder.Where(squirrel.Eq{"team": filters.Team})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.KpiRecord, 0)
	for rows.Next() {
		record, err := scanKpiRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de KPI: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// GetByID retorna o registro pelo id, ou nil quando não existe
func (r *kpiRecordRepository) GetByID(id int) (*domain.KpiRecord, error) {
	query, args, err := squirrel.
		Select(kpiRecordsColumns).
		From(kpiRecordsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanKpiRecord(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de KPI: %w", err)
	}

	return record, nil
}

// Create persiste um novo registro. O id e o created_at são atribuídos
// pelo banco e retornados no registro completo.
func (r *kpiRecordRepository) Create(input *domain.KpiRecordInput) (*domain.KpiRecord, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(kpiRecordsTable).
		Columns(
			"date", "team", "target", "ytd_target", "qualified_inquiries",
			"new_register", "new_deposit", "new_deposit_ship_ok",
			"strategic", "retention", "upsell", "notes",
		).
		Values(
			input.Date,
			input.Team,
			metricValue(input.Target),
			metricValue(input.YtdTarget),
			metricValue(input.QualifiedInquiries),
			metricValue(input.NewRegister),
			metricValue(input.NewDeposit),
			metricValue(input.NewDepositShipOk),
			metricValue(input.Strategic),
			metricValue(input.Retention),
			metricValue(input.Upsell),
			input.Notes,
		).
		Suffix("RETURNING " + kpiRecordsColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanKpiRecord(r.conn.QueryRow(query, args...))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir registro de KPI: %w", err)
	}

	return record, nil
}

// Update aplica somente os campos presentes no patch e retorna o registro
// atualizado, ou nil quando o id não existe
func (r *kpiRecordRepository) Update(id int, patch *domain.KpiRecordPatch) (*domain.KpiRecord, error) {
	updates := squirrel.Eq{}

	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Team != nil {
		updates["team"] = *patch.Team
	}
	if patch.Target != nil {
		updates["target"] = patch.Target.Float64()
	}
	if patch.YtdTarget != nil {
		updates["ytd_target"] = patch.YtdTarget.Float64()
	}
	if patch.QualifiedInquiries != nil {
		updates["qualified_inquiries"] = patch.QualifiedInquiries.Float64()
	}
	if patch.NewRegister != nil {
		updates["new_register"] = patch.NewRegister.Float64()
	}
	if patch.NewDeposit != nil {
		updates["new_deposit"] = patch.NewDeposit.Float64()
	}
	if patch.NewDepositShipOk != nil {
		updates["new_deposit_ship_ok"] = patch.NewDepositShipOk.Float64()
	}
	if patch.Strategic != nil {
		updates["strategic"] = patch.Strategic.Float64()
	}
	if patch.Retention != nil {
		updates["retention"] = patch.Retention.Float64()
	}
	if patch.Upsell != nil {
		updates["upsell"] = patch.Upsell.Float64()
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if len(updates) == 0 {
		// Patch vazio não altera nada: devolve o registro atual
		return r.GetByID(id)
	}

	query, args, err := squirrel.StatementBuilder.
		Update(kpiRecordsTable).
		SetMap(map[string]interface{}(updates)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + kpiRecordsColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanKpiRecord(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar registro de KPI: %w", err)
	}

	return record, nil
}

// Delete remove o registro e informa se alguma linha foi afetada
func (r *kpiRecordRepository) Delete(id int) (bool, error) {
	query, args, err := squirrel.
		Delete(kpiRecordsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

// DistinctTeams retorna os nomes de times presentes na base, em ordem
// alfabética
func (r *kpiRecordRepository) DistinctTeams() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT team").
		From(kpiRecordsTable).
		OrderBy("team ASC").
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

	teams := make([]string, 0)
	for rows.Next() {
		var team string
		if err := rows.Scan(&team); err != nil {
			return nil, fmt.Errorf("erro ao escanear time: %w", err)
		}
		teams = append(teams, team)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return teams, nil
}

func metricValue(m *domain.Metric) float64 {
	if m == nil {
		return 0
	}
	return m.Float64()
}

// rowScanner cobre *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanKpiRecord(row rowScanner) (*domain.KpiRecord, error) {
	record := &domain.KpiRecord{}
	var date time.Time
	var notes sql.NullString

	err := row.Scan(
		&record.ID,
		&date,
		&record.Team,
		&record.Target,
		&record.YtdTarget,
		&record.QualifiedInquiries,
		&record.NewRegister,
		&record.NewDeposit,
		&record.NewDepositShipOk,
		&record.Strategic,
		&record.Retention,
		&record.Upsell,
		&notes,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Date = domain.CalendarDate{Time: date}
	if notes.Valid {
		record.Notes = &notes.String
	}

	return record, nil
}
