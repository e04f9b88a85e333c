package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

//go:generate mockgen -source=report_snapshot.go -destination=mocks/report_snapshot_mock.go -package=mocks

const reportSnapshotsTable = "report_snapshots"

var reportSnapshotColumns = []string{
	"id", "customer_id", "report_type", "date", "row_count", "report_table", "created_at", "updated_at",
}

type ReportSnapshotRepository interface {
	GetByCustomerTypeDate(ctx context.Context, customerID string, reportType domain.ReportType, date time.Time) (*domain.ReportSnapshot, error)
	ListByCustomer(ctx context.Context, customerID string, reportType domain.ReportType, startDate, endDate time.Time) ([]*domain.ReportSnapshot, error)
	SaveOrUpdate(ctx context.Context, snapshot *domain.ReportSnapshot) error
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type reportSnapshotRepository struct {
	conn postgres.Queryer
	now  func() time.Time
}

func NewReportSnapshotRepository(conn postgres.Queryer) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *reportSnapshotRepository) GetByCustomerTypeDate(ctx context.Context, customerID string, reportType domain.ReportType, date time.Time) (*domain.ReportSnapshot, error) {
	query, args, err := squirrel.
		Select(reportSnapshotColumns...).
		From(reportSnapshotsTable).
		Where(squirrel.Eq{
			"customer_id": customerID,
			"report_type": string(reportType),
			"date":        date.Format(time.DateOnly),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSnapshot(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar snapshot do relatório: %w", err)
	}

	return snapshot, nil
}

func (r *reportSnapshotRepository) ListByCustomer(ctx context.Context, customerID string, reportType domain.ReportType, startDate, endDate time.Time) ([]*domain.ReportSnapshot, error) {
	query, args, err := buildListSnapshots(customerID, reportType, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.ReportSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar snapshots: %w", err)
	}

	return snapshots, nil
}

func (r *reportSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.ReportSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	query, args, err := buildUpsertSnapshot(snapshot)
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// buildListSnapshots seleciona os snapshots do intervalo em ordem de data
func buildListSnapshots(customerID string, reportType domain.ReportType, startDate, endDate time.Time) (string, []any, error) {
	return squirrel.
		Select(reportSnapshotColumns...).
		From(reportSnapshotsTable).
		Where(squirrel.Eq{"customer_id": customerID, "report_type": string(reportType)}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildUpsertSnapshot(snapshot *domain.ReportSnapshot) (string, []any, error) {
	if snapshot.Table == nil {
		return "", nil, fmt.Errorf("snapshot sem tabela")
	}

	tableJSON, err := json.Marshal(snapshot.Table)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar tabela para JSON: %w", err)
	}

	return squirrel.StatementBuilder.
		Insert(reportSnapshotsTable).
		Columns("id", "customer_id", "report_type", "date", "row_count", "report_table").
		Values(
			snapshot.ID,
			snapshot.CustomerID,
			string(snapshot.ReportType),
			snapshot.Date.Format(time.DateOnly),
			snapshot.Table.Len(),
			tableJSON,
		).
		Suffix(`
			ON CONFLICT (customer_id, report_type, date) DO UPDATE SET
				row_count = EXCLUDED.row_count,
				report_table = EXCLUDED.report_table,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *reportSnapshotRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := r.now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(reportSnapshotsTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*domain.ReportSnapshot, error) {
	snapshot := &domain.ReportSnapshot{}
	var reportType string
	var tableJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.CustomerID,
		&reportType,
		&snapshot.Date,
		&snapshot.RowCount,
		&tableJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	snapshot.ReportType = domain.ReportType(reportType)

	table := &domain.ReportTable{}
	if err := json.Unmarshal(tableJSON, table); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de report_table: %w", err)
	}
	snapshot.Table = table

	return snapshot, nil
}
