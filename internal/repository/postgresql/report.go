package postgresql

import (
	"context"
	"fmt"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/report"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

// ListEmployees implements report.ReportRepository.
func (r *reportRepository) ListEmployees(ctx context.Context) ([]report.EmployeeRef, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name FROM employees ORDER BY id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees for report: %w", err)
	}
	defer rows.Close()

	var refs []report.EmployeeRef
	for rows.Next() {
		var ref report.EmployeeRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("failed to scan employee ref: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// PunchesForRange implements report.ReportRepository.
func (r *reportRepository) PunchesForRange(ctx context.Context, from, to string) ([]report.DayPunches, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, to_char(date, 'YYYY-MM-DD'), punch_times
		FROM daily_attendance
		WHERE date >= $1 AND date <= $2
		ORDER BY employee_id, date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches for range: %w", err)
	}
	defer rows.Close()

	var result []report.DayPunches
	for rows.Next() {
		var dp report.DayPunches
		if err := rows.Scan(&dp.EmployeeID, &dp.Date, &dp.PunchTimes); err != nil {
			return nil, fmt.Errorf("failed to scan day punches: %w", err)
		}
		result = append(result, dp)
	}

	return result, rows.Err()
}

// PunchesForDate implements report.ReportRepository.
func (r *reportRepository) PunchesForDate(ctx context.Context, date string) ([]report.DayPunches, error) {
	return r.PunchesForRange(ctx, date, date)
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}
