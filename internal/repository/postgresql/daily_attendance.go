package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/attendance"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, row attendance.DailyAttendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO daily_attendance (employee_id, date, punch_times, upload_ids, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET punch_times = EXCLUDED.punch_times,
		              upload_ids = EXCLUDED.upload_ids,
		              updated_at = EXCLUDED.updated_at
	`

	uploadIDs := row.UploadIDs
	if uploadIDs == nil {
		uploadIDs = []string{}
	}

	_, err := q.Exec(ctx, query, row.EmployeeID, row.Date, row.PunchTimes, uploadIDs, time.Now())
	if err != nil {
		return fmt.Errorf("failed to upsert daily attendance: %w", err)
	}
	return nil
}

// Get implements attendance.AttendanceRepository.
func (a *attendanceRepository) Get(ctx context.Context, employeeID, date string) (*attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT employee_id, to_char(date, 'YYYY-MM-DD'), punch_times, upload_ids, updated_at
		FROM daily_attendance
		WHERE employee_id = $1 AND date = $2
	`

	var row attendance.DailyAttendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&row.EmployeeID, &row.Date, &row.PunchTimes, &row.UploadIDs, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no punches recorded for that day
		}
		return nil, fmt.Errorf("failed to get daily attendance: %w", err)
	}

	return &row, nil
}

// Delete implements attendance.AttendanceRepository. Deleting an absent row
// is not an error: reconciliation deletes whatever days emptied out.
func (a *attendanceRepository) Delete(ctx context.Context, employeeID, date string) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM daily_attendance WHERE employee_id = $1 AND date = $2`

	if _, err := q.Exec(ctx, query, employeeID, date); err != nil {
		return fmt.Errorf("failed to delete daily attendance: %w", err)
	}
	return nil
}

// StripUploadID implements attendance.AttendanceRepository.
func (a *attendanceRepository) StripUploadID(ctx context.Context, uploadID string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE daily_attendance
		SET upload_ids = array_remove(upload_ids, $1), updated_at = $2
		WHERE $1 = ANY(upload_ids)
	`

	if _, err := q.Exec(ctx, query, uploadID, time.Now()); err != nil {
		return fmt.Errorf("failed to strip upload id from cache: %w", err)
	}
	return nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
