package postgresql

import (
	"context"
	"fmt"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/punch"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

// Append implements punch.PunchRepository. A conflicting (employee, date,
// time) key is a silent no-op: the duplicate is reported through the return
// value, not an error.
func (p *punchRepository) Append(ctx context.Context, pn punch.Punch) (bool, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO punches (employee_id, date, punch_time, source, upload_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date, punch_time) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, pn.EmployeeID, pn.Date, pn.Time, pn.Source, pn.UploadID)
	if err != nil {
		return false, fmt.Errorf("failed to append punch: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListTimesForDay implements punch.PunchRepository. The primary key already
// deduplicates; ordering by punch_time is chronological for canonical times.
func (p *punchRepository) ListTimesForDay(ctx context.Context, employeeID, date string) ([]string, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT punch_time
		FROM punches
		WHERE employee_id = $1 AND date = $2
		ORDER BY punch_time
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches for day: %w", err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan punch time: %w", err)
		}
		times = append(times, t)
	}

	return times, rows.Err()
}

// ListUploadIDsForDay implements punch.PunchRepository.
func (p *punchRepository) ListUploadIDsForDay(ctx context.Context, employeeID, date string) ([]string, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT DISTINCT upload_id::text
		FROM punches
		WHERE employee_id = $1 AND date = $2 AND upload_id IS NOT NULL
		ORDER BY upload_id::text
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list upload ids for day: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan upload id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// DeleteByUpload implements punch.PunchRepository.
func (p *punchRepository) DeleteByUpload(ctx context.Context, uploadID string) ([]punch.DayKey, int64, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		DELETE FROM punches
		WHERE upload_id = $1
		RETURNING employee_id, to_char(date, 'YYYY-MM-DD')
	`

	rows, err := q.Query(ctx, query, uploadID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to delete punches by upload: %w", err)
	}
	defer rows.Close()

	seen := make(map[punch.DayKey]struct{})
	var keys []punch.DayKey
	var removed int64
	for rows.Next() {
		var key punch.DayKey
		if err := rows.Scan(&key.EmployeeID, &key.Date); err != nil {
			return nil, 0, fmt.Errorf("failed to scan deleted punch: %w", err)
		}
		removed++
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	return keys, removed, rows.Err()
}

// ListAllDayKeys implements punch.PunchRepository.
func (p *punchRepository) ListAllDayKeys(ctx context.Context) ([]punch.DayKey, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT DISTINCT employee_id, to_char(date, 'YYYY-MM-DD')
		FROM punches
		ORDER BY employee_id, 2
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list day keys: %w", err)
	}
	defer rows.Close()

	var keys []punch.DayKey
	for rows.Next() {
		var key punch.DayKey
		if err := rows.Scan(&key.EmployeeID, &key.Date); err != nil {
			return nil, fmt.Errorf("failed to scan day key: %w", err)
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}
