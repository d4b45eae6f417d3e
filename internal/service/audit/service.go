package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/attendance"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/punch"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/database"
	"github.com/geraldx2005/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// Result summarizes one audit sweep.
type Result struct {
	Checked  int
	Repaired int
}

// CacheAuditor verifies the daily attendance cache against the raw punch log
// and repairs any row that drifted. Drift should never happen; the sweep
// exists to catch bugs and out-of-band edits before they reach a report.
//
// Only employee-days that have raw punches are checked. Cache rows without
// backing punches predate the punch log and are left alone.
type CacheAuditor struct {
	db *database.DB
	punch.PunchRepository
	attendance.AttendanceRepository
	logger *slog.Logger
}

func NewCacheAuditor(
	db *database.DB,
	punchRepository punch.PunchRepository,
	attendanceRepository attendance.AttendanceRepository,
	logger *slog.Logger,
) *CacheAuditor {
	return &CacheAuditor{
		db:                   db,
		PunchRepository:      punchRepository,
		AttendanceRepository: attendanceRepository,
		logger:               logger,
	}
}

// Run sweeps every employee-day with raw punches, in one transaction so a
// concurrent ingest cannot interleave with the repairs.
func (a *CacheAuditor) Run(ctx context.Context) (Result, error) {
	var result Result

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		keys, err := a.PunchRepository.ListAllDayKeys(txCtx)
		if err != nil {
			return err
		}

		for _, key := range keys {
			result.Checked++

			repaired, err := a.verifyDay(txCtx, key.EmployeeID, key.Date)
			if err != nil {
				return err
			}
			if repaired {
				result.Repaired++
				a.logger.Warn("repaired drifted attendance cache row",
					slog.String("employee_id", key.EmployeeID),
					slog.String("date", key.Date),
				)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to audit attendance cache: %w", err)
	}

	a.logger.Info("attendance cache audit complete",
		slog.Int("checked", result.Checked),
		slog.Int("repaired", result.Repaired),
	)
	return result, nil
}

func (a *CacheAuditor) verifyDay(ctx context.Context, employeeID, date string) (bool, error) {
	times, err := a.PunchRepository.ListTimesForDay(ctx, employeeID, date)
	if err != nil {
		return false, err
	}
	uploadIDs, err := a.PunchRepository.ListUploadIDsForDay(ctx, employeeID, date)
	if err != nil {
		return false, err
	}

	row, err := a.AttendanceRepository.Get(ctx, employeeID, date)
	if err != nil {
		return false, err
	}

	want := attendance.JoinTimes(times)
	if row != nil && row.PunchTimes == want && sameSet(row.UploadIDs, uploadIDs) {
		return false, nil
	}

	err = a.AttendanceRepository.Upsert(ctx, attendance.DailyAttendance{
		EmployeeID: employeeID,
		Date:       date,
		PunchTimes: want,
		UploadIDs:  uploadIDs,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		seen[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := seen[s]; !ok {
			return false
		}
	}
	return true
}
