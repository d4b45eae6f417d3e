package postgresqltest

import (
	"context"
	"testing"
	"time"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/attendance"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/employee"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/ingest"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/punch"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/upload"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/database"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/tabular"
	"github.com/geraldx2005/attendance-backend-go/internal/repository/postgresql"
	ingestService "github.com/geraldx2005/attendance-backend-go/internal/service/ingest"
	uploadService "github.com/geraldx2005/attendance-backend-go/internal/service/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db         *database.DB
	employees  employee.EmployeeRepository
	punches    punch.PunchRepository
	uploads    upload.UploadRepository
	attendance attendance.AttendanceRepository
	ingest     ingest.IngestService
	uploadSvc  upload.UploadService
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)

	employees := postgresql.NewEmployeeRepository(db)
	punches := postgresql.NewPunchRepository(db)
	uploads := postgresql.NewUploadRepository(db)
	att := postgresql.NewAttendanceRepository(db)

	return &testEnv{
		db:         db,
		employees:  employees,
		punches:    punches,
		uploads:    uploads,
		attendance: att,
		ingest:     ingestService.NewIngestService(db, employees, punches, uploads, att, 1000),
		uploadSvc:  uploadService.NewUploadService(db, uploads, punches, att),
	}
}

func punchRow(id, date, times string) tabular.Row {
	return tabular.Row{"Employee ID": id, "Date": date, "Punches": times}
}

func TestIngestRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	summary, err := env.ingest.Ingest(ctx, ingest.IngestRequest{
		Filename: "january.csv",
		Rows: []tabular.Row{
			punchRow("E-1", "2025-01-06", "9:00, 13:00, 13:30, 18:05"),
			punchRow("E-2", "06-01-2025", "09:30 17:45"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.RecordsInserted)
	assert.Zero(t, summary.RecordsSkipped)
	assert.Zero(t, summary.RecordsEmpty)
	assert.Equal(t, 2, summary.DaysTouched)

	// Employees were provisioned with placeholder names.
	emp, err := env.employees.GetByID(ctx, "E-1")
	require.NoError(t, err)
	assert.Equal(t, "Employee E-1", emp.Name)

	// Punches are canonical and sorted regardless of input format.
	times, err := env.punches.ListTimesForDay(ctx, "E-1", "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00:00", "13:00:00", "13:30:00", "18:05:00"}, times)

	// The cache row was rebuilt in the same batch.
	row, err := env.attendance.Get(ctx, "E-2", "2025-01-06")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "09:30:00,17:45:00", row.PunchTimes)
	assert.Equal(t, []string{summary.UploadID}, row.UploadIDs)
}

func TestIngestIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rows := []tabular.Row{
		punchRow("E-1", "2025-01-06", "09:00 18:00"),
	}

	first, err := env.ingest.Ingest(ctx, ingest.IngestRequest{Filename: "a.csv", Rows: rows})
	require.NoError(t, err)
	require.Equal(t, 1, first.RecordsInserted)

	before, err := env.attendance.Get(ctx, "E-1", "2025-01-06")
	require.NoError(t, err)
	require.NotNil(t, before)

	second, err := env.ingest.Ingest(ctx, ingest.IngestRequest{Filename: "a-again.csv", Rows: rows})
	require.NoError(t, err)
	assert.Zero(t, second.RecordsInserted)
	assert.Equal(t, 1, second.RecordsSkipped)
	assert.Zero(t, second.DaysTouched)

	after, err := env.attendance.Get(ctx, "E-1", "2025-01-06")
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, before.PunchTimes, after.PunchTimes)

	// Duplicate punches keep their original provenance.
	assert.Equal(t, []string{first.UploadID}, after.UploadIDs)
}

func TestIngestCountsDefectiveRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	summary, err := env.ingest.Ingest(ctx, ingest.IngestRequest{
		Filename: "messy.csv",
		Rows: []tabular.Row{
			punchRow("E-1", "2025-01-06", "09:00 18:00"),
			punchRow("", "2025-01-06", "09:00"),          // missing id
			punchRow("E-2", "31/02/2025", "09:00"),       // impossible date
			punchRow("E-3", "2025-01-06", ""),            // no punches
			punchRow("E-4", "2025-01-06", "n/a unknown"), // no parseable punches
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.RecordsInserted)
	assert.Equal(t, 2, summary.RecordsSkipped)
	assert.Equal(t, 2, summary.RecordsEmpty)

	// Rows without surviving punches provision nothing.
	_, err = env.employees.GetByID(ctx, "E-3")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	_, err = env.employees.GetByID(ctx, "E-4")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestIngestRejectsOversizedBatch(t *testing.T) {
	env := newTestEnv(t)
	env.ingest = ingestService.NewIngestService(env.db, env.employees, env.punches, env.uploads, env.attendance, 1)

	_, err := env.ingest.Ingest(context.Background(), ingest.IngestRequest{
		Filename: "big.csv",
		Rows: []tabular.Row{
			punchRow("E-1", "2025-01-06", "09:00"),
			punchRow("E-1", "2025-01-07", "09:00"),
		},
	})
	assert.ErrorIs(t, err, ingest.ErrTooManyRows)
}

func TestDeleteUploadReconcilesAffectedDays(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.ingest.Ingest(ctx, ingest.IngestRequest{
		Filename: "base.csv",
		Rows: []tabular.Row{
			punchRow("E-1", "2025-01-06", "09:00 18:00"),
		},
	})
	require.NoError(t, err)

	second, err := env.ingest.Ingest(ctx, ingest.IngestRequest{
		Filename: "extra.csv",
		Rows: []tabular.Row{
			punchRow("E-1", "2025-01-06", "12:00"),
			punchRow("E-1", "2025-01-07", "09:00 17:30"),
		},
	})
	require.NoError(t, err)

	result, err := env.uploadSvc.Delete(ctx, second.UploadID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.PunchesRemoved)

	// The shared day reverts to the first upload's punches.
	row, err := env.attendance.Get(ctx, "E-1", "2025-01-06")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "09:00:00,18:00:00", row.PunchTimes)
	assert.Equal(t, []string{first.UploadID}, row.UploadIDs)

	// The day only the deleted upload fed disappears entirely.
	gone, err := env.attendance.Get(ctx, "E-1", "2025-01-07")
	require.NoError(t, err)
	assert.Nil(t, gone)

	_, err = env.uploads.GetByID(ctx, second.UploadID)
	assert.ErrorIs(t, err, upload.ErrUploadNotFound)
}

func TestDeleteUploadStripsLegacyCacheRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// A cache row referencing an upload with no backing raw punches, the
	// shape left behind by data imported before the punch log existed.
	legacy := upload.Upload{ID: "0b0e8b9e-4c62-4f3a-9a64-0d6a1f9b7c11", Filename: "legacy.csv", UploadedAt: time.Now()}
	require.NoError(t, env.uploads.Create(ctx, legacy))
	require.NoError(t, env.employees.EnsureExists(ctx, "E-9", "Employee E-9"))
	require.NoError(t, env.attendance.Upsert(ctx, attendance.DailyAttendance{
		EmployeeID: "E-9",
		Date:       "2024-06-03",
		PunchTimes: "09:00:00,17:00:00",
		UploadIDs:  []string{legacy.ID},
	}))

	result, err := env.uploadSvc.Delete(ctx, legacy.ID)
	require.NoError(t, err)
	assert.Zero(t, result.PunchesRemoved)

	row, err := env.attendance.Get(ctx, "E-9", "2024-06-03")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "09:00:00,17:00:00", row.PunchTimes)
	assert.Empty(t, row.UploadIDs)
}

func TestDeleteUnknownUpload(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uploadSvc.Delete(context.Background(), "c1f9e5f6-58aa-4e8e-9f1e-3a1b2c3d4e5f")
	assert.ErrorIs(t, err, upload.ErrUploadNotFound)
}
