package report

import (
	"context"
	"testing"
	"time"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/attendance"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/employee"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	employees []report.EmployeeRef
	days      []report.DayPunches
}

func (f *fakeReportRepo) ListEmployees(ctx context.Context) ([]report.EmployeeRef, error) {
	return f.employees, nil
}

func (f *fakeReportRepo) PunchesForRange(ctx context.Context, from, to string) ([]report.DayPunches, error) {
	var out []report.DayPunches
	for _, d := range f.days {
		if d.Date >= from && d.Date <= to {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) PunchesForDate(ctx context.Context, date string) ([]report.DayPunches, error) {
	return f.PunchesForRange(ctx, date, date)
}

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) EnsureExists(ctx context.Context, id, name string) error { return nil }

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

type fakeAttendanceRepo struct {
	rows map[string]attendance.DailyAttendance // keyed employeeID|date
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, row attendance.DailyAttendance) error {
	return nil
}

func (f *fakeAttendanceRepo) Get(ctx context.Context, employeeID, date string) (*attendance.DailyAttendance, error) {
	row, ok := f.rows[employeeID+"|"+date]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, employeeID, date string) error { return nil }

func (f *fakeAttendanceRepo) StripUploadID(ctx context.Context, uploadID string) error { return nil }

func fixedNow(date string) func() time.Time {
	t, _ := time.ParseInLocation(time.DateOnly, date, time.Local)
	return func() time.Time { return t.Add(10 * time.Hour) }
}

// January 2025: the 5th, 12th, 19th and 26th are Sundays.
func newTestService(repo *fakeReportRepo, emps *fakeEmployeeRepo, att *fakeAttendanceRepo, today string) report.ReportService {
	if emps == nil {
		emps = &fakeEmployeeRepo{}
	}
	if att == nil {
		att = &fakeAttendanceRepo{}
	}
	return NewReportService(repo, emps, att, fixedNow(today))
}

func TestMonthlySummary(t *testing.T) {
	repo := &fakeReportRepo{
		employees: []report.EmployeeRef{{ID: "E-1", Name: "Employee E-1"}},
		days: []report.DayPunches{
			// Monday the 6th: nine hours, full day.
			{EmployeeID: "E-1", Date: "2025-01-06", PunchTimes: "09:00:00,18:00:00"},
			// Tuesday the 7th: six hours, half day.
			{EmployeeID: "E-1", Date: "2025-01-07", PunchTimes: "09:00:00,15:00:00"},
			// Wednesday the 8th: two hours, absent.
			{EmployeeID: "E-1", Date: "2025-01-08", PunchTimes: "09:00:00,11:00:00"},
			// Sunday the 12th: worked the off day.
			{EmployeeID: "E-1", Date: "2025-01-12", PunchTimes: "10:00:00,16:00:00"},
		},
	}

	svc := newTestService(repo, nil, nil, "2025-01-15")
	got, err := svc.MonthlySummary(context.Background(), 2025, 1)
	require.NoError(t, err)

	require.Len(t, got.Rows, 1)
	row := got.Rows[0]
	assert.Equal(t, 1, row.FullDay)
	assert.Equal(t, 1, row.HalfDay)
	assert.Equal(t, 1, row.WorkedOff)
	// Sundays the 5th and 19th... only the 5th falls in range; the 12th
	// was worked. Every other day through the 15th is absent.
	assert.Equal(t, 1, row.WeeklyOff)
	assert.Equal(t, 11, row.Absent)
	assert.Equal(t, 1.5, row.TotalPresent)

	assert.Equal(t, "2025-01-01", got.PeriodStart)
	assert.Equal(t, "2025-01-31", got.PeriodEnd)
}

func TestMonthlySummaryFutureMonthIsAllZero(t *testing.T) {
	repo := &fakeReportRepo{
		employees: []report.EmployeeRef{{ID: "E-1", Name: "Employee E-1"}},
	}

	svc := newTestService(repo, nil, nil, "2025-01-15")
	got, err := svc.MonthlySummary(context.Background(), 2025, 3)
	require.NoError(t, err)

	require.Len(t, got.Rows, 1)
	assert.Equal(t, report.MonthlySummaryRow{
		EmployeeID:   "E-1",
		EmployeeName: "Employee E-1",
	}, got.Rows[0])
}

func TestMonthlySummaryRejectsBadPeriod(t *testing.T) {
	svc := newTestService(&fakeReportRepo{}, nil, nil, "2025-01-15")

	_, err := svc.MonthlySummary(context.Background(), 2025, 13)
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)

	_, err = svc.MonthlySummary(context.Background(), 1815, 6)
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}

func TestMonthlyGridClampsAtToday(t *testing.T) {
	repo := &fakeReportRepo{
		employees: []report.EmployeeRef{{ID: "E-1", Name: "Employee E-1"}},
		days: []report.DayPunches{
			{EmployeeID: "E-1", Date: "2025-01-06", PunchTimes: "09:00:00,18:00:00"},
		},
	}

	svc := newTestService(repo, nil, nil, "2025-01-10")
	got, err := svc.MonthlyGrid(context.Background(), 2025, 1)
	require.NoError(t, err)

	assert.Equal(t, 31, got.DaysInMonth)
	require.Len(t, got.Employees, 1)

	cells := got.Employees[0].DailyStatus
	assert.Len(t, cells, 10)

	full := cells["2025-01-06"]
	assert.Equal(t, attendance.StatusFullDay, full.Status)
	assert.Equal(t, "09:00:00", full.FirstIn)
	assert.Equal(t, "18:00:00", full.LastOut)
	assert.Equal(t, float64(540), full.WorkedMinutes)

	assert.Equal(t, attendance.StatusWeeklyOff, cells["2025-01-05"].Status)
	assert.Equal(t, attendance.StatusAbsent, cells["2025-01-09"].Status)
	_, beyondToday := cells["2025-01-11"]
	assert.False(t, beyondToday)
}

func TestDaily(t *testing.T) {
	repo := &fakeReportRepo{
		employees: []report.EmployeeRef{
			{ID: "E-1", Name: "Employee E-1"},
			{ID: "E-2", Name: "Employee E-2"},
		},
		days: []report.DayPunches{
			{EmployeeID: "E-1", Date: "2025-01-06", PunchTimes: "09:00:00,13:00:00,13:30:00,18:05:00"},
		},
	}

	svc := newTestService(repo, nil, nil, "2025-01-10")
	got, err := svc.Daily(context.Background(), "2025-01-06")
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)

	worked := got.Rows[0]
	assert.Equal(t, "E-1", worked.EmployeeID)
	assert.Equal(t, attendance.StatusFullDay, worked.Status)
	assert.Equal(t, float64(30), worked.BreakMinutes)
	assert.Equal(t, float64(515), worked.WorkingMinutes)
	assert.Equal(t, 4, worked.PunchCount)

	missing := got.Rows[1]
	assert.Equal(t, attendance.StatusAbsent, missing.Status)
	assert.Zero(t, missing.PunchCount)
}

func TestDailyRejectsBadDate(t *testing.T) {
	svc := newTestService(&fakeReportRepo{}, nil, nil, "2025-01-10")

	_, err := svc.Daily(context.Background(), "06-01-2025")
	assert.ErrorIs(t, err, report.ErrInvalidDate)
}

func TestDayDetail(t *testing.T) {
	emps := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"E-1": {ID: "E-1", Name: "Employee E-1"},
	}}
	att := &fakeAttendanceRepo{rows: map[string]attendance.DailyAttendance{
		"E-1|2025-01-06": {
			EmployeeID: "E-1",
			Date:       "2025-01-06",
			PunchTimes: "09:00:00,13:00:00,13:30:00,18:05:00",
		},
	}}

	svc := newTestService(&fakeReportRepo{}, emps, att, "2025-01-10")
	got, err := svc.DayDetail(context.Background(), "E-1", "2025-01-06")
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusFullDay, got.Status)
	assert.Equal(t, []string{"09:00:00", "13:00:00", "13:30:00", "18:05:00"}, got.Punches)
	assert.Equal(t, "09:00:00 AM", got.PunchesDisplay[0])
	assert.Equal(t, "06:05:00 PM", got.PunchesDisplay[3])
	assert.Equal(t, float64(545), got.WorkedMinutes)
	assert.Equal(t, float64(30), got.BreakMinutes)
	assert.Equal(t, float64(515), got.WorkingMinutes)
}

func TestDayDetailUnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeReportRepo{}, &fakeEmployeeRepo{}, nil, "2025-01-10")

	_, err := svc.DayDetail(context.Background(), "E-9", "2025-01-06")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
