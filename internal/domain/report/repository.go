package report

import "context"

// EmployeeRef is the slim employee projection reports iterate over.
type EmployeeRef struct {
	ID   string
	Name string
}

// DayPunches is one DailyAttendance cache row projected for reporting.
type DayPunches struct {
	EmployeeID string
	Date       string
	PunchTimes string
}

// ReportRepository reads the employee list and the daily punch cache.
// Reports never touch raw punches; the cache is guaranteed current.
type ReportRepository interface {
	ListEmployees(ctx context.Context) ([]EmployeeRef, error)
	PunchesForRange(ctx context.Context, from, to string) ([]DayPunches, error)
	PunchesForDate(ctx context.Context, date string) ([]DayPunches, error)
}
