package report

import "context"

// ReportService derives attendance reports by replaying the day classifier
// over a date range. The Sunday-vs-weekday branching means none of these are
// expressible as a plain SQL aggregate.
type ReportService interface {
	// MonthlySummary buckets every employee's days for the month. Months
	// wholly in the future yield all-zero rows, not an error.
	MonthlySummary(ctx context.Context, year, month int) (MonthlySummaryReport, error)

	// MonthlyGrid keeps the full per-day DayStatus for calendar-grid and
	// detailed-export views.
	MonthlyGrid(ctx context.Context, year, month int) (MonthlyGridReport, error)

	// Daily reports every employee's derived figures for one date.
	Daily(ctx context.Context, date string) (DailyReport, error)

	// DayDetail is the single employee-day drill-down.
	DayDetail(ctx context.Context, employeeID, date string) (DayDetail, error)
}
