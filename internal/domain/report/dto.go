package report

// MonthlySummaryRow is one employee's status bucket counts for a month.
// TotalPresent counts a half day as half a present day; off-day statuses do
// not contribute.
type MonthlySummaryRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	FullDay      int     `json:"full_day"`
	HalfDay      int     `json:"half_day"`
	Absent       int     `json:"absent"`
	WeeklyOff    int     `json:"weekly_off"`
	WorkedOff    int     `json:"worked_off"`
	TotalPresent float64 `json:"total_present"`
}

type MonthlySummaryReport struct {
	PeriodMonth int                 `json:"period_month"`
	PeriodYear  int                 `json:"period_year"`
	PeriodStart string              `json:"period_start"`
	PeriodEnd   string              `json:"period_end"`
	GeneratedAt string              `json:"generated_at"`
	Rows        []MonthlySummaryRow `json:"rows"`
}

// DayCell is the full per-day classification kept by the grid report.
type DayCell struct {
	Status        string  `json:"status"`
	FirstIn       string  `json:"first_in,omitempty"`
	LastOut       string  `json:"last_out,omitempty"`
	WorkedMinutes float64 `json:"worked_minutes"`
}

type GridEmployee struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	DailyStatus  map[string]DayCell `json:"daily_status"` // keyed by YYYY-MM-DD
}

type MonthlyGridReport struct {
	PeriodMonth int            `json:"period_month"`
	PeriodYear  int            `json:"period_year"`
	DaysInMonth int            `json:"days_in_month"`
	GeneratedAt string         `json:"generated_at"`
	Employees   []GridEmployee `json:"employees"`
}

// DailyReportRow is one employee's line in the single-date report.
// WorkingMinutes is the first-in/last-out span minus BreakMinutes.
type DailyReportRow struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	FirstIn        string  `json:"first_in,omitempty"`
	LastOut        string  `json:"last_out,omitempty"`
	WorkingMinutes float64 `json:"working_minutes"`
	BreakMinutes   float64 `json:"break_minutes"`
	PunchCount     int     `json:"punch_count"`
	Status         string  `json:"status"`
}

type DailyReport struct {
	Date        string           `json:"date"`
	GeneratedAt string           `json:"generated_at"`
	Rows        []DailyReportRow `json:"rows"`
}

// DayDetail powers the per-employee daily-detail view, with punch times
// rendered in both canonical and 12-hour display form.
type DayDetail struct {
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   string   `json:"employee_name"`
	Date           string   `json:"date"`
	Punches        []string `json:"punches"`
	PunchesDisplay []string `json:"punches_display"`
	Status         string   `json:"status"`
	FirstIn        string   `json:"first_in,omitempty"`
	LastOut        string   `json:"last_out,omitempty"`
	WorkedMinutes  float64  `json:"worked_minutes"`
	BreakMinutes   float64  `json:"break_minutes"`
	WorkingMinutes float64  `json:"working_minutes"`
}
