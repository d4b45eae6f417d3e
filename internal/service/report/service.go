package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/attendance"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/employee"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/report"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/timeparse"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	report.ReportRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	now func() time.Time
}

// NewReportService builds the report service. now is injected so the
// today-anchored branches (Pending days, month clamping) are testable;
// production wiring passes time.Now.
func NewReportService(
	reportRepository report.ReportRepository,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	now func() time.Time,
) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository:     reportRepository,
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
		now:                  now,
	}
}

// MonthlySummary implements report.ReportService.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, year, month int) (report.MonthlySummaryReport, error) {
	if !validator.IsValidMonth(year, month) {
		return report.MonthlySummaryReport{}, report.ErrInvalidPeriod
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	today := dateOnly(s.now())

	employees, err := s.ReportRepository.ListEmployees(ctx)
	if err != nil {
		return report.MonthlySummaryReport{}, fmt.Errorf("failed to build monthly summary: %w", err)
	}

	cache, err := s.punchCache(ctx, first.Format(time.DateOnly), last.Format(time.DateOnly))
	if err != nil {
		return report.MonthlySummaryReport{}, fmt.Errorf("failed to build monthly summary: %w", err)
	}

	end := last
	if today.Before(end) {
		end = today
	}

	rows := make([]report.MonthlySummaryRow, 0, len(employees))
	for _, emp := range employees {
		row := report.MonthlySummaryRow{EmployeeID: emp.ID, EmployeeName: emp.Name}
		for d := first; !d.After(end); d = d.AddDate(0, 0, 1) {
			ds := attendance.ClassifyDay(cache[emp.ID][d.Format(time.DateOnly)], d, today)
			switch ds.Status {
			case attendance.StatusFullDay:
				row.FullDay++
			case attendance.StatusHalfDay:
				row.HalfDay++
			case attendance.StatusAbsent:
				row.Absent++
			case attendance.StatusWeeklyOff:
				row.WeeklyOff++
			case attendance.StatusWorkedOff:
				row.WorkedOff++
			}
		}
		row.TotalPresent = float64(row.FullDay) + 0.5*float64(row.HalfDay)
		rows = append(rows, row)
	}

	return report.MonthlySummaryReport{
		PeriodMonth: month,
		PeriodYear:  year,
		PeriodStart: first.Format(time.DateOnly),
		PeriodEnd:   last.Format(time.DateOnly),
		GeneratedAt: s.now().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

// MonthlyGrid implements report.ReportService.
func (s *ReportServiceImpl) MonthlyGrid(ctx context.Context, year, month int) (report.MonthlyGridReport, error) {
	if !validator.IsValidMonth(year, month) {
		return report.MonthlyGridReport{}, report.ErrInvalidPeriod
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	today := dateOnly(s.now())

	employees, err := s.ReportRepository.ListEmployees(ctx)
	if err != nil {
		return report.MonthlyGridReport{}, fmt.Errorf("failed to build monthly grid: %w", err)
	}

	cache, err := s.punchCache(ctx, first.Format(time.DateOnly), last.Format(time.DateOnly))
	if err != nil {
		return report.MonthlyGridReport{}, fmt.Errorf("failed to build monthly grid: %w", err)
	}

	end := last
	if today.Before(end) {
		end = today
	}

	grid := make([]report.GridEmployee, 0, len(employees))
	for _, emp := range employees {
		ge := report.GridEmployee{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			DailyStatus:  make(map[string]report.DayCell),
		}
		for d := first; !d.After(end); d = d.AddDate(0, 0, 1) {
			key := d.Format(time.DateOnly)
			ds := attendance.ClassifyDay(cache[emp.ID][key], d, today)
			ge.DailyStatus[key] = report.DayCell{
				Status:        ds.Status,
				FirstIn:       ds.FirstIn,
				LastOut:       ds.LastOut,
				WorkedMinutes: ds.WorkedMinutes,
			}
		}
		grid = append(grid, ge)
	}

	return report.MonthlyGridReport{
		PeriodMonth: month,
		PeriodYear:  year,
		DaysInMonth: last.Day(),
		GeneratedAt: s.now().Format(time.RFC3339),
		Employees:   grid,
	}, nil
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, date string) (report.DailyReport, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return report.DailyReport{}, report.ErrInvalidDate
	}

	employees, err := s.ReportRepository.ListEmployees(ctx)
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to build daily report: %w", err)
	}

	punches, err := s.ReportRepository.PunchesForDate(ctx, date)
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to build daily report: %w", err)
	}
	byEmployee := make(map[string][]string, len(punches))
	for _, dp := range punches {
		byEmployee[dp.EmployeeID] = splitTimes(dp.PunchTimes)
	}

	today := dateOnly(s.now())

	rows := make([]report.DailyReportRow, 0, len(employees))
	for _, emp := range employees {
		times := byEmployee[emp.ID]
		ds := attendance.ClassifyDay(times, day, today)
		breaks := attendance.BreakMinutes(times)
		rows = append(rows, report.DailyReportRow{
			EmployeeID:     emp.ID,
			EmployeeName:   emp.Name,
			FirstIn:        ds.FirstIn,
			LastOut:        ds.LastOut,
			WorkingMinutes: ds.WorkedMinutes - breaks,
			BreakMinutes:   breaks,
			PunchCount:     len(times),
			Status:         ds.Status,
		})
	}

	return report.DailyReport{
		Date:        date,
		GeneratedAt: s.now().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

// DayDetail implements report.ReportService.
func (s *ReportServiceImpl) DayDetail(ctx context.Context, employeeID, date string) (report.DayDetail, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return report.DayDetail{}, report.ErrInvalidDate
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return report.DayDetail{}, err
	}

	var times []string
	row, err := s.AttendanceRepository.Get(ctx, employeeID, date)
	if err != nil {
		return report.DayDetail{}, fmt.Errorf("failed to build day detail: %w", err)
	}
	if row != nil {
		times = row.Times()
	}

	today := dateOnly(s.now())
	ds := attendance.ClassifyDay(times, day, today)
	breaks := attendance.BreakMinutes(times)

	display := make([]string, 0, len(times))
	for _, t := range times {
		display = append(display, timeparse.To12Hour(t))
	}

	return report.DayDetail{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.Name,
		Date:           date,
		Punches:        times,
		PunchesDisplay: display,
		Status:         ds.Status,
		FirstIn:        ds.FirstIn,
		LastOut:        ds.LastOut,
		WorkedMinutes:  ds.WorkedMinutes,
		BreakMinutes:   breaks,
		WorkingMinutes: ds.WorkedMinutes - breaks,
	}, nil
}

// punchCache loads the daily cache for a range, keyed employee → date.
func (s *ReportServiceImpl) punchCache(ctx context.Context, from, to string) (map[string]map[string][]string, error) {
	rows, err := s.ReportRepository.PunchesForRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	cache := make(map[string]map[string][]string)
	for _, dp := range rows {
		days := cache[dp.EmployeeID]
		if days == nil {
			days = make(map[string][]string)
			cache[dp.EmployeeID] = days
		}
		days[dp.Date] = splitTimes(dp.PunchTimes)
	}
	return cache, nil
}

func splitTimes(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
