package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/attendance"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/report"
	"github.com/geraldx2005/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

type ReportHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	MonthlyGrid(w http.ResponseWriter, r *http.Request)
	ExportMonthlyGrid(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
	DayDetail(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func periodParams(r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}

// MonthlySummary implements ReportHandler
func (h *reportHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(r)
	if !ok {
		response.HandleError(w, report.ErrInvalidPeriod)
		return
	}

	summary, err := h.reportService.MonthlySummary(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// MonthlyGrid implements ReportHandler
func (h *reportHandlerImpl) MonthlyGrid(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(r)
	if !ok {
		response.HandleError(w, report.ErrInvalidPeriod)
		return
	}

	grid, err := h.reportService.MonthlyGrid(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, grid)
}

// statusCodes are the short forms used in spreadsheet cells.
var statusCodes = map[string]string{
	attendance.StatusFullDay:   "F",
	attendance.StatusHalfDay:   "H",
	attendance.StatusAbsent:    "A",
	attendance.StatusWeeklyOff: "O",
	attendance.StatusWorkedOff: "W",
	attendance.StatusPending:   "",
}

// ExportMonthlyGrid implements ReportHandler - streams the month grid as a
// spreadsheet download.
func (h *reportHandlerImpl) ExportMonthlyGrid(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(r)
	if !ok {
		response.HandleError(w, report.ErrInvalidPeriod)
		return
	}

	grid, err := h.reportService.MonthlyGrid(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	_ = f.SetCellValue(sheet, "A1", "Employee ID")
	_ = f.SetCellValue(sheet, "B1", "Name")
	for day := 1; day <= grid.DaysInMonth; day++ {
		cell, _ := excelize.CoordinatesToCellName(day+2, 1)
		_ = f.SetCellValue(sheet, cell, day)
	}

	for i, emp := range grid.Employees {
		rowNum := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		_ = f.SetCellValue(sheet, cell, emp.EmployeeID)
		cell, _ = excelize.CoordinatesToCellName(2, rowNum)
		_ = f.SetCellValue(sheet, cell, emp.EmployeeName)

		for day := 1; day <= grid.DaysInMonth; day++ {
			date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			dayCell, ok := emp.DailyStatus[date]
			if !ok {
				continue // beyond today
			}
			cell, _ = excelize.CoordinatesToCellName(day+2, rowNum)
			_ = f.SetCellValue(sheet, cell, statusCodes[dayCell.Status])
		}
	}

	filename := fmt.Sprintf("attendance-%04d-%02d.xlsx", year, month)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(w); err != nil {
		// headers are already out; nothing useful left to send
		return
	}
}

// Daily implements ReportHandler
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	daily, err := h.reportService.Daily(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, daily)
}

// DayDetail implements ReportHandler
func (h *reportHandlerImpl) DayDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.reportService.DayDetail(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, detail)
}
