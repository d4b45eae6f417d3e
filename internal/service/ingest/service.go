package ingest

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/attendance"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/employee"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/ingest"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/punch"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/upload"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/database"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/tabular"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/timeparse"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/validator"
	"github.com/geraldx2005/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// punchSplitter tokenizes a punch cell. Exports vary wildly in how they pack
// multiple punches into one cell, so every common delimiter splits.
var punchSplitter = regexp.MustCompile(`[,;\n|\s]+`)

// Column aliases, pre-normalized for tabular.Row.Field. Real exports disagree
// on header names; these cover the biometric vendors and hand-built sheets
// seen so far.
var (
	employeeIDAliases = []string{
		"employee id", "employeeid", "emp id", "empid",
		"employee code", "emp code", "badge id", "employee", "id",
	}
	dateAliases = []string{
		"date", "punch date", "attendance date", "att date", "log date",
	}
	punchAliases = []string{
		"punches", "punch times", "punch time", "punch records",
		"times", "time", "in out", "log time",
	}
)

type IngestServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	punch.PunchRepository
	upload.UploadRepository
	attendance.AttendanceRepository
	maxRows int
}

func NewIngestService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	punchRepository punch.PunchRepository,
	uploadRepository upload.UploadRepository,
	attendanceRepository attendance.AttendanceRepository,
	maxRows int,
) ingest.IngestService {
	return &IngestServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepository,
		PunchRepository:      punchRepository,
		UploadRepository:     uploadRepository,
		AttendanceRepository: attendanceRepository,
		maxRows:              maxRows,
	}
}

// Ingest implements ingest.IngestService. The whole batch runs inside one
// transaction: either every surviving punch and every cache rebuild lands, or
// none of it does. Malformed rows are counted, never fatal.
func (s *IngestServiceImpl) Ingest(ctx context.Context, req ingest.IngestRequest) (ingest.IngestSummary, error) {
	emit := func(p ingest.Progress) {
		if req.Progress != nil {
			req.Progress(p)
		}
	}

	source := req.Source
	if source != punch.SourceBiometric {
		source = punch.SourceManualUpload
	}

	total := len(req.Rows)
	if s.maxRows > 0 && total > s.maxRows {
		emit(ingest.Progress{
			Phase:   ingest.PhaseError,
			Percent: 100,
			Message: fmt.Sprintf("%s has %d rows, limit is %d", req.Filename, total, s.maxRows),
			Total:   total,
		})
		return ingest.IngestSummary{}, ingest.ErrTooManyRows
	}

	summary := ingest.IngestSummary{
		UploadID: uuid.New().String(),
		Filename: req.Filename,
	}

	emit(ingest.Progress{
		Phase:   ingest.PhaseReading,
		Percent: 2,
		Message: fmt.Sprintf("reading %s", req.Filename),
		Total:   total,
	})

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		err := s.UploadRepository.Create(txCtx, upload.Upload{
			ID:         summary.UploadID,
			Filename:   req.Filename,
			UploadedAt: time.Now(),
		})
		if err != nil {
			return err
		}

		provisioned := make(map[string]struct{})
		touched := make(map[punch.DayKey]struct{})
		var days []punch.DayKey

		for i, row := range req.Rows {
			emit(ingest.Progress{
				Phase:   ingest.PhaseParsing,
				Percent: parsePercent(i+1, total),
				Message: fmt.Sprintf("processing row %d of %d", i+1, total),
				Current: i + 1,
				Total:   total,
			})

			parsed, ok := parseRow(row)
			if !ok {
				summary.RecordsSkipped++
				continue
			}
			if len(parsed.Times) == 0 {
				summary.RecordsEmpty++
				continue
			}

			if _, seen := provisioned[parsed.EmployeeID]; !seen {
				name := employee.PlaceholderName(parsed.EmployeeID)
				if err := s.EmployeeRepository.EnsureExists(txCtx, parsed.EmployeeID, name); err != nil {
					return err
				}
				provisioned[parsed.EmployeeID] = struct{}{}
			}

			insertedAny := false
			for _, t := range parsed.Times {
				inserted, err := s.PunchRepository.Append(txCtx, punch.Punch{
					EmployeeID: parsed.EmployeeID,
					Date:       parsed.Date,
					Time:       t,
					Source:     source,
					UploadID:   &summary.UploadID,
				})
				if err != nil {
					return err
				}
				insertedAny = insertedAny || inserted
			}

			if insertedAny {
				summary.RecordsInserted++
				key := punch.DayKey{EmployeeID: parsed.EmployeeID, Date: parsed.Date}
				if _, ok := touched[key]; !ok {
					touched[key] = struct{}{}
					days = append(days, key)
				}
			} else {
				// every punch already present, likely a re-upload
				summary.RecordsSkipped++
			}
		}

		for i, key := range days {
			emit(ingest.Progress{
				Phase:   ingest.PhaseInserting,
				Percent: insertPercent(i+1, len(days)),
				Message: fmt.Sprintf("rebuilding day %d of %d", i+1, len(days)),
				Current: i + 1,
				Total:   len(days),
			})
			if err := s.rebuildDay(txCtx, key.EmployeeID, key.Date); err != nil {
				return err
			}
		}
		summary.DaysTouched = len(days)

		return s.UploadRepository.UpdateCounters(txCtx, upload.Upload{
			ID:              summary.UploadID,
			RecordsInserted: summary.RecordsInserted,
			RecordsSkipped:  summary.RecordsSkipped,
			RecordsEmpty:    summary.RecordsEmpty,
		})
	})
	if err != nil {
		emit(ingest.Progress{
			Phase:   ingest.PhaseError,
			Percent: 100,
			Message: err.Error(),
			Total:   total,
		})
		return ingest.IngestSummary{}, fmt.Errorf("failed to ingest %s: %w", req.Filename, err)
	}

	emit(ingest.Progress{
		Phase:   ingest.PhaseComplete,
		Percent: 100,
		Message: fmt.Sprintf("ingested %s", req.Filename),
		Current: total,
		Total:   total,
	})

	return summary, nil
}

// rebuildDay re-derives one DailyAttendance row from every stored punch for
// the day, not just the ones this batch added.
func (s *IngestServiceImpl) rebuildDay(ctx context.Context, employeeID, date string) error {
	times, err := s.PunchRepository.ListTimesForDay(ctx, employeeID, date)
	if err != nil {
		return err
	}
	uploadIDs, err := s.PunchRepository.ListUploadIDsForDay(ctx, employeeID, date)
	if err != nil {
		return err
	}

	return s.AttendanceRepository.Upsert(ctx, attendance.DailyAttendance{
		EmployeeID: employeeID,
		Date:       date,
		PunchTimes: attendance.JoinTimes(times),
		UploadIDs:  uploadIDs,
	})
}

// parsedRow is one row after validation and normalization.
type parsedRow struct {
	EmployeeID string
	Date       string
	Times      []string
}

// parseRow extracts and normalizes one tabular row. ok is false when the
// employee id or date is missing or malformed; a valid row with no surviving
// punch tokens comes back ok with empty Times.
func parseRow(row tabular.Row) (parsedRow, bool) {
	id, ok := row.Field(employeeIDAliases...)
	if !ok || !validator.IsValidEmployeeID(id) {
		return parsedRow{}, false
	}

	rawDate, ok := row.Field(dateAliases...)
	if !ok {
		return parsedRow{}, false
	}
	date, ok := timeparse.NormalizeDate(rawDate)
	if !ok {
		return parsedRow{}, false
	}

	cell, _ := row.Field(punchAliases...)
	return parsedRow{
		EmployeeID: id,
		Date:       date,
		Times:      normalizePunchCell(cell),
	}, true
}

// splitPunchCell tokenizes a raw punch cell on commas, semicolons, pipes,
// newlines and whitespace, dropping empty tokens.
func splitPunchCell(cell string) []string {
	var tokens []string
	for _, t := range punchSplitter.Split(cell, -1) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// normalizePunchCell tokenizes a punch cell and canonicalizes each surviving
// token to HH:MM:SS. Unparseable tokens are dropped, duplicates collapse.
func normalizePunchCell(cell string) []string {
	seen := make(map[string]struct{})
	var times []string
	for _, token := range splitPunchCell(cell) {
		normalized, ok := timeparse.NormalizeTime(token)
		if !ok {
			continue
		}
		canonical := timeparse.Canonical(normalized)
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		times = append(times, canonical)
	}
	return times
}

// parsePercent maps row progress onto the 5..65 band.
func parsePercent(current, total int) int {
	if total == 0 {
		return 65
	}
	return 5 + (60*current)/total
}

// insertPercent maps cache-rebuild progress onto the 70..95 band.
func insertPercent(current, total int) int {
	if total == 0 {
		return 95
	}
	return 70 + (25*current)/total
}
