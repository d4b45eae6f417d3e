package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/attendance"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/punch"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/upload"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/database"
	"github.com/geraldx2005/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type UploadServiceImpl struct {
	db *database.DB
	upload.UploadRepository
	punch.PunchRepository
	attendance.AttendanceRepository
}

func NewUploadService(
	db *database.DB,
	uploadRepository upload.UploadRepository,
	punchRepository punch.PunchRepository,
	attendanceRepository attendance.AttendanceRepository,
) upload.UploadService {
	return &UploadServiceImpl{
		db:                   db,
		UploadRepository:     uploadRepository,
		PunchRepository:      punchRepository,
		AttendanceRepository: attendanceRepository,
	}
}

// List implements upload.UploadService.
func (s *UploadServiceImpl) List(ctx context.Context) ([]upload.UploadResponse, error) {
	uploads, err := s.UploadRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}

	responses := make([]upload.UploadResponse, 0, len(uploads))
	for _, up := range uploads {
		responses = append(responses, toResponse(up))
	}
	return responses, nil
}

// Get implements upload.UploadService.
func (s *UploadServiceImpl) Get(ctx context.Context, id string) (upload.UploadResponse, error) {
	up, err := s.UploadRepository.GetByID(ctx, id)
	if err != nil {
		return upload.UploadResponse{}, err
	}
	return toResponse(up), nil
}

// Delete implements upload.UploadService. Affected days whose punch list
// empties out lose their cache row entirely; the rest are rebuilt from the
// punches that survive. Cache rows that reference the upload without any
// surviving raw punches (rows predating the punch log) only get the id
// stripped from their upload set.
func (s *UploadServiceImpl) Delete(ctx context.Context, id string) (upload.DeleteUploadResponse, error) {
	var removed int64

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.UploadRepository.GetByID(txCtx, id); err != nil {
			return err
		}

		days, n, err := s.PunchRepository.DeleteByUpload(txCtx, id)
		if err != nil {
			return err
		}
		removed = n

		for _, day := range days {
			if err := s.rebuildOrDeleteDay(txCtx, day.EmployeeID, day.Date); err != nil {
				return err
			}
		}

		if err := s.AttendanceRepository.StripUploadID(txCtx, id); err != nil {
			return err
		}

		return s.UploadRepository.Delete(txCtx, id)
	})
	if err != nil {
		return upload.DeleteUploadResponse{}, err
	}

	return upload.DeleteUploadResponse{ID: id, PunchesRemoved: removed}, nil
}

func (s *UploadServiceImpl) rebuildOrDeleteDay(ctx context.Context, employeeID, date string) error {
	times, err := s.PunchRepository.ListTimesForDay(ctx, employeeID, date)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return s.AttendanceRepository.Delete(ctx, employeeID, date)
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

func toResponse(up upload.Upload) upload.UploadResponse {
	return upload.UploadResponse{
		ID:              up.ID,
		Filename:        up.Filename,
		RecordsInserted: up.RecordsInserted,
		RecordsSkipped:  up.RecordsSkipped,
		RecordsEmpty:    up.RecordsEmpty,
		UploadedAt:      up.UploadedAt.Format(time.RFC3339),
	}
}
