package punch

import "context"

// PunchRepository defines data access methods for raw punches. All writes
// are expected inside the batch transaction; partial application of punches
// without the matching cache rebuild must never be committed.
type PunchRepository interface {
	// Append inserts a punch. Returns false without error when the
	// (employee, date, time) key already exists.
	Append(ctx context.Context, p Punch) (bool, error)

	// ListTimesForDay returns the sorted, deduplicated punch times stored
	// for one employee-day.
	ListTimesForDay(ctx context.Context, employeeID, date string) ([]string, error)

	// ListUploadIDsForDay returns the distinct upload ids contributing at
	// least one punch to the employee-day.
	ListUploadIDsForDay(ctx context.Context, employeeID, date string) ([]string, error)

	// DeleteByUpload removes every punch tagged with the upload and returns
	// the distinct affected employee-days plus the number of rows removed.
	DeleteByUpload(ctx context.Context, uploadID string) ([]DayKey, int64, error)

	// ListAllDayKeys returns every employee-day that has at least one raw
	// punch. Used by the cache audit sweep.
	ListAllDayKeys(ctx context.Context) ([]DayKey, error)
}
