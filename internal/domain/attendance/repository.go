package attendance

import "context"

// AttendanceRepository defines data access for the DailyAttendance cache.
// Mutations are expected to run inside the same transaction as the raw punch
// writes that made them necessary.
type AttendanceRepository interface {
	// Upsert writes or replaces the cache row for (EmployeeID, Date).
	Upsert(ctx context.Context, row DailyAttendance) error

	// Get retrieves a cache row. Returns nil when the day has no row.
	Get(ctx context.Context, employeeID, date string) (*DailyAttendance, error)

	// Delete removes a cache row entirely (the day has no punches left).
	Delete(ctx context.Context, employeeID, date string) error

	// StripUploadID removes an upload id from every row's contributing set.
	// Fallback for pre-migration rows whose punches carry no upload tag.
	StripUploadID(ctx context.Context, uploadID string) error
}
