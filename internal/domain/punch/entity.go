package punch

// Punch sources.
const (
	SourceBiometric    = "biometric"
	SourceManualUpload = "manual-upload"
)

// Punch is a single raw clock event. Rows are immutable once written and
// unique on (EmployeeID, Date, Time); a repeat punch at the identical second
// is dropped, not inserted twice. Punches are only ever deleted as a cascade
// of deleting their owning upload.
type Punch struct {
	EmployeeID string
	Date       string // canonical YYYY-MM-DD
	Time       string // canonical HH:MM:SS
	Source     string
	UploadID   *string // nil for pre-migration rows
}

// DayKey identifies one employee-day touched by a batch.
type DayKey struct {
	EmployeeID string
	Date       string
}
