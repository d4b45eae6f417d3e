package employee

import "time"

// Employee is keyed by the stable external identifier punched into the
// biometric device exports (alphanumeric plus hyphen, at most 20 chars).
// Rows are auto-provisioned on the first punch referencing an unknown id.
type Employee struct {
	ID            string
	Name          string
	DefaultInTime *string // expected shift start, UI metadata only
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PlaceholderName is the display name given to an auto-provisioned employee
// until someone renames it.
func PlaceholderName(id string) string {
	return "Employee " + id
}
