package attendance

import (
	"strings"
	"time"
)

// DailyAttendance is the denormalized per-employee-per-day punch cache.
// It is a materialized view over the raw punches table: PunchTimes always
// holds the sorted, deduplicated set of punch times for the day as of the
// last rebuild, and rebuilds happen inside the same transaction as the raw
// punch writes so readers never observe a stale row.
type DailyAttendance struct {
	EmployeeID string
	Date       string // canonical YYYY-MM-DD
	PunchTimes string // comma-delimited canonical HH:MM:SS, chronological
	UploadIDs  []string
	UpdatedAt  time.Time
}

// Times returns the punch list as a slice, preserving stored order.
func (d DailyAttendance) Times() []string {
	if d.PunchTimes == "" {
		return nil
	}
	return strings.Split(d.PunchTimes, ",")
}

// JoinTimes renders a punch list into the stored comma-delimited form.
func JoinTimes(times []string) string {
	return strings.Join(times, ",")
}
