package attendance

import (
	"time"

	"github.com/geraldx2005/attendance-backend-go/internal/pkg/timeparse"
)

// Attendance statuses derived by the day classifier.
const (
	StatusFullDay   = "FullDay"
	StatusHalfDay   = "HalfDay"
	StatusAbsent    = "Absent"
	StatusWeeklyOff = "WeeklyOff"
	StatusWorkedOff = "WorkedOff"
	StatusPending   = "Pending"
)

// Worked-minute thresholds. These are fixed constants: an employee's custom
// in-time is UI metadata and never alters classification.
const (
	FullDayMinutes   = 480
	HalfDayMinutes   = 300
	WorkedOffMinutes = 300
)

// DayStatus is the classifier output for one employee-day.
type DayStatus struct {
	Status        string
	FirstIn       string // empty when the day has no punches
	LastOut       string
	WorkedMinutes float64
}

// ClassifyDay derives the attendance status for one calendar day from its
// punch times. times must be canonical HH:MM(:SS) strings; lexicographic
// min/max over them is chronological. today anchors the Pending decision for
// future dates.
//
// Only first-in and last-out matter for the status: intermediate punches are
// break boundaries, reported separately via BreakMinutes, and never change
// the classification.
func ClassifyDay(times []string, date, today time.Time) DayStatus {
	sunday := date.Weekday() == time.Sunday

	if len(times) == 0 {
		return DayStatus{Status: emptyDayStatus(date, today, sunday)}
	}

	firstIn, lastOut := times[0], times[0]
	for _, t := range times[1:] {
		if t < firstIn {
			firstIn = t
		}
		if t > lastOut {
			lastOut = t
		}
	}

	inMin, okIn := timeparse.TimeToMinutes(firstIn)
	outMin, okOut := timeparse.TimeToMinutes(lastOut)
	worked := outMin - inMin
	if !okIn || !okOut || worked <= 0 {
		// Single punch or out-before-in data defect: zero worked minutes,
		// classified on the weekday basis alone.
		status := StatusAbsent
		if sunday {
			status = StatusWeeklyOff
		}
		return DayStatus{Status: status, FirstIn: firstIn, LastOut: lastOut}
	}

	var status string
	switch {
	case sunday && worked >= WorkedOffMinutes:
		status = StatusWorkedOff
	case sunday:
		status = StatusWeeklyOff
	case worked >= FullDayMinutes:
		status = StatusFullDay
	case worked >= HalfDayMinutes:
		status = StatusHalfDay
	default:
		status = StatusAbsent
	}

	return DayStatus{
		Status:        status,
		FirstIn:       firstIn,
		LastOut:       lastOut,
		WorkedMinutes: worked,
	}
}

func emptyDayStatus(date, today time.Time, sunday bool) string {
	if sunday {
		return StatusWeeklyOff
	}
	if dateAfter(date, today) {
		return StatusPending
	}
	return StatusAbsent
}

// dateAfter compares calendar dates, ignoring the time of day.
func dateAfter(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}

// BreakMinutes sums the positive gaps between punch pairs at indices (1,2),
// (3,4), ... treating them as OUT/IN break boundaries. Punches are assumed to
// strictly alternate IN/OUT; an odd count or doubled IN pairs the documented
// indices regardless, which is the established behavior for this figure.
func BreakMinutes(times []string) float64 {
	var total float64
	for i := 1; i+1 < len(times); i += 2 {
		out, okOut := timeparse.TimeToMinutes(times[i])
		in, okIn := timeparse.TimeToMinutes(times[i+1])
		if !okOut || !okIn {
			continue
		}
		if gap := in - out; gap > 0 {
			total += gap
		}
	}
	return total
}
