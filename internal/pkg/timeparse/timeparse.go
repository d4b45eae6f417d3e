package timeparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month name abbreviations accepted in DD-MMM-YY / DD-MMM-YYYY dates.
var monthAbbrevs = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// NormalizeDate parses heterogeneous date text into canonical YYYY-MM-DD form.
// Accepted inputs: YYYY-MM-DD, DD-MM-YYYY, DD/MM/YYYY and DD-MMM-YY /
// DD-MMM-YYYY with a case-insensitive 3-letter month name. Two-digit years are
// expanded with a "20" prefix. Returns false when the token count is wrong,
// a numeric component is not numeric, or the result is not a real calendar date.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	sep := "-"
	if strings.Contains(s, "/") {
		sep = "/"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return "", false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var year, month, day int
	var ok bool

	switch {
	case len(parts[0]) == 4:
		// YYYY-MM-DD
		if year, ok = atoi(parts[0]); !ok {
			return "", false
		}
		if month, ok = atoi(parts[1]); !ok {
			return "", false
		}
		if day, ok = atoi(parts[2]); !ok {
			return "", false
		}
	default:
		// DD-MM-YYYY, DD/MM/YYYY or DD-MMM-YY(YY)
		if day, ok = atoi(parts[0]); !ok {
			return "", false
		}
		if m, found := monthAbbrevs[strings.ToLower(parts[1])]; found {
			month = m
		} else if month, ok = atoi(parts[1]); !ok {
			return "", false
		}
		yearStr := parts[2]
		if len(yearStr) == 2 {
			yearStr = "20" + yearStr
		}
		if year, ok = atoi(yearStr); !ok {
			return "", false
		}
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	// Reject dates like 31-02-2024 that time.Date would silently roll over.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// NormalizeTime parses time text with ":" or "." separators in H:MM or H:MM:SS
// form (1-2 digit hour) into zero-padded HH:MM or HH:MM:SS. The seconds
// component is kept only when present in the input. Returns false when the
// token count is wrong or any component is out of range.
func NormalizeTime(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	sep := ":"
	if !strings.Contains(s, ":") && strings.Contains(s, ".") {
		sep = "."
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 && len(parts) != 3 {
		return "", false
	}

	hour, ok := atoi(parts[0])
	if !ok || len(parts[0]) > 2 || hour < 0 || hour > 23 {
		return "", false
	}
	minute, ok := atoi(parts[1])
	if !ok || minute < 0 || minute > 59 {
		return "", false
	}

	if len(parts) == 2 {
		return fmt.Sprintf("%02d:%02d", hour, minute), true
	}

	second, ok := atoi(parts[2])
	if !ok || second < 0 || second > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second), true
}

// Canonical pads a normalized HH:MM time to the HH:MM:SS storage form.
// Times that already carry seconds pass through unchanged.
func Canonical(s string) string {
	if len(s) == 5 {
		return s + ":00"
	}
	return s
}

// TimeToMinutes converts a normalized time to minutes since midnight as a
// real number: seconds contribute fractionally, so "09:00:30" yields 540.5.
// The fractional precision matters for worked-duration totals and must not
// be collapsed to integer minutes.
func TimeToMinutes(s string) (float64, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	hour, ok := atoi(parts[0])
	if !ok {
		return 0, false
	}
	minute, ok := atoi(parts[1])
	if !ok {
		return 0, false
	}
	minutes := float64(hour)*60 + float64(minute)

	if len(parts) == 3 {
		second, ok := atoi(parts[2])
		if !ok {
			return 0, false
		}
		minutes += float64(second) / 60
	}
	return minutes, true
}

// To12Hour renders a normalized time as a 12-hour display string, always with
// an AM/PM suffix. Seconds are shown only when present in the input.
// Invalid input renders as the empty string.
func To12Hour(s string) string {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ""
	}

	hour, ok := atoi(parts[0])
	if !ok || hour < 0 || hour > 23 {
		return ""
	}
	minute, ok := atoi(parts[1])
	if !ok || minute < 0 || minute > 59 {
		return ""
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}

	if len(parts) == 3 {
		second, ok := atoi(parts[2])
		if !ok || second < 0 || second > 59 {
			return ""
		}
		return fmt.Sprintf("%02d:%02d:%02d %s", display, minute, second, suffix)
	}
	return fmt.Sprintf("%02d:%02d %s", display, minute, suffix)
}

func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
