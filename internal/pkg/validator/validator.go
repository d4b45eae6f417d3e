package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Employee id: alphanumeric plus hyphen, at most 20 characters.
var employeeIDRegex = regexp.MustCompile(`^[A-Za-z0-9-]{1,20}$`)

func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}

// Display name: letters, digits, spaces and . , ' - up to 60 characters.
var employeeNameRegex = regexp.MustCompile(`^[A-Za-z0-9 .,'-]{1,60}$`)

func IsValidEmployeeName(name string) bool {
	return employeeNameRegex.MatchString(name)
}

// Clock time for UI metadata fields: 24-hour HH:MM.
var clockTimeRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

func IsValidClockTime(s string) bool {
	return clockTimeRegex.MatchString(s)
}

// Date validation, canonical YYYY-MM-DD only.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidMonth checks a report period.
func IsValidMonth(year, month int) bool {
	return month >= 1 && month <= 12 && year >= 2000 && year <= 2100
}
