package tabular

import (
	"errors"
	"strings"
)

// Row is one parsed tabular record: column name → raw string value.
// Producers keep the original header text; consumers look fields up through
// Field, which matches on a normalized form of the header.
type Row map[string]string

var (
	ErrFileTooLarge = errors.New("file exceeds the size ceiling")
)

// Field returns the first non-empty value whose normalized column name
// matches one of the aliases. Aliases must be given pre-normalized
// (lowercase, single spaces).
func (r Row) Field(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		for key, value := range r {
			if NormalizeHeader(key) == alias && strings.TrimSpace(value) != "" {
				return strings.TrimSpace(value), true
			}
		}
	}
	return "", false
}

// NormalizeHeader folds a column header for alias matching: lowercase, with
// underscores/hyphens as spaces and runs of whitespace collapsed.
func NormalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}
