package ingest

import (
	"testing"

	"github.com/geraldx2005/attendance-backend-go/internal/pkg/tabular"
	"github.com/stretchr/testify/assert"
)

func TestSplitPunchCell(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{"comma", "09:00,18:00", []string{"09:00", "18:00"}},
		{"comma with space", "09:00, 18:00", []string{"09:00", "18:00"}},
		{"semicolon", "09:00;18:00", []string{"09:00", "18:00"}},
		{"pipe", "09:00|18:00", []string{"09:00", "18:00"}},
		{"newline", "09:00\n18:00", []string{"09:00", "18:00"}},
		{"plain space", "09:00 18:00", []string{"09:00", "18:00"}},
		{"mixed runs", "09:00,; 18:00", []string{"09:00", "18:00"}},
		{"empty cell", "", nil},
		{"only delimiters", " ,; |", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitPunchCell(tt.cell))
		})
	}
}

func TestNormalizePunchCell(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{"canonicalizes", "9:00 18:30", []string{"09:00:00", "18:30:00"}},
		{"keeps seconds", "09:00:30,18:00", []string{"09:00:30", "18:00:00"}},
		{"dot separator", "09.15 18.45", []string{"09:15:00", "18:45:00"}},
		{"drops garbage tokens", "09:00 lunch 18:00", []string{"09:00:00", "18:00:00"}},
		{"collapses duplicates", "09:00,9:00,09:00:00", []string{"09:00:00"}},
		{"all garbage", "n/a --", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePunchCell(tt.cell))
		})
	}
}

func TestParseRow(t *testing.T) {
	t.Run("vendor headers", func(t *testing.T) {
		row := tabular.Row{
			"Emp_ID":      "E-101",
			"Punch Date":  "05/01/2025",
			"Punch Times": "09:00 13:00 13:30 18:05",
		}

		parsed, ok := parseRow(row)
		assert.True(t, ok)
		assert.Equal(t, "E-101", parsed.EmployeeID)
		assert.Equal(t, "2025-01-05", parsed.Date)
		assert.Equal(t, []string{"09:00:00", "13:00:00", "13:30:00", "18:05:00"}, parsed.Times)
	})

	t.Run("missing employee id", func(t *testing.T) {
		row := tabular.Row{"Date": "2025-01-05", "Punches": "09:00"}

		_, ok := parseRow(row)
		assert.False(t, ok)
	})

	t.Run("malformed date", func(t *testing.T) {
		row := tabular.Row{"Employee ID": "E-101", "Date": "31/02/2025", "Punches": "09:00"}

		_, ok := parseRow(row)
		assert.False(t, ok)
	})

	t.Run("invalid employee id", func(t *testing.T) {
		row := tabular.Row{"Employee ID": "bad id!", "Date": "2025-01-05", "Punches": "09:00"}

		_, ok := parseRow(row)
		assert.False(t, ok)
	})

	t.Run("valid row with no punches", func(t *testing.T) {
		row := tabular.Row{"Employee ID": "E-101", "Date": "2025-01-05", "Punches": ""}

		parsed, ok := parseRow(row)
		assert.True(t, ok)
		assert.Empty(t, parsed.Times)
	})
}

func TestProgressBandsAreMonotonic(t *testing.T) {
	last := 2 // reading phase
	for i := 1; i <= 50; i++ {
		p := parsePercent(i, 50)
		assert.GreaterOrEqual(t, p, last)
		last = p
	}
	assert.Equal(t, 65, last)
	for i := 1; i <= 7; i++ {
		p := insertPercent(i, 7)
		assert.GreaterOrEqual(t, p, last)
		last = p
	}
	assert.Equal(t, 95, last)
}
