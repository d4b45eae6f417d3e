package tabular

import (
	"errors"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	content := "Employee ID,Date,Punches\nEMP-001,2024-03-06,\"09:00, 18:00\"\nEMP-002,2024-03-06,09:30\n"
	rows, err := ReadCSV(strings.NewReader(content), 1<<20)
	if err != nil {
		t.Fatalf("ReadCSV returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got, _ := rows[0].Field("employee id"); got != "EMP-001" {
		t.Errorf("employee id = %q, want EMP-001", got)
	}
	if got, _ := rows[0].Field("punches"); got != "09:00, 18:00" {
		t.Errorf("punches = %q, want \"09:00, 18:00\"", got)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""), 1<<20)
	if err != nil {
		t.Fatalf("empty file should not error, got %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("empty file should yield zero rows, got %d", len(rows))
	}

	// Header only, no data rows.
	rows, err = ReadCSV(strings.NewReader("Employee ID,Date,Punches\n"), 1<<20)
	if err != nil {
		t.Fatalf("header-only file should not error, got %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("header-only file should yield zero rows, got %d", len(rows))
	}
}

func TestReadCSV_SizeCeiling(t *testing.T) {
	content := "Employee ID,Date,Punches\n" + strings.Repeat("EMP-001,2024-03-06,09:00\n", 100)
	_, err := ReadCSV(strings.NewReader(content), 64)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("got %v, want ErrFileTooLarge", err)
	}
}

func TestRowField_Aliases(t *testing.T) {
	row := Row{"EMP_ID": "EMP-001", "Punch Date": "2024-03-06", "  Punch   Times ": "09:00"}
	if got, ok := row.Field("emp id"); !ok || got != "EMP-001" {
		t.Errorf("Field(emp id) = (%q, %v)", got, ok)
	}
	if got, ok := row.Field("punch date"); !ok || got != "2024-03-06" {
		t.Errorf("Field(punch date) = (%q, %v)", got, ok)
	}
	if got, ok := row.Field("punch times"); !ok || got != "09:00" {
		t.Errorf("Field(punch times) = (%q, %v)", got, ok)
	}
	if _, ok := row.Field("missing column"); ok {
		t.Errorf("Field(missing column) should not match")
	}
}

func TestNormalizeHeader(t *testing.T) {
	cases := []struct{ input, want string }{
		{"Employee ID", "employee id"},
		{"EMP_ID", "emp id"},
		{"punch-date", "punch date"},
		{"  Punch   Times ", "punch times"},
	}
	for _, c := range cases {
		if got := NormalizeHeader(c.input); got != c.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
