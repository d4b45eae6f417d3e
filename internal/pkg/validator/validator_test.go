package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmployeeID(t *testing.T) {
	valid := []string{"EMP-001", "A1", "12345", "a-b-c-1", "X"}
	invalid := []string{"", "EMP 001", "emp_001", "ID@7", "123456789012345678901", "EMP.01"}
	for _, id := range valid {
		if !IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = true, want false", id)
		}
	}
}

func TestIsValidEmployeeName(t *testing.T) {
	valid := []string{"John Doe", "O'Brien", "A. Kumar", "Mary-Jane", "Employee EMP-001"}
	invalid := []string{"", "Name@Work", "<script>", "Tab\tName"}
	for _, name := range valid {
		if !IsValidEmployeeName(name) {
			t.Errorf("IsValidEmployeeName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if IsValidEmployeeName(name) {
			t.Errorf("IsValidEmployeeName(%q) = true, want false", name)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"09:00", "9:00", "23:59", "00:00"}
	invalid := []string{"24:00", "12:60", "9", "09:00:00", ""}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if !IsValidMonth(2024, 3) {
		t.Errorf("IsValidMonth(2024, 3) = false, want true")
	}
	for _, c := range []struct{ year, month int }{{2024, 0}, {2024, 13}, {1900, 5}, {3000, 5}} {
		if IsValidMonth(c.year, c.month) {
			t.Errorf("IsValidMonth(%d, %d) = true, want false", c.year, c.month)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "invalid"},
		{Field: "date", Message: "required"},
	}
	got := errs.Error()
	want := "name: invalid; date: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "invalid"},
		{Field: "date", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"name": "invalid", "date": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
