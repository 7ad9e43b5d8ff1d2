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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2023-01", "1999-12"}
	invalid := []string{"2023-13", "2023-1", "2023", "01-2023", ""}
	for _, s := range valid {
		if !IsValidMonth(s) {
			t.Errorf("IsValidMonth(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidMonth(s) {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 20},    // defaults
		{-3, 0, 1, 20},   // negative page
		{2, 5, 2, 10},    // limit below minimum clamps up
		{1, 250, 1, 100}, // limit above maximum clamps down
		{4, 50, 4, 50},   // in-range values untouched
	}
	for _, c := range cases {
		page, limit := c.page, c.limit
		NormalizePagination(&page, &limit)
		if page != c.wantPage || limit != c.wantLimit {
			t.Errorf("NormalizePagination(%d, %d) = (%d, %d), want (%d, %d)",
				c.page, c.limit, page, limit, c.wantPage, c.wantLimit)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP-001", "STF-12345", "HR-999"}
	invalid := []string{"emp-001", "EMP001", "E-1", "EMPLOYEE-123", ""}
	for _, s := range valid {
		if !IsValidEmployeeCode(s) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidEmployeeCode(s) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", s)
		}
	}
}
