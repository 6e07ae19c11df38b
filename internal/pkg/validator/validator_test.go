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
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
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

func TestIsValidCalendarDate(t *testing.T) {
	valid := []string{"2024-02-29", "2024-03-01T08:00:00Z", "2024-03-01T08:00:00+04:00"}
	invalid := []string{"2023-02-29", "March 1", ""}
	for _, s := range valid {
		if !IsValidCalendarDate(s) {
			t.Errorf("IsValidCalendarDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidCalendarDate(s) {
			t.Errorf("IsValidCalendarDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"09:00", "09:00:00", "23:59:59", "00:00"}
	invalid := []string{"9:00", "24:00", "12:60", "12:00:60", "noon", ""}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+971501234567", "0501234567", "050-123-4567", "050 123 4567"}
	invalid := []string{"12345", "+9715012345678901", "050abc4567", ""}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP001", "A1", "HR-0042"}
	invalid := []string{"", "EMP 001", "EMPLOYEE-0001"}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestValidatePeriod(t *testing.T) {
	cases := []struct {
		year, month int
		wantErrs    int
	}{
		{2024, 1, 0},
		{2100, 12, 0},
		{1999, 6, 1},
		{2024, 0, 1},
		{2024, 13, 1},
		{0, 0, 2},
	}
	for _, c := range cases {
		got := ValidatePeriod(c.year, c.month)
		if len(got) != c.wantErrs {
			t.Errorf("ValidatePeriod(%d, %d) returned %d errors, want %d", c.year, c.month, len(got), c.wantErrs)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{{Field: "year", Message: "bad"}, {Field: "month", Message: "worse"}}
	m := errs.ToMap()
	if m["year"] != "bad" || m["month"] != "worse" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "year: bad; month: worse" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
