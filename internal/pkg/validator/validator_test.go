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
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
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
	if _, ok := IsValidDate("2025-02-30"); ok {
		t.Errorf("IsValidDate(%q) = true, want false", "2025-02-30")
	}
	if _, ok := IsValidDate("30-01-2025"); ok {
		t.Errorf("IsValidDate(%q) = true, want false", "30-01-2025")
	}
	date, ok := IsValidDate("2025-01-30")
	if !ok {
		t.Fatalf("IsValidDate(%q) = false, want true", "2025-01-30")
	}
	if date.Year() != 2025 || int(date.Month()) != 1 || date.Day() != 30 {
		t.Errorf("IsValidDate(%q) parsed to %v", "2025-01-30", date)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "invalid date format"},
		{Field: "year", Message: "year out of range"},
	}
	if errs.Error() != "start_date: invalid date format; year: year out of range" {
		t.Errorf("unexpected Error(): %q", errs.Error())
	}
	m := errs.ToMap()
	if m["start_date"] != "invalid date format" || m["year"] != "year out of range" {
		t.Errorf("unexpected ToMap(): %v", m)
	}
}
