package util

import (
	"strings"
	"testing"
)

func TestValidateEmail_Valid(t *testing.T) {
	testCases := []string{
		"alice@example.com",
		"bob.smith@mail.example.org",
		"x@y.co",
	}

	for _, email := range testCases {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", email, err)
		}
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"not-an-email",
		"missing@domain@twice.com",
		"Alice <alice@example.com>",
		strings.Repeat("a", 250) + "@example.com",
	}

	for _, email := range testCases {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) error = nil, want error", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("pw123456"); err != nil {
		t.Errorf("8-char password should be valid, got %v", err)
	}
	if err := ValidatePassword("short"); err == nil {
		t.Error("short password should be rejected")
	}
	if err := ValidatePassword(strings.Repeat("x", 73)); err == nil {
		t.Error("password over bcrypt's 72-byte limit should be rejected")
	}
}

func TestValidateYear(t *testing.T) {
	for _, year := range []int{1, 1984, 2026, 9999} {
		if err := ValidateYear(year); err != nil {
			t.Errorf("ValidateYear(%d) error = %v, want nil", year, err)
		}
	}
	for _, year := range []int{0, -5, 10000} {
		if err := ValidateYear(year); err == nil {
			t.Errorf("ValidateYear(%d) error = nil, want error", year)
		}
	}
}

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("The Go Programming Language"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
	if err := ValidateTitle("   "); err == nil {
		t.Error("blank title should be rejected")
	}
	if err := ValidateTitle(strings.Repeat("t", 256)); err == nil {
		t.Error("overlong title should be rejected")
	}
}
