package utils

import (
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"asha@example.com", true},
		{"a.b+tag@sub.example.co", true},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Asha@Example.COM "); got != "asha@example.com" {
		t.Errorf("NormalizeEmail = %q, want asha@example.com", got)
	}
}

func TestVerifyPassword(t *testing.T) {
	if err := VerifyPassword("secret123"); err != nil {
		t.Errorf("VerifyPassword(secret123) = %v, want nil", err)
	}
	if err := VerifyPassword("short"); err == nil {
		t.Error("VerifyPassword(short) = nil, want error")
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("64f1c2d3e4a5b6c7d8e9f0a1"); got != "64f1c2d3" {
		t.Errorf("ShortID = %q, want 64f1c2d3", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID(abc) = %q, want abc", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "", "x", "y"); got != "x" {
		t.Errorf("FirstNonEmpty = %q, want x", got)
	}
	if got := FirstNonEmpty(); got != "" {
		t.Errorf("FirstNonEmpty() = %q, want empty", got)
	}
}
