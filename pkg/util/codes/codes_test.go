package codes

import (
	"strings"
	"testing"
)

func TestGenerateJoinCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateJoinCode()
		if err != nil {
			t.Fatalf("GenerateJoinCode() error = %v", err)
		}
		if len(code) != JoinCodeLength {
			t.Errorf("GenerateJoinCode() length = %d, want %d", len(code), JoinCodeLength)
		}
		if !IsValidJoinCode(code) {
			t.Errorf("GenerateJoinCode() = %q, not a valid join code", code)
		}
		if code != strings.ToUpper(code) {
			t.Errorf("GenerateJoinCode() = %q, want uppercase", code)
		}
		seen[code] = true
	}
	// 100 draws from 36^6 should essentially never collide completely
	if len(seen) < 2 {
		t.Errorf("GenerateJoinCode() produced no variety across 100 draws")
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "k4t9zq", "K4T9ZQ"},
		{"mixed case", "k4T9zQ", "K4T9ZQ"},
		{"whitespace", "  K4T9ZQ \n", "K4T9ZQ"},
		{"already normalized", "K4T9ZQ", "K4T9ZQ"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCode(tt.in); got != tt.want {
				t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidJoinCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid", "K4T9ZQ", true},
		{"all letters", "ABCDEF", true},
		{"all digits", "012345", true},
		{"too short", "K4T9Z", false},
		{"too long", "K4T9ZQX", false},
		{"lowercase", "k4t9zq", false},
		{"symbol", "K4T9Z!", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidJoinCode(tt.in); got != tt.want {
				t.Errorf("IsValidJoinCode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(6)
	if err != nil {
		t.Fatalf("GenerateNumericCode(6) error = %v", err)
	}
	if len(code) != 6 {
		t.Errorf("GenerateNumericCode(6) length = %d, want 6", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("GenerateNumericCode(6) = %q, contains non-digit", code)
		}
	}

	if _, err := GenerateNumericCode(0); err == nil {
		t.Error("GenerateNumericCode(0) expected error, got nil")
	}
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(16)
	if err != nil {
		t.Fatalf("GenerateSecureToken(16) error = %v", err)
	}
	if len(token) != 32 {
		t.Errorf("GenerateSecureToken(16) length = %d, want 32", len(token))
	}

	if _, err := GenerateSecureToken(0); err == nil {
		t.Error("GenerateSecureToken(0) expected error, got nil")
	}
}
