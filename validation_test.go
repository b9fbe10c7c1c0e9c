package spend

import (
	"testing"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"29-02-2024", true},  // leap year
		{"29-02-2023", false}, // not a leap year
		{"29-02-2000", true},  // divisible by 400
		{"29-02-1900", false}, // divisible by 100
		{"31-04-2025", false}, // April has 30 days
		{"30-04-2025", true},
		{"31-12-2025", true},
		{"01-01-1900", true},
		{"31-12-1899", false},
		{"1-1-2025", false}, // wrong width
		{"01/01/2025", false},
		{"01-13-2025", false},
		{"00-01-2025", false},
		{"0a-01-2025", false},
		{"01-01-2025 ", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsValidDate(tc.in); got != tc.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"03-2025", true},
		{"12-1900", true},
		{"13-2025", false},
		{"00-2025", false},
		{"3-2025", false},
		{"03/2025", false},
		{"03-1899", false},
	}
	for _, tc := range tests {
		if got := IsValidMonth(tc.in); got != tc.want {
			t.Errorf("IsValidMonth(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"150.50", 150.50, true},
		{"0", 0, true},
		{"  12", 12, true},
		{"12.5 EUR", 12.5, true},
		{"12abc", 12, true},
		{".5", 0.5, true},
		{"3.", 3, true},
		{"1e2", 100, true},
		{"1e", 1, true},
		{"+7", 7, true},
		{"-1", 0, false},
		{"-0.01", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{".", 0, false},
		{"EUR 12", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParseAmount(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDateKey(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"15-03-2025", 20250315, true},
		{"01-01-1900", 19000101, true},
		{"31/12/2024", 20241231, true}, // separators are not checked
		{"00-03-2025", 0, false},
		{"1-3-2025", 0, false},
		{"xx-03-2025", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := DateKey(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("DateKey(%q) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2025-03-15", "15-03-2025"},
		{" 2025-03-15 ", "15-03-2025"},
		{"15-03-2025", "15-03-2025"},
		{"15-03-2025T10", "15-03-2025"},
		{"garbage", "garbage"},
	}
	for _, tc := range tests {
		if got := NormalizeDate(tc.in); got != tc.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
