package numfmt_test

import (
	"math"
	"testing"

	"github.com/csg33k/semogye/internal/numfmt"
)

func TestParseDigits(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"", 0},
		{"abc", 0},
		{"3,000,000", 3000000},
		{"3,000,000원", 3000000},
		{"  12 000 ", 12000},
		{"-500", 500},
		{"1.5", 15},
		{"99999999999999999999999", math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := numfmt.ParseDigits(tt.raw); got != tt.want {
				t.Errorf("ParseDigits(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"", 0},
		{".", 0},
		{"86.5", 86.5},
		{"86..5", 86.5},
		{"1.2.3", 1.23},
		{"160시간", 160},
		{".5", 0.5},
		{"80.", 80},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := numfmt.ParseDecimal(tt.raw); got != tt.want {
				t.Errorf("ParseDecimal(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeDecimal(t *testing.T) {
	if got := numfmt.NormalizeDecimal("86..5a"); got != "86.5" {
		t.Errorf("NormalizeDecimal = %q, want %q", got, "86.5")
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, ""},
		{7, "7"},
		{1000, "1,000"},
		{3000000, "3,000,000"},
		{-657500, "-657,500"},
	}
	for _, tt := range tests {
		if got := numfmt.FormatThousands(tt.n); got != tt.want {
			t.Errorf("FormatThousands(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatKRW(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{383999.6, "384,000"},
		{1234.5, "1,235"},
		{1234.49, "1,234"},
	}
	for _, tt := range tests {
		if got := numfmt.FormatKRW(tt.x); got != tt.want {
			t.Errorf("FormatKRW(%v) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	if got := numfmt.FormatHours(86.46); got != "86.5" {
		t.Errorf("FormatHours = %q, want 86.5", got)
	}
	if got := numfmt.FormatHours(0); got != "" {
		t.Errorf("FormatHours(0) = %q, want empty", got)
	}
}

func TestClamp(t *testing.T) {
	if got := numfmt.Clamp(12, 1, 7); got != 7 {
		t.Errorf("Clamp = %d, want 7", got)
	}
	if got := numfmt.Clamp(-3.5, 0, 744); got != 0 {
		t.Errorf("Clamp = %v, want 0", got)
	}
}

func TestMulSat(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{11_000, 160, 1_760_000},
		{0, math.MaxInt64, 0},
		{math.MaxInt64, 1, math.MaxInt64},
		{math.MaxInt64, 2, math.MaxInt64},
		{numfmt.ParseDigits("99999999999999999999"), 2, math.MaxInt64},
		{1 << 32, 1 << 31, math.MaxInt64},
	}
	for _, tt := range tests {
		if got := numfmt.MulSat(tt.a, tt.b); got != tt.want {
			t.Errorf("MulSat(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
