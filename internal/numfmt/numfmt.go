// Package numfmt coerces free-text numeric form input and formats amounts
// the way Korean pay statements print them (comma thousands separators).
//
// Nothing in this package returns an error: malformed input degrades to 0.
package numfmt

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// DigitsOnly drops every rune that is not an ASCII digit.
func DigitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseDigits returns the integer spelled by the digits in raw, ignoring
// everything else ("3,000,000원" → 3000000). Empty input is 0; values too
// large for int64 saturate at math.MaxInt64.
func ParseDigits(raw string) int64 {
	d := DigitsOnly(raw)
	if d == "" {
		return 0
	}
	n, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return n
}

// NormalizeDecimal keeps digits and the first decimal point of raw.
// Later points are discarded: "86..5a" → "86.5".
func NormalizeDecimal(raw string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseDecimal is ParseDigits for inputs that may carry a fractional part.
func ParseDecimal(raw string) float64 {
	s := NormalizeDecimal(raw)
	if s == "" || s == "." {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FormatThousands groups n with commas. Zero renders as the empty string so
// an untouched input field stays blank instead of showing "0".
func FormatThousands(n int64) string {
	if n == 0 {
		return ""
	}
	return printer.Sprintf("%d", n)
}

// FormatKRW rounds x half-up to whole won and groups it. Unlike
// FormatThousands, zero renders as "0".
func FormatKRW(x float64) string {
	return printer.Sprintf("%d", Round(x))
}

// FormatInt is FormatKRW for integer amounts.
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatHours renders hours with one decimal place; zero is blank.
func FormatHours(x float64) string {
	if x == 0 {
		return ""
	}
	return strconv.FormatFloat(x, 'f', 1, 64)
}

// Round rounds half toward positive infinity.
func Round(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// MulSat multiplies two non-negative integers, saturating at math.MaxInt64
// instead of wrapping.
func MulSat(a, b int64) int64 {
	if a != 0 && b > math.MaxInt64/a {
		return math.MaxInt64
	}
	return a * b
}

// Clamp limits n to [lo, hi].
func Clamp[T int | int64 | float64](n, lo, hi T) T {
	return min(max(n, lo), hi)
}
