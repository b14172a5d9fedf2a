package sanitizer

import "strings"

// Numeric represents numeric types that support ordering comparisons.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Digits strips every non-digit character from a string and truncates the
// result to maxLen digits. Useful for phone and document numbers entered
// with separators or formatting.
func Digits(s string, maxLen int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return MaxLength(b.String(), maxLen)
}

// Clamp constrains a numeric value to be within the range [min, max].
func Clamp[T Numeric](value T, min T, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
