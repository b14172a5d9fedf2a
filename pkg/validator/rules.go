package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Loose local@domain.tld shape: no spaces, single @, dotted domain.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Session tokens are alphanumeric, case-insensitive.
	sessionTokenRegex = regexp.MustCompile(`^[a-z0-9]+$`)
)

// IsEmail reports whether s looks like an email address and does not exceed
// maxLen bytes. The check is intentionally loose (local@domain.tld shape)
// rather than full RFC 5322: the receiving webhook does its own verification.
func IsEmail(s string, maxLen int) bool {
	return emailRegex.MatchString(s) && len(s) <= maxLen
}

// IsPhone reports whether s contains exactly 10 or 11 digits once every
// non-digit character is stripped. Covers Brazilian landline and mobile
// numbers with or without formatting.
func IsPhone(s string) bool {
	n := digitCount(s)
	return n >= 10 && n <= 11
}

// IsSessionToken reports whether s is a plausible session token: at least
// 10 characters, alphanumeric only, case-insensitive.
func IsSessionToken(s string) bool {
	return len(s) >= 10 && sessionTokenRegex.MatchString(strings.ToLower(s))
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// Email validates that value is a well-formed address within maxLen bytes.
func Email(field, value string, maxLen int) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value, maxLen)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s: invalid email address", field),
		},
	}
}

// Phone validates that value contains 10 or 11 digits.
func Phone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsPhone(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s: invalid phone number", field),
		},
	}
}

// MaxCount validates that a count does not exceed its configured maximum.
func MaxCount(field string, n, max int) Rule {
	return Rule{
		Check: func() bool {
			return n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s: must not exceed %d", field, max),
		},
	}
}

// Check wraps an arbitrary predicate as a rule. Used by callers whose
// validation logic lives next to their own types, such as document numbers.
func Check(field, message string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}
