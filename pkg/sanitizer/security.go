package sanitizer

import (
	"regexp"
	"strings"
)

var (
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript:`)
	dataProtocolRe = regexp.MustCompile(`(?i)data:`)
	// Inline event handler attributes (onclick=, onload=, ...).
	eventHandlerRe = regexp.MustCompile(`(?i)on\w+=`)
)

// Text sanitizes a free-text form field. It trims surrounding whitespace,
// removes the angle brackets that would open or close markup, strips
// javascript: and data: protocol prefixes and on<event>= handler attributes
// case-insensitively, and caps the result at maxLen runes.
//
// The function is total: any input yields a usable (possibly empty) string.
func Text(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = jsProtocolRe.ReplaceAllString(s, "")
	s = eventHandlerRe.ReplaceAllString(s, "")
	s = dataProtocolRe.ReplaceAllString(s, "")
	return MaxLength(s, maxLen)
}
