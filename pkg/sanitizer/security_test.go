package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JoaoLuiz92/dependente-plan-form/pkg/sanitizer"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "trims surrounding whitespace",
			input:    "  Maria Silva  ",
			maxLen:   255,
			expected: "Maria Silva",
		},
		{
			name:     "removes angle brackets",
			input:    "<b>bold</b>",
			maxLen:   255,
			expected: "bbold/b",
		},
		{
			name:     "strips javascript protocol",
			input:    "JaVaScRiPt:alert(1)",
			maxLen:   255,
			expected: "alert(1)",
		},
		{
			name:     "strips data protocol",
			input:    "data:text/html,payload",
			maxLen:   255,
			expected: "text/html,payload",
		},
		{
			name:     "strips event handlers",
			input:    `img onerror=alert(1)`,
			maxLen:   255,
			expected: "img alert(1)",
		},
		{
			name:     "truncates to max length",
			input:    strings.Repeat("a", 300),
			maxLen:   255,
			expected: strings.Repeat("a", 255),
		},
		{
			name:     "handles empty string",
			input:    "",
			maxLen:   255,
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := sanitizer.Text(tt.input, tt.maxLen)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTextStripsInjectedMarkup(t *testing.T) {
	t.Parallel()

	result := sanitizer.Text("<script>javascript:alert(1)</script>", 255)

	assert.NotContains(t, result, "<")
	assert.NotContains(t, result, ">")
	assert.NotContains(t, strings.ToLower(result), "javascript:")
	assert.NotContains(t, strings.ToLower(result), "data:")
	assert.NotRegexp(t, `(?i)on\w+=`, result)
}
