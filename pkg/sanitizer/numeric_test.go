package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JoaoLuiz92/dependente-plan-form/pkg/sanitizer"
)

func TestDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "strips non-digit characters",
			input:    "abc123-456",
			maxLen:   11,
			expected: "123456",
		},
		{
			name:     "keeps formatted phone digits",
			input:    "(11) 98765-4321",
			maxLen:   11,
			expected: "11987654321",
		},
		{
			name:     "truncates to max length",
			input:    "123456789012345",
			maxLen:   11,
			expected: "12345678901",
		},
		{
			name:     "strips cpf punctuation",
			input:    "123.456.789-01",
			maxLen:   11,
			expected: "12345678901",
		},
		{
			name:     "handles empty string",
			input:    "",
			maxLen:   11,
			expected: "",
		},
		{
			name:     "all letters yields empty",
			input:    "abcdef",
			maxLen:   11,
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := sanitizer.Digits(tt.input, tt.maxLen)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, sanitizer.Clamp(-5, 0, 20))
	assert.Equal(t, 20, sanitizer.Clamp(35, 0, 20))
	assert.Equal(t, 7, sanitizer.Clamp(7, 0, 20))
	assert.Equal(t, 3.5, sanitizer.Clamp(3.5, 1.0, 10.0))
}
