package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JoaoLuiz92/dependente-plan-form/pkg/token"
	"github.com/JoaoLuiz92/dependente-plan-form/pkg/validator"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tok := token.New()

	assert.Len(t, tok, 32)
	assert.NotContains(t, tok, "-")
	assert.True(t, validator.IsSessionToken(tok))
}

func TestNewIsUniquePerCall(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := token.New()
		assert.False(t, seen[tok])
		seen[tok] = true
	}
}
