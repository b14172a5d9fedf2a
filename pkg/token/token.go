// Package token generates opaque session tokens attached to each submission
// so the receiving webhook can correlate and de-duplicate requests.
package token

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a fresh session token: a v4 UUID with the dashes stripped,
// yielding 32 lowercase hexadecimal characters. Tokens are generated per
// submission and never persisted.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
