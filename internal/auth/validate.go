package auth

import (
	"fmt"
	"strings"
)

// apiKeySuffixLen is the required length of the key body. On-prem keys
// carry a variable-length prefix and a dash before the 40-char body.
const apiKeySuffixLen = 40

// ValidationError reports a malformed API key. Length is the observed
// length of the full candidate string, for diagnostics.
type ValidationError struct {
	Length int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("API key must be %d characters long, yours was %d", apiKeySuffixLen, e.Length)
}

// ValidateAPIKey checks the structural shape of a candidate key: the
// part after the first '-' (the whole string when there is no '-') must
// be exactly 40 characters. Callers must reject empty candidates before
// calling; an empty key is never persisted.
func ValidateAPIKey(key string) error {
	_, suffix, found := strings.Cut(key, "-")
	if !found {
		suffix = key
	}
	if len(suffix) == apiKeySuffixLen {
		return nil
	}
	return &ValidationError{Length: len(key)}
}
