package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAPIKey(t *testing.T) {
	hex40 := strings.Repeat("a", 40)

	tests := []struct {
		name string
		key  string
		ok   bool
	}{
		{"plain 40-char key", hex40, true},
		{"onprem prefix", "onprem-" + hex40, true},
		{"too short", strings.Repeat("a", 39), false},
		{"too long", strings.Repeat("a", 41), false},
		{"short suffix", "onprem-xyz", false},
		{"dash only", "-", false},
		// Split happens at the first dash, so a dashed prefix leaves a
		// 45-char suffix.
		{"dashed prefix", "my-site-" + hex40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAPIKey(tt.key)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateAPIKey_ErrorCarriesObservedLength(t *testing.T) {
	err := ValidateAPIKey("onprem-xyz")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 10, verr.Length, "length of the full candidate string")
	assert.Contains(t, err.Error(), "yours was 10")
}
