package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHost(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"api.onprem.example.com", "https://api.onprem.example.com"},
		{"https://api.onprem.example.com", "https://api.onprem.example.com"},
		{"https://api.onprem.example.com/", "https://api.onprem.example.com"},
		{"http://localhost:8080", "http://localhost:8080"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeHost(tt.in), "normalizeHost(%q)", tt.in)
	}
}
