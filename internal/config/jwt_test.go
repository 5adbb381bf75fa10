package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, "resume-intel", cfg.Issuer)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "custom-issuer")
	t.Setenv("JWT_EXPIRATION_HOURS", "72")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)

	assert.Equal(t, "custom-issuer", cfg.Issuer)
	assert.Equal(t, 72, cfg.ExpirationHours)
}

func TestNewJWTConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		secret      string
		expiration  string
		expectedErr string
	}{
		{
			name:        "Missing secret",
			secret:      "",
			expiration:  "",
			expectedErr: "JWT_SECRET is required",
		},
		{
			name:        "Non-numeric expiration",
			secret:      "test-secret",
			expiration:  "soon",
			expectedErr: "invalid JWT_EXPIRATION_HOURS",
		},
		{
			name:        "Zero expiration",
			secret:      "test-secret",
			expiration:  "0",
			expectedErr: "JWT_EXPIRATION_HOURS must be at least 1 hour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", tt.secret)
			t.Setenv("JWT_ISSUER", "")
			t.Setenv("JWT_EXPIRATION_HOURS", tt.expiration)

			_, err := NewJWTConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}
