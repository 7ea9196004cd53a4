package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg:  Config{URL: "https://gitlab.example.com/group/proj", Token: "secret"},
		},
		{
			name:    "missing url",
			cfg:     Config{Token: "secret"},
			wantErr: ErrMissingURL,
		},
		{
			name:    "missing token",
			cfg:     Config{URL: "https://gitlab.example.com/group/proj"},
			wantErr: ErrMissingToken,
		},
		{
			name:    "invalid url",
			cfg:     Config{URL: "not a url", Token: "secret"},
			wantErr: ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrConfig, "config failures share the config class")
			}
		})
	}
}

func TestConfig_BaseURL(t *testing.T) {
	cfg := Config{URL: "https://gitlab.example.com/group/proj", Token: "secret"}

	base, err := cfg.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.example.com", base)
}
