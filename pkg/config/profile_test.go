package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	data := []byte(`
name: staging
description: Staging environment for member flows
base_url: https://staging.example.com
headless: true
viewport:
  width: 1280
  height: 720
timeout_ms: 15000
allowed_urls:
  - "https://staging.example.com/*"
denied_urls:
  - "*/admin/*"
`)

	profile, err := ParseProfile(data)
	require.NoError(t, err)

	assert.Equal(t, "staging", profile.Name)
	assert.Equal(t, "https://staging.example.com", profile.BaseURL)
	assert.True(t, profile.Headless)
	assert.Equal(t, 1280, profile.Viewport.Width)
	assert.Equal(t, 720, profile.Viewport.Height)
	assert.Equal(t, 15000.0, profile.TimeoutMS)
	assert.Equal(t, []string{"https://staging.example.com/*"}, profile.AllowedURLs)
	assert.Equal(t, []string{"*/admin/*"}, profile.DeniedURLs)
}

func TestParseProfileValidation(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		expectError string
	}{
		{
			name:        "missing name",
			yaml:        "base_url: https://example.com",
			expectError: "name cannot be empty",
		},
		{
			name:        "missing base_url",
			yaml:        "name: local",
			expectError: "base_url cannot be empty",
		},
		{
			name:        "negative timeout",
			yaml:        "name: local\nbase_url: http://localhost\ntimeout_ms: -5",
			expectError: "timeout_ms cannot be negative",
		},
		{
			name:        "malformed yaml",
			yaml:        "name: [unclosed",
			expectError: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestProfileRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "uiflow.yaml")

	profile := &Profile{
		Name:      "local",
		BaseURL:   "http://localhost:3000",
		Headless:  true,
		TimeoutMS: 5000,
	}

	require.NoError(t, SaveProfile(path, profile))

	loaded, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, profile, loaded)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveProfileRejectsInvalid(t *testing.T) {
	err := SaveProfile(filepath.Join(t.TempDir(), "uiflow.yaml"), &Profile{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}
