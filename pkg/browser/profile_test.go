package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/uiflow/pkg/config"
)

func TestOptionsFromProfile(t *testing.T) {
	profile := &config.Profile{
		Name:        "staging",
		BaseURL:     "https://staging.example.com",
		Headless:    true,
		Viewport:    config.Viewport{Width: 1920, Height: 1080},
		TimeoutMS:   15000,
		AllowedURLs: []string{"https://staging.example.com/*"},
		DeniedURLs:  []string{"*/admin/*"},
	}

	opts := OptionsFromProfile(profile)

	assert.True(t, opts.Headless)
	assert.Equal(t, "https://staging.example.com", opts.BaseURL)
	assert.Equal(t, 15000.0, opts.Timeout)
	assert.Equal(t, &Viewport{Width: 1920, Height: 1080}, opts.Viewport)
	assert.Equal(t, profile.AllowedURLs, opts.AllowedURLs)
	assert.Equal(t, profile.DeniedURLs, opts.DeniedURLs)
}

func TestApplyStoredDefaults(t *testing.T) {
	defaults := &config.BrowserSection{
		Headless:       true,
		TimeoutMS:      20000,
		ViewportWidth:  1920,
		ViewportHeight: 1080,
	}

	t.Run("fills unset fields", func(t *testing.T) {
		opts := ApplyStoredDefaults(SessionOptions{}, defaults)

		assert.True(t, opts.Headless)
		assert.Equal(t, 20000.0, opts.Timeout)
		assert.Equal(t, &Viewport{Width: 1920, Height: 1080}, opts.Viewport)
	})

	t.Run("profile values win", func(t *testing.T) {
		fromProfile := SessionOptions{
			Timeout:  5000,
			Viewport: &Viewport{Width: 800, Height: 600},
		}

		opts := ApplyStoredDefaults(fromProfile, defaults)

		assert.Equal(t, 5000.0, opts.Timeout)
		assert.Equal(t, &Viewport{Width: 800, Height: 600}, opts.Viewport)
	})

	t.Run("nil defaults are a no-op", func(t *testing.T) {
		opts := ApplyStoredDefaults(SessionOptions{BaseURL: "http://localhost"}, nil)
		assert.Equal(t, SessionOptions{BaseURL: "http://localhost"}, opts)
	})
}

func TestOptionsFromProfileZeroViewport(t *testing.T) {
	opts := OptionsFromProfile(&config.Profile{
		Name:    "local",
		BaseURL: "http://localhost:3000",
	})

	// Nil viewport means the manager applies its defaults.
	assert.Nil(t, opts.Viewport)
}
