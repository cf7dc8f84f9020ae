package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Profile describes the browser environment a workflow suite runs
// against. Projects keep one per target (local, staging) in a
// uiflow.yaml file next to their test code.
type Profile struct {
	Name        string   `yaml:"name"`                   // Profile identifier
	Description string   `yaml:"description,omitempty"`  // What this profile targets
	BaseURL     string   `yaml:"base_url"`               // Resolves relative navigation targets
	Headless    bool     `yaml:"headless"`               // Run without a visible window
	Viewport    Viewport `yaml:"viewport,omitempty"`     // Initial viewport size
	TimeoutMS   float64  `yaml:"timeout_ms,omitempty"`   // Default operation timeout
	AllowedURLs []string `yaml:"allowed_urls,omitempty"` // Navigation allow patterns
	DeniedURLs  []string `yaml:"denied_urls,omitempty"`  // Navigation deny patterns
}

// Viewport is the profile's viewport size.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate checks if the profile is valid.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if p.BaseURL == "" {
		return fmt.Errorf("profile base_url cannot be empty")
	}
	if p.Viewport.Width < 0 || p.Viewport.Height < 0 {
		return fmt.Errorf("profile viewport dimensions cannot be negative")
	}
	if p.TimeoutMS < 0 {
		return fmt.Errorf("profile timeout_ms cannot be negative")
	}
	return nil
}

// ParseProfile parses a profile from YAML bytes.
func ParseProfile(data []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return &profile, nil
}

// LoadProfile reads and parses a uiflow.yaml profile file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	return ParseProfile(data)
}

// SaveProfile writes a profile to a YAML file.
func SaveProfile(path string, profile *Profile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}

	return nil
}
