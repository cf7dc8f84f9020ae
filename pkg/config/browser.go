package config

const (
	// SectionIDBrowser is the identifier for the browser defaults section
	SectionIDBrowser = "browser"
)

// BrowserSection holds persisted browser session defaults. Profiles
// describe a concrete target environment; this section carries the
// machine-local fallbacks applied when a profile leaves a field unset.
type BrowserSection struct {
	Headless       bool
	TimeoutMS      float64
	ViewportWidth  int
	ViewportHeight int
}

// NewBrowserSection creates a browser section with zero defaults.
func NewBrowserSection() *BrowserSection {
	return &BrowserSection{}
}

// ID returns the section identifier.
func (s *BrowserSection) ID() string {
	return SectionIDBrowser
}

// Data returns the current configuration data.
func (s *BrowserSection) Data() map[string]interface{} {
	return map[string]interface{}{
		"headless":        s.Headless,
		"timeout_ms":      s.TimeoutMS,
		"viewport_width":  s.ViewportWidth,
		"viewport_height": s.ViewportHeight,
	}
}

// SetData updates the configuration from the provided data. Numeric
// values may arrive as float64 when the section was decoded from JSON.
func (s *BrowserSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	if headless, ok := data["headless"].(bool); ok {
		s.Headless = headless
	}

	if timeout, ok := asFloat(data["timeout_ms"]); ok {
		s.TimeoutMS = timeout
	}

	if width, ok := asFloat(data["viewport_width"]); ok {
		s.ViewportWidth = int(width)
	}

	if height, ok := asFloat(data["viewport_height"]); ok {
		s.ViewportHeight = int(height)
	}

	return nil
}

// asFloat coerces JSON and in-process numeric values.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// LoadBrowserSection reads the browser defaults section from a store.
// A store without the section yields zero defaults.
func LoadBrowserSection(store Store) (*BrowserSection, error) {
	section := NewBrowserSection()

	data, err := store.GetSection(SectionIDBrowser)
	if err != nil {
		return nil, err
	}

	if err := section.SetData(data); err != nil {
		return nil, err
	}

	return section, nil
}

// SaveBrowserSection writes the browser defaults section to a store.
// The caller decides when to persist the store itself.
func SaveBrowserSection(store Store, section *BrowserSection) error {
	return store.SetSection(SectionIDBrowser, section.Data())
}
