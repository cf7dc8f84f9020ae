package browser

import (
	"fmt"

	"github.com/gobwas/glob"
)

// URLMatcher handles glob pattern matching for navigation access control.
// Test workflows drive real browsers, so sessions can be constrained to
// the hosts and paths a scenario is supposed to touch.
type URLMatcher struct {
	allowedPatterns []glob.Glob
	deniedPatterns  []glob.Glob
}

// NewURLMatcher compiles allow and deny glob patterns.
func NewURLMatcher(allowed, denied []string) (*URLMatcher, error) {
	m := &URLMatcher{}

	for _, pattern := range allowed {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed pattern '%s': %w", pattern, err)
		}
		m.allowedPatterns = append(m.allowedPatterns, g)
	}

	for _, pattern := range denied {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid denied pattern '%s': %w", pattern, err)
		}
		m.deniedPatterns = append(m.deniedPatterns, g)
	}

	return m, nil
}

// IsAllowed returns true if the URL is allowed by the pattern rules.
// Denied patterns take precedence; if no allowed patterns are specified,
// everything not denied is allowed.
func (m *URLMatcher) IsAllowed(url string) bool {
	for _, pattern := range m.deniedPatterns {
		if pattern.Match(url) {
			return false
		}
	}

	if len(m.allowedPatterns) == 0 {
		return true
	}

	for _, pattern := range m.allowedPatterns {
		if pattern.Match(url) {
			return true
		}
	}

	return false
}
