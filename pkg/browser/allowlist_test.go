package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLMatcherAllowAll(t *testing.T) {
	m, err := NewURLMatcher(nil, nil)
	require.NoError(t, err)

	assert.True(t, m.IsAllowed("https://example.com/anything"))
}

func TestURLMatcherAllowedPatterns(t *testing.T) {
	m, err := NewURLMatcher([]string{"https://staging.example.com/*"}, nil)
	require.NoError(t, err)

	tests := []struct {
		url     string
		allowed bool
	}{
		{"https://staging.example.com/member", true},
		{"https://staging.example.com/member/settings", true},
		{"https://production.example.com/member", false},
		{"http://staging.example.com/member", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.allowed, m.IsAllowed(tt.url))
		})
	}
}

func TestURLMatcherDeniedTakesPrecedence(t *testing.T) {
	m, err := NewURLMatcher(
		[]string{"https://staging.example.com/*"},
		[]string{"*/admin/*"},
	)
	require.NoError(t, err)

	assert.True(t, m.IsAllowed("https://staging.example.com/member"))
	assert.False(t, m.IsAllowed("https://staging.example.com/admin/users"))
}

func TestURLMatcherInvalidPattern(t *testing.T) {
	_, err := NewURLMatcher([]string{"[unclosed"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid allowed pattern")

	_, err = NewURLMatcher(nil, []string{"[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid denied pattern")
}
