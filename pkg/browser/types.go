package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// Default limits and sizes for sessions and content extraction.
const (
	DefaultMaxSessions    = 5
	DefaultIdleTimeout    = 300 // seconds
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultTimeout        = 30000 // milliseconds
	DefaultMaxLength      = 10000 // characters of extracted content
)

// Session represents an active browser session with its associated resources.
type Session struct {
	// Name is the unique identifier for this session
	Name string

	// Browser is the Playwright browser instance
	Browser playwright.Browser

	// Context is the browser context (isolated session)
	Context playwright.BrowserContext

	// Page is the current active page
	Page playwright.Page

	// Headless indicates if the browser is running in headless mode
	Headless bool

	// BaseURL, when set, is prepended to relative navigation targets
	BaseURL string

	// CreatedAt is the timestamp when the session was created
	CreatedAt time.Time

	// LastUsedAt is the timestamp of the last operation on this session
	LastUsedAt time.Time

	// CurrentURL is the URL of the current page
	CurrentURL string

	urlRules *URLMatcher
}

// SessionOptions configures a new browser session.
type SessionOptions struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Viewport sets the initial viewport size
	Viewport *Viewport

	// Timeout sets the default timeout for operations (in milliseconds)
	Timeout float64

	// BaseURL resolves relative navigation targets (e.g. "/member")
	BaseURL string

	// AllowedURLs and DeniedURLs are glob patterns constraining navigation.
	// Denied patterns take precedence; an empty allow list allows all.
	AllowedURLs []string
	DeniedURLs  []string
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int
	Height int
}

// NavigateOptions configures page navigation behavior.
type NavigateOptions struct {
	// WaitUntil specifies when to consider navigation successful
	// Valid values: "load", "domcontentloaded", "networkidle"
	WaitUntil string

	// Timeout in milliseconds (0 means default)
	Timeout float64
}

// ClickOptions configures element click behavior.
type ClickOptions struct {
	// Selector identifies the element to click
	Selector string

	// Button is the mouse button: "left" (default), "right", "middle"
	Button string

	// ClickCount is the number of clicks (0 means single click)
	ClickCount int

	// Timeout in milliseconds (0 means default)
	Timeout float64
}

// FillOptions configures input filling.
type FillOptions struct {
	// Selector identifies the input element
	Selector string

	// Value is the text to fill in
	Value string

	// Timeout in milliseconds (0 means default)
	Timeout float64
}

// WaitOptions configures waiting for an element.
type WaitOptions struct {
	// Selector identifies the element to wait for
	Selector string

	// State is the state to wait for: "visible" (default), "attached",
	// "detached", "hidden"
	State string

	// Timeout in milliseconds (0 means default)
	Timeout float64
}

// ContentFormat identifies an extraction output format.
type ContentFormat string

const (
	FormatText     ContentFormat = "text"
	FormatMarkdown ContentFormat = "markdown"
)

// ExtractOptions configures content extraction.
type ExtractOptions struct {
	// Format selects the output format (default: markdown)
	Format ContentFormat

	// Selector restricts extraction to a single element (default: body)
	Selector string

	// MaxLength truncates the extracted content (0 means default)
	MaxLength int
}

// SearchOptions configures a text search over the current page.
type SearchOptions struct {
	// Pattern is the text to look for
	Pattern string

	// CaseSensitive controls match case sensitivity
	CaseSensitive bool

	// MaxResults limits the number of matches returned (0 means all)
	MaxResults int
}

// SearchResult is a single text match with surrounding context.
type SearchResult struct {
	Text    string
	Context string
}
