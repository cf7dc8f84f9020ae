package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Session implements Capabilities against a live Playwright page.
var _ Capabilities = (*Session)(nil)

// UpdateLastUsed updates the LastUsedAt timestamp to the current time.
func (s *Session) UpdateLastUsed() {
	s.LastUsedAt = time.Now()
}

// resolveURL resolves a navigation target against the session's base URL.
// Absolute targets pass through untouched.
func (s *Session) resolveURL(url string) string {
	if s.BaseURL == "" || strings.Contains(url, "://") {
		return url
	}
	return strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(url, "/")
}

// Navigate navigates the session's page to the specified URL.
func (s *Session) Navigate(url string, opts NavigateOptions) error {
	s.UpdateLastUsed()

	target := s.resolveURL(url)

	if s.urlRules != nil && !s.urlRules.IsAllowed(target) {
		return fmt.Errorf("navigation to %q blocked by session URL rules", target)
	}

	playwrightOpts := playwright.PageGotoOptions{}

	if opts.WaitUntil != "" {
		waitUntil := playwright.WaitUntilState(opts.WaitUntil)
		playwrightOpts.WaitUntil = &waitUntil
	}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	_, err := s.Page.Goto(target, playwrightOpts)
	if err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}

	s.CurrentURL = s.Page.URL()
	return nil
}

// Click clicks an element matching the selector.
func (s *Session) Click(opts ClickOptions) error {
	s.UpdateLastUsed()

	playwrightOpts := playwright.PageClickOptions{}

	if opts.Button != "" {
		button := playwright.MouseButton(opts.Button)
		playwrightOpts.Button = &button
	}

	if opts.ClickCount > 0 {
		playwrightOpts.ClickCount = &opts.ClickCount
	}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	err := s.Page.Click(opts.Selector, playwrightOpts)
	if err != nil {
		return fmt.Errorf("click failed: %w", err)
	}

	// Update current URL in case the click caused navigation
	s.CurrentURL = s.Page.URL()
	return nil
}

// Fill fills an input element with the specified value.
func (s *Session) Fill(opts FillOptions) error {
	s.UpdateLastUsed()

	playwrightOpts := playwright.PageFillOptions{}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	err := s.Page.Fill(opts.Selector, opts.Value, playwrightOpts)
	if err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}

	return nil
}

// Submit clicks the submit control matching the selector. Playwright
// handles the resulting form submission and any navigation it triggers.
func (s *Session) Submit(selector string) error {
	s.UpdateLastUsed()

	if selector == "" {
		selector = "[type=submit]"
	}

	err := s.Page.Click(selector, playwright.PageClickOptions{})
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}

	s.CurrentURL = s.Page.URL()
	return nil
}

// Wait waits for an element to reach the requested state.
func (s *Session) Wait(opts WaitOptions) error {
	s.UpdateLastUsed()

	if opts.Selector == "" {
		return fmt.Errorf("selector is required for wait")
	}

	playwrightOpts := playwright.PageWaitForSelectorOptions{}

	if opts.State != "" {
		state := playwright.WaitForSelectorState(opts.State)
		playwrightOpts.State = &state
	}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	_, err := s.Page.WaitForSelector(opts.Selector, playwrightOpts)
	if err != nil {
		return fmt.Errorf("wait failed: %w", err)
	}

	return nil
}

// ExtractContent extracts page content in the specified format.
func (s *Session) ExtractContent(opts ExtractOptions) (string, error) {
	s.UpdateLastUsed()

	if opts.Format == "" {
		opts.Format = FormatMarkdown
	}
	if opts.MaxLength == 0 {
		opts.MaxLength = DefaultMaxLength
	}

	switch opts.Format {
	case FormatText:
		return s.extractText(opts)
	case FormatMarkdown:
		return s.extractMarkdown(opts)
	default:
		return "", fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

// extractText extracts plain text content from the page or selector.
func (s *Session) extractText(opts ExtractOptions) (string, error) {
	selector := opts.Selector
	if selector == "" {
		selector = "body"
	}

	element, err := s.Page.QuerySelector(selector)
	if err != nil {
		return "", fmt.Errorf("selector query failed: %w", err)
	}
	if element == nil {
		return "", fmt.Errorf("no element found matching selector: %s", selector)
	}

	content, err := element.TextContent()
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}

	if len(content) > opts.MaxLength {
		truncated := content[:opts.MaxLength]
		warning := fmt.Sprintf("\n\n[Content truncated: %d of %d characters shown]", opts.MaxLength, len(content))
		return truncated + warning, nil
	}

	return content, nil
}

// extractMarkdown extracts the raw page HTML and converts it to markdown
// via the content cleaner.
func (s *Session) extractMarkdown(opts ExtractOptions) (string, error) {
	rawHTML, err := s.Page.Content()
	if err != nil {
		return "", fmt.Errorf("content retrieval failed: %w", err)
	}

	cleaned, err := cleanHTML(rawHTML, opts.MaxLength)
	if err != nil {
		return "", err
	}

	return cleaned.Markdown(), nil
}

// Search searches the page text for the pattern.
func (s *Session) Search(opts SearchOptions) ([]SearchResult, error) {
	s.UpdateLastUsed()

	bodyText, err := s.extractText(ExtractOptions{MaxLength: DefaultMaxLength * 10})
	if err != nil {
		return nil, fmt.Errorf("failed to get page text: %w", err)
	}

	return searchText(bodyText, opts), nil
}

// searchText finds pattern occurrences in text with surrounding context.
func searchText(text string, opts SearchOptions) []SearchResult {
	haystack := text
	needle := opts.Pattern
	if !opts.CaseSensitive {
		haystack = strings.ToLower(haystack)
		needle = strings.ToLower(needle)
	}
	if needle == "" {
		return nil
	}

	var results []SearchResult
	index := 0
	for {
		pos := strings.Index(haystack[index:], needle)
		if pos == -1 {
			break
		}

		actualPos := index + pos

		// Context is 50 characters either side of the match
		contextStart := max(0, actualPos-50)
		contextEnd := min(len(text), actualPos+len(needle)+50)

		results = append(results, SearchResult{
			Text:    text[actualPos : actualPos+len(needle)],
			Context: text[contextStart:contextEnd],
		})

		index = actualPos + len(needle)

		if opts.MaxResults > 0 && len(results) >= opts.MaxResults {
			break
		}
	}

	return results
}

// Metadata returns current page metadata.
func (s *Session) Metadata() (map[string]string, error) {
	s.UpdateLastUsed()

	title, err := s.Page.Title()
	if err != nil {
		title = ""
	}

	return map[string]string{
		"title": title,
		"url":   s.Page.URL(),
	}, nil
}
