package browser

// Capabilities is the page-operation surface workflow bodies are written
// against. Session implements it against a live Playwright page; Recorder
// implements it in memory for tests.
//
// Keeping this interface narrow is deliberate: a workflow body that calls
// a capability not listed here does not compile, so a missing capability
// can never surface mid-scenario.
type Capabilities interface {
	// Navigate loads the given URL. Relative URLs resolve against the
	// session's base URL when one is configured.
	Navigate(url string, opts NavigateOptions) error

	// Click clicks the element matching opts.Selector.
	Click(opts ClickOptions) error

	// Fill sets the value of the input matching opts.Selector.
	Fill(opts FillOptions) error

	// Submit clicks the submit control matching selector, letting the
	// page's form submission (and any navigation) run.
	Submit(selector string) error

	// Wait blocks until the element matching opts.Selector reaches the
	// requested state.
	Wait(opts WaitOptions) error

	// ExtractContent returns page content in the requested format.
	ExtractContent(opts ExtractOptions) (string, error)

	// Search finds text matches on the current page.
	Search(opts SearchOptions) ([]SearchResult, error)

	// Metadata returns current page metadata (title, url).
	Metadata() (map[string]string, error)
}
