package browser

import "fmt"

// RecordedCall is one capability invocation observed by a Recorder.
type RecordedCall struct {
	Capability string
	Args       []string
}

// Recorder is an in-memory Capabilities implementation for tests. It
// records every call in order and can be armed to fail a capability with
// a fixed error, so workflow behavior can be verified without a browser.
type Recorder struct {
	Calls []RecordedCall

	// Failures maps a capability name to the error its next calls return.
	Failures map[string]error

	// Content is returned by ExtractContent.
	Content string

	// Results are returned by Search.
	Results []SearchResult

	// Meta is returned by Metadata.
	Meta map[string]string
}

var _ Capabilities = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Failures: make(map[string]error)}
}

// FailWith arms the recorder to return err from the named capability.
func (r *Recorder) FailWith(capability string, err error) {
	if r.Failures == nil {
		r.Failures = make(map[string]error)
	}
	r.Failures[capability] = err
}

func (r *Recorder) record(capability string, args ...string) error {
	r.Calls = append(r.Calls, RecordedCall{Capability: capability, Args: args})
	return r.Failures[capability]
}

// CallNames returns the capability names in invocation order.
func (r *Recorder) CallNames() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Capability
	}
	return names
}

func (r *Recorder) Navigate(url string, opts NavigateOptions) error {
	return r.record("navigate", url)
}

func (r *Recorder) Click(opts ClickOptions) error {
	return r.record("click", opts.Selector)
}

func (r *Recorder) Fill(opts FillOptions) error {
	return r.record("fill", opts.Selector, opts.Value)
}

func (r *Recorder) Submit(selector string) error {
	return r.record("submit", selector)
}

func (r *Recorder) Wait(opts WaitOptions) error {
	return r.record("wait", opts.Selector)
}

func (r *Recorder) ExtractContent(opts ExtractOptions) (string, error) {
	if err := r.record("extract_content", string(opts.Format), opts.Selector); err != nil {
		return "", err
	}
	return r.Content, nil
}

func (r *Recorder) Search(opts SearchOptions) ([]SearchResult, error) {
	if err := r.record("search", opts.Pattern); err != nil {
		return nil, err
	}
	return r.Results, nil
}

func (r *Recorder) Metadata() (map[string]string, error) {
	if err := r.record("metadata"); err != nil {
		return nil, err
	}
	if r.Meta == nil {
		return map[string]string{}, nil
	}
	return r.Meta, nil
}

// String summarizes the recorded calls, useful in test failure output.
func (r *Recorder) String() string {
	return fmt.Sprintf("recorder with %d calls %v", len(r.Calls), r.CallNames())
}
