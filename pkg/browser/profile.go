package browser

import "github.com/entrhq/uiflow/pkg/config"

// OptionsFromProfile converts a loaded profile into session options.
// Zero-valued profile fields fall back to the session defaults when the
// manager starts the session.
func OptionsFromProfile(p *config.Profile) SessionOptions {
	opts := SessionOptions{
		Headless:    p.Headless,
		Timeout:     p.TimeoutMS,
		BaseURL:     p.BaseURL,
		AllowedURLs: p.AllowedURLs,
		DeniedURLs:  p.DeniedURLs,
	}
	if p.Viewport.Width > 0 && p.Viewport.Height > 0 {
		opts.Viewport = &Viewport{
			Width:  p.Viewport.Width,
			Height: p.Viewport.Height,
		}
	}
	return opts
}

// ApplyStoredDefaults fills option fields the profile left unset from the
// persisted browser defaults section. Explicit profile values win.
func ApplyStoredDefaults(opts SessionOptions, defaults *config.BrowserSection) SessionOptions {
	if defaults == nil {
		return opts
	}
	if !opts.Headless {
		opts.Headless = defaults.Headless
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaults.TimeoutMS
	}
	if opts.Viewport == nil && defaults.ViewportWidth > 0 && defaults.ViewportHeight > 0 {
		opts.Viewport = &Viewport{
			Width:  defaults.ViewportWidth,
			Height: defaults.ViewportHeight,
		}
	}
	return opts
}
