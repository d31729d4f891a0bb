package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data renderers use to customise their
// output without touching wizard state.
type RenderOptions struct {
	// Action is the URL the rendered form posts to. Empty posts back to the
	// current URL.
	Action string
	// Hidden carries extra inputs such as CSRF tokens, keyed by name.
	Hidden map[string]string
	// Theme supplies tokens, CSS variables and asset URLs resolved from a
	// go-theme manifest.
	Theme *theme.RendererConfig
	// TermsHTML is optional rich text shown next to the terms checkbox.
	// Renderers sanitise it before output.
	TermsHTML string
	// TermsMarkdown is used when TermsHTML is empty. It is converted to HTML
	// and sanitised the same way.
	TermsMarkdown string
}
