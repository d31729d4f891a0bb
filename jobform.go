// Package jobform is the entry point for the multi-step job application
// form: a three step wizard (personal details, experience, review) with
// field validation, step gating and pluggable submission sinks.
package jobform

import (
	"context"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-jobform/pkg/application"
	"github.com/goliatone/go-jobform/pkg/render"
	"github.com/goliatone/go-jobform/pkg/renderers/vanilla"
	"github.com/goliatone/go-jobform/pkg/wizard"
)

// Wizard aliases the form state machine.
type Wizard = wizard.Wizard

// Submission is the validated snapshot delivered to sinks.
type Submission = application.Submission

// RenderOptions describes per-request data renderers consume.
type RenderOptions = render.RenderOptions

// New returns a wizard on the first step with empty fields.
func New(options ...wizard.Option) *Wizard {
	return wizard.New(options...)
}

// NewRegistry returns a renderer registry with the built-in HTML renderer
// registered as the default.
func NewRegistry(options ...vanilla.Option) (*render.Registry, error) {
	html, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	return registry, nil
}

// RenderHTML renders the current view of w with the built-in HTML renderer.
func RenderHTML(ctx context.Context, w *Wizard, opts RenderOptions, options ...vanilla.Option) ([]byte, error) {
	if w == nil {
		return nil, fmt.Errorf("jobform: wizard is nil")
	}
	registry, err := NewRegistry(options...)
	if err != nil {
		return nil, err
	}
	renderer, err := registry.ForMediaType("text/html")
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, w.View(), opts)
}

// ResolveTheme flattens a go-theme manifest and variant into the renderer
// configuration carried by RenderOptions.Theme.
func ResolveTheme(manifest *theme.Manifest, variant string) (*theme.RendererConfig, error) {
	return render.ResolveTheme(manifest, variant)
}
