package render

import (
	"context"

	"github.com/goliatone/go-jobform/pkg/wizard"
)

// Renderer converts a wizard view into a byte representation (HTML, text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view wizard.View, options RenderOptions) ([]byte, error)
}
