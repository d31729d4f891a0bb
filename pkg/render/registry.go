package render

import (
	"errors"
	"fmt"
	"mime"
	"slices"
	"strings"
	"sync"
)

// ErrRendererNotFound is returned when no registered renderer matches.
var ErrRendererNotFound = errors.New("render: renderer not found")

// Registry keeps renderers in registration order. The first one registered
// answers lookups that name no renderer until SetDefault picks another.
type Registry struct {
	mu       sync.RWMutex
	entries  []Renderer
	fallback int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds renderer under its Name(). Names must be unique.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := strings.TrimSpace(renderer.Name())
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(name) >= 0 {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.entries = append(r.entries, renderer)
	return nil
}

// MustRegister is Register for init-time wiring; it panics on failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// SetDefault selects the renderer returned for empty names.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	r.fallback = idx
	return nil
}

// Get returns the renderer called name, or the default for "".
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		if len(r.entries) == 0 {
			return nil, fmt.Errorf("%w: registry is empty", ErrRendererNotFound)
		}
		return r.entries[r.fallback], nil
	}
	idx := r.indexOf(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return r.entries[idx], nil
}

// ForMediaType returns the first renderer whose ContentType has the given
// media type, ignoring parameters such as charset.
func (r *Registry) ForMediaType(mediaType string) (Renderer, error) {
	want := baseMediaType(mediaType)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, renderer := range r.entries {
		if baseMediaType(renderer.ContentType()) == want {
			return renderer, nil
		}
	}
	return nil, fmt.Errorf("%w: media type %q", ErrRendererNotFound, mediaType)
}

// List returns the registered names in lexical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, renderer := range r.entries {
		names = append(names, renderer.Name())
	}
	slices.Sort(names)
	return names
}

func (r *Registry) indexOf(name string) int {
	return slices.IndexFunc(r.entries, func(renderer Renderer) bool {
		return renderer.Name() == name
	})
}

func baseMediaType(raw string) string {
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(raw))
	}
	return mediaType
}
