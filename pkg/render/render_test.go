package render_test

import (
	"context"
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jobform/pkg/render"
	"github.com/goliatone/go-jobform/pkg/wizard"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, wizard.View, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "vanilla"})
	registry.MustRegister(stubRenderer{name: "text"})

	if err := registry.Register(stubRenderer{name: "text"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}

	got, err := registry.Get("")
	if err != nil || got.Name() != "vanilla" {
		t.Fatalf("expected first renderer as default, got %v %v", got, err)
	}
	if err := registry.SetDefault("text"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	if got, _ := registry.Get(""); got.Name() != "text" {
		t.Fatalf("default not updated")
	}
	if _, err := registry.Get("preact"); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
	if diff := cmp.Diff([]string{"text", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_ForMediaType(t *testing.T) {
	registry := render.NewRegistry()
	if _, err := registry.Get(""); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound on empty registry, got %v", err)
	}
	registry.MustRegister(stubRenderer{name: "text"})

	got, err := registry.ForMediaType("text/plain; charset=utf-8")
	if err != nil || got.Name() != "text" {
		t.Fatalf("expected text renderer, got %v %v", got, err)
	}
	if _, err := registry.ForMediaType("text/html"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestHiddenFields(t *testing.T) {
	merged := render.MergeHiddenFields(
		map[string]string{" _csrf ": "old", "": "dropped"},
		render.CSRFToken("_csrf", "tok"),
		render.Hidden("version", 3),
		render.Hidden("  ", "ignored"),
	)
	want := []render.HiddenField{{Name: "_csrf", Value: "tok"}, {Name: "version", Value: "3"}}
	if diff := cmp.Diff(want, render.SortedHiddenFields(merged)); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
	if render.MergeHiddenFields(nil) != nil {
		t.Fatalf("expected nil for empty merge")
	}
}

func testManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":  "#123456",
			"accent": "#ffcc00",
		},
		Templates: map[string]string{
			"forms.input": "themes/acme/input.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"stylesheet": "theme.dark.css",
					},
				},
			},
		},
	}
}

func TestResolveTheme(t *testing.T) {
	cfg, err := render.ResolveTheme(testManifest(), "dark")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}
	wantVars := map[string]string{"--brand": "#654321", "--accent": "#ffcc00"}
	if diff := cmp.Diff(wantVars, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.dark.css" {
		t.Fatalf("unexpected asset url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %q", got)
	}
	if cfg.Partials["forms.input"] != "themes/acme/input.tmpl" {
		t.Fatalf("partials not carried over")
	}
	if got := render.CSSVarsStyle(cfg.CSSVars); got != "--accent: #ffcc00; --brand: #654321" {
		t.Fatalf("unexpected style %q", got)
	}
}

func TestResolveTheme_BaseAndErrors(t *testing.T) {
	cfg, err := render.ResolveTheme(testManifest(), "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Tokens["brand"] != "#123456" {
		t.Fatalf("expected base token, got %q", cfg.Tokens["brand"])
	}
	if _, err := render.ResolveTheme(testManifest(), "neon"); !errors.Is(err, render.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	if cfg, err := render.ResolveTheme(nil, "dark"); cfg != nil || err != nil {
		t.Fatalf("nil manifest must resolve to nil")
	}
}
