package config

import (
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-jobform/pkg/render"
)

const defaultThemeVersion = "1.0.0"

// ThemeConfig declares a go-theme manifest inline. An empty Name disables
// theming.
type ThemeConfig struct {
	Name      string                        `yaml:"name" env:"JOBFORM_THEME"`
	Variant   string                        `yaml:"variant" env:"JOBFORM_THEME_VARIANT"`
	Version   string                        `yaml:"version"`
	Tokens    map[string]string             `yaml:"tokens"`
	Templates map[string]string             `yaml:"templates"`
	Assets    ThemeAssets                   `yaml:"assets"`
	Variants  map[string]ThemeVariantConfig `yaml:"variants"`
}

// ThemeAssets maps asset keys (e.g. "stylesheet") to files under Prefix.
type ThemeAssets struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

// ThemeVariantConfig overrides parts of the base theme.
type ThemeVariantConfig struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    ThemeAssets       `yaml:"assets"`
}

// Manifest converts the section into a go-theme manifest and registers it
// with a fresh registry so malformed manifests are rejected. It returns nil
// when theming is disabled.
func (t ThemeConfig) Manifest() (*theme.Manifest, error) {
	if t.Name == "" {
		return nil, nil
	}

	version := t.Version
	if version == "" {
		version = defaultThemeVersion
	}
	manifest := &theme.Manifest{
		Name:      t.Name,
		Version:   version,
		Tokens:    t.Tokens,
		Templates: t.Templates,
		Assets:    theme.Assets{Prefix: t.Assets.Prefix, Files: t.Assets.Files},
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for name, variant := range t.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    theme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
			}
		}
	}

	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("theme %q: %w", t.Name, err)
	}
	if t.Variant != "" {
		if _, ok := manifest.Variants[t.Variant]; !ok {
			return nil, fmt.Errorf("theme %q: %w: %q", t.Name, render.ErrUnknownVariant, t.Variant)
		}
	}
	return manifest, nil
}

// RendererConfig resolves the configured theme and variant for renderers.
func (t ThemeConfig) RendererConfig() (*theme.RendererConfig, error) {
	manifest, err := t.Manifest()
	if err != nil || manifest == nil {
		return nil, err
	}
	return render.ResolveTheme(manifest, t.Variant)
}
