package gotemplate_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-jobform/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	files := fstest.MapFS{
		"greeting.tmpl": {Data: []byte(`Hello {{ name|trim }}{% if title %}, {{ title }}{% endif %}`)},
		"list.tmpl":     {Data: []byte(`{% for item in items %}[{{ item.label }}]{% endfor %}`)},
		"brand.tmpl":    {Data: []byte(`{{ brand }}`)},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without templates source")
	}
}

func TestRenderTemplateAppendsExtension(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	got, err := engine.RenderTemplate("greeting", map[string]any{"name": "  Ada  ", "title": "Engineer"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada, Engineer" {
		t.Fatalf("unexpected output %q", got)
	}
	if buf.String() != got {
		t.Fatalf("writer mismatch: %q", buf.String())
	}
}

func TestRenderTemplateConvertsStructs(t *testing.T) {
	engine := newEngine(t)

	type item struct {
		Label string `json:"label"`
	}
	data := struct {
		Items []item `json:"items"`
	}{Items: []item{{Label: "a"}, {Label: "b"}}}

	got, err := engine.RenderTemplate("list.tmpl", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "[a][b]" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestGlobalData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{"brand": "Acme"}))

	got, err := engine.RenderTemplate("brand", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Acme" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderString(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString(`{{ a }}-{{ b }}`, map[string]any{"a": 1, "b": "two"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "1-two" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine := newEngine(t)

	err := engine.RegisterFilter("jobform_shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s) + "!", nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.RenderString(`{{ word|jobform_shout }}`, map[string]any{"word": "next"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "NEXT!" {
		t.Fatalf("unexpected output %q", got)
	}

	if err := engine.RegisterFilter("jobform_shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}
