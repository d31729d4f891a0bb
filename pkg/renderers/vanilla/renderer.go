package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-jobform/pkg/render"
	rendertemplate "github.com/goliatone/go-jobform/pkg/render/template"
	gotemplate "github.com/goliatone/go-jobform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-jobform/pkg/wizard"
)

const (
	defaultTitle    = "Job Application"
	pageTemplate    = "page.tmpl"
	pagePartialKey  = "page"
	stylesheetAsset = "stylesheet"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	title            string
	policy           *bluemonday.Policy
	inlineCSS        bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTitle overrides the page heading.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			cfg.title = trimmed
		}
	}
}

// WithSanitizer replaces the policy applied to the terms notice.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithInlineStylesheet toggles embedding the default stylesheet when the
// theme does not provide one.
func WithInlineStylesheet(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineCSS = enabled
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	title     string
	policy    *bluemonday.Policy
	inlineCSS bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		title:      defaultTitle,
		inlineCSS:  true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.policy == nil {
		cfg.policy = bluemonday.UGCPolicy()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		title:     cfg.title,
		policy:    cfg.policy,
		inlineCSS: cfg.inlineCSS,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces a full HTML document for view.
func (r *Renderer) Render(_ context.Context, view wizard.View, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if view == nil {
		return nil, fmt.Errorf("vanilla renderer: view is nil")
	}

	data := map[string]any{
		"page": r.pageContext(opts),
	}
	switch v := view.(type) {
	case wizard.SubmittedView:
		data["submitted"] = submittedContext(v)
	case wizard.PersonalView:
		data["form"] = r.formContext(v.Kind(), v.Frame, personalFields(v), opts)
	case wizard.ExperienceView:
		data["form"] = r.formContext(v.Kind(), v.Frame, experienceFields(v), opts)
	case wizard.ReviewView:
		form := r.formContext(v.Kind(), v.Frame, nil, opts)
		form["sections"] = reviewContext(v.Sections)
		form["terms"] = termsField(v)
		form["termsHTML"] = r.termsNotice(opts)
		data["form"] = form
	default:
		return nil, fmt.Errorf("vanilla renderer: unsupported view %q", view.Kind())
	}

	result, err := r.templates.RenderTemplate(pageTemplateName(opts), data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// termsNotice returns the sanitised notice shown above the terms checkbox.
func (r *Renderer) termsNotice(opts render.RenderOptions) string {
	html := opts.TermsHTML
	if strings.TrimSpace(html) == "" && strings.TrimSpace(opts.TermsMarkdown) != "" {
		html = string(markdown.ToHTML([]byte(opts.TermsMarkdown), nil, nil))
	}
	if strings.TrimSpace(html) == "" {
		return ""
	}
	return strings.TrimSpace(r.policy.Sanitize(html))
}

func (r *Renderer) pageContext(opts render.RenderOptions) map[string]any {
	page := map[string]any{
		"title": r.title,
	}
	if cfg := opts.Theme; cfg != nil {
		page["theme"] = cfg.Theme
		page["variant"] = cfg.Variant
		page["style"] = render.CSSVarsStyle(cfg.CSSVars)
		if cfg.AssetURL != nil {
			if href := cfg.AssetURL(stylesheetAsset); href != "" {
				page["stylesheet"] = href
			}
		}
	}
	if _, linked := page["stylesheet"]; !linked && r.inlineCSS {
		page["inlineCSS"] = defaultStylesheet()
	}
	return page
}

func pageTemplateName(opts render.RenderOptions) string {
	if opts.Theme != nil {
		if name := strings.TrimSpace(opts.Theme.Partials[pagePartialKey]); name != "" {
			return name
		}
	}
	return pageTemplate
}
