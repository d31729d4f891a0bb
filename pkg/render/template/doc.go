// Package template defines the template engine seam renderers depend on. The
// gotemplate subpackage provides the pongo2-backed implementation used by the
// vanilla HTML renderer; callers may inject their own engine instead.
package template
