// Package render defines the renderer contract for wizard views, a named
// renderer registry, hidden-field helpers, and the theme resolution that
// turns go-theme manifests into renderer configuration.
package render
