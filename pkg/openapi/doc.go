// Package openapi loads the OpenAPI description of the application intake
// endpoint and validates outgoing submission payloads against it. The
// kin-openapi types stay behind Contract so sinks only deal with plain maps.
package openapi
