package openapi

import _ "embed"

//go:embed contract/applications.yaml
var embeddedContract []byte

// ContractDocument returns a copy of the embedded OpenAPI document.
func ContractDocument() []byte {
	return append([]byte(nil), embeddedContract...)
}
