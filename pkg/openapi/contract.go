package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// SubmitOperationID names the operation that receives completed forms.
const SubmitOperationID = "submitApplication"

const jsonContentType = "application/json"

var (
	// ErrOperationNotFound is returned when the document does not declare the
	// submit operation.
	ErrOperationNotFound = errors.New("openapi: submit operation not found")
	// ErrPayloadRejected wraps schema violations reported for a payload.
	ErrPayloadRejected = errors.New("openapi: payload rejected by contract")
)

// Operation describes where submissions are sent.
type Operation struct {
	ID      string
	Method  string
	Path    string
	Summary string
}

// Contract wraps the parsed document and the request schema of the submit
// operation.
type Contract struct {
	operation Operation
	schema    *openapi3.Schema
}

var (
	defaultOnce     sync.Once
	defaultContract *Contract
	defaultErr      error
)

// DefaultContract parses the embedded document once and caches the result.
func DefaultContract() (*Contract, error) {
	defaultOnce.Do(func() {
		defaultContract, defaultErr = LoadContract(context.Background(), embeddedContract)
	})
	return defaultContract, defaultErr
}

// LoadContract parses raw (JSON or YAML), validates the document, and
// extracts the submitApplication request schema.
func LoadContract(ctx context.Context, raw []byte) (*Contract, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: contract document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load contract: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate contract: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("openapi: contract does not contain any paths")
	}

	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil || op.OperationID != SubmitOperationID {
				continue
			}
			schema, err := requestSchema(op)
			if err != nil {
				return nil, err
			}
			return &Contract{
				operation: Operation{
					ID:      op.OperationID,
					Method:  strings.ToUpper(method),
					Path:    path,
					Summary: op.Summary,
				},
				schema: schema,
			}, nil
		}
	}
	return nil, ErrOperationNotFound
}

func requestSchema(op *openapi3.Operation) (*openapi3.Schema, error) {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q has no request body", op.OperationID)
	}
	media := op.RequestBody.Value.Content.Get(jsonContentType)
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q has no %s schema", op.OperationID, jsonContentType)
	}
	return media.Schema.Value, nil
}

// Operation reports the method and path of the submit operation.
func (c *Contract) Operation() Operation {
	if c == nil {
		return Operation{}
	}
	return c.operation
}

// Required lists the properties the request schema marks as required.
func (c *Contract) Required() []string {
	if c == nil || c.schema == nil {
		return nil
	}
	return append([]string(nil), c.schema.Required...)
}

// ValidatePayload checks payload against the request schema. Violations are
// reported together and wrap ErrPayloadRejected.
func (c *Contract) ValidatePayload(payload map[string]any) error {
	if c == nil || c.schema == nil {
		return errors.New("openapi: contract is nil")
	}
	if err := c.schema.VisitJSON(payload, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%w: %v", ErrPayloadRejected, err)
	}
	return nil
}
