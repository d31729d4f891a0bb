package submission

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-jobform/pkg/application"
)

// Format controls how a submission is serialised.
type Format string

const (
	// FormatJSON emits application/json payloads.
	FormatJSON Format = "json"
	// FormatForm emits application/x-www-form-urlencoded payloads.
	FormatForm Format = "form"
	// FormatPretty emits a human-friendly key=value summary.
	FormatPretty Format = "pretty"
)

// ParseFormat resolves a format name. Empty input selects JSON.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatForm:
		return FormatForm, nil
	case FormatPretty:
		return FormatPretty, nil
	default:
		return "", fmt.Errorf("submission: unknown format %q", raw)
	}
}

// ContentType reports the MIME type produced by Encode.
func (f Format) ContentType() string {
	switch f {
	case FormatForm:
		return "application/x-www-form-urlencoded"
	case FormatPretty:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Encode serialises the flattened submission payload.
func Encode(format Format, submission application.Submission) ([]byte, error) {
	payload := submission.Payload()
	switch format {
	case FormatForm:
		return []byte(flattenForm(payload)), nil
	case FormatPretty:
		return []byte(prettyPrint(payload)), nil
	case FormatJSON, "":
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("submission: encode json: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("submission: unknown format %q", format)
	}
}

func flattenForm(values map[string]any) string {
	flattened := url.Values{}
	for key, value := range values {
		flattened.Set(key, fmt.Sprint(value))
	}
	return flattened.Encode()
}

func prettyPrint(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s=%v\n", key, values[key])
	}
	return b.String()
}
