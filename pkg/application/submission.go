package application

import "time"

// Submission is the validated snapshot handed to a sink once the form
// passes submission validation.
type Submission struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	Fields      Fields    `json:"application"`
	AgreeTerms  bool      `json:"agreeTerms"`
}

// Payload flattens the submission into the JSON object described by the
// submitApplication contract.
func (s Submission) Payload() map[string]any {
	payload := make(map[string]any, 10)
	for name, value := range s.Fields.Map() {
		payload[name] = value
	}
	payload[FieldAgreeTerms.String()] = s.AgreeTerms
	if s.ID != "" {
		payload["id"] = s.ID
	}
	if !s.SubmittedAt.IsZero() {
		payload["submittedAt"] = s.SubmittedAt.UTC().Format(time.RFC3339)
	}
	return payload
}
