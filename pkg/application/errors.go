package application

import "sort"

// FieldErrors maps a field to its current validation message. A missing key
// means the field has no error.
type FieldErrors map[FieldName]string

// Get returns the message for name and whether one is set.
func (e FieldErrors) Get(name FieldName) (string, bool) {
	msg, ok := e[name]
	return msg, ok
}

// Has reports whether name carries an error.
func (e FieldErrors) Has(name FieldName) bool {
	_, ok := e[name]
	return ok
}

// Message returns the message for name or an empty string.
func (e FieldErrors) Message(name FieldName) string {
	return e[name]
}

// Set records msg for name. An empty msg clears the entry.
func (e FieldErrors) Set(name FieldName, msg string) {
	if msg == "" {
		delete(e, name)
		return
	}
	e[name] = msg
}

// Clear removes any error recorded for name.
func (e FieldErrors) Clear(name FieldName) {
	delete(e, name)
}

// Merge copies every entry of other into e, overwriting existing messages.
// Fields absent from other keep their current state.
func (e FieldErrors) Merge(other FieldErrors) {
	for name, msg := range other {
		e.Set(name, msg)
	}
}

// Len reports the number of fields with errors.
func (e FieldErrors) Len() int {
	return len(e)
}

// Names returns the fields with errors in lexical order.
func (e FieldErrors) Names() []FieldName {
	if len(e) == 0 {
		return nil
	}
	out := make([]FieldName, 0, len(e))
	for name := range e {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy.
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for name, msg := range e {
		out[name] = msg
	}
	return out
}

// Strings returns the errors keyed by plain field name, the shape used in
// JSON responses and template contexts.
func (e FieldErrors) Strings() map[string]string {
	out := make(map[string]string, len(e))
	for name, msg := range e {
		out[string(name)] = msg
	}
	return out
}
