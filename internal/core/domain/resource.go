package domain

import "encoding/json"

// Resource is the CMS's standard envelope for a single entity: a numeric id
// plus an attributes mapping. Relations appear inside Attributes as nested
// documents and may be null when not populated; consumers must tolerate both.
type Resource struct {
	ID         json.Number    `json:"id"`
	Attributes map[string]any `json:"attributes"`
}

// Document is the top-level shape of a CMS response. Data holds either a
// single resource or a list of them depending on the operation, so it is kept
// raw and passed through unmodified.
type Document struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

// Result is the uniform envelope the dispatcher returns to the browser.
// It is constructed in the error state and flipped to success only once the
// upstream payload is known to be defined.
type Result struct {
	Error   bool            `json:"error"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// NewResult returns the fail-safe default envelope.
func NewResult() Result {
	return Result{Error: true, Message: "Something bad happened!"}
}
