package domain

import "errors"

var ErrNoActiveDraft = errors.New("no active edit draft")

// EditDraft holds the pending field values for the one record currently being
// edited in a session. A nil *EditDraft means no edit is in progress, which
// makes the "at most one active edit" invariant an explicit optional value
// rather than an ad hoc mutable object.
type EditDraft struct {
	Model    string            `json:"model"`
	RecordID string            `json:"record_id"`
	Fields   map[string]string `json:"fields"`
}

// BeginDraft starts editing a record, pre-populated with its current values.
// Starting a draft while another is active replaces it: editing a second
// record implicitly discards the first, matching the dashboard's behavior.
func BeginDraft(model, recordID string, current map[string]string) *EditDraft {
	fields := make(map[string]string, len(current))
	for k, v := range current {
		fields[k] = v
	}
	return &EditDraft{Model: model, RecordID: recordID, Fields: fields}
}

// SetField records a pending value while the draft stays in the editing state.
func (d *EditDraft) SetField(name, value string) {
	if d.Fields == nil {
		d.Fields = make(map[string]string)
	}
	d.Fields[name] = value
}

// Matches reports whether the draft targets the given record.
func (d *EditDraft) Matches(model, recordID string) bool {
	return d != nil && d.Model == model && d.RecordID == recordID
}
