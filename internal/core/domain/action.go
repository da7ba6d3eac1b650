package domain

import (
	"errors"
	"net/http"
)

// Action is one of the five abstract CRUD operations the dispatcher supports.
type Action string

const (
	ActionFind    Action = "find"
	ActionFindOne Action = "findOne"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
)

var ErrUnknownAction = errors.New("unknown action")
var ErrUnknownModel = errors.New("unknown model")
var ErrMissingRecordID = errors.New("record id is required for this action")
var ErrMissingToken = errors.New("missing bearer token")

// knownModels is the closed set of CMS resources this layer fronts.
var knownModels = map[string]struct{}{
	"projects":   {},
	"tasks":      {},
	"categories": {},
	"comments":   {},
	"users":      {},
}

// ParseAction validates a raw action name from the query string.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionFind, ActionFindOne, ActionCreate, ActionUpdate, ActionDelete:
		return Action(s), nil
	default:
		return "", ErrUnknownAction
	}
}

// ValidModel reports whether the model names a known CMS resource.
func ValidModel(model string) bool {
	_, ok := knownModels[model]
	return ok
}

// RequiresID reports whether the action targets a single record.
func (a Action) RequiresID() bool {
	switch a {
	case ActionFindOne, ActionUpdate, ActionDelete:
		return true
	default:
		return false
	}
}

// Method returns the HTTP verb the action maps to against the CMS.
func (a Action) Method() string {
	switch a {
	case ActionCreate:
		return http.MethodPost
	case ActionUpdate:
		return http.MethodPut
	case ActionDelete:
		return http.MethodDelete
	default: // find, findOne
		return http.MethodGet
	}
}

// Path returns the CMS endpoint path for a model and optional record id.
// Collection actions use /api/{model}; single-record actions append the id.
func (a Action) Path(model, id string) string {
	p := "/api/" + model
	if a.RequiresID() {
		p += "/" + id
	}
	return p
}

// HasBody reports whether the upstream request carries a JSON body.
func (a Action) HasBody() bool {
	return a == ActionCreate || a == ActionUpdate
}

// Verb returns the past-tense verb used in success messages for mutating
// actions. Reads have no verb; ok is false for them.
func (a Action) Verb() (string, bool) {
	switch a {
	case ActionCreate:
		return "added", true
	case ActionUpdate:
		return "updated", true
	case ActionDelete:
		return "deleted", true
	default:
		return "", false
	}
}

// Singularize derives the singular display name of a model by stripping the
// trailing pluralizing character ("projects" -> "project").
func Singularize(model string) string {
	if len(model) == 0 {
		return model
	}
	return model[:len(model)-1]
}
