package ports

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
)

// DispatchInput is the decoded action request: a (model, action) pair plus
// the optional record id, body data, and query parameters.
type DispatchInput struct {
	Model  string
	Action string
	ID     string
	Data   json.RawMessage
	Query  url.Values
}

// DispatchService translates an action request into a gateway call and
// normalizes the outcome into the uniform result envelope.
type DispatchService interface {
	Dispatch(ctx context.Context, session *domain.Session, in DispatchInput) domain.Result
}
