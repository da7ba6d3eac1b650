package ports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
)

// ResourceGateway executes abstract CRUD operations against the external
// content API. Each call is a single network round trip: no retry, no
// backoff, no caching.
type ResourceGateway interface {
	// Invoke maps (model, action) onto an HTTP call, attaches the bearer
	// token, and returns the raw upstream payload unmodified. On a non-2xx
	// response the payload is still returned, alongside an *UpstreamError,
	// so callers can inspect the upstream error body.
	Invoke(ctx context.Context, model string, action domain.Action, token, id string, data json.RawMessage, query url.Values) (json.RawMessage, error)

	// SignIn exchanges credentials for a CMS-issued bearer token.
	SignIn(ctx context.Context, identifier, password string) (*AuthResult, error)

	// Register forwards a registration payload to the CMS. On upstream
	// rejection the returned error is an *UpstreamError carrying the
	// upstream status and body verbatim.
	Register(ctx context.Context, username, email, password string) (json.RawMessage, error)

	// Ping checks reachability of the CMS for readiness probes.
	Ping(ctx context.Context) error
}

// AuthResult is the CMS's response to a successful credential exchange.
type AuthResult struct {
	JWT  string   `json:"jwt"`
	User AuthUser `json:"user"`
}

type AuthUser struct {
	ID       json.Number `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
}

// UpstreamError carries a non-2xx upstream response so the caller can decide
// whether to surface or swallow it ("error as data").
type UpstreamError struct {
	Status int
	Body   json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned HTTP %d", e.Status)
}
