package ports

import (
	"context"
	"encoding/json"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
)

// AuthService fronts the external credential provider: it signs users in,
// wraps the issued bearer token into a server-held session, and forwards
// registrations.
type AuthService interface {
	// SignIn authenticates against the CMS and returns the stored session
	// plus the signed cookie value identifying it.
	SignIn(ctx context.Context, email, password string) (*domain.Session, string, error)

	// SignOut discards the session record. Unknown ids are not an error.
	SignOut(ctx context.Context, sessionID string) error

	// Register forwards the payload to the CMS registration endpoint,
	// returning the created-account payload or an *UpstreamError verbatim.
	Register(ctx context.Context, username, email, password string) (json.RawMessage, error)

	// Resolve verifies a cookie value and loads the session it names.
	Resolve(ctx context.Context, cookie string) (*domain.Session, error)
}
