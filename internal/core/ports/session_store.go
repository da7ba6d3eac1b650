package ports

import (
	"context"
	"time"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
)

// SessionStore persists transient session records keyed by session id.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
