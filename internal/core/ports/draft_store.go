package ports

import (
	"context"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
)

// DraftStore holds at most one edit draft per session. Putting a draft
// replaces whatever was there before.
type DraftStore interface {
	Put(ctx context.Context, sessionID string, draft *domain.EditDraft) error
	Get(ctx context.Context, sessionID string) (*domain.EditDraft, error)
	Delete(ctx context.Context, sessionID string) error
}
