package ports

import (
	"context"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
)

// DraftService tracks the single record a session is currently editing.
// Begin replaces any active draft; Cancel discards without side effects on
// the underlying record.
type DraftService interface {
	Begin(ctx context.Context, sessionID, model, recordID string, current map[string]string) (*domain.EditDraft, error)
	SetField(ctx context.Context, sessionID, name, value string) (*domain.EditDraft, error)
	Current(ctx context.Context, sessionID string) (*domain.EditDraft, error)
	Cancel(ctx context.Context, sessionID string) error
}
