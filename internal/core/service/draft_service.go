package service

import (
	"context"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

// DraftService tracks the single record a session is editing. The draft is
// purely presentational state: committing goes through the dispatcher, and
// cancelling discards the draft without any upstream call, leaving the
// record untouched. Concurrent edits by other users are not detected;
// last write wins at the CMS.
type DraftService struct {
	drafts ports.DraftStore
}

func NewDraftService(drafts ports.DraftStore) *DraftService {
	return &DraftService{drafts: drafts}
}

// Begin opens a draft pre-populated with the record's current values.
// An already-active draft for a different record is replaced.
func (s *DraftService) Begin(ctx context.Context, sessionID, model, recordID string, current map[string]string) (*domain.EditDraft, error) {
	draft := domain.BeginDraft(model, recordID, current)
	if err := s.drafts.Put(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetField records a pending value on the active draft.
func (s *DraftService) SetField(ctx context.Context, sessionID, name, value string) (*domain.EditDraft, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft.SetField(name, value)
	if err := s.drafts.Put(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Current returns the active draft, or domain.ErrNoActiveDraft.
func (s *DraftService) Current(ctx context.Context, sessionID string) (*domain.EditDraft, error) {
	return s.drafts.Get(ctx, sessionID)
}

// Cancel discards the active draft. Cancelling with no draft is a no-op.
func (s *DraftService) Cancel(ctx context.Context, sessionID string) error {
	return s.drafts.Delete(ctx, sessionID)
}

var _ ports.DraftService = (*DraftService)(nil)
