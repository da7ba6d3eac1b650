package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
)

// DraftStore holds the single edit draft a session may have in progress.
// Key format: draft:<session_id>
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore creates a DraftStore with the given draft TTL.
func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

// Put stores the draft, replacing any draft already active for the session.
func (s *DraftStore) Put(ctx context.Context, sessionID string, draft *domain.EditDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	return s.client.Set(ctx, s.key(sessionID), payload, s.ttl).Err()
}

// Get returns the active draft, or domain.ErrNoActiveDraft when the session
// is not editing anything.
func (s *DraftStore) Get(ctx context.Context, sessionID string) (*domain.EditDraft, error) {
	payload, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoActiveDraft
	}
	if err != nil {
		return nil, fmt.Errorf("draft lookup: %w", err)
	}

	var draft domain.EditDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("decoding draft: %w", err)
	}
	return &draft, nil
}

// Delete discards the draft without touching the underlying record.
func (s *DraftStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

func (s *DraftStore) key(sessionID string) string {
	return "draft:" + sessionID
}
