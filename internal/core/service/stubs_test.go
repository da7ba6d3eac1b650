package service

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

type gatewayCall struct {
	model  string
	action domain.Action
	token  string
	id     string
	data   json.RawMessage
	query  url.Values
}

// stubGateway records every call and replays queued payloads in order.
type stubGateway struct {
	calls    []gatewayCall
	payloads []json.RawMessage
	err      error

	authResult *ports.AuthResult
	authErr    error

	registerPayload json.RawMessage
	registerErr     error
}

func (g *stubGateway) Invoke(_ context.Context, model string, action domain.Action, token, id string, data json.RawMessage, query url.Values) (json.RawMessage, error) {
	g.calls = append(g.calls, gatewayCall{model: model, action: action, token: token, id: id, data: data, query: query})
	if g.err != nil {
		return nil, g.err
	}
	if len(g.payloads) == 0 {
		return json.RawMessage(`{"data":null}`), nil
	}
	payload := g.payloads[0]
	g.payloads = g.payloads[1:]
	return payload, nil
}

func (g *stubGateway) SignIn(context.Context, string, string) (*ports.AuthResult, error) {
	return g.authResult, g.authErr
}

func (g *stubGateway) Register(context.Context, string, string, string) (json.RawMessage, error) {
	return g.registerPayload, g.registerErr
}

func (g *stubGateway) Ping(context.Context) error { return nil }

// stubSessionStore is an in-memory ports.SessionStore.
type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, session *domain.Session, _ time.Duration) error {
	clone := *session
	s.sessions[session.ID] = &clone
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

// stubDraftStore is an in-memory ports.DraftStore.
type stubDraftStore struct {
	drafts map[string]*domain.EditDraft
}

func newStubDraftStore() *stubDraftStore {
	return &stubDraftStore{drafts: make(map[string]*domain.EditDraft)}
}

func (s *stubDraftStore) Put(_ context.Context, sessionID string, draft *domain.EditDraft) error {
	s.drafts[sessionID] = draft
	return nil
}

func (s *stubDraftStore) Get(_ context.Context, sessionID string) (*domain.EditDraft, error) {
	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, domain.ErrNoActiveDraft
	}
	return draft, nil
}

func (s *stubDraftStore) Delete(_ context.Context, sessionID string) error {
	delete(s.drafts, sessionID)
	return nil
}
