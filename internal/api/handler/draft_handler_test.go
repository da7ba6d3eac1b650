package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
)

// stubDrafts implements ports.DraftService over a plain map keyed by session.
type stubDrafts struct {
	drafts map[string]*domain.EditDraft
}

func newStubDrafts() *stubDrafts {
	return &stubDrafts{drafts: make(map[string]*domain.EditDraft)}
}

func (s *stubDrafts) Begin(_ context.Context, sessionID, model, recordID string, current map[string]string) (*domain.EditDraft, error) {
	draft := domain.BeginDraft(model, recordID, current)
	s.drafts[sessionID] = draft
	return draft, nil
}

func (s *stubDrafts) SetField(_ context.Context, sessionID, name, value string) (*domain.EditDraft, error) {
	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, domain.ErrNoActiveDraft
	}
	draft.SetField(name, value)
	return draft, nil
}

func (s *stubDrafts) Current(_ context.Context, sessionID string) (*domain.EditDraft, error) {
	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, domain.ErrNoActiveDraft
	}
	return draft, nil
}

func (s *stubDrafts) Cancel(_ context.Context, sessionID string) error {
	delete(s.drafts, sessionID)
	return nil
}

func newDraftContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, "/api/drafts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", &domain.Session{ID: "s1", Token: "tok"})
	return c, rec
}

func TestDraftHandler_BeginEditCancel(t *testing.T) {
	store := newStubDrafts()
	h := NewDraftHandler(store)

	// Viewing -> Editing
	c, rec := newDraftContext(http.MethodPost, `{"model":"projects","record_id":"1","fields":{"title":"Alpha"}}`)
	if err := h.Begin(c); err != nil {
		t.Fatalf("Begin error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	// Editing -> Editing
	c, rec = newDraftContext(http.MethodPatch, `{"name":"title","value":"Beta"}`)
	if err := h.SetField(c); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if rec.Code != http.StatusOK || store.drafts["s1"].Fields["title"] != "Beta" {
		t.Fatalf("pending field not recorded: %+v", store.drafts["s1"])
	}

	// Editing -> Viewing (cancel): the draft vanishes, nothing else happens.
	c, rec = newDraftContext(http.MethodDelete, "")
	if err := h.Cancel(c); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if _, ok := store.drafts["s1"]; ok {
		t.Fatal("draft survived cancel")
	}
}

func TestDraftHandler_CurrentWithoutDraft(t *testing.T) {
	h := NewDraftHandler(newStubDrafts())

	c, rec := newDraftContext(http.MethodGet, "")
	if err := h.Current(c); err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204 for no active draft", rec.Code)
	}
}

func TestDraftHandler_SetFieldWithoutDraftConflicts(t *testing.T) {
	h := NewDraftHandler(newStubDrafts())

	c, rec := newDraftContext(http.MethodPatch, `{"name":"title","value":"x"}`)
	if err := h.SetField(c); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestDraftHandler_BeginRejectsUnknownModel(t *testing.T) {
	h := NewDraftHandler(newStubDrafts())

	c, rec := newDraftContext(http.MethodPost, `{"model":"invoices","record_id":"1"}`)
	if err := h.Begin(c); err != nil {
		t.Fatalf("Begin error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
