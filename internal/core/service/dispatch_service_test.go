package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

var testSession = &domain.Session{ID: "s1", Token: "tok", Username: "alice"}

func TestDispatch_CreateProject(t *testing.T) {
	gw := &stubGateway{payloads: []json.RawMessage{
		json.RawMessage(`{"data":{"id":9,"attributes":{"title":"Alpha"}}}`),
	}}
	svc := NewDispatchService(gw)

	result := svc.Dispatch(context.Background(), testSession, ports.DispatchInput{
		Model:  "projects",
		Action: "create",
		Data:   json.RawMessage(`{"title":"Alpha","description":"d","abbreviation":"AL"}`),
	})

	if result.Error {
		t.Fatalf("expected success, got error envelope: %s", result.Message)
	}
	if result.Message != "project has been successfully added!" {
		t.Errorf("message = %q", result.Message)
	}
	if len(result.Data) == 0 {
		t.Error("expected data attached to the envelope")
	}

	call := gw.calls[0]
	if call.action != domain.ActionCreate || call.model != "projects" {
		t.Errorf("gateway saw (%s, %s)", call.model, call.action)
	}
	if call.action.Method() != http.MethodPost || call.action.Path(call.model, "") != "/api/projects" {
		t.Error("create did not map to POST /api/projects")
	}
	if call.token != "tok" {
		t.Errorf("token = %q, want tok", call.token)
	}
}

func TestDispatch_DeleteTask(t *testing.T) {
	gw := &stubGateway{payloads: []json.RawMessage{
		json.RawMessage(`{"data":{"id":42}}`),
	}}
	svc := NewDispatchService(gw)

	result := svc.Dispatch(context.Background(), testSession, ports.DispatchInput{
		Model:  "tasks",
		Action: "delete",
		ID:     "42",
	})

	if result.Error {
		t.Fatalf("expected success, got %q", result.Message)
	}
	if result.Message != "task has been successfully deleted!" {
		t.Errorf("message = %q", result.Message)
	}

	call := gw.calls[0]
	if call.id != "42" || call.action.Path(call.model, call.id) != "/api/tasks/42" {
		t.Errorf("gateway call did not target /api/tasks/42: %+v", call)
	}
}

func TestDispatch_UpdateComment(t *testing.T) {
	gw := &stubGateway{payloads: []json.RawMessage{
		json.RawMessage(`{"data":{"id":3}}`),
	}}
	svc := NewDispatchService(gw)

	result := svc.Dispatch(context.Background(), testSession, ports.DispatchInput{
		Model:  "comments",
		Action: "update",
		ID:     "3",
		Data:   json.RawMessage(`{"content":"revised"}`),
	})

	if result.Error || result.Message != "comment has been successfully updated!" {
		t.Errorf("envelope = %+v", result)
	}
}

func TestDispatch_FindSucceedsSilently(t *testing.T) {
	gw := &stubGateway{payloads: []json.RawMessage{
		json.RawMessage(`{"data":[{"id":1},{"id":2}]}`),
	}}
	svc := NewDispatchService(gw)

	result := svc.Dispatch(context.Background(), testSession, ports.DispatchInput{
		Model:  "tasks",
		Action: "find",
	})

	if result.Error {
		t.Fatalf("expected success, got %q", result.Message)
	}
	// Reads are outside the verb table: no message, never a crash.
	if result.Message != "" {
		t.Errorf("message = %q, want empty", result.Message)
	}
	if !strings.HasPrefix(string(result.Data), "[") {
		t.Errorf("expected the raw collection under data, got %s", result.Data)
	}
}

func TestDispatch_RejectsMissingID(t *testing.T) {
	for _, action := range []string{"findOne", "update", "delete"} {
		gw := &stubGateway{}
		svc := NewDispatchService(gw)

		result := svc.Dispatch(context.Background(), testSession, ports.DispatchInput{
			Model:  "tasks",
			Action: action,
		})

		if !result.Error {
			t.Errorf("%s without id: expected error envelope", action)
		}
		if len(gw.calls) != 0 {
			t.Errorf("%s without id: gateway must not be called", action)
		}
	}
}

func TestDispatch_RejectsUnknownModelAndAction(t *testing.T) {
	gw := &stubGateway{}
	svc := NewDispatchService(gw)

	result := svc.Dispatch(context.Background(), testSession, ports.DispatchInput{Model: "invoices", Action: "find"})
	if !result.Error {
		t.Error("unknown model: expected error envelope")
	}

	result = svc.Dispatch(context.Background(), testSession, ports.DispatchInput{Model: "tasks", Action: "destroy"})
	if !result.Error {
		t.Error("unknown action: expected error envelope")
	}

	if len(gw.calls) != 0 {
		t.Error("rejected requests must never reach the gateway")
	}
}

func TestDispatch_UpstreamFailureKeepsDefaultEnvelope(t *testing.T) {
	gw := &stubGateway{err: errors.New("connection refused")}
	svc := NewDispatchService(gw)

	result := svc.Dispatch(context.Background(), testSession, ports.DispatchInput{
		Model:  "projects",
		Action: "create",
		Data:   json.RawMessage(`{"title":"x"}`),
	})

	if !result.Error {
		t.Fatal("expected error envelope")
	}
	// The generic fail-safe message, not upstream detail.
	if result.Message != "Something bad happened!" {
		t.Errorf("message = %q", result.Message)
	}
	if result.Data != nil {
		t.Error("error envelope must carry no data")
	}
}
