package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

// DraftHandler exposes the edit-draft state machine: Viewing -> Editing via
// Begin, Editing -> Editing via SetField, Editing -> Viewing via Cancel.
// Committing a draft goes through the action dispatcher (update), after
// which the client cancels the draft and reloads the page.
type DraftHandler struct {
	drafts ports.DraftService
}

func NewDraftHandler(drafts ports.DraftService) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

type beginDraftRequest struct {
	Model    string            `json:"model"     validate:"required"`
	RecordID string            `json:"record_id" validate:"required"`
	Fields   map[string]string `json:"fields"`
}

type setFieldRequest struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

// Begin handles POST /api/drafts.
func (h *DraftHandler) Begin(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req beginDraftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if !domain.ValidModel(req.Model) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown model"})
	}

	draft, err := h.drafts.Begin(c.Request().Context(), session.ID, req.Model, req.RecordID, req.Fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, draft)
}

// SetField handles PATCH /api/drafts.
func (h *DraftHandler) SetField(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req setFieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	draft, err := h.drafts.SetField(c.Request().Context(), session.ID, req.Name, req.Value)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveDraft) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "no active edit draft"})
		}
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// Current handles GET /api/drafts.
func (h *DraftHandler) Current(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	draft, err := h.drafts.Current(c.Request().Context(), session.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveDraft) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// Cancel handles DELETE /api/drafts: discards the draft without any upstream
// call, leaving the record exactly as it was.
func (h *DraftHandler) Cancel(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.drafts.Cancel(c.Request().Context(), session.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
