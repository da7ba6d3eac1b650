package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

// reservedQueryKeys are consumed by the dispatcher itself; everything else in
// the query string is forwarded to the CMS (populate, filters, sort).
var reservedQueryKeys = map[string]struct{}{
	"model":  {},
	"action": {},
	"id":     {},
}

// ActionHandler exposes the single generic pass-through endpoint mapping a
// (model, action) pair onto a CRUD call against the content API.
type ActionHandler struct {
	dispatch ports.DispatchService
}

func NewActionHandler(dispatch ports.DispatchService) *ActionHandler {
	return &ActionHandler{dispatch: dispatch}
}

type actionBody struct {
	Data json.RawMessage `json:"data"`
}

// Process handles POST /api/actions.
//
// @Summary      Dispatch a CRUD action against the content API
// @Tags         actions
// @Accept       json
// @Produce      json
// @Param        model   query     string      true   "Resource name (projects, tasks, categories, comments, users)"
// @Param        action  query     string      true   "One of find, findOne, create, update, delete"
// @Param        id      query     string      false  "Record id (required for findOne, update, delete)"
// @Param        body    body      actionBody  false  "Mutation payload under data"
// @Success      200     {object}  domain.Result
// @Failure      400     {object}  domain.Result
// @Router       /api/actions [post]
func (h *ActionHandler) Process(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var body actionBody
	if raw, readErr := io.ReadAll(c.Request().Body); readErr == nil && len(raw) > 0 {
		// A malformed body is tolerated the same way an empty one is: the
		// dispatcher's fail-safe envelope covers it.
		_ = json.Unmarshal(raw, &body)
	}

	query := url.Values{}
	for key, values := range c.QueryParams() {
		if _, reserved := reservedQueryKeys[key]; reserved {
			continue
		}
		query[key] = values
	}

	result := h.dispatch.Dispatch(c.Request().Context(), session, ports.DispatchInput{
		Model:  c.QueryParam("model"),
		Action: c.QueryParam("action"),
		ID:     c.QueryParam("id"),
		Data:   body.Data,
		Query:  query,
	})

	// One status-code bit plus the envelope: that is the whole contract.
	if result.Error {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusOK, result)
}
