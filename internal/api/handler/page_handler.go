package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

// PageHandler serves per-route render input: each endpoint hydrates one page
// of the dashboard from the content API at request time. These are boundary
// plumbing — the browser renders them and re-fetches after every mutation.
type PageHandler struct {
	pages ports.PageService
}

func NewPageHandler(pages ports.PageService) *PageHandler {
	return &PageHandler{pages: pages}
}

// Dashboard handles GET /api/pages/dashboard — all projects with relations.
//
// @Summary      Hydrate the projects overview
// @Tags         pages
// @Produce      json
// @Success      200  {object}  ports.DashboardView
// @Router       /api/pages/dashboard [get]
func (h *PageHandler) Dashboard(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	view, err := h.pages.Dashboard(c.Request().Context(), session.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Project handles GET /api/pages/projects/:project_id — one project, the
// category list, and the project's tasks.
//
// @Summary      Hydrate a project detail page
// @Tags         pages
// @Produce      json
// @Param        project_id  path      string  true  "Project id"
// @Success      200         {object}  ports.ProjectView
// @Router       /api/pages/projects/{project_id} [get]
func (h *PageHandler) Project(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	view, err := h.pages.Project(c.Request().Context(), session.Token, c.Param("project_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Task handles GET /api/pages/tasks/:task_id — one task and its comments,
// newest first.
//
// @Summary      Hydrate a task detail page
// @Tags         pages
// @Produce      json
// @Param        task_id  path      string  true  "Task id"
// @Success      200      {object}  ports.TaskView
// @Router       /api/pages/tasks/{task_id} [get]
func (h *PageHandler) Task(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	view, err := h.pages.Task(c.Request().Context(), session.Token, c.Param("task_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
