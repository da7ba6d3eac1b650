package ports

import (
	"context"
	"encoding/json"
)

// DashboardView is the render input for the projects overview.
type DashboardView struct {
	Projects json.RawMessage `json:"projects"`
}

// ProjectView is the render input for a single project with its tasks
// grouped by category.
type ProjectView struct {
	Project    json.RawMessage `json:"project"`
	Categories json.RawMessage `json:"categories"`
	Tasks      json.RawMessage `json:"tasks"`
}

// TaskView is the render input for a single task and its comment thread.
type TaskView struct {
	Task     json.RawMessage `json:"task"`
	Comments json.RawMessage `json:"comments"`
}

// PageService hydrates per-route render input at request time. Fetches are
// sequential and uncached; a page reload after each mutation is the
// consistency mechanism.
type PageService interface {
	Dashboard(ctx context.Context, token string) (*DashboardView, error)
	Project(ctx context.Context, token, projectID string) (*ProjectView, error)
	Task(ctx context.Context, token, taskID string) (*TaskView, error)
}
