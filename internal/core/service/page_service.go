package service

import (
	"context"
	"net/url"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

// PageService hydrates per-route render input. Each page issues its gateway
// calls sequentially and passes the raw payloads through; the browser
// re-fetches the whole page after every mutation, so nothing is cached or
// merged here.
type PageService struct {
	gateway ports.ResourceGateway
}

func NewPageService(gateway ports.ResourceGateway) *PageService {
	return &PageService{gateway: gateway}
}

func (s *PageService) Dashboard(ctx context.Context, token string) (*ports.DashboardView, error) {
	projects, err := s.gateway.Invoke(ctx, "projects", domain.ActionFind, token, "", nil, url.Values{
		"populate": {"*"},
	})
	if err != nil {
		return nil, err
	}
	return &ports.DashboardView{Projects: projects}, nil
}

func (s *PageService) Project(ctx context.Context, token, projectID string) (*ports.ProjectView, error) {
	project, err := s.gateway.Invoke(ctx, "projects", domain.ActionFindOne, token, projectID, nil, nil)
	if err != nil {
		return nil, err
	}

	categories, err := s.gateway.Invoke(ctx, "categories", domain.ActionFind, token, "", nil, nil)
	if err != nil {
		return nil, err
	}

	tasks, err := s.gateway.Invoke(ctx, "tasks", domain.ActionFind, token, "", nil, url.Values{
		"populate":                  {"*"},
		"filters[project][id][$eq]": {projectID},
	})
	if err != nil {
		return nil, err
	}

	return &ports.ProjectView{Project: project, Categories: categories, Tasks: tasks}, nil
}

func (s *PageService) Task(ctx context.Context, token, taskID string) (*ports.TaskView, error) {
	task, err := s.gateway.Invoke(ctx, "tasks", domain.ActionFindOne, token, taskID, nil, nil)
	if err != nil {
		return nil, err
	}

	comments, err := s.gateway.Invoke(ctx, "comments", domain.ActionFind, token, "", nil, url.Values{
		"populate":               {"*"},
		"filters[task][id][$eq]": {taskID},
		"sort":                   {"createdAt:desc"},
	})
	if err != nil {
		return nil, err
	}

	return &ports.TaskView{Task: task, Comments: comments}, nil
}

var _ ports.PageService = (*PageService)(nil)
