package services

import (
	"context"

	"taskboard/gateway"
	"taskboard/models"
)

// TaskService talks to the /tasks namespace.
type TaskService struct {
	gw *gateway.Gateway
}

// NewTaskService creates the task service.
func NewTaskService(gw *gateway.Gateway) *TaskService {
	return &TaskService{gw: gw}
}

// List fetches tasks matching the filter params.
func (s *TaskService) List(ctx context.Context, params models.QueryParams) (models.TaskPage, error) {
	var page models.TaskPage
	if err := s.gw.Get(ctx, "/tasks", params.Values(), &page); err != nil {
		return models.TaskPage{}, err
	}
	return page, nil
}

// Get fetches a single task by id.
func (s *TaskService) Get(ctx context.Context, id string) (models.Task, error) {
	var payload struct {
		Task models.Task `json:"task"`
	}
	if err := s.gw.Get(ctx, "/tasks/"+id, nil, &payload); err != nil {
		return models.Task{}, err
	}
	return payload.Task, nil
}

// Create adds a task. The server defaults status to pending and priority to
// medium when the request leaves them empty.
func (s *TaskService) Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	var payload struct {
		Task models.Task `json:"task"`
	}
	if err := s.gw.Post(ctx, "/tasks", req, &payload); err != nil {
		return models.Task{}, err
	}
	return payload.Task, nil
}

// Update modifies a task.
func (s *TaskService) Update(ctx context.Context, id string, req models.UpdateTaskRequest) (models.Task, error) {
	var payload struct {
		Task models.Task `json:"task"`
	}
	if err := s.gw.Put(ctx, "/tasks/"+id, req, &payload); err != nil {
		return models.Task{}, err
	}
	return payload.Task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.gw.Delete(ctx, "/tasks/"+id, nil)
}

// Stats fetches the aggregate counters shown on the dashboard.
func (s *TaskService) Stats(ctx context.Context) (models.TaskStats, error) {
	var payload struct {
		Stats models.TaskStats `json:"stats"`
	}
	if err := s.gw.Get(ctx, "/tasks/stats", nil, &payload); err != nil {
		return models.TaskStats{}, err
	}
	return payload.Stats, nil
}
