// Package tasklist keeps the dashboard's view of the task list.
//
// The snapshot always reflects the last successful fetch. Mutations round-trip
// to the server and then refetch the whole list; nothing is ever patched in
// place, so the UI can never show a locally-guessed post-mutation state.
package tasklist

import (
	"context"
	"sync"

	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	"taskboard/models"
)

// TaskAPI is the slice of the task service the store drives.
type TaskAPI interface {
	List(ctx context.Context, params models.QueryParams) (models.TaskPage, error)
	Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)
	Update(ctx context.Context, id string, req models.UpdateTaskRequest) (models.Task, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (models.TaskStats, error)
}

// Store holds the last fetched task list plus the params it was fetched with.
type Store struct {
	mu      sync.Mutex
	api     TaskAPI
	tasks   []models.Task
	count   int
	loading bool
	params  models.QueryParams
	seq     uint64
}

// New creates an empty store.
func New(api TaskAPI) *Store {
	return &Store{api: api}
}

// SetParams records new filter params and refetches with them.
func (s *Store) SetParams(ctx context.Context, params models.QueryParams) {
	s.mu.Lock()
	s.params = params
	s.mu.Unlock()
	s.Refresh(ctx)
}

// Refresh refetches the list with the current params. Overlapping refreshes
// are sequenced: a response belonging to a superseded refresh is discarded so
// a slow old fetch can never clobber a newer one.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.seq++
	mine := s.seq
	params := s.params
	s.loading = true
	s.mu.Unlock()

	page, err := s.api.List(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if mine != s.seq {
		logger.Debug("discarding stale task fetch", zap.Uint64("seq", mine))
		return
	}
	s.loading = false
	if err != nil {
		// Gateway already surfaced the failure; show an empty list rather
		// than a snapshot that no longer matches the filters.
		s.tasks = nil
		s.count = 0
		return
	}
	s.tasks = page.Tasks
	s.count = page.Count
}

// Create adds a task and refetches. The created task is returned for callers
// that want its id, but the visible list only changes via the refetch.
func (s *Store) Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	task, err := s.api.Create(ctx, req)
	if err != nil {
		return models.Task{}, err
	}
	s.Refresh(ctx)
	return task, nil
}

// Update modifies a task and refetches.
func (s *Store) Update(ctx context.Context, id string, req models.UpdateTaskRequest) (models.Task, error) {
	task, err := s.api.Update(ctx, id, req)
	if err != nil {
		return models.Task{}, err
	}
	s.Refresh(ctx)
	return task, nil
}

// Delete removes a task and refetches.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// Stats fetches the aggregate counters. Not cached; the dashboard asks on
// every render.
func (s *Store) Stats(ctx context.Context) (models.TaskStats, error) {
	return s.api.Stats(ctx)
}

// Snapshot returns a copy of the current list and its server-side count.
func (s *Store) Snapshot() ([]models.Task, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks, s.count
}

// Loading reports whether a refresh is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
