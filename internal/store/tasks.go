package store

import (
	"context"
	"sync"

	"taskpad/internal/service"
)

// TaskStore owns the in-memory task collection for the current session.
// The collection is ordered most-recent-first; the service's id
// assignment guarantees no duplicates within it. The lock is never held
// across a network call, so an in-flight request leaves the previous
// collection readable.
type TaskStore struct {
	svc service.TaskService

	mu      sync.Mutex
	tasks   []service.Task
	loading bool
	err     string
}

// NewTaskStore creates a task store over the given task service.
func NewTaskStore(svc service.TaskService) *TaskStore {
	return &TaskStore{svc: svc}
}

// FetchAll replaces the whole collection with the service's response —
// a full refresh, not a merge. On failure the previous collection stays
// untouched and Err carries the message. The store never fetches on its
// own: the owner calls this once when the session is established and
// again whenever it wants to resynchronize (for instance after the
// assistant may have changed tasks server-side).
func (s *TaskStore) FetchAll(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	tasks, err := s.svc.ListTasks(ctx)
	if err != nil {
		s.fail(err)
		return
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
}

// Add asks the service to create a task and prepends the canonical
// result, id included. The append is non-optimistic: nothing changes
// locally until the service has answered, so callers must gate
// follow-up actions on the returned bool rather than on having called.
// Title validation (non-empty, trimmed) is the caller's responsibility.
func (s *TaskStore) Add(ctx context.Context, title, description string) bool {
	s.clearErrState()

	task, err := s.svc.CreateTask(ctx, title, description)
	if err != nil {
		s.fail(err)
		return false
	}

	s.mu.Lock()
	s.tasks = append([]service.Task{task}, s.tasks...)
	s.mu.Unlock()
	return true
}

// Update sends a partial patch and replaces the matching local entry
// with the task the service returned. The response is authoritative:
// replacing wholesale keeps the store aligned even when the service
// applies side effects beyond the patch. An id with no local entry
// still goes to the service; on success the replace is then a no-op and
// a later fetch reconciles.
func (s *TaskStore) Update(ctx context.Context, id int64, patch service.TaskPatch) bool {
	s.clearErrState()

	task, err := s.svc.PatchTask(ctx, id, patch)
	if err != nil {
		s.fail(err)
		return false
	}

	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = task
			break
		}
	}
	s.mu.Unlock()
	return true
}

// Delete removes the task remotely, then locally. On failure the entry
// stays present and Err carries the message.
func (s *TaskStore) Delete(ctx context.Context, id int64) bool {
	s.clearErrState()

	if err := s.svc.RemoveTask(ctx, id); err != nil {
		s.fail(err)
		return false
	}

	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return true
}

// ClearError clears Err without side effects. Idempotent.
func (s *TaskStore) ClearError() {
	s.clearErrState()
}

// Tasks returns a snapshot of the collection, most recent first.
func (s *TaskStore) Tasks() []service.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]service.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Loading reports whether a fetch is in flight.
func (s *TaskStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last operation's failure message, or empty.
func (s *TaskStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *TaskStore) clearErrState() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *TaskStore) fail(err error) {
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
}
