// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"taskpad/internal/service"
)

// FakeService is an in-memory implementation of service.Service for
// testing. Tasks are stored oldest-first and listed newest-first, the
// same ordering the real service applies.
type FakeService struct {
	mu       sync.Mutex
	nextID   int64
	tasks    []service.Task
	accounts map[string]string // email -> password

	// Error injection for testing
	AuthenticateErr  error
	CreateAccountErr error
	ListTasksErr     error
	CreateTaskErr    error
	PatchTaskErr     error
	RemoveTaskErr    error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		nextID:   1,
		accounts: make(map[string]string),
	}
}

// AddAccount seeds an account the fake will authenticate.
func (f *FakeService) AddAccount(email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[email] = password
}

// SeedTask adds a task directly to the fake's storage, bypassing the
// service contract, and returns it.
func (f *FakeService) SeedTask(title, description string, completed bool) service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	task := service.Task{
		ID:          f.nextID,
		Title:       title,
		Description: description,
		IsCompleted: completed,
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task
}

// IDs returns the stored task ids newest-first, as a fetch would see
// them. Useful for drift checks against a store's local collection.
func (f *FakeService) IDs() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0, len(f.tasks))
	for i := len(f.tasks) - 1; i >= 0; i-- {
		ids = append(ids, f.tasks[i].ID)
	}
	return ids
}

// Authenticate implements service.Authenticator.
func (f *FakeService) Authenticate(ctx context.Context, identity, secret string) (string, error) {
	if f.AuthenticateErr != nil {
		return "", f.AuthenticateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	password, ok := f.accounts[identity]
	if !ok || password != secret {
		return "", &service.RequestError{Status: 401, Message: "Invalid email or password"}
	}
	return "token-" + identity, nil
}

// CreateAccount implements service.Authenticator.
func (f *FakeService) CreateAccount(ctx context.Context, identity, secret string) error {
	if f.CreateAccountErr != nil {
		return f.CreateAccountErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[identity]; ok {
		return &service.RequestError{Status: 400, Message: "Email already registered"}
	}
	f.accounts[identity] = secret
	return nil
}

// ListTasks implements service.TaskService.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]service.Task, 0, len(f.tasks))
	for i := len(f.tasks) - 1; i >= 0; i-- {
		result = append(result, f.tasks[i])
	}
	return result, nil
}

// CreateTask implements service.TaskService.
func (f *FakeService) CreateTask(ctx context.Context, title, description string) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	task := service.Task{
		ID:          f.nextID,
		Title:       title,
		Description: description,
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// PatchTask implements service.TaskService. Like the real service it
// echoes the full task it now stores.
func (f *FakeService) PatchTask(ctx context.Context, id int64, patch service.TaskPatch) (service.Task, error) {
	if f.PatchTaskErr != nil {
		return service.Task{}, f.PatchTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			f.tasks[i].Title = *patch.Title
		}
		if patch.Description != nil {
			f.tasks[i].Description = *patch.Description
		}
		if patch.IsCompleted != nil {
			f.tasks[i].IsCompleted = *patch.IsCompleted
		}
		return f.tasks[i], nil
	}
	return service.Task{}, &service.RequestError{Status: 404, Message: "Task not found"}
}

// RemoveTask implements service.TaskService.
func (f *FakeService) RemoveTask(ctx context.Context, id int64) error {
	if f.RemoveTaskErr != nil {
		return f.RemoveTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &service.RequestError{Status: 404, Message: "Task not found"}
}

// FakeAssistant is an in-memory service.Assistant for testing.
type FakeAssistant struct {
	mu sync.Mutex

	// Reply is returned from Send when Err is nil.
	Reply string

	// Err, when set, fails every Send.
	Err error

	// LastIdentity and LastText record the most recent Send.
	LastIdentity string
	LastText     string
}

// Send implements service.Assistant.
func (f *FakeAssistant) Send(ctx context.Context, identity, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	f.LastIdentity = identity
	f.LastText = text
	if f.Reply != "" {
		return f.Reply, nil
	}
	return fmt.Sprintf("echo: %s", text), nil
}
