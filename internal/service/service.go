// Package service defines the backend-agnostic contract for the remote
// task service. Stores depend on these interfaces; nothing outside
// internal/backend talks HTTP directly.
package service

import "context"

// Authenticator covers the account operations that need no credential.
type Authenticator interface {
	// Authenticate exchanges identity (email) and secret for an opaque
	// bearer credential.
	Authenticate(ctx context.Context, identity, secret string) (string, error)

	// CreateAccount registers a new account. It does not authenticate;
	// the caller logs in afterwards.
	CreateAccount(ctx context.Context, identity, secret string) error
}

// TaskService covers the credentialed task operations. Every call is a
// single request/response exchange with no retry or caching.
type TaskService interface {
	// ListTasks returns the full task collection for the current
	// session, most recent first.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the canonical stored task,
	// including its assigned id.
	CreateTask(ctx context.Context, title, description string) (Task, error)

	// PatchTask applies a partial update and returns the full task as
	// the service now stores it.
	PatchTask(ctx context.Context, id int64, patch TaskPatch) (Task, error)

	// RemoveTask deletes a task by id.
	RemoveTask(ctx context.Context, id int64) error
}

// Service is the full remote contract.
type Service interface {
	Authenticator
	TaskService
}

// Assistant forwards free-text input to the conversational service.
// Task changes the assistant performs server-side are not reported back
// through this interface; they become visible on the next task fetch.
type Assistant interface {
	// Send posts text on behalf of identity and returns the reply.
	Send(ctx context.Context, identity, text string) (string, error)
}

// CredentialSource yields the bearer credential for authorized calls.
// Empty means no session is active.
type CredentialSource interface {
	Credential() string
}
