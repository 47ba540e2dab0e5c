package service

// Task represents a single task item as the remote service stores it.
// The ID is assigned by the service and never changes.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
}

// TaskPatch is a partial task update. Nil fields are left unchanged by
// the service; only set fields appear on the wire.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// IsZero reports whether the patch changes nothing.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.IsCompleted == nil
}
