package domain

import "time"

// Task is a single task list item. Topics and categories are not stored
// separately — they are projections over task rows grouped per user.
type Task struct {
	ID          int64
	UserID      string
	Topic       string
	Category    string
	Content     string
	IsCompleted bool

	// ParentID is an advisory reference to another task. It is surfaced
	// read-only and never written by any operation.
	ParentID *int64

	CreatedAt time.Time
}

// DefaultCategory is assigned when a task is created without a category.
const DefaultCategory = "General"

// TopicGroup is one row of the derived topic listing: a (topic, category)
// pair owned by a single user.
type TopicGroup struct {
	Topic    string
	Category string
}

// UpdateParams describes a partial task update. Nil fields are left unchanged.
type UpdateParams struct {
	Content     *string
	IsCompleted *bool
}

// GenerationResult is the reshaped reply of the generation provider.
// It is returned to the caller for confirmation and is never persisted
// by the generation flow itself.
type GenerationResult struct {
	Category string
	Tasks    []string
}
