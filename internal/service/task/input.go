package task

import (
	"strings"

	"github.com/taskloop/taskloop-backend/internal/domain"
)

// BulkCreateInput holds the parameters for creating a batch of tasks.
type BulkCreateInput struct {
	Topic    string
	Category string
	Contents []string
}

// Validate checks all fields and collects all errors.
func (i BulkCreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Topic) == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}
	if len(i.Contents) == 0 {
		errs = append(errs, domain.FieldError{Field: "contents", Message: "at least one task required"})
	}
	for _, content := range i.Contents {
		if strings.TrimSpace(content) == "" {
			errs = append(errs, domain.FieldError{Field: "contents", Message: "task content must not be empty"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTaskInput holds the parameters for a partial task update.
// Both fields absent is acceptable: the handler applies whichever is present.
type UpdateTaskInput struct {
	ID          int64
	Content     *string
	IsCompleted *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteTaskInput holds the parameters for deleting a single task.
type DeleteTaskInput struct {
	ID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteTaskInput) Validate() error {
	if i.ID <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}
	return nil
}

// DeleteTopicInput holds the parameters for deleting all tasks in a topic.
type DeleteTopicInput struct {
	Topic string
}

// Validate checks all fields and collects all errors.
func (i DeleteTopicInput) Validate() error {
	if strings.TrimSpace(i.Topic) == "" {
		return domain.NewValidationError("topic", "required")
	}
	return nil
}
