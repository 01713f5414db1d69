// Package task implements the task, topic and category operations exposed by
// the REST API. Every operation resolves the principal from the request
// context and delegates to the repository, which scopes all statements by
// owner.
package task

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taskloop/taskloop-backend/internal/domain"
)

type taskRepo interface {
	ListTopics(ctx context.Context, userID string, filter domain.TopicFilter) ([]domain.TopicGroup, error)
	ListCategories(ctx context.Context, userID string) ([]string, error)
	ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error)
	BulkInsert(ctx context.Context, userID, topic, category string, contents []string) ([]domain.Task, error)
	Update(ctx context.Context, userID string, id int64, params domain.UpdateParams) (*domain.Task, error)
	Delete(ctx context.Context, userID string, id int64) error
	DeleteTopic(ctx context.Context, userID, topic string) (int64, error)
}

// Service provides task management operations.
type Service struct {
	tasks taskRepo
	log   *slog.Logger
}

// NewService creates a new task Service.
func NewService(logger *slog.Logger, tasks taskRepo) *Service {
	return &Service{
		tasks: tasks,
		log:   logger.With("service", "task"),
	}
}

// normalizeCategory maps a blank category to the default.
func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return domain.DefaultCategory
	}
	return category
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
