package task

import (
	"context"
	"fmt"

	"github.com/taskloop/taskloop-backend/internal/domain"
	"github.com/taskloop/taskloop-backend/pkg/ctxutil"
)

// ListTopics returns the authenticated user's (topic, category) pairs, most
// recently used first, optionally filtered by category.
func (s *Service) ListTopics(ctx context.Context, filter domain.TopicFilter) ([]domain.TopicGroup, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter.Category = trimOrNil(filter.Category)

	topics, err := s.tasks.ListTopics(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}

// ListCategories returns the authenticated user's distinct categories in
// lexicographic order.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	categories, err := s.tasks.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

// ListTasks returns the authenticated user's tasks newest first, optionally
// filtered by topic.
func (s *Service) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter.Topic = trimOrNil(filter.Topic)

	tasks, err := s.tasks.ListTasks(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}
