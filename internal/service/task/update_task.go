package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskloop/taskloop-backend/internal/domain"
	"github.com/taskloop/taskloop-backend/pkg/ctxutil"
)

// UpdateTask applies a partial update to the authenticated user's task.
// A task owned by another user reports ErrNotFound, indistinguishable from a
// missing id.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.tasks.Update(ctx, userID, input.ID, domain.UpdateParams{
		Content:     trimOrNil(input.Content),
		IsCompleted: input.IsCompleted,
	})
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("user_id", userID),
		slog.Int64("task_id", input.ID),
	)

	return updated, nil
}
