package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskloop/taskloop-backend/internal/domain"
	"github.com/taskloop/taskloop-backend/pkg/ctxutil"
)

// DeleteTask removes the authenticated user's task by id.
func (s *Service) DeleteTask(ctx context.Context, input DeleteTaskInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, userID, input.ID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", userID),
		slog.Int64("task_id", input.ID),
	)

	return nil
}
