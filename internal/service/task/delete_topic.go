package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taskloop/taskloop-backend/internal/domain"
	"github.com/taskloop/taskloop-backend/pkg/ctxutil"
)

// DeleteTopic removes all of the authenticated user's tasks in a topic and
// returns the number of rows removed.
func (s *Service) DeleteTopic(ctx context.Context, input DeleteTopicInput) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	topic := strings.TrimSpace(input.Topic)

	deleted, err := s.tasks.DeleteTopic(ctx, userID, topic)
	if err != nil {
		return 0, fmt.Errorf("delete topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("user_id", userID),
		slog.String("topic", topic),
		slog.Int64("tasks_deleted", deleted),
	)

	return deleted, nil
}
