package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taskloop/taskloop-backend/internal/domain"
	"github.com/taskloop/taskloop-backend/pkg/ctxutil"
)

// BulkCreateTasks creates one task per content string, all sharing the given
// topic and category. A blank category resolves to the default.
func (s *Service) BulkCreateTasks(ctx context.Context, input BulkCreateInput) ([]domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic := strings.TrimSpace(input.Topic)
	category := normalizeCategory(input.Category)

	contents := make([]string, len(input.Contents))
	for i, content := range input.Contents {
		contents[i] = strings.TrimSpace(content)
	}

	created, err := s.tasks.BulkInsert(ctx, userID, topic, category, contents)
	if err != nil {
		return nil, fmt.Errorf("bulk insert tasks: %w", err)
	}

	s.log.InfoContext(ctx, "tasks created",
		slog.String("user_id", userID),
		slog.String("topic", topic),
		slog.String("category", category),
		slog.Int("count", len(created)),
	)

	return created, nil
}
