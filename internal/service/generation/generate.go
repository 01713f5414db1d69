package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taskloop/taskloop-backend/internal/domain"
	"github.com/taskloop/taskloop-backend/pkg/ctxutil"
)

// GenerateTasks asks the provider for five task suggestions for a topic.
// One attempt, no retry; any parse failure is an upstream error — the
// JSON-only contract with the model is best-effort and recovery heuristics
// beyond brace extraction are deliberately avoided.
func (s *Service) GenerateTasks(ctx context.Context, input GenerateInput) (*domain.GenerationResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic := strings.TrimSpace(input.Topic)

	text, err := s.provider.Complete(ctx, buildPrompt(topic))
	if err != nil {
		return nil, fmt.Errorf("generate tasks for %q: %w", topic, err)
	}

	jsonStr, err := extractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("extract json from reply for %q: %v: %w", topic, err, domain.ErrUpstream)
	}

	var reply providerReply
	if err := json.Unmarshal([]byte(jsonStr), &reply); err != nil {
		return nil, fmt.Errorf("decode reply for %q: %v: %w", topic, err, domain.ErrUpstream)
	}

	result := reply.toResult()

	s.log.InfoContext(ctx, "tasks generated",
		slog.String("user_id", userID),
		slog.String("topic", topic),
		slog.String("category", result.Category),
		slog.Int("count", len(result.Tasks)),
	)

	return &result, nil
}

// buildPrompt creates the generation prompt for a topic.
func buildPrompt(topic string) string {
	return fmt.Sprintf(`You are a productivity assistant helping a user plan their work.

Given the topic "%s", suggest exactly 5 short, actionable tasks.

Output ONLY a valid JSON object matching this exact schema:
{
  "category": "<General|Work|Personal|Learning|Health|Finance>",
  "tasks": ["<task 1>", "<task 2>", "<task 3>", "<task 4>", "<task 5>"]
}

Rules:
- Pick the single category from the list above that best fits the topic
- Each task is one imperative sentence, at most 80 characters
- Tasks must be concrete and independently completable
- Output ONLY the JSON, no markdown, no explanations`, topic)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in reply")
	}
	return s[start : end+1], nil
}
