// Package generation produces AI-suggested tasks for a topic. The reply is
// returned to the caller for confirmation; persisting accepted suggestions
// goes through the regular bulk-create operation (two-phase generate-then-accept).
package generation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taskloop/taskloop-backend/internal/domain"
)

// completer is the opaque capability of the generative AI provider.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service turns a topic into a categorized list of suggested tasks.
type Service struct {
	provider completer
	log      *slog.Logger
}

// NewService creates a new generation Service.
func NewService(logger *slog.Logger, provider completer) *Service {
	return &Service{
		provider: provider,
		log:      logger.With("service", "generation"),
	}
}

// GenerateInput holds the parameters for a generation request.
type GenerateInput struct {
	Topic string
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	topic := strings.TrimSpace(i.Topic)
	if len(topic) < 2 {
		return domain.NewValidationError("topic", "must be at least 2 characters")
	}
	return nil
}
