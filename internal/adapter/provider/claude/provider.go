// Package claude adapts the Anthropic Messages API to the completion
// capability consumed by the generation service.
package claude

import (
	"context"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/taskloop/taskloop-backend/internal/config"
	"github.com/taskloop/taskloop-backend/internal/domain"
)

// Provider sends prompts to the Anthropic API.
type Provider struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	log       *slog.Logger
}

// NewProvider creates a Provider from GenerationConfig.
func NewProvider(cfg config.GenerationConfig, logger *slog.Logger) *Provider {
	return &Provider{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(0)),
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "claude"),
	}
}

// NewProviderWithBaseURL creates a Provider pointed at a custom endpoint (for testing).
func NewProviderWithBaseURL(cfg config.GenerationConfig, baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(0), option.WithBaseURL(baseURL)),
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "claude"),
	}
}

// Complete sends one prompt and returns the model's text reply.
// A single attempt, no retry: transport or API failures and empty replies
// surface as domain.ErrUpstream.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	p.log.DebugContext(ctx, "completion request", slog.String("model", string(p.model)))

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		p.log.ErrorContext(ctx, "completion request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("completion call: %v: %w", err, domain.ErrUpstream)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty completion reply: %w", domain.ErrUpstream)
	}

	text := msg.Content[0].Text
	if text == "" {
		return "", fmt.Errorf("completion reply has no text: %w", domain.ErrUpstream)
	}

	p.log.DebugContext(ctx, "completion response", slog.Int("length", len(text)))

	return text, nil
}
