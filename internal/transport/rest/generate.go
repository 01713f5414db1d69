package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taskloop/taskloop-backend/internal/domain"
	"github.com/taskloop/taskloop-backend/internal/service/generation"
)

type generationService interface {
	GenerateTasks(ctx context.Context, input generation.GenerateInput) (*domain.GenerationResult, error)
}

// GenerationHandler serves the AI task suggestion endpoint.
type GenerationHandler struct {
	generator generationService
	log       *slog.Logger
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(logger *slog.Logger, generator generationService) *GenerationHandler {
	return &GenerationHandler{
		generator: generator,
		log:       logger.With("handler", "generation"),
	}
}

type generateRequest struct {
	Topic string `json:"topic"`
}

type generateResponse struct {
	Category string   `json:"category"`
	Tasks    []string `json:"tasks"`
}

// Generate handles POST /generate. Suggestions are returned to the caller
// without being persisted; the client submits the accepted ones through the
// bulk-create endpoint.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.generator.GenerateTasks(r.Context(), generation.GenerateInput{Topic: req.Topic})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Category: result.Category,
		Tasks:    result.Tasks,
	})
}
