package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/taskloop/taskloop-backend/internal/domain"
	"github.com/taskloop/taskloop-backend/internal/service/task"
)

type topicService interface {
	ListTopics(ctx context.Context, filter domain.TopicFilter) ([]domain.TopicGroup, error)
	ListCategories(ctx context.Context) ([]string, error)
	DeleteTopic(ctx context.Context, input task.DeleteTopicInput) (int64, error)
}

// TopicHandler serves the derived topic and category listings.
type TopicHandler struct {
	topics topicService
	log    *slog.Logger
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(logger *slog.Logger, topics topicService) *TopicHandler {
	return &TopicHandler{
		topics: topics,
		log:    logger.With("handler", "topic"),
	}
}

type topicResponse struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
}

// List handles GET /topics. Topics are (topic, category) pairs derived from
// the user's tasks, most recently used first. An optional ?category= query
// parameter restricts the listing.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.TopicFilter
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}

	groups, err := h.topics.ListTopics(r.Context(), filter)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]topicResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, topicResponse{Topic: g.Topic, Category: g.Category})
	}

	writeJSON(w, http.StatusOK, map[string][]topicResponse{"topics": out})
}

// ListCategories handles GET /categories: the user's distinct categories in
// lexicographic order.
func (h *TopicHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.topics.ListCategories(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

// Delete handles DELETE /topics/{topic}: removes every task of the user in
// that topic.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	topic := mux.Vars(r)["topic"]

	deleted, err := h.topics.DeleteTopic(r.Context(), task.DeleteTopicInput{Topic: topic})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Topic not found")
		return
	case err != nil:
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Topic deleted (%d tasks)", deleted),
	})
}
