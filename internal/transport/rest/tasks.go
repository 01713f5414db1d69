package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/taskloop/taskloop-backend/internal/domain"
	"github.com/taskloop/taskloop-backend/internal/service/task"
)

type taskService interface {
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	BulkCreateTasks(ctx context.Context, input task.BulkCreateInput) ([]domain.Task, error)
	UpdateTask(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, input task.DeleteTaskInput) error
}

// TaskHandler serves the task CRUD endpoints.
type TaskHandler struct {
	tasks taskService
	log   *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(logger *slog.Logger, tasks taskService) *TaskHandler {
	return &TaskHandler{
		tasks: tasks,
		log:   logger.With("handler", "task"),
	}
}

type taskResponse struct {
	ID          int64     `json:"id"`
	Topic       string    `json:"topic"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	IsCompleted bool      `json:"isCompleted"`
	ParentID    *int64    `json:"parentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toTaskResponse(t domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Topic:       t.Topic,
		Category:    t.Category,
		Content:     t.Content,
		IsCompleted: t.IsCompleted,
		ParentID:    t.ParentID,
		CreatedAt:   t.CreatedAt,
	}
}

func toTaskResponses(tasks []domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

// List handles GET /tasks. An optional ?topic= query parameter restricts the
// listing to one topic.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.TaskFilter
	if topic := r.URL.Query().Get("topic"); topic != "" {
		filter.Topic = &topic
	}

	tasks, err := h.tasks.ListTasks(r.Context(), filter)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]taskResponse{"tasks": toTaskResponses(tasks)})
}

type bulkCreateRequest struct {
	Topic    string   `json:"topic"`
	Category string   `json:"category"`
	Contents []string `json:"contents"`
}

// BulkCreate handles POST /tasks/bulk. All tasks in the batch share one topic
// and category; the whole batch is inserted atomically.
func (h *TaskHandler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req bulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.tasks.BulkCreateTasks(r.Context(), task.BulkCreateInput{
		Topic:    req.Topic,
		Category: req.Category,
		Contents: req.Contents,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string][]taskResponse{"tasks": toTaskResponses(created)})
}

type updateTaskRequest struct {
	Content     *string `json:"content"`
	IsCompleted *bool   `json:"isCompleted"`
}

// Update handles PUT /tasks/{id}. Only fields present in the body change;
// an empty body is a no-op that still verifies the task exists.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := h.tasks.UpdateTask(r.Context(), task.UpdateTaskInput{
		ID:          id,
		Content:     req.Content,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]taskResponse{"task": toTaskResponse(*updated)})
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), task.DeleteTaskInput{ID: id}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Task deleted"})
}

func taskIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
