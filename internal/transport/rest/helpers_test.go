package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/taskloop/taskloop-backend/internal/config"
	"github.com/taskloop/taskloop-backend/internal/domain"
	"github.com/taskloop/taskloop-backend/internal/service/generation"
	"github.com/taskloop/taskloop-backend/internal/service/task"
	"github.com/taskloop/taskloop-backend/pkg/ctxutil"
)

type taskServiceStub struct {
	ListTasksFunc       func(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	BulkCreateTasksFunc func(ctx context.Context, input task.BulkCreateInput) ([]domain.Task, error)
	UpdateTaskFunc      func(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error)
	DeleteTaskFunc      func(ctx context.Context, input task.DeleteTaskInput) error
}

func (s *taskServiceStub) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.ListTasksFunc(ctx, filter)
}

func (s *taskServiceStub) BulkCreateTasks(ctx context.Context, input task.BulkCreateInput) ([]domain.Task, error) {
	return s.BulkCreateTasksFunc(ctx, input)
}

func (s *taskServiceStub) UpdateTask(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error) {
	return s.UpdateTaskFunc(ctx, input)
}

func (s *taskServiceStub) DeleteTask(ctx context.Context, input task.DeleteTaskInput) error {
	return s.DeleteTaskFunc(ctx, input)
}

type topicServiceStub struct {
	ListTopicsFunc     func(ctx context.Context, filter domain.TopicFilter) ([]domain.TopicGroup, error)
	ListCategoriesFunc func(ctx context.Context) ([]string, error)
	DeleteTopicFunc    func(ctx context.Context, input task.DeleteTopicInput) (int64, error)
}

func (s *topicServiceStub) ListTopics(ctx context.Context, filter domain.TopicFilter) ([]domain.TopicGroup, error) {
	return s.ListTopicsFunc(ctx, filter)
}

func (s *topicServiceStub) ListCategories(ctx context.Context) ([]string, error) {
	return s.ListCategoriesFunc(ctx)
}

func (s *topicServiceStub) DeleteTopic(ctx context.Context, input task.DeleteTopicInput) (int64, error) {
	return s.DeleteTopicFunc(ctx, input)
}

type generationServiceStub struct {
	GenerateTasksFunc func(ctx context.Context, input generation.GenerateInput) (*domain.GenerationResult, error)
}

func (s *generationServiceStub) GenerateTasks(ctx context.Context, input generation.GenerateInput) (*domain.GenerationResult, error) {
	return s.GenerateTasksFunc(ctx, input)
}

type pingerStub struct {
	err error
}

func (p *pingerStub) Ping(context.Context) error { return p.err }

// passAuth injects a fixed principal, standing in for the bearer middleware.
func passAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxutil.WithUserID(r.Context(), "user-test")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type routerStubs struct {
	tasks      *taskServiceStub
	topics     *topicServiceStub
	generation *generationServiceStub
	ping       *pingerStub
}

func newTestRouter(stubs routerStubs) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if stubs.tasks == nil {
		stubs.tasks = &taskServiceStub{}
	}
	if stubs.topics == nil {
		stubs.topics = &topicServiceStub{}
	}
	if stubs.generation == nil {
		stubs.generation = &generationServiceStub{}
	}
	if stubs.ping == nil {
		stubs.ping = &pingerStub{}
	}
	return NewRouter(RouterDeps{
		Logger: logger,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Auth:       passAuth,
		Tasks:      NewTaskHandler(logger, stubs.tasks),
		Topics:     NewTopicHandler(logger, stubs.topics),
		Generation: NewGenerationHandler(logger, stubs.generation),
		Health:     NewHealthHandler(stubs.ping, "test"),
	})
}
