package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/taskloop/taskloop-backend/internal/config"
	"github.com/taskloop/taskloop-backend/internal/transport/middleware"
)

// RouterDeps collects everything the HTTP router needs.
type RouterDeps struct {
	Logger     *slog.Logger
	CORS       config.CORSConfig
	Auth       middleware.Middleware
	Tasks      *TaskHandler
	Topics     *TopicHandler
	Generation *GenerationHandler
	Health     *HealthHandler
}

// NewRouter builds the HTTP routing tree. Health probes and the doc route are
// public; everything under /api/v1 except /doc requires a bearer token.
func NewRouter(deps RouterDeps) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", deps.Health.Health).Methods(http.MethodGet)
	r.HandleFunc("/health/live", deps.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", deps.Health.Ready).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/doc", Doc).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(mux.MiddlewareFunc(deps.Auth))
	authed.HandleFunc("/topics", deps.Topics.List).Methods(http.MethodGet)
	authed.HandleFunc("/topics/{topic}", deps.Topics.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/categories", deps.Topics.ListCategories).Methods(http.MethodGet)
	authed.HandleFunc("/tasks", deps.Tasks.List).Methods(http.MethodGet)
	authed.HandleFunc("/tasks/bulk", deps.Tasks.BulkCreate).Methods(http.MethodPost)
	authed.HandleFunc("/tasks/{id}", deps.Tasks.Update).Methods(http.MethodPut)
	authed.HandleFunc("/tasks/{id}", deps.Tasks.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/generate", deps.Generation.Generate).Methods(http.MethodPost)

	base := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)

	return base(r)
}
