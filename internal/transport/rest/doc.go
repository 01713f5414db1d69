package rest

import "net/http"

type routeDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Auth        bool   `json:"auth"`
}

var apiRoutes = []routeDoc{
	{http.MethodGet, "/api/v1/topics", "List the user's topics with their categories, most recently used first. Optional ?category= filter.", true},
	{http.MethodGet, "/api/v1/categories", "List the user's distinct categories in alphabetical order.", true},
	{http.MethodGet, "/api/v1/tasks", "List the user's tasks, newest first. Optional ?topic= filter.", true},
	{http.MethodPost, "/api/v1/tasks/bulk", "Create a batch of tasks sharing one topic and category.", true},
	{http.MethodPut, "/api/v1/tasks/{id}", "Partially update a task's content and/or completion state.", true},
	{http.MethodDelete, "/api/v1/tasks/{id}", "Delete a single task.", true},
	{http.MethodDelete, "/api/v1/topics/{topic}", "Delete every task in a topic.", true},
	{http.MethodPost, "/api/v1/generate", "Suggest five tasks for a topic using the AI provider. Nothing is persisted.", true},
	{http.MethodGet, "/api/v1/doc", "This route inventory.", false},
	{http.MethodGet, "/health", "Overall service health.", false},
	{http.MethodGet, "/health/live", "Liveness probe.", false},
	{http.MethodGet, "/health/ready", "Readiness probe (checks the database).", false},
}

// Doc handles GET /doc: a machine-readable inventory of the API surface.
func Doc(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]routeDoc{"routes": apiRoutes})
}
