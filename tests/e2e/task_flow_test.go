//go:build e2e

package e2e

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskLifecycle(t *testing.T) {
	server, _ := startServer(t)
	token := signToken(t, uniqueUserID())

	// Create a batch of tasks under one topic.
	var created tasksEnvelope
	resp := doJSON(t, server.URL, http.MethodPost, "/api/v1/tasks/bulk", token, map[string]any{
		"topic":    "spring cleaning",
		"category": "Personal",
		"contents": []string{"clear the garage", "wash windows", "donate old clothes"},
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, created.Tasks, 3)
	for _, task := range created.Tasks {
		assert.Equal(t, "spring cleaning", task.Topic)
		assert.Equal(t, "Personal", task.Category)
		assert.False(t, task.IsCompleted)
		assert.Positive(t, task.ID)
	}

	// The topic shows up in the derived listing.
	var topics topicsEnvelope
	resp = doJSON(t, server.URL, http.MethodGet, "/api/v1/topics", token, nil, &topics)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, topics.Topics, 1)
	assert.Equal(t, "spring cleaning", topics.Topics[0].Topic)
	assert.Equal(t, "Personal", topics.Topics[0].Category)

	var categories categoriesEnvelope
	resp = doJSON(t, server.URL, http.MethodGet, "/api/v1/categories", token, nil, &categories)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Personal"}, categories.Categories)

	// Complete one task.
	target := created.Tasks[0]
	var updated struct {
		Task taskBody `json:"task"`
	}
	resp = doJSON(t, server.URL, http.MethodPut, "/api/v1/tasks/"+itoa(target.ID), token, map[string]any{
		"isCompleted": true,
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, updated.Task.IsCompleted)
	assert.Equal(t, target.Content, updated.Task.Content)

	// Delete one task, then the remaining topic.
	resp = doJSON(t, server.URL, http.MethodDelete, "/api/v1/tasks/"+itoa(target.ID), token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var deleted struct {
		Message string `json:"message"`
	}
	resp = doJSON(t, server.URL, http.MethodDelete, "/api/v1/topics/spring%20cleaning", token, nil, &deleted)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, deleted.Message)

	var remaining tasksEnvelope
	resp = doJSON(t, server.URL, http.MethodGet, "/api/v1/tasks", token, nil, &remaining)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, remaining.Tasks)
}

func TestBlankCategoryDefaults(t *testing.T) {
	server, _ := startServer(t)
	token := signToken(t, uniqueUserID())

	var created tasksEnvelope
	resp := doJSON(t, server.URL, http.MethodPost, "/api/v1/tasks/bulk", token, map[string]any{
		"topic":    "errands",
		"contents": []string{"post office"},
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, created.Tasks, 1)
	assert.Equal(t, "General", created.Tasks[0].Category)
}

func TestUserIsolation(t *testing.T) {
	server, _ := startServer(t)
	alice := signToken(t, uniqueUserID())
	mallory := signToken(t, uniqueUserID())

	var created tasksEnvelope
	resp := doJSON(t, server.URL, http.MethodPost, "/api/v1/tasks/bulk", alice, map[string]any{
		"topic":    "secrets",
		"contents": []string{"plan surprise party"},
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := itoa(created.Tasks[0].ID)

	// Another user cannot see, modify, or delete the task; the responses do
	// not reveal that it exists.
	var listing tasksEnvelope
	resp = doJSON(t, server.URL, http.MethodGet, "/api/v1/tasks", mallory, nil, &listing)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, listing.Tasks)

	resp = doJSON(t, server.URL, http.MethodPut, "/api/v1/tasks/"+id, mallory, map[string]any{
		"content": "hijacked",
	}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, server.URL, http.MethodDelete, "/api/v1/tasks/"+id, mallory, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The owner still sees the task untouched.
	resp = doJSON(t, server.URL, http.MethodGet, "/api/v1/tasks", alice, nil, &listing)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, listing.Tasks, 1)
	assert.Equal(t, "plan surprise party", listing.Tasks[0].Content)
}

func TestTopicFilterAndOrdering(t *testing.T) {
	server, _ := startServer(t)
	token := signToken(t, uniqueUserID())

	for _, topic := range []string{"reading", "fitness"} {
		resp := doJSON(t, server.URL, http.MethodPost, "/api/v1/tasks/bulk", token, map[string]any{
			"topic":    topic,
			"contents": []string{"first " + topic, "second " + topic},
		}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var filtered tasksEnvelope
	resp := doJSON(t, server.URL, http.MethodGet, "/api/v1/tasks?topic=fitness", token, nil, &filtered)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, filtered.Tasks, 2)
	for _, task := range filtered.Tasks {
		assert.Equal(t, "fitness", task.Topic)
	}

	// Most recently used topic first.
	var topics topicsEnvelope
	resp = doJSON(t, server.URL, http.MethodGet, "/api/v1/topics", token, nil, &topics)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, topics.Topics, 2)
	assert.Equal(t, "fitness", topics.Topics[0].Topic)
}

func TestBulkCreateValidation(t *testing.T) {
	server, _ := startServer(t)
	token := signToken(t, uniqueUserID())

	resp := doJSON(t, server.URL, http.MethodPost, "/api/v1/tasks/bulk", token, map[string]any{
		"topic":    "",
		"contents": []string{},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
