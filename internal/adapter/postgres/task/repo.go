// Package task implements the Task repository using PostgreSQL.
// All operations are scoped to a single owning user; a row that exists but
// belongs to another user is indistinguishable from a missing row.
package task

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/taskloop/taskloop-backend/internal/adapter/postgres"
	"github.com/taskloop/taskloop-backend/internal/domain"
)

const tasksTable = "tasks"

var taskColumns = []string{"id", "user_id", "topic", "category", "content", "is_completed", "parent_id", "created_at"}

// builder is the statement builder with PostgreSQL placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListTopics returns the user's distinct (topic, category) pairs, most
// recently used first. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListTopics(ctx context.Context, userID string, filter domain.TopicFilter) ([]domain.TopicGroup, error) {
	query := builder.
		Select("topic", "category").
		From(tasksTable).
		Where(topicPredicates(userID, filter)).
		GroupBy("topic", "category").
		OrderBy("MAX(created_at) DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list topics")
	}
	defer rows.Close()

	var result []domain.TopicGroup
	for rows.Next() {
		var g domain.TopicGroup
		if err := rows.Scan(&g.Topic, &g.Category); err != nil {
			return nil, postgres.MapError(err, "scan topic group")
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "list topics")
	}

	if result == nil {
		result = []domain.TopicGroup{}
	}

	return result, nil
}

// ListCategories returns the user's distinct category values in lexicographic
// order. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListCategories(ctx context.Context, userID string) ([]string, error) {
	query := builder.
		Select("DISTINCT category").
		From(tasksTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("category ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list categories")
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, postgres.MapError(err, "scan category")
		}
		result = append(result, category)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "list categories")
	}

	if result == nil {
		result = []string{}
	}

	return result, nil
}

// ListTasks returns the user's tasks newest first, optionally restricted to
// one topic. No pagination: all matching rows are returned.
func (r *Repo) ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	query := builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(taskPredicates(userID, filter)).
		OrderBy("created_at DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tasks: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list tasks")
	}
	defer rows.Close()

	return scanTasks(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// BulkInsert creates one row per content string, all sharing topic, category
// and owner, in a single multi-row INSERT. Returns the inserted rows in
// insertion order.
func (r *Repo) BulkInsert(ctx context.Context, userID, topic, category string, contents []string) ([]domain.Task, error) {
	if len(contents) == 0 {
		return nil, fmt.Errorf("bulk insert: %w", domain.ErrValidation)
	}

	insert := builder.
		Insert(tasksTable).
		Columns("user_id", "topic", "category", "content")
	for _, content := range contents {
		insert = insert.Values(userID, topic, category, content)
	}
	insert = insert.Suffix("RETURNING " + columnList())

	sql, args, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bulk insert: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "bulk insert tasks")
	}
	defer rows.Close()

	return scanTasks(rows)
}

// Update applies a partial update to the user's task. Returns ErrNotFound if
// the task does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID string, id int64, params domain.UpdateParams) (*domain.Task, error) {
	update := builder.
		Update(tasksTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + columnList())

	set := false
	if params.Content != nil {
		update = update.Set("content", *params.Content)
		set = true
	}
	if params.IsCompleted != nil {
		update = update.Set("is_completed", *params.IsCompleted)
		set = true
	}
	if !set {
		// Nothing to change: an ownership-checked read keeps the
		// NotFound semantics identical to a real update.
		return r.getByID(ctx, userID, id)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update task: %w", err)
	}

	task, err := scanTask(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "update task")
	}

	return task, nil
}

// Delete removes the user's task by id. Returns ErrNotFound if the task does
// not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID string, id int64) error {
	query := builder.
		Delete(tasksTable).
		Where(sq.Eq{"id": id, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete task: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "delete task")
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete task %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteTopic removes all of the user's tasks in a topic and returns how many
// rows were deleted. Returns ErrNotFound when the topic had no rows.
func (r *Repo) DeleteTopic(ctx context.Context, userID, topic string) (int64, error) {
	query := builder.
		Delete(tasksTable).
		Where(sq.Eq{"user_id": userID, "topic": topic})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete topic: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "delete topic")
	}

	deleted := tag.RowsAffected()
	if deleted == 0 {
		return 0, fmt.Errorf("delete topic %q: %w", topic, domain.ErrNotFound)
	}

	return deleted, nil
}

// getByID reads a single owned row.
func (r *Repo) getByID(ctx context.Context, userID string, id int64) (*domain.Task, error) {
	query := builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"id": id, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get task: %w", err)
	}

	task, err := scanTask(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "get task")
	}

	return task, nil
}

// ---------------------------------------------------------------------------
// Predicates
// ---------------------------------------------------------------------------

// taskPredicates builds the conjunctive WHERE clause for task listings.
// The user scope is mandatory; absent optional filters contribute nothing.
func taskPredicates(userID string, filter domain.TaskFilter) sq.And {
	pred := sq.And{sq.Eq{"user_id": userID}}
	if filter.Topic != nil {
		pred = append(pred, sq.Eq{"topic": *filter.Topic})
	}
	return pred
}

// topicPredicates builds the conjunctive WHERE clause for topic listings.
func topicPredicates(userID string, filter domain.TopicFilter) sq.And {
	pred := sq.And{sq.Eq{"user_id": userID}}
	if filter.Category != nil {
		pred = append(pred, sq.Eq{"category": *filter.Category})
	}
	return pred
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// columnList returns the task columns as a comma-separated string for
// RETURNING clauses.
func columnList() string {
	list := taskColumns[0]
	for _, c := range taskColumns[1:] {
		list += ", " + c
	}
	return list
}

// scanTask scans a single row into a domain.Task.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		t         domain.Task
		parentID  *int64
		createdAt time.Time
	)

	err := row.Scan(&t.ID, &t.UserID, &t.Topic, &t.Category, &t.Content, &t.IsCompleted, &parentID, &createdAt)
	if err != nil {
		return nil, err
	}

	t.ParentID = parentID
	t.CreatedAt = createdAt
	return &t, nil
}

// scanTasks scans multiple rows into a slice. Returns an empty slice (not
// nil) when the result set is empty.
func scanTasks(rows pgx.Rows) ([]domain.Task, error) {
	var result []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, postgres.MapError(err, "scan task")
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "read tasks")
	}

	if result == nil {
		result = []domain.Task{}
	}

	return result, nil
}
