package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueUserID returns a fresh principal id so parallel tests never share rows.
func UniqueUserID() string {
	return "user-" + uuid.New().String()[:8]
}

// SeedTask inserts one task row directly and returns its id.
func SeedTask(t *testing.T, pool *pgxpool.Pool, userID, topic, category, content string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tasks (user_id, topic, category, content) VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, topic, category, content,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert: %v", err)
	}

	return id
}
