// Package testutil provides shared helpers for tests.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quotegen/quotegen/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// fixedTime is the creation time given to fixture documents.
var fixedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Person returns a fixture person.
func Person(id, name string) *model.Person {
	return &model.Person{
		ID:          id,
		Name:        name,
		Description: name + " description",
		ImageURL:    "https://example.com/" + id + ".png",
		CreatedAt:   fixedTime,
	}
}

// Quote returns a fixture quote attributed to personID.
func Quote(id, personID, text string) *model.Quote {
	return &model.Quote{
		ID:        id,
		PersonID:  personID,
		Text:      text,
		CreatedAt: fixedTime,
	}
}
