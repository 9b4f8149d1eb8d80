// Package store provides the document store holding the people and quotes collections.
package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/quotegen/quotegen/internal/model"
)

// Common errors for store operations.
var (
	ErrDuplicateID       = errors.New("document id already exists")
	ErrUnsupportedScheme = errors.New("unsupported store scheme")
	ErrEmptyDatabase     = errors.New("database name is required")
	errClosed            = errors.New("store is closed")
)

// Collection names shared by every backend.
const (
	PeopleCollection = "people"
	QuotesCollection = "quotes"
)

// Store is a document store with a people and a quotes collection.
// List operations return documents in insertion order.
type Store interface {
	Ping(ctx context.Context) error
	DeleteAllPeople(ctx context.Context) (int64, error)
	DeleteAllQuotes(ctx context.Context) (int64, error)
	InsertPerson(ctx context.Context, p *model.Person) error
	InsertQuote(ctx context.Context, q *model.Quote) error
	ListPeople(ctx context.Context) ([]*model.Person, error)
	ListQuotes(ctx context.Context) ([]*model.Quote, error)
	Close() error
}

// Open connects to the store addressed by connectionURL. The backend is
// chosen from the URL scheme; database names the logical database inside it.
func Open(ctx context.Context, connectionURL, database string) (Store, error) {
	if strings.TrimSpace(database) == "" {
		return nil, ErrEmptyDatabase
	}

	u, err := url.Parse(connectionURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return NewPostgres(ctx, connectionURL, database)
	case "redis", "rediss":
		return NewRedis(ctx, connectionURL, database)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}
