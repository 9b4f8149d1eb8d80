package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/quotegen/quotegen/internal/model"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// Postgres stores documents as JSONB rows, one table per collection,
// inside a schema named after the logical database.
type Postgres struct {
	pool   *pgxpool.Pool
	schema string
}

// NewPostgres connects to PostgreSQL and ensures the collection tables exist.
func NewPostgres(ctx context.Context, databaseURL, database string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Seeding is strictly sequential; one connection is enough.
	config.MaxConns = 2
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Postgres{pool: pool, schema: pq.QuoteIdentifier(database)}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

func (s *Postgres) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE SCHEMA IF NOT EXISTS ` + s.schema,
		`CREATE TABLE IF NOT EXISTS ` + s.table(PeopleCollection) + ` (
			seq        BIGSERIAL,
			id         TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ` + s.table(QuotesCollection) + ` (
			seq        BIGSERIAL,
			id         TEXT PRIMARY KEY,
			person_id  TEXT NOT NULL,
			doc        JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS quotes_person_id_idx ON ` + s.table(QuotesCollection) + ` (person_id)`,
	}

	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}
	return nil
}

func (s *Postgres) table(collection string) string {
	return s.schema + "." + pq.QuoteIdentifier(collection)
}

// Ping checks database connectivity.
func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// DeleteAllPeople empties the people collection.
func (s *Postgres) DeleteAllPeople(ctx context.Context) (int64, error) {
	return s.deleteAll(ctx, PeopleCollection)
}

// DeleteAllQuotes empties the quotes collection.
func (s *Postgres) DeleteAllQuotes(ctx context.Context) (int64, error) {
	return s.deleteAll(ctx, QuotesCollection)
}

func (s *Postgres) deleteAll(ctx context.Context, collection string) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+s.table(collection))
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", collection, err)
	}
	return tag.RowsAffected(), nil
}

// InsertPerson inserts a single person document.
func (s *Postgres) InsertPerson(ctx context.Context, p *model.Person) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode person: %w", err)
	}

	query := `INSERT INTO ` + s.table(PeopleCollection) + ` (id, doc, created_at) VALUES ($1, $2, $3)`
	if _, err := s.pool.Exec(ctx, query, p.ID, doc, p.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert person: %w", err)
	}
	return nil
}

// InsertQuote inserts a single quote document.
func (s *Postgres) InsertQuote(ctx context.Context, q *model.Quote) error {
	doc, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("failed to encode quote: %w", err)
	}

	query := `INSERT INTO ` + s.table(QuotesCollection) + ` (id, person_id, doc, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := s.pool.Exec(ctx, query, q.ID, q.PersonID, doc, q.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert quote: %w", err)
	}
	return nil
}

// ListPeople returns all people in insertion order.
func (s *Postgres) ListPeople(ctx context.Context) ([]*model.Person, error) {
	var people []*model.Person
	err := s.scanDocs(ctx, PeopleCollection, func(doc []byte) error {
		var p model.Person
		if err := json.Unmarshal(doc, &p); err != nil {
			return err
		}
		people = append(people, &p)
		return nil
	})
	return people, err
}

// ListQuotes returns all quotes in insertion order.
func (s *Postgres) ListQuotes(ctx context.Context) ([]*model.Quote, error) {
	var quotes []*model.Quote
	err := s.scanDocs(ctx, QuotesCollection, func(doc []byte) error {
		var q model.Quote
		if err := json.Unmarshal(doc, &q); err != nil {
			return err
		}
		quotes = append(quotes, &q)
		return nil
	})
	return quotes, err
}

func (s *Postgres) scanDocs(ctx context.Context, collection string, fn func(doc []byte) error) error {
	query := `SELECT doc FROM ` + s.table(collection) + ` ORDER BY seq`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", collection, err)
	}

	docs, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", collection, err)
	}

	for _, doc := range docs {
		if err := fn(doc); err != nil {
			return fmt.Errorf("failed to decode %s document: %w", collection, err)
		}
	}
	return nil
}

// DropSchema removes the schema and everything in it.
func (s *Postgres) DropSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if _, err := s.pool.Exec(ctx, `DROP SCHEMA IF EXISTS `+s.schema+` CASCADE`); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

// Close closes the database connection pool.
func (s *Postgres) Close() error {
	s.pool.Close()
	return nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
