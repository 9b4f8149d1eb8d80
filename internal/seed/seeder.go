// Package seed replaces the people and quotes collections with the catalog.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/quotegen/quotegen/internal/catalog"
	"github.com/quotegen/quotegen/internal/metrics"
	"github.com/quotegen/quotegen/internal/model"
	"github.com/quotegen/quotegen/internal/store"
)

// Result summarizes one seeding run.
type Result struct {
	RunID          string
	PeopleDeleted  int64
	QuotesDeleted  int64
	PeopleInserted int
	QuotesInserted int
	Fingerprint    string
	Duration       time.Duration
}

// Seeder clears the store and inserts every catalog entry.
type Seeder struct {
	store   store.Store
	entries []catalog.Entry
	out     io.Writer
	logger  *slog.Logger
	metrics metrics.Recorder
	now     func() time.Time
	newID   func() string
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithOutput sets where progress lines are printed.
func WithOutput(w io.Writer) Option {
	return func(s *Seeder) { s.out = w }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Seeder) { s.logger = l }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m metrics.Recorder) Option {
	return func(s *Seeder) { s.metrics = m }
}

// WithCatalog replaces the default catalog.
func WithCatalog(entries []catalog.Entry) Option {
	return func(s *Seeder) { s.entries = entries }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

// WithIDGenerator overrides how document ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(s *Seeder) { s.newID = fn }
}

// New creates a Seeder writing to st. The caller owns st and must close it.
func New(st store.Store, opts ...Option) *Seeder {
	s := &Seeder{
		store:   st,
		entries: catalog.Default,
		out:     io.Discard,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: metrics.NewNoop(),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run deletes all people and quotes, then inserts the catalog one document
// at a time. Each person is inserted before its quotes. The first store
// error aborts the run and is returned; nothing is retried.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{
		RunID:       ulid.Make().String(),
		Fingerprint: catalog.Fingerprint(s.entries),
	}
	logger := s.logger.With(slog.String("run_id", res.RunID))

	fmt.Fprintln(s.out, "Starting database population...")
	logger.Info("seeding started",
		"people", catalog.PeopleCount(s.entries),
		"quotes", catalog.QuoteCount(s.entries),
	)

	var err error
	if res.PeopleDeleted, err = s.store.DeleteAllPeople(ctx); err != nil {
		return res, fmt.Errorf("clear people: %w", err)
	}
	if res.QuotesDeleted, err = s.store.DeleteAllQuotes(ctx); err != nil {
		return res, fmt.Errorf("clear quotes: %w", err)
	}
	fmt.Fprintln(s.out, "Cleared existing data")
	logger.Info("collections cleared",
		"people_deleted", res.PeopleDeleted,
		"quotes_deleted", res.QuotesDeleted,
	)

	for _, entry := range s.entries {
		person := &model.Person{
			ID:          s.newID(),
			Name:        entry.Name,
			Description: entry.Description,
			ImageURL:    entry.ImageURL,
			CreatedAt:   s.now(),
		}

		if err := s.insertPerson(ctx, person); err != nil {
			return res, fmt.Errorf("insert person %q: %w", person.Name, err)
		}
		res.PeopleInserted++
		fmt.Fprintf(s.out, "Added person: %s\n", person.Name)

		for _, text := range entry.Quotes {
			quote := &model.Quote{
				ID:        s.newID(),
				PersonID:  person.ID,
				Text:      text,
				CreatedAt: s.now(),
			}

			if err := s.insertQuote(ctx, quote); err != nil {
				return res, fmt.Errorf("insert quote for %q: %w", person.Name, err)
			}
			res.QuotesInserted++
		}

		fmt.Fprintf(s.out, "  Added %d quotes\n", len(entry.Quotes))
		logger.Debug("person seeded",
			"person_id", person.ID,
			"name", person.Name,
			"quotes", len(entry.Quotes),
		)
	}

	res.Duration = time.Since(start)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Database population complete!")
	fmt.Fprintf(s.out, "Total people added: %d\n", res.PeopleInserted)
	fmt.Fprintf(s.out, "Total quotes added: %d\n", res.QuotesInserted)

	logger.Info("seeding complete",
		"people_inserted", res.PeopleInserted,
		"quotes_inserted", res.QuotesInserted,
		"fingerprint", res.Fingerprint,
		"duration", res.Duration,
	)

	return res, nil
}

func (s *Seeder) insertPerson(ctx context.Context, p *model.Person) error {
	start := time.Now()
	if err := s.store.InsertPerson(ctx, p); err != nil {
		return err
	}
	s.metrics.ObserveInsertDuration(time.Since(start))
	s.metrics.IncPersonInserted()
	return nil
}

func (s *Seeder) insertQuote(ctx context.Context, q *model.Quote) error {
	start := time.Now()
	if err := s.store.InsertQuote(ctx, q); err != nil {
		return err
	}
	s.metrics.ObserveInsertDuration(time.Since(start))
	s.metrics.IncQuoteInserted()
	return nil
}
