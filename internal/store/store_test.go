package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quotegen/quotegen/internal/model"
	"github.com/quotegen/quotegen/internal/store"
)

// runConformance exercises behaviour every backend must share.
// s must start empty.
func runConformance(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	people := []*model.Person{
		{ID: "p-1", Name: "Ada", Description: "mathematician", ImageURL: "https://example.com/a.png", CreatedAt: now},
		{ID: "p-2", Name: "Alan", Description: "logician", ImageURL: "https://example.com/b.png", CreatedAt: now},
	}
	for _, p := range people {
		if err := s.InsertPerson(ctx, p); err != nil {
			t.Fatalf("InsertPerson(%s): %v", p.ID, err)
		}
	}

	quotes := []*model.Quote{
		{ID: "q-1", PersonID: "p-1", Text: "first", CreatedAt: now},
		{ID: "q-2", PersonID: "p-1", Text: "second", CreatedAt: now},
		{ID: "q-3", PersonID: "p-2", Text: "third", CreatedAt: now},
	}
	for _, q := range quotes {
		if err := s.InsertQuote(ctx, q); err != nil {
			t.Fatalf("InsertQuote(%s): %v", q.ID, err)
		}
	}

	t.Run("duplicate ids rejected", func(t *testing.T) {
		err := s.InsertPerson(ctx, &model.Person{ID: "p-1", Name: "dup", CreatedAt: now})
		if !errors.Is(err, store.ErrDuplicateID) {
			t.Errorf("InsertPerson duplicate error = %v, want ErrDuplicateID", err)
		}
		err = s.InsertQuote(ctx, &model.Quote{ID: "q-1", PersonID: "p-2", Text: "dup", CreatedAt: now})
		if !errors.Is(err, store.ErrDuplicateID) {
			t.Errorf("InsertQuote duplicate error = %v, want ErrDuplicateID", err)
		}
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		gotPeople, err := s.ListPeople(ctx)
		if err != nil {
			t.Fatalf("ListPeople: %v", err)
		}
		if len(gotPeople) != len(people) {
			t.Fatalf("ListPeople returned %d, want %d", len(gotPeople), len(people))
		}
		for i, p := range gotPeople {
			if p.ID != people[i].ID || p.Name != people[i].Name || p.ImageURL != people[i].ImageURL {
				t.Errorf("person[%d] = %+v, want %+v", i, p, people[i])
			}
			if !p.CreatedAt.Equal(now) {
				t.Errorf("person[%d].CreatedAt = %v, want %v", i, p.CreatedAt, now)
			}
		}

		gotQuotes, err := s.ListQuotes(ctx)
		if err != nil {
			t.Fatalf("ListQuotes: %v", err)
		}
		if len(gotQuotes) != len(quotes) {
			t.Fatalf("ListQuotes returned %d, want %d", len(gotQuotes), len(quotes))
		}
		for i, q := range gotQuotes {
			if q.ID != quotes[i].ID || q.PersonID != quotes[i].PersonID || q.Text != quotes[i].Text {
				t.Errorf("quote[%d] = %+v, want %+v", i, q, quotes[i])
			}
		}
	})

	t.Run("delete all reports counts", func(t *testing.T) {
		n, err := s.DeleteAllQuotes(ctx)
		if err != nil {
			t.Fatalf("DeleteAllQuotes: %v", err)
		}
		if n != 3 {
			t.Errorf("DeleteAllQuotes = %d, want 3", n)
		}

		n, err = s.DeleteAllPeople(ctx)
		if err != nil {
			t.Fatalf("DeleteAllPeople: %v", err)
		}
		if n != 2 {
			t.Errorf("DeleteAllPeople = %d, want 2", n)
		}

		gotPeople, _ := s.ListPeople(ctx)
		gotQuotes, _ := s.ListQuotes(ctx)
		if len(gotPeople) != 0 || len(gotQuotes) != 0 {
			t.Errorf("after delete: %d people, %d quotes, want 0/0", len(gotPeople), len(gotQuotes))
		}

		// Ids are reusable once the collection is cleared.
		if err := s.InsertPerson(ctx, people[0]); err != nil {
			t.Errorf("InsertPerson after delete: %v", err)
		}
	})
}

func TestMemory_Conformance(t *testing.T) {
	s := store.NewMemory()
	defer s.Close()

	runConformance(t, s)
}

func TestMemory_ClosedStoreFails(t *testing.T) {
	t.Parallel()

	s := store.NewMemory()
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	ctx := context.Background()
	if err := s.Ping(ctx); err == nil {
		t.Error("expected Ping to fail after Close")
	}
	if err := s.InsertPerson(ctx, &model.Person{ID: "x"}); err == nil {
		t.Error("expected InsertPerson to fail after Close")
	}
	if _, err := s.ListQuotes(ctx); err == nil {
		t.Error("expected ListQuotes to fail after Close")
	}
}

func TestMemory_ListReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemory()
	p := &model.Person{ID: "p-1", Name: "Ada"}
	if err := s.InsertPerson(ctx, p); err != nil {
		t.Fatalf("InsertPerson: %v", err)
	}
	p.Name = "mutated"

	got, err := s.ListPeople(ctx)
	if err != nil {
		t.Fatalf("ListPeople: %v", err)
	}
	got[0].Name = "mutated again"

	again, _ := s.ListPeople(ctx)
	if again[0].Name != "Ada" {
		t.Errorf("stored name = %q, want Ada", again[0].Name)
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		database string
		wantErr  error
	}{
		{"memory", "memory://", "quotes", nil},
		{"unsupported scheme", "mongodb://localhost:27017", "quotes", store.ErrUnsupportedScheme},
		{"empty database", "memory://", "  ", store.ErrEmptyDatabase},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := store.Open(context.Background(), tt.url, tt.database)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Open error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer s.Close()

			if err := s.Ping(context.Background()); err != nil {
				t.Errorf("Ping: %v", err)
			}
		})
	}
}
