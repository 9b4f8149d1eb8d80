package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/quotegen/quotegen/internal/catalog"
	"github.com/quotegen/quotegen/internal/store"
)

// ErrIntegrity is returned by Verify when the store does not hold the catalog.
var ErrIntegrity = errors.New("seeded data does not match catalog")

// Stats describes what a store currently holds.
type Stats struct {
	People      int
	Quotes      int
	Orphans     int // quotes whose person_id matches no person
	Fingerprint string
}

// Inspect reads both collections and rebuilds the catalog they represent.
func Inspect(ctx context.Context, st store.Store) (*Stats, error) {
	people, err := st.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	quotes, err := st.ListQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	owners := make(map[string]int, len(people))
	for _, p := range people {
		owners[p.ID]++
	}

	byPerson := make(map[string][]string, len(people))
	stats := &Stats{People: len(people), Quotes: len(quotes)}
	for _, q := range quotes {
		if owners[q.PersonID] != 1 {
			stats.Orphans++
			continue
		}
		byPerson[q.PersonID] = append(byPerson[q.PersonID], q.Text)
	}

	entries := make([]catalog.Entry, 0, len(people))
	for _, p := range people {
		entries = append(entries, catalog.Entry{
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Quotes:      byPerson[p.ID],
		})
	}
	stats.Fingerprint = catalog.Fingerprint(entries)

	return stats, nil
}

// Verify checks that the store holds exactly the seeder's catalog: matching
// counts, every quote resolving to exactly one person, and the same content
// fingerprint.
func (s *Seeder) Verify(ctx context.Context) (*Stats, error) {
	stats, err := Inspect(ctx, s.store)
	if err != nil {
		return nil, err
	}

	var problems []error
	if want := catalog.PeopleCount(s.entries); stats.People != want {
		problems = append(problems, fmt.Errorf("people: got %d, want %d", stats.People, want))
	}
	if want := catalog.QuoteCount(s.entries); stats.Quotes != want {
		problems = append(problems, fmt.Errorf("quotes: got %d, want %d", stats.Quotes, want))
	}
	if stats.Orphans > 0 {
		problems = append(problems, fmt.Errorf("%d quotes without a unique person", stats.Orphans))
	}
	if want := catalog.Fingerprint(s.entries); stats.Fingerprint != want {
		problems = append(problems, fmt.Errorf("fingerprint: got %s, want %s", stats.Fingerprint, want))
	}

	if len(problems) > 0 {
		return stats, fmt.Errorf("%w: %w", ErrIntegrity, errors.Join(problems...))
	}
	return stats, nil
}
