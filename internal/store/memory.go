package store

import (
	"context"
	"sync"

	"github.com/quotegen/quotegen/internal/model"
)

// Memory is an in-process Store used for dry runs and tests.
type Memory struct {
	mu       sync.Mutex
	people   []model.Person
	quotes   []model.Quote
	personID map[string]struct{}
	quoteID  map[string]struct{}
	closed   bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		personID: make(map[string]struct{}),
		quoteID:  make(map[string]struct{}),
	}
}

// Ping always succeeds unless the store was closed.
func (m *Memory) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}
	return nil
}

// DeleteAllPeople removes every person.
func (m *Memory) DeleteAllPeople(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, errClosed
	}

	n := int64(len(m.people))
	m.people = nil
	m.personID = make(map[string]struct{})
	return n, nil
}

// DeleteAllQuotes removes every quote.
func (m *Memory) DeleteAllQuotes(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, errClosed
	}

	n := int64(len(m.quotes))
	m.quotes = nil
	m.quoteID = make(map[string]struct{})
	return n, nil
}

// InsertPerson stores a copy of p.
func (m *Memory) InsertPerson(ctx context.Context, p *model.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}

	if _, ok := m.personID[p.ID]; ok {
		return ErrDuplicateID
	}
	m.personID[p.ID] = struct{}{}
	m.people = append(m.people, *p)
	return nil
}

// InsertQuote stores a copy of q.
func (m *Memory) InsertQuote(ctx context.Context, q *model.Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}

	if _, ok := m.quoteID[q.ID]; ok {
		return ErrDuplicateID
	}
	m.quoteID[q.ID] = struct{}{}
	m.quotes = append(m.quotes, *q)
	return nil
}

// ListPeople returns copies of all people in insertion order.
func (m *Memory) ListPeople(ctx context.Context) ([]*model.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, errClosed
	}

	out := make([]*model.Person, 0, len(m.people))
	for i := range m.people {
		p := m.people[i]
		out = append(out, &p)
	}
	return out, nil
}

// ListQuotes returns copies of all quotes in insertion order.
func (m *Memory) ListQuotes(ctx context.Context) ([]*model.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, errClosed
	}

	out := make([]*model.Quote, 0, len(m.quotes))
	for i := range m.quotes {
		q := m.quotes[i]
		out = append(out, &q)
	}
	return out, nil
}

// Close marks the store closed. Later calls fail.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
