package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewRandomQuote(t *testing.T) {
	q := &Quote{ID: "q1", PersonID: "p1", Text: "Stay hungry, stay foolish.", CreatedAt: time.Now()}
	p := &Person{ID: "p1", Name: "Steve Jobs", Description: "Co-founder", ImageURL: "https://example.com/s.png"}

	rq := NewRandomQuote(q, p)

	if rq.Text != q.Text || rq.PersonName != p.Name || rq.PersonID != p.ID {
		t.Errorf("unexpected join: %+v", rq)
	}

	data, err := json.Marshal(rq)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	for _, key := range []string{"text", "person_name", "person_id", "person_image_url"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("expected key %q in %s", key, data)
		}
	}
}

func TestRandomQuote_OmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(&RandomQuote{Text: "t", PersonName: "n"})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	if string(data) != `{"text":"t","person_name":"n"}` {
		t.Errorf("unexpected JSON: %s", data)
	}
}
