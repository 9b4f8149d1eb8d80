package verify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestExtendedChecks_SeededAPI(t *testing.T) {
	srv := newSeededAPI(t)

	report, out := runChecks(t, srv.URL+"/api", ExtendedChecks())

	if !report.OK() {
		t.Fatalf("extended checks failed: %d/%d\n%s", report.Passed(), report.Total(), out)
	}
	assertContains(t, out,
		"All 8 people have an id and a name",
		"10 random quotes matched seeded data",
		"40 quotes across 8 people correctly filtered",
		"Random quote by Albert Einstein: '",
	)
}

// lyingAPI serves listings that disagree with its other endpoints.
func lyingAPI() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/people", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"p1","name":"Ada"},{"id":"p2","name":""}]`))
	})
	r.Get("/api/quotes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"q1","person_id":"p1","text":"known"}]`))
	})
	r.Get("/api/quotes/random", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text":"invented","person_name":"Bob"}`))
	})
	r.Get("/api/quotes/person/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"q1","person_id":"p2","text":"known"}]`))
	})
	return r
}

func TestExtendedChecks_DetectInconsistency(t *testing.T) {
	srv := httptest.NewServer(lyingAPI())
	defer srv.Close()

	tests := []struct {
		name    string
		check   CheckFunc
		message string
	}{
		{"people shape", CheckPeopleShape, "Person 1 lacks id or name"},
		{"random consistency", CheckRandomConsistency, "Unknown quote: 'invented' - Bob"},
		{"person filter", CheckPersonFilter, "Quote q1 belongs to p2, not p1"},
		{"random by person", CheckRandomByPerson, "Asked for Ada, got a quote by Bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, out := runChecks(t, srv.URL+"/api", []Check{{Name: tt.name, Run: tt.check}})

			res := report.Results[0]
			if res.Passed || res.Err != nil {
				t.Errorf("passed=%v err=%v, want a plain failure", res.Passed, res.Err)
			}
			assertContains(t, out, tt.message)
		})
	}
}
