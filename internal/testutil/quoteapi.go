package testutil

import (
	"encoding/json"
	"math/rand"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/quotegen/quotegen/internal/model"
	"github.com/quotegen/quotegen/internal/store"
)

// NewQuoteAPI returns a router serving the quotes API under /api from s.
// It stands in for the real API server so the verifier can be exercised
// end to end with httptest.
func NewQuoteAPI(s store.Store) http.Handler {
	api := &quoteAPI{store: s}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", api.root)
		r.Get("/people", api.people)
		r.Get("/quotes", api.quotes)
		r.Get("/quotes/random", api.random)
		r.Get("/quotes/person/{personID}", api.quotesByPerson)
	})

	return r
}

type quoteAPI struct {
	store store.Store
}

func (a *quoteAPI) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

func (a *quoteAPI) people(w http.ResponseWriter, r *http.Request) {
	people, err := a.store.ListPeople(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if people == nil {
		people = []*model.Person{}
	}
	writeJSON(w, http.StatusOK, people)
}

func (a *quoteAPI) quotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := a.store.ListQuotes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if quotes == nil {
		quotes = []*model.Quote{}
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (a *quoteAPI) quotesByPerson(w http.ResponseWriter, r *http.Request) {
	quotes, err := a.filterQuotes(r, chi.URLParam(r, "personID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

// random serves a random quote, optionally restricted by ?person_id=.
func (a *quoteAPI) random(w http.ResponseWriter, r *http.Request) {
	quotes, err := a.filterQuotes(r, r.URL.Query().Get("person_id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(quotes) == 0 {
		writeError(w, http.StatusNotFound, "No quotes found")
		return
	}

	people, err := a.store.ListPeople(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	q := quotes[rand.Intn(len(quotes))]
	for _, p := range people {
		if p.ID == q.PersonID {
			writeJSON(w, http.StatusOK, model.NewRandomQuote(q, p))
			return
		}
	}
	writeError(w, http.StatusNotFound, "Person not found")
}

// filterQuotes lists quotes, keeping only personID's when it is non-empty.
func (a *quoteAPI) filterQuotes(r *http.Request, personID string) ([]*model.Quote, error) {
	all, err := a.store.ListQuotes(r.Context())
	if err != nil {
		return nil, err
	}

	out := make([]*model.Quote, 0, len(all))
	for _, q := range all {
		if personID == "" || q.PersonID == personID {
			out = append(out, q)
		}
	}
	return out, nil
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
