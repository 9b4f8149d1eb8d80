package model

import "time"

// Quote is a single quotation attributed to a Person.
// PersonID is a soft reference; no store enforces it.
type Quote struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"person_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// RandomQuote is the payload served by GET /api/quotes/random.
// Only Text and PersonName are guaranteed by the API.
type RandomQuote struct {
	ID                string `json:"id,omitempty"`
	Text              string `json:"text"`
	PersonID          string `json:"person_id,omitempty"`
	PersonName        string `json:"person_name"`
	PersonImageURL    string `json:"person_image_url,omitempty"`
	PersonDescription string `json:"person_description,omitempty"`
}

// NewRandomQuote joins a quote with its author.
func NewRandomQuote(q *Quote, p *Person) *RandomQuote {
	return &RandomQuote{
		ID:                q.ID,
		Text:              q.Text,
		PersonID:          p.ID,
		PersonName:        p.Name,
		PersonImageURL:    p.ImageURL,
		PersonDescription: p.Description,
	}
}
