package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
)

// randomSamples is how many random quotes the consistency check draws.
const randomSamples = 10

// ExtendedChecks returns data-consistency checks that go beyond response
// shape. They assume the API serves seeded data.
func ExtendedChecks() []Check {
	return []Check{
		{Name: "People have id and name", Run: CheckPeopleShape},
		{Name: "Random quotes match seeded data", Run: CheckRandomConsistency},
		{Name: "Quotes by person are filtered", Run: CheckPersonFilter},
		{Name: "Random quote by person", Run: CheckRandomByPerson},
	}
}

type quoteDoc struct {
	ID       string `json:"id"`
	PersonID string `json:"person_id"`
	Text     string `json:"text"`
}

// CheckPeopleShape requires a non-empty people list whose entries all have
// a non-empty id and name.
func CheckPeopleShape(ctx context.Context, c *Client, out io.Writer) (bool, error) {
	people, ok, err := listPeople(ctx, c)
	if err != nil {
		return false, err
	}
	if !ok || len(people) == 0 {
		fmt.Fprintln(out, "No people returned")
		return false, nil
	}

	for i, p := range people {
		id, _ := p.str("id")
		name, _ := p.str("name")
		if id == "" || name == "" {
			fmt.Fprintf(out, "Person %d lacks id or name: %v\n", i, map[string]any(p))
			return false, nil
		}
	}
	fmt.Fprintf(out, "All %d people have an id and a name\n", len(people))

	return true, nil
}

// CheckRandomConsistency draws several random quotes and requires each
// (text, person_name) pair to exist in the quotes and people listings.
func CheckRandomConsistency(ctx context.Context, c *Client, out io.Writer) (bool, error) {
	known, err := knownPairs(ctx, c)
	if err != nil {
		return false, err
	}
	if len(known) == 0 {
		fmt.Fprintln(out, "No quotes to compare against")
		return false, nil
	}

	for i := 0; i < randomSamples; i++ {
		resp, err := c.Get(ctx, "/quotes/random")
		if err != nil {
			return false, err
		}
		if !resp.OK() {
			fmt.Fprintf(out, "Random quote failed: %s\n", resp.Text())
			return false, nil
		}

		text, name, err := decodeRandomQuote(resp)
		if err != nil {
			return false, err
		}
		if !known[pair{text, name}] {
			fmt.Fprintf(out, "Unknown quote: '%s' - %s\n", text, name)
			return false, nil
		}
	}
	fmt.Fprintf(out, "%d random quotes matched seeded data\n", randomSamples)

	return true, nil
}

// CheckPersonFilter requests every person's quotes and requires each
// returned quote to carry that person's id.
func CheckPersonFilter(ctx context.Context, c *Client, out io.Writer) (bool, error) {
	people, ok, err := listPeople(ctx, c)
	if err != nil {
		return false, err
	}
	if !ok || len(people) == 0 {
		fmt.Fprintln(out, "No people found for person filter test")
		return false, nil
	}

	total := 0
	for _, p := range people {
		id, err := p.str("id")
		if err != nil {
			return false, err
		}

		resp, err := c.Get(ctx, "/quotes/person/"+url.PathEscape(id))
		if err != nil {
			return false, err
		}
		if !resp.OK() {
			fmt.Fprintf(out, "Quotes by person %s failed: %s\n", id, resp.Text())
			return false, nil
		}

		var quotes []quoteDoc
		if err := resp.Decode(&quotes); err != nil {
			return false, err
		}
		for _, q := range quotes {
			if q.PersonID != id {
				fmt.Fprintf(out, "Quote %s belongs to %s, not %s\n", q.ID, q.PersonID, id)
				return false, nil
			}
		}
		total += len(quotes)
	}
	fmt.Fprintf(out, "%d quotes across %d people correctly filtered\n", total, len(people))

	return true, nil
}

// CheckRandomByPerson asks for a random quote restricted to the first person.
func CheckRandomByPerson(ctx context.Context, c *Client, out io.Writer) (bool, error) {
	people, ok, err := listPeople(ctx, c)
	if err != nil {
		return false, err
	}
	if !ok || len(people) == 0 {
		fmt.Fprintln(out, "No people found for random quote by person test")
		return false, nil
	}

	id, err := people[0].str("id")
	if err != nil {
		return false, err
	}
	want, err := people[0].str("name")
	if err != nil {
		return false, err
	}

	resp, err := c.Get(ctx, "/quotes/random?person_id="+url.QueryEscape(id))
	if err != nil {
		return false, err
	}
	if !resp.OK() {
		fmt.Fprintf(out, "Random quote by person failed: %s\n", resp.Text())
		return false, nil
	}

	text, name, err := decodeRandomQuote(resp)
	if err != nil {
		return false, err
	}
	if name != want {
		fmt.Fprintf(out, "Asked for %s, got a quote by %s\n", want, name)
		return false, nil
	}
	fmt.Fprintf(out, "Random quote by %s: '%s'\n", name, text)

	return true, nil
}

type pair struct {
	text   string
	person string
}

// knownPairs joins /quotes with /people by person id.
func knownPairs(ctx context.Context, c *Client) (map[pair]bool, error) {
	people, ok, err := listPeople(ctx, c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("people listing returned a non-200 status")
	}

	names := make(map[string]string, len(people))
	for _, p := range people {
		id, err := p.str("id")
		if err != nil {
			return nil, err
		}
		name, err := p.str("name")
		if err != nil {
			return nil, err
		}
		names[id] = name
	}

	resp, err := c.Get(ctx, "/quotes")
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("quotes listing returned status %d", resp.Status)
	}

	var quotes []quoteDoc
	if err := resp.Decode(&quotes); err != nil {
		return nil, err
	}

	known := make(map[pair]bool, len(quotes))
	for _, q := range quotes {
		if name, ok := names[q.PersonID]; ok {
			known[pair{q.Text, name}] = true
		}
	}
	return known, nil
}

