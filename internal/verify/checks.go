package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// CheckFunc performs one check, printing progress to out. It returns
// whether the check passed; an error means the check could not complete.
type CheckFunc func(ctx context.Context, c *Client, out io.Writer) (bool, error)

// Check is a named CheckFunc.
type Check struct {
	Name string
	Run  CheckFunc
}

// DefaultChecks returns the smoke checks in the order they run.
func DefaultChecks() []Check {
	return []Check{
		{Name: "Root endpoint", Run: CheckRoot},
		{Name: "People endpoint", Run: CheckPeople},
		{Name: "Quotes endpoint", Run: CheckQuotes},
		{Name: "Random quote endpoint", Run: CheckRandomQuote},
		{Name: "Quotes by person endpoint", Run: CheckQuotesByPerson},
	}
}

// CheckRoot requests the API root.
func CheckRoot(ctx context.Context, c *Client, out io.Writer) (bool, error) {
	resp, err := c.Get(ctx, "/")
	if err != nil {
		return false, err
	}

	var body any
	if err := resp.Decode(&body); err != nil {
		return false, err
	}
	fmt.Fprintf(out, "Root endpoint: %s\n", compact(resp.Body))

	return resp.OK(), nil
}

// CheckPeople lists people and reports how many there are.
func CheckPeople(ctx context.Context, c *Client, out io.Writer) (bool, error) {
	resp, err := c.Get(ctx, "/people")
	if err != nil {
		return false, err
	}

	n, _, err := countItems(resp)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(out, "People endpoint: %d people found\n", n)

	return resp.OK(), nil
}

// CheckQuotes lists quotes, reporting the count and the first quote.
func CheckQuotes(ctx context.Context, c *Client, out io.Writer) (bool, error) {
	resp, err := c.Get(ctx, "/quotes")
	if err != nil {
		return false, err
	}

	n, quotes, err := countItems(resp)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(out, "Quotes endpoint: %d quotes found\n", n)
	if len(quotes) > 0 {
		fmt.Fprintf(out, "Sample quote: %s\n", compact(quotes[0]))
	}

	return resp.OK(), nil
}

// CheckRandomQuote requests a random quote, which must carry text and person_name.
func CheckRandomQuote(ctx context.Context, c *Client, out io.Writer) (bool, error) {
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
	fmt.Fprintf(out, "Random quote: '%s' - %s\n", text, name)

	return true, nil
}

// CheckQuotesByPerson fetches the first person's quotes.
func CheckQuotesByPerson(ctx context.Context, c *Client, out io.Writer) (bool, error) {
	people, ok, err := listPeople(ctx, c)
	if err != nil {
		return false, err
	}
	if !ok || len(people) == 0 {
		fmt.Fprintln(out, "No people found for person quotes test")
		return false, nil
	}

	person := people[0]
	id, err := person.str("id")
	if err != nil {
		return false, err
	}
	resp, err := c.Get(ctx, "/quotes/person/"+url.PathEscape(id))
	if err != nil {
		return false, err
	}
	if !resp.OK() {
		fmt.Fprintf(out, "Quotes by person failed: %s\n", resp.Text())
		return false, nil
	}

	n, _, err := countItems(resp)
	if err != nil {
		return false, err
	}
	name, err := person.str("name")
	if err != nil {
		return false, err
	}
	fmt.Fprintf(out, "Quotes by %s: %d found\n", name, n)

	return true, nil
}

// countItems decodes any well-formed JSON body and counts the elements of
// an array or the keys of an object. items is set only for arrays.
func countItems(resp *Response) (n int, items []json.RawMessage, err error) {
	var raw json.RawMessage
	if err := resp.Decode(&raw); err != nil {
		return 0, nil, err
	}

	if err := json.Unmarshal(raw, &items); err == nil {
		return len(items), items, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		return len(obj), nil, nil
	}
	return 0, nil, nil
}

// listPeople fetches /people. ok is false on a non-200 status.
func listPeople(ctx context.Context, c *Client) ([]document, bool, error) {
	resp, err := c.Get(ctx, "/people")
	if err != nil {
		return nil, false, err
	}
	if !resp.OK() {
		return nil, false, nil
	}

	var people []document
	if err := resp.Decode(&people); err != nil {
		return nil, false, err
	}
	return people, true, nil
}

func decodeRandomQuote(resp *Response) (text, personName string, err error) {
	var quote document
	if err := resp.Decode(&quote); err != nil {
		return "", "", err
	}
	if text, err = quote.str("text"); err != nil {
		return "", "", err
	}
	if personName, err = quote.str("person_name"); err != nil {
		return "", "", err
	}
	return text, personName, nil
}

// compact renders a JSON value on one line, falling back to the raw text.
func compact(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}
