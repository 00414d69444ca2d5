package matscholar

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// queryParams are the common knobs of the embedding-based operations.
// Defaults mirror the service: top 10 results, missing vocabulary ignored.
type queryParams struct {
	topK          int
	negative      []string
	ignoreMissing bool
}

func defaultQueryParams() queryParams {
	return queryParams{topK: 10, ignoreMissing: true}
}

type QueryOption func(*queryParams)

// WithTopK sets the number of top results to return (10 by default).
func WithTopK(n int) QueryOption {
	return func(p *queryParams) {
		p.topK = n
	}
}

// WithNegative adds words/phrases used as negative search criteria. When no
// negative words are given the query omits the field entirely.
func WithNegative(words ...string) QueryOption {
	return func(p *queryParams) {
		p.negative = append(p.negative, words...)
	}
}

// WithGuessMissing asks the service to generate "guess" embeddings for words
// missing from the vocabulary instead of ignoring them.
func WithGuessMissing() QueryOption {
	return func(p *queryParams) {
		p.ignoreMissing = false
	}
}

func (p queryParams) searchQuery() map[string]string {
	q := map[string]string{
		"top_k":          strconv.Itoa(p.topK),
		"ignore_missing": strconv.FormatBool(p.ignoreMissing),
	}
	if len(p.negative) > 0 {
		q["negative"] = strings.Join(p.negative, ",")
	}
	return q
}

// joinTerms builds the path segment for a list of search terms: comma-joined,
// then escaped so that spaces inside a phrase survive and the commas remain
// the separators after server-side decoding.
func joinTerms(terms []string) string {
	return url.PathEscape(strings.Join(terms, ","))
}

// MaterialsSearch returns a ranked list of materials matching the positive
// (and optional negative) words/phrases, with mention counts and scores.
func (c *Client) MaterialsSearch(ctx context.Context, positive []string, opts ...QueryOption) (*MaterialsSearchResult, error) {
	p := defaultQueryParams()
	for _, opt := range opts {
		opt(&p)
	}

	var out MaterialsSearchResult
	if err := c.request(ctx, http.MethodGet, "/embeddings/matsearch/"+joinTerms(positive), p.searchQuery(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CloseWords returns the words/phrases most similar to the cumulative
// embedding of the positive (minus negative) criteria, by cosine similarity.
func (c *Client) CloseWords(ctx context.Context, positive []string, opts ...QueryOption) (*CloseWordsResult, error) {
	p := defaultQueryParams()
	for _, opt := range opts {
		opt(&p)
	}

	var out CloseWordsResult
	if err := c.request(ctx, http.MethodGet, "/embeddings/close_words/"+joinTerms(positive), p.searchQuery(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MentionedWith reports whether the material formula was mentioned together
// with any of the words in the corpus of abstracts. Words should already be
// preprocessed (lower cased, phrases joined with _).
func (c *Client) MentionedWith(ctx context.Context, material string, words []string) (bool, error) {
	q := map[string]string{
		"material": material,
		"words":    strings.Join(words, " "),
	}

	var out struct {
		MentionedWith bool `json:"mentioned_with"`
	}
	if err := c.request(ctx, http.MethodGet, "/search/mentioned_with", q, nil, &out); err != nil {
		return false, err
	}
	return out.MentionedWith, nil
}
