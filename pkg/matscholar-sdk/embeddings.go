package matscholar

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type processParams struct {
	excludePunct bool
	phrases      bool
}

type ProcessOption func(*processParams)

// WithExcludePunct strips punctuation tokens from the processed text.
func WithExcludePunct() ProcessOption {
	return func(p *processParams) {
		p.excludePunct = true
	}
}

// WithPhrases converts runs of single words into common materials-science
// phrases separated by _.
func WithPhrases() ProcessOption {
	return func(p *processParams) {
		p.phrases = true
	}
}

// ProcessText runs the service's chemistry-aware preprocessing on text.
// Sentence structure is kept: the result is one token list per sentence.
func (c *Client) ProcessText(ctx context.Context, text string, opts ...ProcessOption) ([][]string, error) {
	var p processParams
	for _, opt := range opts {
		opt(&p)
	}
	q := map[string]string{
		"exclude_punct": strconv.FormatBool(p.excludePunct),
		"phrases":       strconv.FormatBool(p.phrases),
	}

	var out struct {
		ProcessedText [][]string `json:"processed_text"`
	}
	if err := c.request(ctx, http.MethodGet, "/embeddings/preprocess/"+url.PathEscape(text), q, nil, &out); err != nil {
		return nil, err
	}
	return out.ProcessedText, nil
}

// GetEmbedding returns the embedding for a single wordphrase. If the words
// (after preprocessing) have no embedding and ignore_missing is in effect, the
// row is all zeros. Only the ignore-missing option is honored here; top-k and
// negative criteria do not apply to embedding lookups.
func (c *Client) GetEmbedding(ctx context.Context, wordphrase string, opts ...QueryOption) (*EmbeddingsResult, error) {
	p := defaultQueryParams()
	for _, opt := range opts {
		opt(&p)
	}
	q := map[string]string{
		"ignore_missing": strconv.FormatBool(p.ignoreMissing),
	}

	var out EmbeddingsResult
	if err := c.request(ctx, http.MethodGet, "/embeddings/"+url.PathEscape(wordphrase), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEmbeddings returns one (potentially cumulative) embedding row per
// wordphrase. The batch form posts the wordphrases as a JSON body instead of
// putting them in the path.
func (c *Client) GetEmbeddings(ctx context.Context, wordphrases []string, opts ...QueryOption) (*EmbeddingsResult, error) {
	p := defaultQueryParams()
	for _, opt := range opts {
		opt(&p)
	}
	body := struct {
		Wordphrases   []string `json:"wordphrases"`
		IgnoreMissing bool     `json:"ignore_missing"`
	}{
		Wordphrases:   wordphrases,
		IgnoreMissing: p.ignoreMissing,
	}

	var out EmbeddingsResult
	if err := c.request(ctx, http.MethodPost, "/embeddings", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
