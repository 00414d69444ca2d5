package matscholar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the standard address of the MatScholar REST service.
// It can be overridden with WithEndpoint to target other deployments that
// implement the same interface.
const DefaultEndpoint = "http://0.0.0.0:8080"

// apiKeyHeader carries the credential on every request.
const apiKeyHeader = "x-api-key"

// Client talks to the MatScholar REST API. It owns a resty client whose
// connection pool is shared across calls; callers that need parallelism
// should coordinate externally (one Client per worker is simplest).
//
// Construct with New and release the pooled connections with Close:
//
//	c, err := matscholar.New(apiKey)
//	if err != nil { ... }
//	defer c.Close()
type Client struct {
	http *resty.Client
	warn func(string)

	closeOnce sync.Once
}

type Option func(*Client)

// New creates a Client authenticated with apiKey. The key is required and
// must be supplied explicitly; use the internal/config collaborator (or your
// own env lookup) to resolve it from MATERIALS_SCHOLAR_API_KEY. A missing key
// fails with a KindConfig error before any network call.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &Error{Kind: KindConfig, Message: "missing API key"}
	}

	rc := resty.New().
		SetBaseURL(DefaultEndpoint).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	c := &Client{
		http: rc,
		warn: func(msg string) { logrus.Warn(msg) },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	// Applied last so a client swapped in via WithRestyClient still
	// authenticates.
	c.http.SetHeader(apiKeyHeader, apiKey)
	if c.http.BaseURL == "" {
		c.http.SetBaseURL(DefaultEndpoint)
	}
	return c, nil
}

// WithEndpoint overrides the base URL of the service.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.http.SetBaseURL(strings.TrimRight(endpoint, "/"))
		}
	}
}

// WithRestyClient replaces the underlying resty client wholesale. The API key
// header is still injected by New.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) {
		if rc != nil {
			c.http = rc
		}
	}
}

// WithWarningHandler replaces the default logrus handler for non-fatal
// warnings embedded in otherwise valid responses.
func WithWarningHandler(fn func(warning string)) Option {
	return func(c *Client) {
		if fn != nil {
			c.warn = fn
		}
	}
}

// Close releases the idle pooled connections held by the underlying
// transport. Safe to call more than once; only the first call does work.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.http.GetClient().CloseIdleConnections()
	})
}

// envelope is the uniform wire shape returned by every endpoint.
type envelope struct {
	ValidResponse bool            `json:"valid_response"`
	Warning       string          `json:"warning"`
	Error         string          `json:"error"`
	Response      json.RawMessage `json:"response"`
}

// request performs one HTTP round trip and unwraps the response envelope into
// out. GET sends query as URL parameters, POST sends body as JSON. Both 200
// and 400 are parsed as envelopes: the service deliberately uses 400 to carry
// structured error envelopes, so only other status codes are treated as
// transport-level failures. A single attempt, no retries.
func (c *Client) request(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	var (
		resp *resty.Response
		err  error
	)
	switch method {
	case http.MethodPost:
		resp, err = req.Post(path)
	default:
		resp, err = req.Get(path)
	}
	if err != nil {
		return &Error{Kind: KindTransport, Message: "request failed", cause: err}
	}

	status := resp.StatusCode()
	if status != http.StatusOK && status != http.StatusBadRequest {
		return &Error{
			Kind:       KindTransport,
			Message:    fmt.Sprintf("REST query returned with error status code %d", status),
			StatusCode: status,
			Body:       string(resp.Body()),
		}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return &Error{
			Kind:       KindDecode,
			Message:    "decoding response envelope failed",
			StatusCode: status,
			Body:       string(resp.Body()),
			cause:      err,
		}
	}

	if !env.ValidResponse {
		return &Error{Kind: KindEnvelope, Message: env.Error, StatusCode: status}
	}
	if env.Warning != "" {
		c.warn(env.Warning)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Response, out); err != nil {
		return &Error{
			Kind:       KindDecode,
			Message:    "decoding response payload failed",
			StatusCode: status,
			Body:       string(env.Response),
			cause:      err,
		}
	}
	return nil
}
