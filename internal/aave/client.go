package aave

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var ErrGraphQL error = errors.New("graphql error")
var ErrUnexpectedStatus error = errors.New("unexpected response status")

const maxResponseBytes = 8 << 20

// Client talks to the lending protocol GraphQL API. Read queries are cached
// for a short time; plan queries never are.
type Client struct {
	logs       *zap.SugaredLogger
	endpoint   string
	httpClient HTTPDoer
	limiter    *rate.Limiter
	cache      *ristretto.Cache
	cacheTTL   time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithRateLimit limits upstream calls to perSecond requests per second.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithCacheTTL sets how long read query results are served from memory.
// Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cacheTTL = ttl
	}
}

func NewClient(logger *zap.SugaredLogger, endpoint string, opts ...Option) (*Client, error) {
	c := &Client{
		logs:       logger,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(5), 1),
		cacheTTL:   15 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cacheTTL > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: 1e4,
			MaxCost:     32 << 20,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("create query cache: %w", err)
		}
		c.cache = cache
	}

	return c, nil
}

// Close releases the query cache.
func (c *Client) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data struct {
		Value json.RawMessage `json:"value"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// query runs a read query through the cache and decodes the aliased "value"
// field into out.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	key, err := cacheKey(query, variables)
	if err != nil {
		return err
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			return decodeValue(cached.([]byte), out)
		}
	}

	raw, err := c.execute(ctx, query, variables)
	if err != nil {
		return err
	}

	if c.cache != nil {
		c.cache.SetWithTTL(key, []byte(raw), int64(len(raw)), c.cacheTTL)
		c.cache.Wait()
	}

	return decodeValue(raw, out)
}

// execute sends one GraphQL request and returns the raw aliased value.
func (c *Client) execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post graphql request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read graphql response: %w", err)
	}

	c.logs.Debugw("graphql request completed",
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"bytes", len(payload))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, truncate(payload, 256))
	}

	var decoded graphQLResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("decode graphql response: %w", err)
	}

	if len(decoded.Errors) > 0 {
		messages := make([]string, 0, len(decoded.Errors))
		for _, e := range decoded.Errors {
			messages = append(messages, e.Message)
		}
		return nil, fmt.Errorf("%w: %s", ErrGraphQL, strings.Join(messages, "; "))
	}

	return decoded.Data.Value, nil
}

func decodeValue(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode graphql value: %w", err)
	}
	return nil
}

func cacheKey(query string, variables map[string]any) (string, error) {
	vars, err := json.Marshal(variables)
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	return query + "\x00" + string(vars), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
