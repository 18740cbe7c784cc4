// Package finnhub binds the Finnhub stock API: quote, company profile and
// company news lookups keyed by a symbol string.
package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"stockmcp/internal/cache"
)

const defaultBaseURL = "https://finnhub.io/api/v1"

// Gateway is the market-data interface the tool layer consumes.
type Gateway interface {
	GetQuote(ctx context.Context, symbol string) (*Quote, error)
	GetProfile(ctx context.Context, symbol string) (*Profile, error)
	GetNews(ctx context.Context, symbol string, from, to time.Time) ([]Article, error)
}

// UpstreamError reports a non-success Finnhub response, carrying the
// upstream status and any embedded error message.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("API request failed with status code %d", e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Client calls the Finnhub API over HTTP. When a cache is configured, raw
// quote and news responses are cached with short TTLs; the derived
// sentiment judgment is never cached.
type Client struct {
	http     *resty.Client
	apiKey   string
	cache    *cache.Cache
	quoteTTL time.Duration
	newsTTL  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the default Finnhub API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(url)
	}
}

// WithCache enables caching of raw upstream responses.
func WithCache(cc *cache.Cache, quoteTTL, newsTTL time.Duration) Option {
	return func(c *Client) {
		c.cache = cc
		c.quoteTTL = quoteTTL
		c.newsTTL = newsTTL
	}
}

// NewClient creates a Finnhub client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("finnhub: API key must not be empty")
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(defaultBaseURL)
	httpClient.SetTimeout(30 * time.Second)

	c := &Client{
		http:   httpClient,
		apiKey: apiKey,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// get performs one authenticated GET and decodes the JSON body into dest.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, dest interface{}) error {
	query := map[string]string{"token": c.apiKey}
	for k, v := range params {
		query[k] = v
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(endpoint)
	if err != nil {
		return fmt.Errorf("finnhub request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		upstream := &UpstreamError{StatusCode: resp.StatusCode()}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(resp.Body(), &body); err == nil {
			upstream.Message = body.Error
		}
		return upstream
	}

	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		return fmt.Errorf("failed to parse finnhub response: %w", err)
	}
	return nil
}

// GetQuote fetches the real-time quote for a symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	cacheKey := "finnhub:quote:" + symbol

	var quote Quote
	if c.cache.Get(ctx, cacheKey, &quote) {
		return &quote, nil
	}

	if err := c.get(ctx, "/quote", map[string]string{"symbol": symbol}, &quote); err != nil {
		return nil, err
	}

	c.cache.Set(ctx, cacheKey, &quote, c.quoteTTL)
	return &quote, nil
}

// GetProfile fetches general company information for a symbol.
func (c *Client) GetProfile(ctx context.Context, symbol string) (*Profile, error) {
	var profile Profile
	if err := c.get(ctx, "/stock/profile2", map[string]string{"symbol": symbol}, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetNews fetches company news for a symbol over a calendar date range,
// in the order Finnhub returns it.
func (c *Client) GetNews(ctx context.Context, symbol string, from, to time.Time) ([]Article, error) {
	params := map[string]string{
		"symbol": symbol,
		"from":   from.Format("2006-01-02"),
		"to":     to.Format("2006-01-02"),
	}
	cacheKey := fmt.Sprintf("finnhub:news:%s:%s:%s", symbol, params["from"], params["to"])

	var articles []Article
	if c.cache.Get(ctx, cacheKey, &articles) {
		return articles, nil
	}

	if err := c.get(ctx, "/company-news", params, &articles); err != nil {
		return nil, err
	}

	c.cache.Set(ctx, cacheKey, articles, c.newsTTL)
	return articles, nil
}
