package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"frame-pricing/internal/pkg/config"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/usecase/shared"

	"golang.org/x/time/rate"
)

const maxErrorBody = 512

// ClientFactory hands out per-shop admin clients that share one HTTP client
// and keep one rate limiter per shop.
type ClientFactory struct {
	cfg        config.ShopifyConfig
	httpClient *http.Client
	endpoint   func(shop string) string

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

type Option func(*ClientFactory)

// WithEndpoint sends every shop's requests to url. Used against local test servers.
func WithEndpoint(url string) Option {
	return func(f *ClientFactory) {
		f.endpoint = func(string) string { return url }
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(f *ClientFactory) {
		f.httpClient = c
	}
}

func NewClientFactory(cfg config.ShopifyConfig, opts ...Option) *ClientFactory {
	f := &ClientFactory{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiters:   make(map[string]*rate.Limiter),
	}
	f.endpoint = func(shop string) string {
		return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shop, cfg.APIVersion)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *ClientFactory) ForShop(shop, accessToken string) *AdminClient {
	return &AdminClient{
		shop:       shop,
		token:      accessToken,
		url:        f.endpoint(shop),
		httpClient: f.httpClient,
		limiter:    f.limiterFor(shop),
	}
}

func (f *ClientFactory) limiterFor(shop string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.limiters[shop]
	if !ok {
		burst := f.cfg.Burst
		if burst < 1 {
			burst = 1
		}
		l = rate.NewLimiter(rate.Limit(f.cfg.RequestsPerSec), burst)
		f.limiters[shop] = l
	}
	return l
}

// AdminClient implements shared.AdminAPI over the admin GraphQL endpoint.
type AdminClient struct {
	shop       string
	token      string
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ shared.AdminAPI = (*AdminClient)(nil)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

func (c *AdminClient) Execute(ctx context.Context, req shared.AdminRequest) (*shared.AdminResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "admin api rate limit wait"), errs.ErrRemoteTransport)
	}

	body, err := json.Marshal(graphQLRequest{Query: req.Query, Variables: req.Variables})
	if err != nil {
		return nil, errs.Wrap(err, "encode graphql request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "build admin api request"), errs.ErrRemoteTransport)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "admin api request for %s", c.shop), errs.ErrRemoteTransport)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errs.Mark(errs.Newf("admin api rejected token for %s: %d", c.shop, resp.StatusCode), errs.ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		slog.Warn("admin api returned non-2xx",
			"shop", c.shop,
			"status", resp.StatusCode,
			"body", string(snippet))
		return nil, errs.Mark(errs.Newf("admin api status %d for %s", resp.StatusCode, c.shop), errs.ErrRemoteTransport)
	}

	var out shared.AdminResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode admin api response"), errs.ErrRemoteTransport)
	}
	return &out, nil
}
