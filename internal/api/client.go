// Package api is the client for the revenue REST API. Responses are retried
// on transient failures and cached until they go stale.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/models"
	"mainstack/revenue/internal/parsererror"

	"golang.org/x/net/publicsuffix"
)

// API endpoints
const (
	DefaultBaseURL       = "https://fe-task-api.mainstack.io"
	EndpointUser         = "/user"
	EndpointWallet       = "/wallet"
	EndpointTransactions = "/transactions"

	DefaultStaleTime = 5 * time.Minute
	DefaultTimeout   = 30 * time.Second

	maxBodyBytes = 10 << 20
)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	StaleTime  time.Duration
	Retry      RetryPolicy
	HTTPClient *http.Client
	Now        func() time.Time
}

// Client fetches dashboard data from the revenue API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	cache   *responseCache
	retry   RetryPolicy
	logger  logging.Logger
}

// NewClient creates a client. Requests share a cookie jar scoped by the
// public suffix list.
func NewClient(opts Options, logger logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &parsererror.ValidationError{Field: "base_url", Reason: fmt.Sprintf("%q is not an absolute URL", base)}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		httpClient = &http.Client{Timeout: timeout, Jar: jar}
	}

	staleTime := opts.StaleTime
	if staleTime == 0 {
		staleTime = DefaultStaleTime
	}
	retry := opts.Retry
	if retry == (RetryPolicy{}) {
		retry = DefaultRetryPolicy()
	}

	return &Client{
		baseURL: u,
		http:    httpClient,
		cache:   newResponseCache(staleTime, opts.Now),
		retry:   retry,
		logger:  logger.WithField(logging.FieldComponent, "api"),
	}, nil
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// User fetches the signed-in user.
func (c *Client) User(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.getJSON(ctx, EndpointUser, &user)
	return user, err
}

// Wallet fetches the wallet balance and totals.
func (c *Client) Wallet(ctx context.Context) (models.WalletData, error) {
	var wallet models.WalletData
	err := c.getJSON(ctx, EndpointWallet, &wallet)
	return wallet, err
}

// Transactions fetches all wallet transactions.
func (c *Client) Transactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.getJSON(ctx, EndpointTransactions, &txs); err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// Invalidate drops cached responses so the next call goes to the network.
// With no endpoints every cached response is dropped.
func (c *Client) Invalidate(endpoints ...string) {
	if len(endpoints) == 0 {
		c.cache.clear()
		return
	}
	for _, e := range endpoints {
		c.cache.delete(e)
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	body, hit := c.cache.get(endpoint)
	if !hit {
		err := withRetry(ctx, c.retry, c.logger.WithField(logging.FieldEndpoint, endpoint), func() error {
			var err error
			body, err = c.fetch(ctx, endpoint)
			return err
		})
		if err != nil {
			return err
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.cache.delete(endpoint)
		return &parsererror.ParseError{Source: "api", Field: endpoint, Value: abbreviate(body), Err: err}
	}
	if !hit {
		c.cache.set(endpoint, body)
	}

	c.logger.Debug("Fetched resource",
		logging.F(logging.FieldEndpoint, endpoint),
		logging.F(logging.FieldCacheHit, hit))
	return nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	target := c.baseURL.JoinPath(endpoint).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &parsererror.RequestError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &parsererror.RequestError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	c.logger.Debug("API response",
		logging.F(logging.FieldEndpoint, endpoint),
		logging.F(logging.FieldStatusCode, resp.StatusCode),
		logging.F(logging.FieldDuration, time.Since(start).String()))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(abbreviate(body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &parsererror.RequestError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        errors.New(msg),
		}
	}
	return body, nil
}

func abbreviate(body []byte) string {
	const limit = 120
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
