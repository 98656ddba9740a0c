// Package canvas is a thin client for the Canvas LMS REST API. Every call
// returns a result.Result: transport and HTTP errors never surface as bare
// Go errors.
package canvas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// Config configures a Client.
type Config struct {
	BaseURL           string // e.g. https://school.instructure.com
	PerPage           int
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration
	UserAgent         string
	TokenSource       oauth2.TokenSource
}

// Client issues authenticated, throttled requests against one Canvas domain.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	perPage    int
	userAgent  string
}

// NewClient creates a Canvas client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("canvas: base url is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("canvas: invalid base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("canvas: base url %q must be absolute", cfg.BaseURL)
	}

	if cfg.PerPage <= 0 {
		cfg.PerPage = defaultPerPage
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.TokenSource != nil {
		httpClient = oauth2.NewClient(context.WithValue(context.Background(), oauth2.HTTPClient, httpClient), cfg.TokenSource)
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		perPage:    cfg.PerPage,
		userAgent:  cfg.UserAgent,
	}, nil
}

// BaseURL returns the domain root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// Domain returns the host of the Canvas instance, used as a cache scope.
func (c *Client) Domain() string { return c.baseURL.Host }

// resolve turns an API path into an absolute URL. Absolute URLs (next-page
// links) are returned unchanged.
func (c *Client) resolve(path string, params url.Values) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	rawPath, rawQuery, _ := strings.Cut(strings.TrimLeft(path, "/"), "?")
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + apiPrefix + rawPath

	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		q = url.Values{}
	}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// firstPage resolves path and adds per_page unless the caller set it.
func (c *Client) firstPage(path string, params url.Values) string {
	merged := url.Values{}
	for k, vs := range params {
		merged[k] = append([]string(nil), vs...)
	}
	if merged.Get("per_page") == "" {
		merged.Set("per_page", strconv.Itoa(c.perPage))
	}
	return c.resolve(path, merged)
}

// do performs one request. out may be nil. The response headers are
// returned so callers can follow Link headers.
func (c *Client) do(ctx context.Context, method, rawURL string, body any, out any) (http.Header, *result.Failure) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, result.Network("request not sent", err)
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, result.Exception(fmt.Errorf("failed to marshal %s body: %w", method, err))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, result.Exception(fmt.Errorf("failed to build %s request: %w", method, err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, result.Authorization("token refresh rejected")
		}
		return nil, result.Network(fmt.Sprintf("%s %s", method, req.URL.Path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var apiErr apiErrorBody
		msg := ""
		if json.Unmarshal(raw, &apiErr) == nil {
			msg = apiErr.text()
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return resp.Header, result.HTTPStatus(resp.StatusCode, msg)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return resp.Header, result.Exception(fmt.Errorf("failed to decode %s response: %w", req.URL.Path, err))
		}
	}
	return resp.Header, nil
}
