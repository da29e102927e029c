// Package http implements the transport layer shared by all resource
// clients: one HTTP request per operation, classified into a decoded
// success payload or a structured failure.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/k5ops/k5go/internal/auth"
	"github.com/k5ops/k5go/pkg/k5"
)

const defaultUserAgent = "k5go-client/1.0"

// Logger is the structured logging interface used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents a single API request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// Response represents an API response with its raw body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client issues requests against one service endpoint. Requests are sent
// exactly once unless retries are explicitly enabled via WithRetryConfig.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the failure diagnostics logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig opts in to transparent retries for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout caps each underlying HTTP call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a transport client for one service endpoint. A nil
// token manager sends unauthenticated requests.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 0
	httpClient.Logger = nil
	// Surface the final response even when the retry policy gives up, so
	// 5xx statuses reach error classification instead of being discarded.
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   httpClient,
		userAgent:    defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do performs the request and classifies the outcome. Every non-2xx
// response and every transport-level fault is returned as an error; the
// failure is logged with its request context first.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var payload []byte

	if req.Body != nil {
		var err error

		payload, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, payload)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set("X-Auth-Token", token)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("sending request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"body":   string(payload),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logFailure(req.Method, fullURL, payload, 0, err.Error())

		return nil, fmt.Errorf("performing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		apiErr := classifyError(httpResp.StatusCode, body)
		c.logFailure(req.Method, fullURL, payload, httpResp.StatusCode, apiErr.Detail)

		return nil, apiErr
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("received response", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"status": httpResp.StatusCode,
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) logFailure(method, url string, body []byte, status int, detail string) {
	if c.logger == nil {
		return
	}

	c.logger.Error("request failed", map[string]interface{}{
		"method": method,
		"url":    url,
		"body":   string(body),
		"status": status,
		"error":  detail,
	})
}

// providerError covers the error body shapes the K5 services produce.
type providerError struct {
	NeutronError *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"NeutronError"`
	Error *struct {
		Message string `json:"message"`
		Title   string `json:"title"`
	} `json:"error"`
	ItemNotFound *struct {
		Message string `json:"message"`
	} `json:"itemNotFound"`
	BadRequest *struct {
		Message string `json:"message"`
	} `json:"badRequest"`
}

func classifyError(statusCode int, body []byte) *k5.APIError {
	apiErr := &k5.APIError{
		StatusCode: statusCode,
		Detail:     strings.TrimSpace(string(body)),
	}

	var parsed providerError
	if json.Unmarshal(body, &parsed) != nil {
		return apiErr
	}

	switch {
	case parsed.NeutronError != nil:
		apiErr.Title = parsed.NeutronError.Type
		apiErr.Detail = parsed.NeutronError.Message
	case parsed.Error != nil:
		apiErr.Title = parsed.Error.Title
		apiErr.Detail = parsed.Error.Message
	case parsed.ItemNotFound != nil:
		apiErr.Title = "itemNotFound"
		apiErr.Detail = parsed.ItemNotFound.Message
	case parsed.BadRequest != nil:
		apiErr.Title = "badRequest"
		apiErr.Detail = parsed.BadRequest.Message
	}

	return apiErr
}
