// Package http implements the Requester transport against a Spire server:
// HTTP basic auth, JSON codecs, optional retries, and the normalized
// response envelope the rest of the client consumes.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/spirekit/spire-client/internal/constants"
	"github.com/spirekit/spire-client/pkg/spire"
)

// Client is the concrete spire.Requester. Session state is fixed at
// construction and never mutated afterwards.
type Client struct {
	baseURL      string
	username     string
	password     string
	userAgent    string
	httpClient   *retryablehttp.Client
	logger       spire.Logger
	debug        bool
	interceptors *spire.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger spire.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig enables transient-failure retries. The default client
// performs none: every failure surfaces directly to the caller.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithInterceptors installs a request/response interceptor chain.
func WithInterceptors(chain *spire.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport rooted at baseURL (scheme, host, and company
// path included) authenticating every request with basic auth.
func NewClient(baseURL, username, password string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		userAgent:  constants.DefaultUserAgent,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *Client) requestURL(path string, query url.Values) string {
	full := c.baseURL + "/" + strings.TrimLeft(path, "/")

	if len(query) > 0 {
		full += "?" + query.Encode()
	}

	return full
}

// do performs one exchange and resolves it to the normalized envelope. Status
// handling is left to the caller.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*spire.Response, error) {
	var bodyReader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}

		bodyReader = bytes.NewReader(data)
	}

	fullURL := c.requestURL(path, query)

	req, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building %s %s request: %w", method, path, err)
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	info := &spire.RequestInfo{Method: method, Path: path, Headers: req.Header}

	if c.interceptors != nil {
		if err := c.interceptors.ExecuteRequestInterceptors(ctx, info); err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API Request", map[string]interface{}{
			"method": method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.notifyInterceptors(ctx, info, &spire.ResponseInfo{Error: err})

		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s %s response: %w", method, path, err)
	}

	c.notifyInterceptors(ctx, info, &spire.ResponseInfo{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
	})

	if c.debug && c.logger != nil {
		c.logger.Debug("API Response", map[string]interface{}{
			"method":      method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
		})
	}

	return &spire.Response{
		StatusCode: httpResp.StatusCode,
		URL:        fullURL,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) notifyInterceptors(ctx context.Context, req *spire.RequestInfo, resp *spire.ResponseInfo) {
	if c.interceptors == nil {
		return
	}

	if err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp); err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"error":  err.Error(),
		})
	}
}

// Get issues a read. A non-2xx status aborts with a *spire.RequestError.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*spire.Response, error) {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &spire.RequestError{
			Method:     http.MethodGet,
			URL:        resp.URL,
			StatusCode: resp.StatusCode,
			Payload:    spire.ParseErrorPayload(resp.Body),
			Body:       resp.Body,
		}
	}

	return resp, nil
}

// Post issues a create or action. The envelope is returned regardless of
// status.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*spire.Response, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put issues an update. The envelope is returned regardless of status.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*spire.Response, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Delete issues a delete and reports whether the server answered with one of
// the accepted success codes.
func (c *Client) Delete(ctx context.Context, path string) (bool, error) {
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return false, err
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return true, nil
	default:
		return false, nil
	}
}
