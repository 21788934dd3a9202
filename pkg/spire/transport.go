package spire

import (
	"context"
	"net/http"
	"net/url"
)

// Response is the normalized envelope every transport call resolves to:
// the status code, the final URL, the raw body, and the response headers.
// Write calls (POST/PUT) return it regardless of success or failure so that
// callers can inspect structured error content; reads convert non-success
// statuses into a RequestError instead.
type Response struct {
	StatusCode int
	URL        string
	Headers    http.Header
	Body       []byte
}

// Requester is the transport surface the query engine and record handles
// depend on. It is implemented by the internal HTTP client; tests substitute
// their own.
//
// A Requester's session state (base URL, credentials, headers) is set once at
// construction and immutable thereafter. It is not safe for concurrent use by
// multiple logical operations without external synchronization.
type Requester interface {
	// Get issues a read. A non-2xx status aborts with a *RequestError; no
	// partial result is returned.
	Get(ctx context.Context, path string, query url.Values) (*Response, error)

	// Post issues a create or action. The envelope is returned regardless of
	// status; callers decide success by inspecting StatusCode.
	Post(ctx context.Context, path string, body interface{}) (*Response, error)

	// Put issues an update with the same envelope contract as Post.
	Put(ctx context.Context, path string, body interface{}) (*Response, error)

	// Delete issues a delete and reports whether the status code was one of
	// the accepted success codes (200, 202, 204).
	Delete(ctx context.Context, path string) (bool, error)
}

// Logger is the minimal structured logging surface used across the client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
