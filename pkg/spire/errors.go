package spire

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrHostRequired        = errors.New("host is required")
	ErrCompanyRequired     = errors.New("company is required")
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrRecordMissingID     = errors.New("record has no id")
	ErrMissingLocation     = errors.New("create response is missing a Location header")
	ErrNilRecord           = errors.New("record is nil")
	ErrNotFoundByNumber    = errors.New("no record matched the requested number")
	ErrCacheDisabled       = errors.New("cache disabled")
	ErrCacheMiss           = errors.New("key not found in cache")
)

// ErrorPayload is the structured error body the Spire API returns alongside a
// failing status code.
type ErrorPayload struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	ErrorType string `json:"error_type"`
	Traceback string `json:"traceback"`
}

// ParseErrorPayload decodes an error body. A nil payload is returned when the
// body is not the expected shape (e.g. an HTML error page).
func ParseErrorPayload(data []byte) *ErrorPayload {
	var payload ErrorPayload

	if err := json.Unmarshal(data, &payload); err != nil {
		return nil
	}

	if payload.Message == "" && payload.ErrorType == "" {
		return nil
	}

	return &payload
}

// RequestError reports a read (GET) that came back with a non-success status.
// No partial result accompanies it.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Payload    *ErrorPayload
	Body       []byte
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Payload != nil && e.Payload.Message != "" {
		return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.URL, e.StatusCode, e.Payload.Message)
	}

	return fmt.Sprintf("%s %s failed with status %d", e.Method, e.URL, e.StatusCode)
}

// CreateRequestError reports a write whose response status was not the
// expected success code. It carries the endpoint, status, and raw server
// content for diagnostics; it is never retried automatically.
type CreateRequestError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Body       []byte
}

// Error implements the error interface.
func (e *CreateRequestError) Error() string {
	message := e.Message
	if message == "" {
		message = "unknown error occurred"
	}

	return fmt.Sprintf("create request to %q failed with status %d: %s", e.Endpoint, e.StatusCode, message)
}

// NewCreateRequestError builds a CreateRequestError from a response envelope.
func NewCreateRequestError(endpoint string, resp *Response) *CreateRequestError {
	createErr := &CreateRequestError{
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}

	if payload := ParseErrorPayload(resp.Body); payload != nil {
		createErr.Message = payload.Message
	} else if len(resp.Body) > 0 {
		createErr.Message = string(resp.Body)
	}

	return createErr
}

// InvalidFilterFieldError reports a filter key that does not match any known
// field of the target schema. It is raised before any network call is made.
type InvalidFilterFieldError struct {
	Field  string
	Schema string
}

// Error implements the error interface.
func (e *InvalidFilterFieldError) Error() string {
	return fmt.Sprintf("invalid filter field %q for %s", e.Field, e.Schema)
}

// SchemaValidationError reports decoded JSON that does not conform to the
// expected record shape. No partial record is constructed.
type SchemaValidationError struct {
	Schema string
	Err    error
}

// Error implements the error interface.
func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("decoding %s record: %v", e.Schema, e.Err)
}

// Unwrap exposes the underlying decode error.
func (e *SchemaValidationError) Unwrap() error {
	return e.Err
}

// BusinessStateError reports a domain operation attempted against an entity
// whose state forbids it. The guard fires client-side, before any network
// call; it layers on top of server-side enforcement rather than replacing it.
type BusinessStateError struct {
	Entity    string
	ID        int
	Status    string
	Operation string
}

// Error implements the error interface.
func (e *BusinessStateError) Error() string {
	return fmt.Sprintf("cannot %s %s %d with status %q", e.Operation, e.Entity, e.ID, e.Status)
}

// IsNotFound checks whether the error is a 404 read failure.
func IsNotFound(err error) bool {
	reqErr := &RequestError{}

	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks whether the error is a 401 read failure.
func IsUnauthorized(err error) bool {
	reqErr := &RequestError{}

	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusUnauthorized
}

// IsBusinessState checks whether the error is a client-side state guard.
func IsBusinessState(err error) bool {
	stateErr := &BusinessStateError{}

	return errors.As(err, &stateErr)
}
