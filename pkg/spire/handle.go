package spire

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Record handles are the active-record layer: each one binds exactly one
// decoded record to one borrowed transport, so domain operations can be
// invoked directly on a fetched entity. The record is the single source of
// truth; Record() exposes it for reads and writes, and every server-facing
// operation serializes from it.

// IDFromLocation extracts the identifier a create response advertises as the
// trailing path segment of its Location header.
func IDFromLocation(location string) (int, error) {
	if location == "" {
		return 0, ErrMissingLocation
	}

	parsed, err := url.Parse(location)
	if err != nil {
		return 0, fmt.Errorf("parsing Location header %q: %w", location, err)
	}

	segments := strings.Split(strings.TrimRight(parsed.Path, "/"), "/")

	id, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil {
		return 0, fmt.Errorf("parsing id from Location header %q: %w", location, err)
	}

	return id, nil
}

func requireID(id *int) (int, error) {
	if id == nil {
		return 0, ErrRecordMissingID
	}

	return *id, nil
}

// fetchRecord GETs one entity by id and decodes it.
func fetchRecord[T any](ctx context.Context, rt Requester, endpoint string, id int) (*T, error) {
	resp, err := rt.Get(ctx, fmt.Sprintf("%s/%d", endpoint, id), nil)
	if err != nil {
		return nil, err
	}

	return decodeRecord[T](resp.Body)
}

// createRecord POSTs a new entity and, on 201, re-fetches it by the id the
// Location header points at.
func createRecord[T any](ctx context.Context, rt Requester, endpoint string, rec interface{}) (*T, error) {
	payload, err := writePayload(rec)
	if err != nil {
		return nil, err
	}

	resp, err := rt.Post(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, NewCreateRequestError(endpoint, resp)
	}

	id, err := IDFromLocation(resp.Headers.Get("Location"))
	if err != nil {
		return nil, err
	}

	return fetchRecord[T](ctx, rt, endpoint, id)
}

// Create POSTs a new record and re-fetches the stored entity by the id its
// Location header advertises, so the caller always sees the server's view of
// what was created.
func Create[T any](ctx context.Context, rt Requester, endpoint string, rec *T) (*T, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}

	return createRecord[T](ctx, rt, endpoint, rec)
}

// updateRecord PUTs an entity's write payload and decodes the updated record.
func updateRecord[T any](ctx context.Context, rt Requester, endpoint string, id int, rec interface{}) (*T, error) {
	payload, err := writePayload(rec)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%d", endpoint, id)

	resp, err := rt.Put(ctx, path, payload)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, NewCreateRequestError(path, resp)
	}

	return decodeRecord[T](resp.Body)
}

// deleteRecord DELETEs an entity by id.
func deleteRecord(ctx context.Context, rt Requester, endpoint string, id int) (bool, error) {
	return rt.Delete(ctx, fmt.Sprintf("%s/%d", endpoint, id))
}

// postAction POSTs a status-transition sub-resource (issue, receive, invoice)
// and decodes the response on the expected status.
func postAction[T any](ctx context.Context, rt Requester, path string, expect int) (*T, error) {
	resp, err := rt.Post(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != expect {
		return nil, NewCreateRequestError(path, resp)
	}

	return decodeRecord[T](resp.Body)
}
