package spire

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// MaxPageSize is the hard per-request cap the server enforces on list calls.
const MaxPageSize = 1000

// SortAscending and SortDescending are the accepted sort directions.
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// ListResponse is the envelope every list endpoint returns.
type ListResponse struct {
	Records []json.RawMessage `json:"records"`
	Count   int               `json:"count"`
}

// ListOptions expresses search, filtering, sorting, and pagination for list
// calls.
//
// Filter keys are validated against the target record's known field names
// before any request goes out. Limit above MaxPageSize is clamped per page,
// not globally. With All set, the budget is unbounded and every page is
// fetched until the server-reported count (or an empty page) says stop.
type ListOptions struct {
	// Query is a free-text search string (the "q" parameter).
	Query string

	// Filter is a field→value mapping, JSON-encoded into a single "filter"
	// parameter.
	Filter map[string]interface{}

	// Sort maps field names to SortAscending or SortDescending; each entry
	// becomes a repeated "sort" parameter, "-"-prefixed when descending.
	// Fields are emitted in lexical order.
	Sort map[string]string

	// All fetches every page of results, ignoring Limit as a total budget.
	All bool

	// Limit is the total number of records wanted (page size when All is
	// set). Zero means MaxPageSize.
	Limit int

	// Start is the initial pagination offset.
	Start int

	// Extra carries any additional query parameters verbatim.
	Extra url.Values
}

// values encodes the non-cursor parameters.
func (o *ListOptions) values() (url.Values, error) {
	vals := url.Values{}

	if o == nil {
		return vals, nil
	}

	if o.Query != "" {
		vals.Set("q", o.Query)
	}

	if len(o.Filter) > 0 {
		encoded, err := json.Marshal(o.Filter)
		if err != nil {
			return nil, fmt.Errorf("encoding filter: %w", err)
		}

		vals.Set("filter", string(encoded))
	}

	if len(o.Sort) > 0 {
		fields := make([]string, 0, len(o.Sort))
		for field := range o.Sort {
			fields = append(fields, field)
		}

		sort.Strings(fields)

		for _, field := range fields {
			prefix := ""
			if o.Sort[field] == SortDescending {
				prefix = "-"
			}

			vals.Add("sort", prefix+field)
		}
	}

	for key, entries := range o.Extra {
		for _, entry := range entries {
			vals.Add(key, entry)
		}
	}

	return vals, nil
}

// validateFilter rejects filter keys that are not fields of the record
// schema T, before any network call.
func validateFilter[T any](filter map[string]interface{}) error {
	known := knownFields[T]()

	for field := range filter {
		if _, ok := known[field]; !ok {
			return &InvalidFilterFieldError{Field: field, Schema: schemaName[T]()}
		}
	}

	return nil
}

// Query drives the pagination cursor against one list endpoint and decodes
// every returned record into *T, in server response order. The engine does
// not re-sort; caller-specified Sort governs server ordering.
//
// Termination favors stopping: the loop ends when the per-call budget is
// spent (when All is false), when the cursor passes the server-reported
// count, or when a page comes back empty, whichever happens first.
func Query[T any](ctx context.Context, rt Requester, endpoint string, opts *ListOptions) ([]*T, error) {
	if opts == nil {
		opts = &ListOptions{}
	}

	if len(opts.Filter) > 0 {
		if err := validateFilter[T](opts.Filter); err != nil {
			return nil, err
		}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = MaxPageSize
	}

	start := opts.Start
	remaining := limit

	var collected []*T

	for {
		pageSize := limit
		if !opts.All && remaining < pageSize {
			pageSize = remaining
		}

		if pageSize > MaxPageSize {
			pageSize = MaxPageSize
		}

		vals, err := opts.values()
		if err != nil {
			return nil, err
		}

		vals.Set("start", strconv.Itoa(start))
		vals.Set("limit", strconv.Itoa(pageSize))

		resp, err := rt.Get(ctx, endpoint, vals)
		if err != nil {
			return nil, err
		}

		var list ListResponse
		if err := json.Unmarshal(resp.Body, &list); err != nil {
			return nil, fmt.Errorf("parsing %s list response: %w", endpoint, err)
		}

		for _, raw := range list.Records {
			rec, err := decodeRecord[T](raw)
			if err != nil {
				return nil, err
			}

			collected = append(collected, rec)
		}

		if len(list.Records) == 0 {
			break
		}

		if !opts.All {
			remaining -= len(list.Records)
			if remaining <= 0 {
				break
			}
		}

		if start+pageSize >= list.Count {
			break
		}

		start += pageSize
	}

	return collected, nil
}
