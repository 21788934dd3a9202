package spire_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spirekit/spire-client/pkg/spire"
)

// fakeRequester serves canned list pages and records calls.
type fakeRequester struct {
	t       *testing.T
	records []map[string]interface{}
	gets    []url.Values
}

func (f *fakeRequester) Get(ctx context.Context, path string, query url.Values) (*spire.Response, error) {
	f.gets = append(f.gets, query)

	start := 0
	limit := len(f.records)

	if query != nil {
		fmt.Sscanf(query.Get("start"), "%d", &start)
		fmt.Sscanf(query.Get("limit"), "%d", &limit)
	}

	end := start + limit
	if end > len(f.records) {
		end = len(f.records)
	}

	page := f.records
	if start <= len(f.records) {
		page = f.records[start:end]
	}

	body, err := json.Marshal(map[string]interface{}{
		"records": page,
		"count":   len(f.records),
	})
	require.NoError(f.t, err)

	return &spire.Response{StatusCode: http.StatusOK, Body: body}, nil
}

func (f *fakeRequester) Post(ctx context.Context, path string, body interface{}) (*spire.Response, error) {
	f.t.Fatal("unexpected POST")

	return nil, nil
}

func (f *fakeRequester) Put(ctx context.Context, path string, body interface{}) (*spire.Response, error) {
	f.t.Fatal("unexpected PUT")

	return nil, nil
}

func (f *fakeRequester) Delete(ctx context.Context, path string) (bool, error) {
	f.t.Fatal("unexpected DELETE")

	return false, nil
}

func makeCustomerRecords(n int) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, map[string]interface{}{
			"id":   i + 1,
			"name": fmt.Sprintf("Customer %d", i+1),
		})
	}

	return records
}

func TestQuery_SinglePage(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{t: t, records: makeCustomerRecords(3)}

	customers, err := spire.Query[spire.Customer](context.Background(), requester, "customers", nil)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "Customer 1", *customers[0].Name)
	assert.Equal(t, "Customer 3", *customers[2].Name)
	assert.Len(t, requester.gets, 1)
}

func TestQuery_LimitCapsTotal(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{t: t, records: makeCustomerRecords(10)}

	customers, err := spire.Query[spire.Customer](context.Background(), requester, "customers", &spire.ListOptions{
		Limit: 4,
	})
	require.NoError(t, err)
	assert.Len(t, customers, 4)
	assert.Len(t, requester.gets, 1)
	assert.Equal(t, "4", requester.gets[0].Get("limit"))
}

func TestQuery_AllPagesInOrder(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{t: t, records: makeCustomerRecords(25)}

	customers, err := spire.Query[spire.Customer](context.Background(), requester, "customers", &spire.ListOptions{
		All:   true,
		Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, customers, 25)

	// Server response order is preserved across page boundaries.
	for i, customer := range customers {
		assert.Equal(t, i+1, *customer.ID)
	}

	require.Len(t, requester.gets, 3)
	assert.Equal(t, "0", requester.gets[0].Get("start"))
	assert.Equal(t, "10", requester.gets[1].Get("start"))
	assert.Equal(t, "20", requester.gets[2].Get("start"))
}

func TestQuery_StartOffset(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{t: t, records: makeCustomerRecords(8)}

	customers, err := spire.Query[spire.Customer](context.Background(), requester, "customers", &spire.ListOptions{
		Start: 5,
		Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, 6, *customers[0].ID)
}

func TestQuery_EncodesSearchFilterAndSort(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{t: t, records: makeCustomerRecords(1)}

	_, err := spire.Query[spire.Customer](context.Background(), requester, "customers", &spire.ListOptions{
		Query:  "acme",
		Filter: map[string]interface{}{"status": "A"},
		Sort: map[string]string{
			"name":       spire.SortDescending,
			"customerNo": spire.SortAscending,
		},
	})
	require.NoError(t, err)
	require.Len(t, requester.gets, 1)

	vals := requester.gets[0]
	assert.Equal(t, "acme", vals.Get("q"))
	assert.JSONEq(t, `{"status":"A"}`, vals.Get("filter"))

	// Sort fields are emitted in lexical order, descending fields prefixed.
	assert.Equal(t, []string{"customerNo", "-name"}, vals["sort"])
}

func TestQuery_InvalidFilterFieldFailsBeforeRequest(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{t: t, records: makeCustomerRecords(5)}

	_, err := spire.Query[spire.Customer](context.Background(), requester, "customers", &spire.ListOptions{
		Filter: map[string]interface{}{"nosuchfield": 1},
	})
	require.Error(t, err)

	var filterErr *spire.InvalidFilterFieldError

	require.ErrorAs(t, err, &filterErr)
	assert.Equal(t, "nosuchfield", filterErr.Field)
	assert.Equal(t, "Customer", filterErr.Schema)
	assert.Empty(t, requester.gets, "no request should be made")
}

func TestQuery_MalformedRecordFailsClosed(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{t: t, records: []map[string]interface{}{
		{"id": 1, "name": "ok"},
		{"id": "not-a-number", "name": "bad"},
	}}

	_, err := spire.Query[spire.Customer](context.Background(), requester, "customers", nil)
	require.Error(t, err)

	var schemaErr *spire.SchemaValidationError

	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Customer", schemaErr.Schema)
}
