package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spirekit/spire-client/pkg/spire"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *spire.Config
		wantErr error
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: spire.ErrConfigRequired,
		},
		{
			name:    "missing host",
			config:  &spire.Config{Company: "inspire", Username: "u", Password: "p"},
			wantErr: spire.ErrHostRequired,
		},
		{
			name:    "missing company",
			config:  &spire.Config{Host: "example.com", Username: "u", Password: "p"},
			wantErr: spire.ErrCompanyRequired,
		},
		{
			name:    "missing username",
			config:  &spire.Config{Host: "example.com", Company: "inspire", Password: "p"},
			wantErr: spire.ErrCredentialsRequired,
		},
		{
			name:    "missing password",
			config:  &spire.Config{Host: "example.com", Company: "inspire", Username: "u"},
			wantErr: spire.ErrCredentialsRequired,
		},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(testCase.config)
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		host    string
		company string
		want    string
	}{
		{
			name:    "bare host",
			host:    "black-disk-5630.spirelan.com:10880",
			company: "inspire",
			want:    "https://black-disk-5630.spirelan.com:10880/api/v2/companies/inspire",
		},
		{
			name:    "explicit scheme",
			host:    "http://localhost:10880",
			company: "inspire",
			want:    "http://localhost:10880/api/v2/companies/inspire",
		},
		{
			name:    "trailing slash",
			host:    "https://example.com/",
			company: "acme",
			want:    "https://example.com/api/v2/companies/acme",
		},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, baseURL(testCase.host, testCase.company))
		})
	}
}

// newTestClient builds a client pointed at a test server, with caching off
// unless a cache config is given.
func newTestClient(t *testing.T, server *httptest.Server, cache *spire.CacheConfig) *Client {
	t.Helper()

	client, err := New(&spire.Config{
		Host:     server.URL,
		Company:  "inspire",
		Username: "alice",
		Password: "secret",
		Cache:    cache,
	})
	require.NoError(t, err)

	return client
}

func TestOrdersClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/companies/inspire/sales/orders/12", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 12, "orderNo": "SO-12", "status": "O"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)

	handle, err := client.Orders().Get(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, 12, *handle.Record().ID)
	assert.Equal(t, "SO-12", *handle.Record().OrderNo)
}

func TestOrdersClient_GetNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "record not found", "error_type": "not_found"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)

	_, err := client.Orders().Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, spire.IsNotFound(err))
}

func TestCustomersClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/companies/inspire/customers", r.URL.Path)
		assert.Equal(t, "acme", r.URL.Query().Get("q"))

		_, _ = w.Write([]byte(`{"records": [
			{"id": 1, "name": "Acme West"},
			{"id": 2, "name": "Acme East"}
		], "count": 2}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)

	handles, err := client.Customers().List(context.Background(), &spire.ListOptions{Query: "acme"})
	require.NoError(t, err)
	require.Len(t, handles, 2)
	assert.Equal(t, "Acme West", *handles[0].Record().Name)
}

func TestCustomersClient_Create(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "/api/v2/companies/inspire/customers", r.URL.Path)

			var body map[string]interface{}

			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Acme", body["name"])

			w.Header().Set("Location", server.URL+"/api/v2/companies/inspire/customers/42")
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			assert.Equal(t, "/api/v2/companies/inspire/customers/42", r.URL.Path)
			_, _ = w.Write([]byte(`{"id": 42, "name": "Acme", "customerNo": "ACM001"}`))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)

	handle, err := client.Customers().Create(context.Background(), &spire.Customer{
		Name: spire.String("Acme"),
	})
	require.NoError(t, err)
	assert.Equal(t, 42, *handle.Record().ID)
	assert.Equal(t, "ACM001", *handle.Record().CustomerNo)
}

func TestPurchaseOrdersClient_GetByNumber(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/companies/inspire/purchasing/orders":
			assert.JSONEq(t, `{"number": "PO-100"}`, r.URL.Query().Get("filter"))
			_, _ = w.Write([]byte(`{"records": [{"id": 7, "number": "PO-100"}], "count": 1}`))
		case "/api/v2/companies/inspire/purchasing/orders/7":
			_, _ = w.Write([]byte(`{"id": 7, "number": "PO-100", "status": "O", "items": [{"id": 1}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)

	handle, err := client.PurchaseOrders().GetByNumber(context.Background(), "PO-100")
	require.NoError(t, err)
	assert.Equal(t, 7, *handle.Record().ID)

	// The full record was re-fetched, line items included.
	assert.Len(t, handle.Record().Items, 1)
}

func TestPurchaseOrdersClient_GetByNumberNoMatch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"records": [], "count": 0}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)

	_, err := client.PurchaseOrders().GetByNumber(context.Background(), "PO-NOPE")
	require.ErrorIs(t, err, spire.ErrNotFoundByNumber)
}

func TestPurchaseOrdersClient_History(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/companies/inspire/purchasing/history", r.URL.Path)
		_, _ = w.Write([]byte(`{"records": [{"id": 3, "number": "PO-3", "status": "R"}], "count": 1}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)

	orders, err := client.PurchaseOrders().History(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "R", *orders[0].Status)
}

func TestGetRecord_CachesSingleReads(t *testing.T) {
	t.Parallel()

	var hits int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++

		_, _ = w.Write([]byte(`{"id": 5, "name": "Cached"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, &spire.CacheConfig{
		Type:   spire.CacheTypeMemory,
		Memory: &spire.MemoryCacheConfig{MaxSize: 10},
	})

	ctx := context.Background()

	first, err := client.Customers().Get(ctx, 5)
	require.NoError(t, err)

	second, err := client.Customers().Get(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, hits, "second read should come from the cache")
	assert.Equal(t, *first.Record().Name, *second.Record().Name)
}

func TestGetRecord_ListsBypassCache(t *testing.T) {
	t.Parallel()

	var hits int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++

		_, _ = w.Write([]byte(`{"records": [{"id": 1}], "count": 1}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, &spire.CacheConfig{
		Type:   spire.CacheTypeMemory,
		Memory: &spire.MemoryCacheConfig{MaxSize: 10},
	})

	ctx := context.Background()

	_, err := client.Customers().List(ctx, nil)
	require.NoError(t, err)
	_, err = client.Customers().List(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, hits)
}

func TestInventoryClient_UPCs(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/companies/inspire/inventory/upcs", r.URL.Path)
		_, _ = w.Write([]byte(`{"records": [{"id": 9, "upc": "012345678905"}], "count": 1}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)

	handles, err := client.Inventory().ListUPCs(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, handles, 1)
	assert.Equal(t, "012345678905", *handles[0].Record().Code)
}

func TestInventoryClient_Create(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "/api/v2/companies/inspire/inventory/items", r.URL.Path)

			var body map[string]interface{}

			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "WIDGET", body["partNo"])

			w.Header().Set("Location", server.URL+"/api/v2/companies/inspire/inventory/items/88")
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			assert.Equal(t, "/api/v2/companies/inspire/inventory/items/88", r.URL.Path)
			_, _ = w.Write([]byte(`{"id": 88, "whse": "00", "partNo": "WIDGET"}`))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)

	handle, err := client.Inventory().Create(context.Background(), &spire.InventoryItem{
		Whse:   spire.String("00"),
		PartNo: spire.String("WIDGET"),
	})
	require.NoError(t, err)
	assert.Equal(t, 88, *handle.Record().ID)
	assert.Equal(t, "WIDGET", *handle.Record().PartNo)
}

func TestNotesClient_CreateAndDelete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			w.Header().Set("Location", "/api/v2/companies/inspire/crm/notes/31")
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`{"id": 31, "subject": "Call back", "linkTable": "customers"}`))
		case r.Method == http.MethodDelete:
			assert.Equal(t, "/api/v2/companies/inspire/crm/notes/31", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)
	ctx := context.Background()

	handle, err := client.Notes().Create(ctx, &spire.Note{
		LinkTable: spire.String("customers"),
		LinkNo:    spire.String("ACM001"),
		Subject:   spire.String("Call back"),
	})
	require.NoError(t, err)
	assert.Equal(t, 31, *handle.Record().ID)

	deleted, err := handle.Delete(ctx)
	require.NoError(t, err)
	assert.True(t, deleted)
}
