package spire_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spirekit/spire-client/pkg/spire"
)

// scriptedRequester dispatches to per-verb functions, failing the test when a
// verb without a script is called.
type scriptedRequester struct {
	t        *testing.T
	onGet    func(path string, query url.Values) (*spire.Response, error)
	onPost   func(path string, body interface{}) (*spire.Response, error)
	onPut    func(path string, body interface{}) (*spire.Response, error)
	onDelete func(path string) (bool, error)
}

func (s *scriptedRequester) Get(ctx context.Context, path string, query url.Values) (*spire.Response, error) {
	if s.onGet == nil {
		s.t.Fatalf("unexpected GET %s", path)
	}

	return s.onGet(path, query)
}

func (s *scriptedRequester) Post(ctx context.Context, path string, body interface{}) (*spire.Response, error) {
	if s.onPost == nil {
		s.t.Fatalf("unexpected POST %s", path)
	}

	return s.onPost(path, body)
}

func (s *scriptedRequester) Put(ctx context.Context, path string, body interface{}) (*spire.Response, error) {
	if s.onPut == nil {
		s.t.Fatalf("unexpected PUT %s", path)
	}

	return s.onPut(path, body)
}

func (s *scriptedRequester) Delete(ctx context.Context, path string) (bool, error) {
	if s.onDelete == nil {
		s.t.Fatalf("unexpected DELETE %s", path)
	}

	return s.onDelete(path)
}

func TestIDFromLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		location string
		want     int
		wantErr  bool
	}{
		{
			name:     "absolute URL",
			location: "https://example.com/api/v2/companies/inspire/sales/orders/123",
			want:     123,
		},
		{
			name:     "trailing slash",
			location: "https://example.com/customers/77/",
			want:     77,
		},
		{
			name:     "bare path",
			location: "/customers/8",
			want:     8,
		},
		{
			name:     "empty",
			location: "",
			wantErr:  true,
		},
		{
			name:     "non-numeric tail",
			location: "https://example.com/customers/new",
			wantErr:  true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			id, err := spire.IDFromLocation(testCase.location)
			if testCase.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, id)
		})
	}
}

func TestCreate_RefetchesByLocation(t *testing.T) {
	t.Parallel()

	var gotPath string

	requester := &scriptedRequester{
		t: t,
		onPost: func(path string, body interface{}) (*spire.Response, error) {
			assert.Equal(t, "customers", path)

			payload, ok := body.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "Acme", payload["name"])
			assert.NotContains(t, payload, "id", "unset fields are not serialized")

			headers := http.Header{}
			headers.Set("Location", "https://example.com/api/v2/companies/inspire/customers/55")

			return &spire.Response{StatusCode: http.StatusCreated, Headers: headers}, nil
		},
		onGet: func(path string, query url.Values) (*spire.Response, error) {
			gotPath = path

			return &spire.Response{
				StatusCode: http.StatusOK,
				Body:       []byte(`{"id": 55, "name": "Acme"}`),
			}, nil
		},
	}

	created, err := spire.Create(context.Background(), requester, "customers", &spire.Customer{
		Name: spire.String("Acme"),
	})
	require.NoError(t, err)
	assert.Equal(t, "customers/55", gotPath)
	assert.Equal(t, 55, *created.ID)
	assert.Equal(t, "Acme", *created.Name)
}

func TestCreate_NonCreatedStatus(t *testing.T) {
	t.Parallel()

	requester := &scriptedRequester{
		t: t,
		onPost: func(path string, body interface{}) (*spire.Response, error) {
			return &spire.Response{
				StatusCode: http.StatusUnprocessableEntity,
				Body:       []byte(`{"message": "customerNo already in use", "error_type": "validation"}`),
			}, nil
		},
	}

	_, err := spire.Create(context.Background(), requester, "customers", &spire.Customer{})
	require.Error(t, err)

	var createErr *spire.CreateRequestError

	require.ErrorAs(t, err, &createErr)
	assert.Equal(t, http.StatusUnprocessableEntity, createErr.StatusCode)
	assert.Equal(t, "customerNo already in use", createErr.Message)
	assert.Contains(t, createErr.Error(), "customerNo already in use")
}

func TestCreate_MissingLocationHeader(t *testing.T) {
	t.Parallel()

	requester := &scriptedRequester{
		t: t,
		onPost: func(path string, body interface{}) (*spire.Response, error) {
			return &spire.Response{StatusCode: http.StatusCreated, Headers: http.Header{}}, nil
		},
	}

	_, err := spire.Create(context.Background(), requester, "customers", &spire.Customer{})
	require.ErrorIs(t, err, spire.ErrMissingLocation)
}

func TestSalesOrderHandle_UpdateSwapsRecord(t *testing.T) {
	t.Parallel()

	requester := &scriptedRequester{
		t: t,
		onPut: func(path string, body interface{}) (*spire.Response, error) {
			assert.Equal(t, "sales/orders/12", path)

			payload, ok := body.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "REF-9", payload["referenceNo"])

			return &spire.Response{
				StatusCode: http.StatusOK,
				Body:       []byte(`{"id": 12, "referenceNo": "REF-9", "status": "O"}`),
			}, nil
		},
	}

	handle := spire.WrapSalesOrder(&spire.SalesOrder{
		ID:          spire.Int(12),
		ReferenceNo: spire.String("REF-9"),
	}, requester)

	updated, err := handle.Update(context.Background())
	require.NoError(t, err)
	assert.Same(t, handle, updated)
	assert.Equal(t, "O", *handle.Record().Status)
}

func TestSalesOrderHandle_UpdateRequiresID(t *testing.T) {
	t.Parallel()

	handle := spire.WrapSalesOrder(&spire.SalesOrder{}, &scriptedRequester{t: t})

	_, err := handle.Update(context.Background())
	require.ErrorIs(t, err, spire.ErrRecordMissingID)
}

func TestSalesOrderHandle_Invoice(t *testing.T) {
	t.Parallel()

	requester := &scriptedRequester{
		t: t,
		onPost: func(path string, body interface{}) (*spire.Response, error) {
			assert.Equal(t, "sales/orders/12/invoice", path)
			assert.Nil(t, body)

			return &spire.Response{
				StatusCode: http.StatusOK,
				Body:       []byte(`{"invoice": {"id": 99, "invoiceNo": "INV-99"}}`),
			}, nil
		},
	}

	handle := spire.WrapSalesOrder(&spire.SalesOrder{ID: spire.Int(12)}, requester)

	invoice, err := handle.Invoice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 99, *invoice.Record().ID)
	assert.Equal(t, "INV-99", *invoice.Record().InvoiceNo)
}

func TestSalesOrderHandle_InvoiceRejected(t *testing.T) {
	t.Parallel()

	requester := &scriptedRequester{
		t: t,
		onPost: func(path string, body interface{}) (*spire.Response, error) {
			return &spire.Response{
				StatusCode: http.StatusUnprocessableEntity,
				Body:       []byte(`{"message": "quotes cannot be invoiced", "error_type": "validation"}`),
			}, nil
		},
	}

	handle := spire.WrapSalesOrder(&spire.SalesOrder{ID: spire.Int(12)}, requester)

	_, err := handle.Invoice(context.Background())
	require.Error(t, err)

	var createErr *spire.CreateRequestError

	require.ErrorAs(t, err, &createErr)
	assert.Equal(t, "quotes cannot be invoiced", createErr.Message)
}

func TestSalesOrderHandle_Process(t *testing.T) {
	t.Parallel()

	requester := &scriptedRequester{
		t: t,
		onPut: func(path string, body interface{}) (*spire.Response, error) {
			assert.Equal(t, "sales/orders/12", path)
			assert.Equal(t, map[string]interface{}{"status": "P"}, body)

			return &spire.Response{
				StatusCode: http.StatusOK,
				Body:       []byte(`{"id": 12, "status": "P"}`),
			}, nil
		},
	}

	handle := spire.WrapSalesOrder(&spire.SalesOrder{ID: spire.Int(12)}, requester)

	_, err := handle.Process(context.Background())
	require.NoError(t, err)
	assert.Equal(t, spire.OrderStatusProcessed, *handle.Record().Status)
}

func TestPurchaseOrderHandle_UpdateGuardsIssued(t *testing.T) {
	t.Parallel()

	// No scripts: any network call fails the test.
	requester := &scriptedRequester{t: t}

	handle := spire.WrapPurchaseOrder(&spire.PurchaseOrder{
		ID:     spire.Int(5),
		Status: spire.String(spire.PurchaseOrderStatusIssued),
	}, requester)

	_, err := handle.Update(context.Background())
	require.Error(t, err)
	assert.True(t, spire.IsBusinessState(err))
}

func TestPurchaseOrderHandle_DeleteGuardsIssuedAndReceived(t *testing.T) {
	t.Parallel()

	for _, status := range []string{spire.PurchaseOrderStatusIssued, spire.PurchaseOrderStatusReceived} {
		handle := spire.WrapPurchaseOrder(&spire.PurchaseOrder{
			ID:     spire.Int(5),
			Status: spire.String(status),
		}, &scriptedRequester{t: t})

		_, err := handle.Delete(context.Background())
		require.Error(t, err)
		assert.True(t, spire.IsBusinessState(err))
	}
}

func TestPurchaseOrderHandle_DeleteOpen(t *testing.T) {
	t.Parallel()

	requester := &scriptedRequester{
		t: t,
		onDelete: func(path string) (bool, error) {
			assert.Equal(t, "purchasing/orders/5", path)

			return true, nil
		},
	}

	handle := spire.WrapPurchaseOrder(&spire.PurchaseOrder{
		ID:     spire.Int(5),
		Status: spire.String(spire.PurchaseOrderStatusOpen),
	}, requester)

	deleted, err := handle.Delete(context.Background())
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestPurchaseOrderHandle_ReceiveAll(t *testing.T) {
	t.Parallel()

	var putSeen bool

	requester := &scriptedRequester{t: t}
	requester.onPut = func(path string, body interface{}) (*spire.Response, error) {
		putSeen = true

		assert.Equal(t, "purchasing/orders/5", path)

		payload, ok := body.(map[string]interface{})
		require.True(t, ok)

		items, ok := payload["items"].([]interface{})
		require.True(t, ok)
		require.Len(t, items, 2)

		for _, raw := range items {
			item, ok := raw.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, item["orderQty"], item["receiveQty"])
		}

		return &spire.Response{
			StatusCode: http.StatusOK,
			Body: []byte(`{"id": 5, "status": "I", "items": [
				{"id": 1, "orderQty": "3", "receiveQty": "3"},
				{"id": 2, "orderQty": "7", "receiveQty": "7"}
			]}`),
		}, nil
	}
	requester.onPost = func(path string, body interface{}) (*spire.Response, error) {
		assert.True(t, putSeen, "receive quantities must be persisted before the receive transition")
		assert.Equal(t, "purchasing/orders/5/receive", path)

		return &spire.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"id": 5, "status": "R"}`),
		}, nil
	}

	// Receiving in full targets an issued order: the quantity update must not
	// trip the issued-status guard that Update enforces.
	handle := spire.WrapPurchaseOrder(&spire.PurchaseOrder{
		ID:     spire.Int(5),
		Status: spire.String(spire.PurchaseOrderStatusIssued),
		Items: []spire.PurchaseOrderItem{
			{ID: spire.Int(1), OrderQty: spire.String("3")},
			{ID: spire.Int(2), OrderQty: spire.String("7")},
		},
	}, requester)

	_, err := handle.Receive(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, spire.PurchaseOrderStatusReceived, *handle.Record().Status)
}

func TestPurchaseOrderHandle_Issue(t *testing.T) {
	t.Parallel()

	requester := &scriptedRequester{
		t: t,
		onPost: func(path string, body interface{}) (*spire.Response, error) {
			assert.Equal(t, "purchasing/orders/5/issue", path)

			return &spire.Response{
				StatusCode: http.StatusOK,
				Body:       []byte(`{"id": 5, "status": "I"}`),
			}, nil
		},
	}

	handle := spire.WrapPurchaseOrder(&spire.PurchaseOrder{
		ID:     spire.Int(5),
		Status: spire.String(spire.PurchaseOrderStatusOpen),
	}, requester)

	_, err := handle.Issue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, spire.PurchaseOrderStatusIssued, *handle.Record().Status)
}

func TestInvoiceHandle_Reverse(t *testing.T) {
	t.Parallel()

	requester := &scriptedRequester{t: t}
	requester.onPost = func(path string, body interface{}) (*spire.Response, error) {
		assert.Equal(t, "sales/orders", path)

		payload, ok := body.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "-10.00", payload["freight"])

		headers := http.Header{}
		headers.Set("Location", "/sales/orders/200")

		return &spire.Response{StatusCode: http.StatusCreated, Headers: headers}, nil
	}
	requester.onGet = func(path string, query url.Values) (*spire.Response, error) {
		assert.Equal(t, "sales/orders/200", path)

		return &spire.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"id": 200, "status": "O", "freight": "-10.00"}`),
		}, nil
	}

	handle := spire.WrapInvoice(&spire.Invoice{
		ID:      spire.Int(99),
		Freight: spire.String("10.00"),
	}, requester)

	order, err := handle.Reverse(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, *order.Record().ID)
	assert.Equal(t, "-10.00", *order.Record().Freight)
}
