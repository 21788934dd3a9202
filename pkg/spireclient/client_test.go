package spireclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spirekit/spire-client/pkg/spire"
	"github.com/spirekit/spire-client/pkg/spireclient"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := spireclient.New(nil)
	require.ErrorIs(t, err, spire.ErrConfigRequired)

	_, err = spireclient.New(&spire.Config{Company: "inspire", Username: "u", Password: "p"})
	require.ErrorIs(t, err, spire.ErrHostRequired)

	_, err = spireclient.NewWithPassword("example.com", "", "u", "p")
	require.ErrorIs(t, err, spire.ErrCompanyRequired)

	_, err = spireclient.NewWithPassword("example.com", "inspire", "u", "")
	require.ErrorIs(t, err, spire.ErrCredentialsRequired)
}

func TestNewWithPassword_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "alice", username)
		assert.Equal(t, "secret", password)
		assert.Equal(t, "/api/v2/companies/inspire/customers/1", r.URL.Path)

		_, _ = w.Write([]byte(`{"id": 1, "name": "Acme", "customerNo": "ACM001"}`))
	}))
	defer server.Close()

	client, err := spireclient.NewWithPassword(server.URL, "inspire", "alice", "secret")
	require.NoError(t, err)

	handle, err := client.Customers().Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ACM001", *handle.Record().CustomerNo)
}

func TestNew_ExposesAllResourceClients(t *testing.T) {
	t.Parallel()

	client, err := spireclient.NewWithPassword("example.com", "inspire", "alice", "secret")
	require.NoError(t, err)

	assert.NotNil(t, client.Orders())
	assert.NotNil(t, client.Invoices())
	assert.NotNil(t, client.Customers())
	assert.NotNil(t, client.Inventory())
	assert.NotNil(t, client.PurchaseOrders())
	assert.NotNil(t, client.Notes())
	assert.NotNil(t, client.Requester())
}
