package client

import (
	"context"
	"fmt"

	"github.com/spirekit/spire-client/pkg/spire"
)

// CustomersClient implements spire.CustomersClient.
type CustomersClient struct {
	base *Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(base *Client) *CustomersClient {
	return &CustomersClient{base: base}
}

// Get implements spire.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id int) (*spire.CustomerHandle, error) {
	data, err := c.base.getRecord(ctx, spire.EndpointCustomers, id)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return spire.DecodeCustomer(data, c.base.httpClient)
}

// List implements spire.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, opts *spire.ListOptions) ([]*spire.CustomerHandle, error) {
	records, err := spire.Query[spire.Customer](ctx, c.base.httpClient, spire.EndpointCustomers, opts)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	handles := make([]*spire.CustomerHandle, 0, len(records))
	for _, rec := range records {
		handles = append(handles, spire.WrapCustomer(rec, c.base.httpClient))
	}

	return handles, nil
}

// Create implements spire.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, customer *spire.Customer) (*spire.CustomerHandle, error) {
	created, err := spire.Create(ctx, c.base.httpClient, spire.EndpointCustomers, customer)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return spire.WrapCustomer(created, c.base.httpClient), nil
}
