package client

import (
	"context"
	"fmt"

	"github.com/spirekit/spire-client/pkg/spire"
)

// OrdersClient implements spire.OrdersClient.
type OrdersClient struct {
	base *Client
}

// NewOrdersClient creates a new sales orders client.
func NewOrdersClient(base *Client) *OrdersClient {
	return &OrdersClient{base: base}
}

// Get implements spire.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, id int) (*spire.SalesOrderHandle, error) {
	data, err := c.base.getRecord(ctx, spire.EndpointSalesOrders, id)
	if err != nil {
		return nil, fmt.Errorf("getting sales order: %w", err)
	}

	return spire.DecodeSalesOrder(data, c.base.httpClient)
}

// List implements spire.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, opts *spire.ListOptions) ([]*spire.SalesOrderHandle, error) {
	records, err := spire.Query[spire.SalesOrder](ctx, c.base.httpClient, spire.EndpointSalesOrders, opts)
	if err != nil {
		return nil, fmt.Errorf("listing sales orders: %w", err)
	}

	handles := make([]*spire.SalesOrderHandle, 0, len(records))
	for _, rec := range records {
		handles = append(handles, spire.WrapSalesOrder(rec, c.base.httpClient))
	}

	return handles, nil
}

// Create implements spire.OrdersClient.Create.
func (c *OrdersClient) Create(ctx context.Context, order *spire.SalesOrder) (*spire.SalesOrderHandle, error) {
	created, err := spire.Create(ctx, c.base.httpClient, spire.EndpointSalesOrders, order)
	if err != nil {
		return nil, fmt.Errorf("creating sales order: %w", err)
	}

	return spire.WrapSalesOrder(created, c.base.httpClient), nil
}
