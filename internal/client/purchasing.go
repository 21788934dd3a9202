package client

import (
	"context"
	"fmt"

	"github.com/spirekit/spire-client/pkg/spire"
)

// PurchaseOrdersClient implements spire.PurchaseOrdersClient.
type PurchaseOrdersClient struct {
	base *Client
}

// NewPurchaseOrdersClient creates a new purchase orders client.
func NewPurchaseOrdersClient(base *Client) *PurchaseOrdersClient {
	return &PurchaseOrdersClient{base: base}
}

// Get implements spire.PurchaseOrdersClient.Get.
func (c *PurchaseOrdersClient) Get(ctx context.Context, id int) (*spire.PurchaseOrderHandle, error) {
	data, err := c.base.getRecord(ctx, spire.EndpointPurchaseOrders, id)
	if err != nil {
		return nil, fmt.Errorf("getting purchase order: %w", err)
	}

	return spire.DecodePurchaseOrder(data, c.base.httpClient)
}

// GetByNumber implements spire.PurchaseOrdersClient.GetByNumber. The list
// endpoint resolves the number to an id, then the full record is re-fetched
// so the handle carries complete line-item detail.
func (c *PurchaseOrdersClient) GetByNumber(ctx context.Context, number string) (*spire.PurchaseOrderHandle, error) {
	opts := &spire.ListOptions{
		Filter: map[string]interface{}{"number": number},
		Limit:  1,
	}

	records, err := spire.Query[spire.PurchaseOrder](ctx, c.base.httpClient, spire.EndpointPurchaseOrders, opts)
	if err != nil {
		return nil, fmt.Errorf("finding purchase order %q: %w", number, err)
	}

	if len(records) == 0 || records[0].ID == nil {
		return nil, fmt.Errorf("purchase order %q: %w", number, spire.ErrNotFoundByNumber)
	}

	return c.Get(ctx, *records[0].ID)
}

// List implements spire.PurchaseOrdersClient.List.
func (c *PurchaseOrdersClient) List(ctx context.Context, opts *spire.ListOptions) ([]*spire.PurchaseOrderHandle, error) {
	records, err := spire.Query[spire.PurchaseOrder](ctx, c.base.httpClient, spire.EndpointPurchaseOrders, opts)
	if err != nil {
		return nil, fmt.Errorf("listing purchase orders: %w", err)
	}

	handles := make([]*spire.PurchaseOrderHandle, 0, len(records))
	for _, rec := range records {
		handles = append(handles, spire.WrapPurchaseOrder(rec, c.base.httpClient))
	}

	return handles, nil
}

// Create implements spire.PurchaseOrdersClient.Create.
func (c *PurchaseOrdersClient) Create(ctx context.Context, order *spire.PurchaseOrder) (*spire.PurchaseOrderHandle, error) {
	created, err := spire.Create(ctx, c.base.httpClient, spire.EndpointPurchaseOrders, order)
	if err != nil {
		return nil, fmt.Errorf("creating purchase order: %w", err)
	}

	return spire.WrapPurchaseOrder(created, c.base.httpClient), nil
}

// History implements spire.PurchaseOrdersClient.History. History records are
// read-only, so plain records are returned instead of handles.
func (c *PurchaseOrdersClient) History(ctx context.Context, opts *spire.ListOptions) ([]*spire.PurchaseOrder, error) {
	records, err := spire.Query[spire.PurchaseOrder](ctx, c.base.httpClient, spire.EndpointPurchaseHistory, opts)
	if err != nil {
		return nil, fmt.Errorf("listing purchasing history: %w", err)
	}

	return records, nil
}
