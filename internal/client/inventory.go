package client

import (
	"context"
	"fmt"

	"github.com/spirekit/spire-client/pkg/spire"
)

// InventoryClient implements spire.InventoryClient.
type InventoryClient struct {
	base *Client
}

// NewInventoryClient creates a new inventory client.
func NewInventoryClient(base *Client) *InventoryClient {
	return &InventoryClient{base: base}
}

// Get implements spire.InventoryClient.Get.
func (c *InventoryClient) Get(ctx context.Context, id int) (*spire.ItemHandle, error) {
	data, err := c.base.getRecord(ctx, spire.EndpointInventoryItems, id)
	if err != nil {
		return nil, fmt.Errorf("getting inventory item: %w", err)
	}

	return spire.DecodeItem(data, c.base.httpClient)
}

// List implements spire.InventoryClient.List.
func (c *InventoryClient) List(ctx context.Context, opts *spire.ListOptions) ([]*spire.ItemHandle, error) {
	records, err := spire.Query[spire.InventoryItem](ctx, c.base.httpClient, spire.EndpointInventoryItems, opts)
	if err != nil {
		return nil, fmt.Errorf("listing inventory items: %w", err)
	}

	handles := make([]*spire.ItemHandle, 0, len(records))
	for _, rec := range records {
		handles = append(handles, spire.WrapItem(rec, c.base.httpClient))
	}

	return handles, nil
}

// Create implements spire.InventoryClient.Create.
func (c *InventoryClient) Create(ctx context.Context, item *spire.InventoryItem) (*spire.ItemHandle, error) {
	created, err := spire.Create(ctx, c.base.httpClient, spire.EndpointInventoryItems, item)
	if err != nil {
		return nil, fmt.Errorf("creating inventory item: %w", err)
	}

	return spire.WrapItem(created, c.base.httpClient), nil
}

// GetUPC implements spire.InventoryClient.GetUPC.
func (c *InventoryClient) GetUPC(ctx context.Context, id int) (*spire.UPCHandle, error) {
	data, err := c.base.getRecord(ctx, spire.EndpointInventoryUPCs, id)
	if err != nil {
		return nil, fmt.Errorf("getting UPC: %w", err)
	}

	return spire.DecodeUPC(data, c.base.httpClient)
}

// ListUPCs implements spire.InventoryClient.ListUPCs.
func (c *InventoryClient) ListUPCs(ctx context.Context, opts *spire.ListOptions) ([]*spire.UPCHandle, error) {
	records, err := spire.Query[spire.UPC](ctx, c.base.httpClient, spire.EndpointInventoryUPCs, opts)
	if err != nil {
		return nil, fmt.Errorf("listing UPCs: %w", err)
	}

	handles := make([]*spire.UPCHandle, 0, len(records))
	for _, rec := range records {
		handles = append(handles, spire.WrapUPC(rec, c.base.httpClient))
	}

	return handles, nil
}

// CreateUPC implements spire.InventoryClient.CreateUPC.
func (c *InventoryClient) CreateUPC(ctx context.Context, upc *spire.UPC) (*spire.UPCHandle, error) {
	created, err := spire.Create(ctx, c.base.httpClient, spire.EndpointInventoryUPCs, upc)
	if err != nil {
		return nil, fmt.Errorf("creating UPC: %w", err)
	}

	return spire.WrapUPC(created, c.base.httpClient), nil
}
