package client

import (
	"context"
	"fmt"

	"github.com/spirekit/spire-client/pkg/spire"
)

// InvoicesClient implements spire.InvoicesClient.
type InvoicesClient struct {
	base *Client
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(base *Client) *InvoicesClient {
	return &InvoicesClient{base: base}
}

// Get implements spire.InvoicesClient.Get.
func (c *InvoicesClient) Get(ctx context.Context, id int) (*spire.InvoiceHandle, error) {
	data, err := c.base.getRecord(ctx, spire.EndpointInvoices, id)
	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return spire.DecodeInvoice(data, c.base.httpClient)
}

// List implements spire.InvoicesClient.List.
func (c *InvoicesClient) List(ctx context.Context, opts *spire.ListOptions) ([]*spire.InvoiceHandle, error) {
	records, err := spire.Query[spire.Invoice](ctx, c.base.httpClient, spire.EndpointInvoices, opts)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	handles := make([]*spire.InvoiceHandle, 0, len(records))
	for _, rec := range records {
		handles = append(handles, spire.WrapInvoice(rec, c.base.httpClient))
	}

	return handles, nil
}
