package spire

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Sales endpoints.
const (
	EndpointSalesOrders = "sales/orders"
	EndpointInvoices    = "sales/invoices"
)

// SalesOrderHandle binds one sales order record to a transport.
type SalesOrderHandle struct {
	rec *SalesOrder
	rt  Requester
}

// WrapSalesOrder binds an already-decoded sales order to a transport.
func WrapSalesOrder(rec *SalesOrder, rt Requester) *SalesOrderHandle {
	return &SalesOrderHandle{rec: rec, rt: rt}
}

// DecodeSalesOrder validates raw JSON against the sales order schema and
// binds the result to a transport.
func DecodeSalesOrder(data []byte, rt Requester) (*SalesOrderHandle, error) {
	rec, err := decodeRecord[SalesOrder](data)
	if err != nil {
		return nil, err
	}

	return WrapSalesOrder(rec, rt), nil
}

// Record exposes the bound record, the single source of truth for entity
// state. Mutations made through it are what Update persists.
func (h *SalesOrderHandle) Record() *SalesOrder {
	return h.rec
}

// Refresh re-fetches the order by id and replaces the bound record in place,
// so every reference to this handle observes the update.
func (h *SalesOrderHandle) Refresh(ctx context.Context) (*SalesOrderHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := fetchRecord[SalesOrder](ctx, h.rt, EndpointSalesOrders, id)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Update persists the explicitly-set fields of the bound record and swaps in
// the server's view of the result.
func (h *SalesOrderHandle) Update(ctx context.Context) (*SalesOrderHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := updateRecord[SalesOrder](ctx, h.rt, EndpointSalesOrders, id, h.rec)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Delete removes the order. It reports true when the server answered with an
// accepted success code.
func (h *SalesOrderHandle) Delete(ctx context.Context) (bool, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return false, err
	}

	return deleteRecord(ctx, h.rt, EndpointSalesOrders, id)
}

// Invoice creates an invoice for this order. Quotes cannot be invoiced; the
// server rejects them and the rejection surfaces as a CreateRequestError.
func (h *SalesOrderHandle) Invoice(ctx context.Context) (*InvoiceHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%d/invoice", EndpointSalesOrders, id)

	resp, err := h.rt.Post(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, NewCreateRequestError(path, resp)
	}

	var wrapper struct {
		Invoice json.RawMessage `json:"invoice"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("parsing invoice response: %w", err)
	}

	return DecodeInvoice(wrapper.Invoice, h.rt)
}

// Process transitions the order to status "P".
func (h *SalesOrderHandle) Process(ctx context.Context) (*SalesOrderHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%d", EndpointSalesOrders, id)

	resp, err := h.rt.Put(ctx, path, map[string]interface{}{"status": OrderStatusProcessed})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, NewCreateRequestError(path, resp)
	}

	rec, err := decodeRecord[SalesOrder](resp.Body)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// InvoiceHandle binds one invoice record to a transport.
type InvoiceHandle struct {
	rec *Invoice
	rt  Requester
}

// WrapInvoice binds an already-decoded invoice to a transport.
func WrapInvoice(rec *Invoice, rt Requester) *InvoiceHandle {
	return &InvoiceHandle{rec: rec, rt: rt}
}

// DecodeInvoice validates raw JSON against the invoice schema and binds the
// result to a transport.
func DecodeInvoice(data []byte, rt Requester) (*InvoiceHandle, error) {
	rec, err := decodeRecord[Invoice](data)
	if err != nil {
		return nil, err
	}

	return WrapInvoice(rec, rt), nil
}

// Record exposes the bound record.
func (h *InvoiceHandle) Record() *Invoice {
	return h.rec
}

// Refresh re-fetches the invoice by id and replaces the bound record in
// place.
func (h *InvoiceHandle) Refresh(ctx context.Context) (*InvoiceHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := fetchRecord[Invoice](ctx, h.rt, EndpointInvoices, id)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Update persists the explicitly-set fields of the bound record.
func (h *InvoiceHandle) Update(ctx context.Context) (*InvoiceHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := updateRecord[Invoice](ctx, h.rt, EndpointInvoices, id, h.rec)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Reverse derives a new sales order from this invoice (negated quantities and
// freight, reset status and tracking fields) and creates it on the server.
func (h *InvoiceHandle) Reverse(ctx context.Context) (*SalesOrderHandle, error) {
	order, err := NewSalesOrderFromInvoice(h.rec)
	if err != nil {
		return nil, err
	}

	created, err := createRecord[SalesOrder](ctx, h.rt, EndpointSalesOrders, order)
	if err != nil {
		return nil, err
	}

	return WrapSalesOrder(created, h.rt), nil
}
