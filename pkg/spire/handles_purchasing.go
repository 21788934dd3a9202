package spire

import (
	"context"
	"fmt"
	"net/http"
)

// Purchasing endpoints.
const (
	EndpointPurchaseOrders  = "purchasing/orders"
	EndpointPurchaseHistory = "purchasing/history"
)

// PurchaseOrderHandle binds one purchase order record to a transport.
//
// Update and Delete enforce the document lifecycle client-side: an issued
// order cannot be modified, and an issued or received order cannot be
// deleted. Both guards fire before any network call.
type PurchaseOrderHandle struct {
	rec *PurchaseOrder
	rt  Requester
}

// WrapPurchaseOrder binds an already-decoded purchase order to a transport.
func WrapPurchaseOrder(rec *PurchaseOrder, rt Requester) *PurchaseOrderHandle {
	return &PurchaseOrderHandle{rec: rec, rt: rt}
}

// DecodePurchaseOrder validates raw JSON against the purchase order schema
// and binds the result to a transport.
func DecodePurchaseOrder(data []byte, rt Requester) (*PurchaseOrderHandle, error) {
	rec, err := decodeRecord[PurchaseOrder](data)
	if err != nil {
		return nil, err
	}

	return WrapPurchaseOrder(rec, rt), nil
}

// Record exposes the bound record.
func (h *PurchaseOrderHandle) Record() *PurchaseOrder {
	return h.rec
}

// Refresh re-fetches the purchase order by id and replaces the bound record
// in place.
func (h *PurchaseOrderHandle) Refresh(ctx context.Context) (*PurchaseOrderHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := fetchRecord[PurchaseOrder](ctx, h.rt, EndpointPurchaseOrders, id)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

func (h *PurchaseOrderHandle) status() string {
	if h.rec.Status == nil {
		return ""
	}

	return *h.rec.Status
}

// Update persists the explicitly-set fields of the bound record. Issued
// orders are rejected before any request goes out.
func (h *PurchaseOrderHandle) Update(ctx context.Context) (*PurchaseOrderHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	if status := h.status(); status == PurchaseOrderStatusIssued {
		return nil, &BusinessStateError{Entity: "purchase order", ID: id, Status: status, Operation: "update"}
	}

	rec, err := updateRecord[PurchaseOrder](ctx, h.rt, EndpointPurchaseOrders, id, h.rec)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Delete removes the purchase order. Issued and received orders are rejected
// before any request goes out.
func (h *PurchaseOrderHandle) Delete(ctx context.Context) (bool, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return false, err
	}

	if status := h.status(); status == PurchaseOrderStatusIssued || status == PurchaseOrderStatusReceived {
		return false, &BusinessStateError{Entity: "purchase order", ID: id, Status: status, Operation: "delete"}
	}

	return deleteRecord(ctx, h.rt, EndpointPurchaseOrders, id)
}

// Issue transitions the purchase order to issued.
func (h *PurchaseOrderHandle) Issue(ctx context.Context) (*PurchaseOrderHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%d/issue", EndpointPurchaseOrders, id)

	rec, err := postAction[PurchaseOrder](ctx, h.rt, path, http.StatusOK)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Receive posts the receive transition. With receiveAll set, every line's
// receive quantity is first set to its ordered quantity and persisted, so the
// whole order receives in one step. Receive targets issued orders, so the
// quantity update skips the issued-status guard that applies to Update.
func (h *PurchaseOrderHandle) Receive(ctx context.Context, receiveAll bool) (*PurchaseOrderHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	if receiveAll {
		for i := range h.rec.Items {
			h.rec.Items[i].ReceiveQty = h.rec.Items[i].OrderQty
		}

		rec, err := updateRecord[PurchaseOrder](ctx, h.rt, EndpointPurchaseOrders, id, h.rec)
		if err != nil {
			return nil, err
		}

		h.rec = rec
	}

	path := fmt.Sprintf("%s/%d/receive", EndpointPurchaseOrders, id)

	rec, err := postAction[PurchaseOrder](ctx, h.rt, path, http.StatusOK)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}
