package spire

import "context"

// EndpointCustomers is the customer resource path.
const EndpointCustomers = "customers"

// CustomerHandle binds one customer record to a transport.
type CustomerHandle struct {
	rec *Customer
	rt  Requester
}

// WrapCustomer binds an already-decoded customer to a transport.
func WrapCustomer(rec *Customer, rt Requester) *CustomerHandle {
	return &CustomerHandle{rec: rec, rt: rt}
}

// DecodeCustomer validates raw JSON against the customer schema and binds the
// result to a transport.
func DecodeCustomer(data []byte, rt Requester) (*CustomerHandle, error) {
	rec, err := decodeRecord[Customer](data)
	if err != nil {
		return nil, err
	}

	return WrapCustomer(rec, rt), nil
}

// Record exposes the bound record.
func (h *CustomerHandle) Record() *Customer {
	return h.rec
}

// Refresh re-fetches the customer by id and replaces the bound record in
// place.
func (h *CustomerHandle) Refresh(ctx context.Context) (*CustomerHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := fetchRecord[Customer](ctx, h.rt, EndpointCustomers, id)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Update persists the explicitly-set fields of the bound record.
func (h *CustomerHandle) Update(ctx context.Context) (*CustomerHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := updateRecord[Customer](ctx, h.rt, EndpointCustomers, id, h.rec)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Delete removes the customer.
func (h *CustomerHandle) Delete(ctx context.Context) (bool, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return false, err
	}

	return deleteRecord(ctx, h.rt, EndpointCustomers, id)
}
