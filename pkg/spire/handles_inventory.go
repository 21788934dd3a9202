package spire

import (
	"context"
	"encoding/json"
	"fmt"
)

// Inventory endpoints.
const (
	EndpointInventoryItems = "inventory/items"
	EndpointInventoryUPCs  = "inventory/upcs"
)

// ItemHandle binds one inventory item record to a transport.
type ItemHandle struct {
	rec *InventoryItem
	rt  Requester
}

// WrapItem binds an already-decoded inventory item to a transport.
func WrapItem(rec *InventoryItem, rt Requester) *ItemHandle {
	return &ItemHandle{rec: rec, rt: rt}
}

// DecodeItem validates raw JSON against the inventory item schema and binds
// the result to a transport.
func DecodeItem(data []byte, rt Requester) (*ItemHandle, error) {
	rec, err := decodeRecord[InventoryItem](data)
	if err != nil {
		return nil, err
	}

	return WrapItem(rec, rt), nil
}

// Record exposes the bound record.
func (h *ItemHandle) Record() *InventoryItem {
	return h.rec
}

// Refresh re-fetches the item by id and replaces the bound record in place.
func (h *ItemHandle) Refresh(ctx context.Context) (*ItemHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := fetchRecord[InventoryItem](ctx, h.rt, EndpointInventoryItems, id)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Update persists the explicitly-set fields of the bound record.
func (h *ItemHandle) Update(ctx context.Context) (*ItemHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := updateRecord[InventoryItem](ctx, h.rt, EndpointInventoryItems, id, h.rec)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Delete removes the item.
func (h *ItemHandle) Delete(ctx context.Context) (bool, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return false, err
	}

	return deleteRecord(ctx, h.rt, EndpointInventoryItems, id)
}

func (h *ItemHandle) uomEndpoint() (string, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%d/uoms", EndpointInventoryItems, id), nil
}

// UOMs lists the item's unit-of-measure records.
func (h *ItemHandle) UOMs(ctx context.Context) ([]*UOMHandle, error) {
	endpoint, err := h.uomEndpoint()
	if err != nil {
		return nil, err
	}

	resp, err := h.rt.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var list ListResponse
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", endpoint, err)
	}

	handles := make([]*UOMHandle, 0, len(list.Records))

	for _, raw := range list.Records {
		rec, err := decodeRecord[UnitOfMeasure](raw)
		if err != nil {
			return nil, err
		}

		handles = append(handles, &UOMHandle{rec: rec, rt: h.rt, itemID: *h.rec.ID})
	}

	return handles, nil
}

// AddUOM creates a unit-of-measure record under the item and re-fetches the
// created record by the id its Location header points at.
func (h *ItemHandle) AddUOM(ctx context.Context, uom *UnitOfMeasure) (*UOMHandle, error) {
	if uom == nil {
		return nil, ErrNilRecord
	}

	endpoint, err := h.uomEndpoint()
	if err != nil {
		return nil, err
	}

	created, err := createRecord[UnitOfMeasure](ctx, h.rt, endpoint, uom)
	if err != nil {
		return nil, err
	}

	return &UOMHandle{rec: created, rt: h.rt, itemID: *h.rec.ID}, nil
}

// UPCs lists the UPC codes registered under this item.
func (h *ItemHandle) UPCs(ctx context.Context) ([]*UPCHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%d/upcs", EndpointInventoryItems, id)

	records, err := Query[UPC](ctx, h.rt, endpoint, &ListOptions{All: true})
	if err != nil {
		return nil, err
	}

	handles := make([]*UPCHandle, 0, len(records))
	for _, rec := range records {
		handles = append(handles, WrapUPC(rec, h.rt))
	}

	return handles, nil
}

// UOMHandle binds one unit-of-measure record, nested under its parent item,
// to a transport.
type UOMHandle struct {
	rec    *UnitOfMeasure
	rt     Requester
	itemID int
}

func (h *UOMHandle) endpoint() string {
	return fmt.Sprintf("%s/%d/uoms", EndpointInventoryItems, h.itemID)
}

// Record exposes the bound record.
func (h *UOMHandle) Record() *UnitOfMeasure {
	return h.rec
}

// Refresh re-fetches the unit of measure and replaces the bound record in
// place.
func (h *UOMHandle) Refresh(ctx context.Context) (*UOMHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := fetchRecord[UnitOfMeasure](ctx, h.rt, h.endpoint(), id)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Update persists the explicitly-set fields of the bound record.
func (h *UOMHandle) Update(ctx context.Context) (*UOMHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := updateRecord[UnitOfMeasure](ctx, h.rt, h.endpoint(), id, h.rec)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Delete removes the unit of measure.
func (h *UOMHandle) Delete(ctx context.Context) (bool, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return false, err
	}

	return deleteRecord(ctx, h.rt, h.endpoint(), id)
}

// UPCHandle binds one UPC record to a transport.
type UPCHandle struct {
	rec *UPC
	rt  Requester
}

// WrapUPC binds an already-decoded UPC record to a transport.
func WrapUPC(rec *UPC, rt Requester) *UPCHandle {
	return &UPCHandle{rec: rec, rt: rt}
}

// DecodeUPC validates raw JSON against the UPC schema and binds the result to
// a transport.
func DecodeUPC(data []byte, rt Requester) (*UPCHandle, error) {
	rec, err := decodeRecord[UPC](data)
	if err != nil {
		return nil, err
	}

	return WrapUPC(rec, rt), nil
}

// Record exposes the bound record.
func (h *UPCHandle) Record() *UPC {
	return h.rec
}

// Refresh re-fetches the UPC by id and replaces the bound record in place.
func (h *UPCHandle) Refresh(ctx context.Context) (*UPCHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := fetchRecord[UPC](ctx, h.rt, EndpointInventoryUPCs, id)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Update persists the explicitly-set fields of the bound record.
func (h *UPCHandle) Update(ctx context.Context) (*UPCHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := updateRecord[UPC](ctx, h.rt, EndpointInventoryUPCs, id, h.rec)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Delete removes the UPC.
func (h *UPCHandle) Delete(ctx context.Context) (bool, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return false, err
	}

	return deleteRecord(ctx, h.rt, EndpointInventoryUPCs, id)
}
