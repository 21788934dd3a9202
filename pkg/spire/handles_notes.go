package spire

import "context"

// EndpointNotes is the CRM note resource path.
const EndpointNotes = "crm/notes"

// NoteHandle binds one CRM note record to a transport.
type NoteHandle struct {
	rec *Note
	rt  Requester
}

// WrapNote binds an already-decoded note to a transport.
func WrapNote(rec *Note, rt Requester) *NoteHandle {
	return &NoteHandle{rec: rec, rt: rt}
}

// DecodeNote validates raw JSON against the note schema and binds the result
// to a transport.
func DecodeNote(data []byte, rt Requester) (*NoteHandle, error) {
	rec, err := decodeRecord[Note](data)
	if err != nil {
		return nil, err
	}

	return WrapNote(rec, rt), nil
}

// Record exposes the bound record.
func (h *NoteHandle) Record() *Note {
	return h.rec
}

// Refresh re-fetches the note by id and replaces the bound record in place.
func (h *NoteHandle) Refresh(ctx context.Context) (*NoteHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := fetchRecord[Note](ctx, h.rt, EndpointNotes, id)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Update persists the explicitly-set fields of the bound record.
func (h *NoteHandle) Update(ctx context.Context) (*NoteHandle, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return nil, err
	}

	rec, err := updateRecord[Note](ctx, h.rt, EndpointNotes, id, h.rec)
	if err != nil {
		return nil, err
	}

	h.rec = rec

	return h, nil
}

// Delete removes the note.
func (h *NoteHandle) Delete(ctx context.Context) (bool, error) {
	id, err := requireID(h.rec.ID)
	if err != nil {
		return false, err
	}

	return deleteRecord(ctx, h.rt, EndpointNotes, id)
}
