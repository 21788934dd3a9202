package client

import (
	"context"
	"fmt"

	"github.com/spirekit/spire-client/pkg/spire"
)

// NotesClient implements spire.NotesClient.
type NotesClient struct {
	base *Client
}

// NewNotesClient creates a new CRM notes client.
func NewNotesClient(base *Client) *NotesClient {
	return &NotesClient{base: base}
}

// Get implements spire.NotesClient.Get.
func (c *NotesClient) Get(ctx context.Context, id int) (*spire.NoteHandle, error) {
	data, err := c.base.getRecord(ctx, spire.EndpointNotes, id)
	if err != nil {
		return nil, fmt.Errorf("getting note: %w", err)
	}

	return spire.DecodeNote(data, c.base.httpClient)
}

// List implements spire.NotesClient.List.
func (c *NotesClient) List(ctx context.Context, opts *spire.ListOptions) ([]*spire.NoteHandle, error) {
	records, err := spire.Query[spire.Note](ctx, c.base.httpClient, spire.EndpointNotes, opts)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	handles := make([]*spire.NoteHandle, 0, len(records))
	for _, rec := range records {
		handles = append(handles, spire.WrapNote(rec, c.base.httpClient))
	}

	return handles, nil
}

// Create implements spire.NotesClient.Create.
func (c *NotesClient) Create(ctx context.Context, note *spire.Note) (*spire.NoteHandle, error) {
	created, err := spire.Create(ctx, c.base.httpClient, spire.EndpointNotes, note)
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	return spire.WrapNote(created, c.base.httpClient), nil
}
