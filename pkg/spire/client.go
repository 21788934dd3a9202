package spire

import "context"

// Client is the top-level surface of the Spire API client, one resource
// client per endpoint family. Record-level operations (refresh, update,
// delete, state transitions) live on the handles the resource clients return.
type Client interface {
	Orders() OrdersClient
	Invoices() InvoicesClient
	Customers() CustomersClient
	Inventory() InventoryClient
	PurchaseOrders() PurchaseOrdersClient
	Notes() NotesClient

	// Requester exposes the underlying transport for endpoints the typed
	// surface does not cover.
	Requester() Requester
}

// OrdersClient operates on sales orders and quotes.
type OrdersClient interface {
	Get(ctx context.Context, id int) (*SalesOrderHandle, error)
	List(ctx context.Context, opts *ListOptions) ([]*SalesOrderHandle, error)
	Create(ctx context.Context, order *SalesOrder) (*SalesOrderHandle, error)
}

// InvoicesClient operates on posted sales invoices.
type InvoicesClient interface {
	Get(ctx context.Context, id int) (*InvoiceHandle, error)
	List(ctx context.Context, opts *ListOptions) ([]*InvoiceHandle, error)
}

// CustomersClient operates on customer master records.
type CustomersClient interface {
	Get(ctx context.Context, id int) (*CustomerHandle, error)
	List(ctx context.Context, opts *ListOptions) ([]*CustomerHandle, error)
	Create(ctx context.Context, customer *Customer) (*CustomerHandle, error)
}

// InventoryClient operates on inventory items and UPC codes.
type InventoryClient interface {
	Get(ctx context.Context, id int) (*ItemHandle, error)
	List(ctx context.Context, opts *ListOptions) ([]*ItemHandle, error)
	Create(ctx context.Context, item *InventoryItem) (*ItemHandle, error)
	GetUPC(ctx context.Context, id int) (*UPCHandle, error)
	ListUPCs(ctx context.Context, opts *ListOptions) ([]*UPCHandle, error)
	CreateUPC(ctx context.Context, upc *UPC) (*UPCHandle, error)
}

// PurchaseOrdersClient operates on purchase orders and purchasing history.
type PurchaseOrdersClient interface {
	Get(ctx context.Context, id int) (*PurchaseOrderHandle, error)

	// GetByNumber resolves a purchase order by its document number and
	// re-fetches the full record; ErrNotFoundByNumber when nothing matches.
	GetByNumber(ctx context.Context, number string) (*PurchaseOrderHandle, error)

	List(ctx context.Context, opts *ListOptions) ([]*PurchaseOrderHandle, error)
	Create(ctx context.Context, order *PurchaseOrder) (*PurchaseOrderHandle, error)

	// History lists closed purchase orders. History records are read-only.
	History(ctx context.Context, opts *ListOptions) ([]*PurchaseOrder, error)
}

// NotesClient operates on CRM notes.
type NotesClient interface {
	Get(ctx context.Context, id int) (*NoteHandle, error)
	List(ctx context.Context, opts *ListOptions) ([]*NoteHandle, error)
	Create(ctx context.Context, note *Note) (*NoteHandle, error)
}
