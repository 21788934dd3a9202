package spire

// Purchase order status codes. A purchase order moves Open → Issued →
// Received; update and delete are guarded client-side once it has advanced.
const (
	PurchaseOrderStatusOpen     = "O"
	PurchaseOrderStatusIssued   = "I"
	PurchaseOrderStatusReceived = "R"
)

// PurchaseOrderItem is one line on a purchase order.
type PurchaseOrderItem struct {
	ID              *int                   `json:"id,omitempty"`
	Whse            *string                `json:"whse,omitempty"`
	PartNo          *string                `json:"partNo,omitempty"`
	Sequence        *int                   `json:"sequence,omitempty"`
	Inventory       *InventoryRef          `json:"inventory,omitempty"`
	Serials         interface{}            `json:"serials,omitempty"`
	Description     *string                `json:"description,omitempty"`
	OrderQty        *string                `json:"orderQty,omitempty"`
	ReceiveQty      *string                `json:"receiveQty,omitempty"`
	ReceivedQty     *string                `json:"receivedQty,omitempty"`
	UnitPrice       *string                `json:"unitPrice,omitempty"`
	Freight         *string                `json:"freight,omitempty"`
	PurchaseMeasure *string                `json:"purchaseMeasure,omitempty"`
	TaxFlags        []bool                 `json:"taxFlags,omitempty"`
	UDF             map[string]interface{} `json:"udf,omitempty"`
	RequiredDate    *string                `json:"requiredDate,omitempty"`
	ReferenceNo     *string                `json:"referenceNo,omitempty"`
	Comment         *string                `json:"comment,omitempty"`
}

// PurchaseOrder is a purchase order record.
type PurchaseOrder struct {
	ID              *int                   `json:"id,omitempty"`
	Number          *string                `json:"number,omitempty"`
	Vendor          *Vendor                `json:"vendor,omitempty"`
	Currency        *Currency              `json:"currency,omitempty"`
	Status          *string                `json:"status,omitempty"`
	Date            *string                `json:"date,omitempty"`
	RequiredDate    *string                `json:"requiredDate,omitempty"`
	Address         *Address               `json:"address,omitempty"`
	ShippingAddress *Address               `json:"shippingAddress,omitempty"`
	VendorPO        *string                `json:"vendorPO,omitempty"`
	ReferenceNo     *string                `json:"referenceNo,omitempty"`
	FOB             *string                `json:"fob,omitempty"`
	Incoterms       *string                `json:"incoterms,omitempty"`
	IncotermsPlace  *string                `json:"incotermsPlace,omitempty"`
	Subtotal        *string                `json:"subtotal,omitempty"`
	Total           *string                `json:"total,omitempty"`
	Deposit         *string                `json:"deposit,omitempty"`
	Items           []PurchaseOrderItem    `json:"items,omitempty"`
	UDF             map[string]interface{} `json:"udf,omitempty"`
	CreatedBy       *string                `json:"createdBy,omitempty"`
	ModifiedBy      *string                `json:"modifiedBy,omitempty"`
	Created         *string                `json:"created,omitempty"`
	Modified        *string                `json:"modified,omitempty"`
	Links           map[string]string      `json:"links,omitempty"`
}
