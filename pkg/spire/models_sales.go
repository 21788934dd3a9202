package spire

// Sales document status and type codes.
const (
	OrderStatusOpen      = "O"
	OrderStatusProcessed = "P"
	OrderTypeOrder       = "O"
	OrderTypeQuote       = "Q"
)

// InventoryRef is the abbreviated inventory record embedded in line items.
type InventoryRef struct {
	ID          *int    `json:"id,omitempty"`
	Whse        *string `json:"whse,omitempty"`
	PartNo      *string `json:"partNo,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SalesOrderItem is one line on a sales order or invoice.
type SalesOrderItem struct {
	ID                     *int                   `json:"id,omitempty"`
	OrderNo                *string                `json:"orderNo,omitempty"`
	Sequence               *int                   `json:"sequence,omitempty"`
	ParentSequence         *int                   `json:"parentSequence,omitempty"`
	Inventory              *InventoryRef          `json:"inventory,omitempty"`
	Serials                *string                `json:"serials,omitempty"`
	Whse                   *string                `json:"whse,omitempty"`
	PartNo                 *string                `json:"partNo,omitempty"`
	Description            *string                `json:"description,omitempty"`
	Comment                *string                `json:"comment,omitempty"`
	OrderQty               *string                `json:"orderQty,omitempty"`
	CommittedQty           *string                `json:"committedQty,omitempty"`
	BackorderQty           *string                `json:"backorderQty,omitempty"`
	SellMeasure            *string                `json:"sellMeasure,omitempty"`
	RetailPrice            *string                `json:"retailPrice,omitempty"`
	UnitPrice              *string                `json:"unitPrice,omitempty"`
	UserPrice              *bool                  `json:"userPrice,omitempty"`
	Discountable           *bool                  `json:"discountable,omitempty"`
	DiscountPct            *string                `json:"discountPct,omitempty"`
	DiscountAmt            *string                `json:"discountAmt,omitempty"`
	CurrentCost            *string                `json:"currentCost,omitempty"`
	AverageCost            *string                `json:"averageCost,omitempty"`
	StandardCost           *string                `json:"standardCost,omitempty"`
	TaxFlags               []bool                 `json:"taxFlags,omitempty"`
	Vendor                 *string                `json:"vendor,omitempty"`
	InventoryAccountNo     *string                `json:"inventoryAccountNo,omitempty"`
	RevenueAccountNo       *string                `json:"revenueAccountNo,omitempty"`
	CostOfGoodsAccountNo   *string                `json:"costOfGoodsAccountNo,omitempty"`
	LevyCode               *string                `json:"levyCode,omitempty"`
	ReferenceNo            *string                `json:"referenceNo,omitempty"`
	RequiredDate           *string                `json:"requiredDate,omitempty"`
	ExtendedPriceOrdered   *string                `json:"extendedPriceOrdered,omitempty"`
	ExtendedPriceCommitted *string                `json:"extendedPriceCommitted,omitempty"`
	Kit                    *bool                  `json:"kit,omitempty"`
	Suppress               *bool                  `json:"suppress,omitempty"`
	UDF                    map[string]interface{} `json:"udf,omitempty"`
}

// SalesOrder is a sales order (or quote) record.
type SalesOrder struct {
	ID                   *int                     `json:"id,omitempty"`
	OrderNo              *string                  `json:"orderNo,omitempty"`
	Division             *string                  `json:"division,omitempty"`
	Location             *string                  `json:"location,omitempty"`
	ProfitCenter         *string                  `json:"profitCenter,omitempty"`
	InvoiceNo            *string                  `json:"invoiceNo,omitempty"`
	Customer             *Customer                `json:"customer,omitempty"`
	CreditApprovedAmount *string                  `json:"creditApprovedAmount,omitempty"`
	CreditApprovedDate   *string                  `json:"creditApprovedDate,omitempty"`
	CreditApprovedUser   *string                  `json:"creditApprovedUser,omitempty"`
	Currency             *Currency                `json:"currency,omitempty"`
	Status               *string                  `json:"status,omitempty"`
	Type                 *string                  `json:"type,omitempty"`
	Hold                 *bool                    `json:"hold,omitempty"`
	OrderDate            *string                  `json:"orderDate,omitempty"`
	InvoiceDate          *string                  `json:"invoiceDate,omitempty"`
	RequiredDate         *string                  `json:"requiredDate,omitempty"`
	QuoteExpires         *string                  `json:"quoteExpires,omitempty"`
	RecurrenceRule       *string                  `json:"recurrenceRule,omitempty"`
	Address              *Address                 `json:"address,omitempty"`
	ShippingAddress      *Address                 `json:"shippingAddress,omitempty"`
	Contact              *Contact                 `json:"contact,omitempty"`
	CustomerPO           *string                  `json:"customerPO,omitempty"`
	BatchNo              *string                  `json:"batchNo,omitempty"`
	FOB                  *string                  `json:"fob,omitempty"`
	Incoterms            *string                  `json:"incoterms,omitempty"`
	IncotermsPlace       *string                  `json:"incotermsPlace,omitempty"`
	ReferenceNo          *string                  `json:"referenceNo,omitempty"`
	ShippingCarrier      *string                  `json:"shippingCarrier,omitempty"`
	ShipDate             *string                  `json:"shipDate,omitempty"`
	TrackingNo           *string                  `json:"trackingNo,omitempty"`
	TermsCode            *string                  `json:"termsCode,omitempty"`
	TermsText            *string                  `json:"termsText,omitempty"`
	Freight              *string                  `json:"freight,omitempty"`
	Taxes                []Tax                    `json:"taxes,omitempty"`
	Subtotal             *string                  `json:"subtotal,omitempty"`
	SubtotalOrdered      *string                  `json:"subtotalOrdered,omitempty"`
	Discount             *string                  `json:"discount,omitempty"`
	TotalDiscount        *string                  `json:"totalDiscount,omitempty"`
	Total                *string                  `json:"total,omitempty"`
	TotalOrdered         *string                  `json:"totalOrdered,omitempty"`
	TotalCostCurrent     *string                  `json:"totalCostCurrent,omitempty"`
	TotalCostAverage     *string                  `json:"totalCostAverage,omitempty"`
	GrossProfit          *string                  `json:"grossProfit,omitempty"`
	Items                []SalesOrderItem         `json:"items,omitempty"`
	Payments             []map[string]interface{} `json:"payments,omitempty"`
	UDF                  map[string]interface{}   `json:"udf,omitempty"`
	CreatedBy            *string                  `json:"createdBy,omitempty"`
	ModifiedBy           *string                  `json:"modifiedBy,omitempty"`
	Created              *string                  `json:"created,omitempty"`
	Modified             *string                  `json:"modified,omitempty"`
	DeletedBy            *string                  `json:"deletedBy,omitempty"`
	Deleted              *string                  `json:"deleted,omitempty"`
	Links                map[string]string        `json:"links,omitempty"`
}

// Invoice is a posted sales invoice record.
type Invoice struct {
	ID              *int                     `json:"id,omitempty"`
	InvoiceNo       *string                  `json:"invoiceNo,omitempty"`
	OrderNo         *string                  `json:"orderNo,omitempty"`
	Division        *string                  `json:"division,omitempty"`
	Location        *string                  `json:"location,omitempty"`
	ProfitCenter    *string                  `json:"profitCenter,omitempty"`
	Customer        *Customer                `json:"customer,omitempty"`
	Currency        *Currency                `json:"currency,omitempty"`
	OrderDate       *string                  `json:"orderDate,omitempty"`
	InvoiceDate     *string                  `json:"invoiceDate,omitempty"`
	RequiredDate    *string                  `json:"requiredDate,omitempty"`
	Address         *Address                 `json:"address,omitempty"`
	ShippingAddress *Address                 `json:"shippingAddress,omitempty"`
	CustomerPO      *string                  `json:"customerPO,omitempty"`
	FOB             *string                  `json:"fob,omitempty"`
	Incoterms       *string                  `json:"incoterms,omitempty"`
	IncotermsPlace  *string                  `json:"incotermsPlace,omitempty"`
	ReferenceNo     *string                  `json:"referenceNo,omitempty"`
	ShippingCarrier *string                  `json:"shippingCarrier,omitempty"`
	ShipDate        *string                  `json:"shipDate,omitempty"`
	TrackingNo      *string                  `json:"trackingNo,omitempty"`
	TermsCode       *string                  `json:"termsCode,omitempty"`
	TermsText       *string                  `json:"termsText,omitempty"`
	Freight         *string                  `json:"freight,omitempty"`
	Taxes           []Tax                    `json:"taxes,omitempty"`
	Subtotal        *string                  `json:"subtotal,omitempty"`
	Total           *string                  `json:"total,omitempty"`
	Items           []SalesOrderItem         `json:"items,omitempty"`
	Payments        []map[string]interface{} `json:"payments,omitempty"`
	UDF             map[string]interface{}   `json:"udf,omitempty"`
	CreatedBy       *string                  `json:"createdBy,omitempty"`
	ModifiedBy      *string                  `json:"modifiedBy,omitempty"`
	Created         *string                  `json:"created,omitempty"`
	Modified        *string                  `json:"modified,omitempty"`
	Links           map[string]string        `json:"links,omitempty"`
}
