package spire

// Customer is a customer master record.
type Customer struct {
	ID                  *int                   `json:"id,omitempty"`
	Code                *string                `json:"code,omitempty"`
	CustomerNo          *string                `json:"customerNo,omitempty"`
	Name                *string                `json:"name,omitempty"`
	ForegroundColor     *int                   `json:"foregroundColor,omitempty"`
	BackgroundColor     *int                   `json:"backgroundColor,omitempty"`
	Hold                *bool                  `json:"hold,omitempty"`
	Status              *string                `json:"status,omitempty"`
	Reference           *string                `json:"reference,omitempty"`
	Address             *Address               `json:"address,omitempty"`
	ShippingAddresses   []Address              `json:"shippingAddresses,omitempty"`
	PaymentTerms        map[string]interface{} `json:"paymentTerms,omitempty"`
	ApplyFinanceCharges *bool                  `json:"applyFinanceCharges,omitempty"`
	StatementType       *string                `json:"statementType,omitempty"`
	CreditType          *int                   `json:"creditType,omitempty"`
	CreditLimit         *string                `json:"creditLimit,omitempty"`
	CreditBalance       *string                `json:"creditBalance,omitempty"`
	CreditApprovedBy    *string                `json:"creditApprovedBy,omitempty"`
	CreditApprovedDate  *string                `json:"creditApprovedDate,omitempty"`
	Currency            *string                `json:"currency,omitempty"`
	UserDef1            *string                `json:"userDef1,omitempty"`
	UserDef2            *string                `json:"userDef2,omitempty"`
	Discount            *string                `json:"discount,omitempty"`
	ReceivableAccount   *string                `json:"receivableAccount,omitempty"`
	DefaultShipTo       *string                `json:"defaultShipTo,omitempty"`
	SpecialCode         *string                `json:"specialCode,omitempty"`
	Upload              *bool                  `json:"upload,omitempty"`
	LastModified        *string                `json:"lastModified,omitempty"`
	PaymentProviderID   *int                   `json:"paymentProviderId,omitempty"`
	UDF                 map[string]interface{} `json:"udf,omitempty"`
	CreatedBy           *string                `json:"createdBy,omitempty"`
	ModifiedBy          *string                `json:"modifiedBy,omitempty"`
	Created             *string                `json:"created,omitempty"`
	Modified            *string                `json:"modified,omitempty"`
	Links               map[string]string      `json:"links,omitempty"`
}
