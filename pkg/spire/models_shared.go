package spire

import "encoding/json"

// Every model field is optional: the API frequently returns partial records,
// and the write-payload contract only serializes fields that were explicitly
// set. Pointer fields plus omitempty give both halves of that contract.

// PhoneFax is a phone or fax number with the server's formatting hint.
type PhoneFax struct {
	Number *string `json:"number,omitempty"`
	Format *int    `json:"format,omitempty"`
}

// Contact is a person attached to an address record.
type Contact struct {
	ID          *int                   `json:"id,omitempty"`
	ContactType map[string]interface{} `json:"contact_type,omitempty"`
	Name        *string                `json:"name,omitempty"`
	Email       *string                `json:"email,omitempty"`
	Phone       *PhoneFax              `json:"phone,omitempty"`
	Fax         *PhoneFax              `json:"fax,omitempty"`
}

// Salesperson identifies the salesperson assigned to an address.
type Salesperson struct {
	Code *string `json:"code,omitempty"`
	Name *string `json:"name,omitempty"`
}

// Territory identifies the sales territory assigned to an address.
type Territory struct {
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Currency describes a currency record embedded in orders and invoices.
type Currency struct {
	ID                 *int     `json:"id,omitempty"`
	Code               *string  `json:"code,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Country            *string  `json:"country,omitempty"`
	Units              *string  `json:"units,omitempty"`
	Fraction           *string  `json:"fraction,omitempty"`
	Symbol             *string  `json:"symbol,omitempty"`
	DecimalPlaces      *int     `json:"decimalPlaces,omitempty"`
	SymbolPosition     *string  `json:"symbolPosition,omitempty"`
	Rate               *string  `json:"rate,omitempty"`
	RateMethod         *string  `json:"rateMethod,omitempty"`
	GLAccountNo        *string  `json:"glAccountNo,omitempty"`
	ThousandsSeparator *string  `json:"thousandsSeparator,omitempty"`
	LastYearRate       []string `json:"lastYearRate,omitempty"`
	ThisYearRate       []string `json:"thisYearRate,omitempty"`
	NextYearRate       []string `json:"nextYearRate,omitempty"`
}

// Tax is one tax line on an order or invoice.
type Tax struct {
	Code      *int        `json:"code,omitempty"`
	Name      *string     `json:"name,omitempty"`
	ShortName *string     `json:"shortName,omitempty"`
	Rate      interface{} `json:"rate,omitempty"`
	ExemptNo  *string     `json:"exemptNo,omitempty"`
	Total     interface{} `json:"total,omitempty"`
}

// maxAddressContacts is the most contact records the API accepts per address
// on create/update.
const maxAddressContacts = 3

// Address is a billing or shipping address, shared between customers, sales
// documents, and purchase orders.
type Address struct {
	ID               *int                     `json:"id,omitempty"`
	Type             *string                  `json:"type,omitempty"`
	LinkTable        *string                  `json:"linkTable,omitempty"`
	LinkType         *string                  `json:"linkType,omitempty"`
	LinkNo           *string                  `json:"linkNo,omitempty"`
	ShipID           *string                  `json:"shipId,omitempty"`
	Name             *string                  `json:"name,omitempty"`
	Line1            *string                  `json:"line1,omitempty"`
	Line2            *string                  `json:"line2,omitempty"`
	Line3            *string                  `json:"line3,omitempty"`
	Line4            *string                  `json:"line4,omitempty"`
	City             *string                  `json:"city,omitempty"`
	PostalCode       *string                  `json:"postalCode,omitempty"`
	ProvState        *string                  `json:"provState,omitempty"`
	Country          *string                  `json:"country,omitempty"`
	Phone            *PhoneFax                `json:"phone,omitempty"`
	Fax              *PhoneFax                `json:"fax,omitempty"`
	Email            *string                  `json:"email,omitempty"`
	Website          *string                  `json:"website,omitempty"`
	ShipCode         *string                  `json:"shipCode,omitempty"`
	ShipDescription  *string                  `json:"shipDescription,omitempty"`
	Salesperson      *Salesperson             `json:"salesperson,omitempty"`
	Territory        *Territory               `json:"territory,omitempty"`
	SellLevel        *int                     `json:"sellLevel,omitempty"`
	GLAccount        *string                  `json:"glAccount,omitempty"`
	DefaultWarehouse *string                  `json:"defaultWarehouse,omitempty"`
	UDF              map[string]interface{}   `json:"udf,omitempty"`
	Created          *string                  `json:"created,omitempty"`
	Modified         *string                  `json:"modified,omitempty"`
	Contacts         []Contact                `json:"contacts,omitempty"`
	SalesTaxes       []map[string]interface{} `json:"salesTaxes,omitempty"`
}

// MarshalJSON caps the contact list: the API rejects addresses carrying more
// than three contact records.
func (a Address) MarshalJSON() ([]byte, error) {
	type alias Address

	out := alias(a)
	if len(out.Contacts) > maxAddressContacts {
		out.Contacts = out.Contacts[:maxAddressContacts]
	}

	return json.Marshal(out)
}

// Vendor identifies a vendor on purchase orders and inventory items.
type Vendor struct {
	ID       *int    `json:"id,omitempty"`
	VendorNo *string `json:"vendorNo,omitempty"`
	Name     *string `json:"name,omitempty"`
}

// AssignedTo identifies the user a CRM note is assigned to.
type AssignedTo struct {
	ID       *int    `json:"id,omitempty"`
	UUID     *string `json:"uuid,omitempty"`
	Username *string `json:"username,omitempty"`
}

// Note is a CRM note attached to another record via its link fields.
type Note struct {
	ID             *int              `json:"id,omitempty"`
	LinkTable      *string           `json:"linkTable,omitempty"`
	LinkNo         *string           `json:"linkNo,omitempty"`
	Subject        *string           `json:"subject,omitempty"`
	Body           *string           `json:"body,omitempty"`
	Attachment     interface{}       `json:"attachment,omitempty"`
	AttachmentName *string           `json:"attachmentName,omitempty"`
	DueDate        *string           `json:"dueDate,omitempty"`
	CompletedDate  *string           `json:"completedDate,omitempty"`
	Attention      *string           `json:"attention,omitempty"`
	Type           *string           `json:"type,omitempty"`
	DisplayType    *string           `json:"displayType,omitempty"`
	AssignedTo     *AssignedTo       `json:"assignedTo,omitempty"`
	GroupType      *string           `json:"groupType,omitempty"`
	Qty            *int              `json:"qty,omitempty"`
	Alert          interface{}       `json:"alert,omitempty"`
	Print          interface{}       `json:"print,omitempty"`
	Created        *string           `json:"created,omitempty"`
	CreatedBy      *string           `json:"createdBy,omitempty"`
	Modified       *string           `json:"modified,omitempty"`
	ModifiedBy     *string           `json:"modifiedBy,omitempty"`
	Links          map[string]string `json:"links,omitempty"`
}
