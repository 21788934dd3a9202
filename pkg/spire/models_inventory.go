package spire

// UnitOfMeasure is a per-item unit-of-measure record.
type UnitOfMeasure struct {
	ID                 *int    `json:"id,omitempty"`
	Code               *string `json:"code,omitempty"`
	Description        *string `json:"description,omitempty"`
	Location           *string `json:"location,omitempty"`
	Weight             *string `json:"weight,omitempty"`
	BuyUOM             *bool   `json:"buyUOM,omitempty"`
	SellUOM            *bool   `json:"sellUOM,omitempty"`
	AllowFractionalQty *bool   `json:"allowFractionalQty,omitempty"`
	QuantityFactor     *string `json:"quantityFactor,omitempty"`
	DirectFactor       *bool   `json:"directFactor,omitempty"`
}

// Pricing is the sell-price/margin block on an inventory item.
type Pricing struct {
	ID            *int     `json:"id,omitempty"`
	SellPrice     []string `json:"sellPrice,omitempty"`
	CurrMargin    *string  `json:"currMargin,omitempty"`
	CurrMarginPct *string  `json:"currMarginPct,omitempty"`
	AvgMargin     *string  `json:"avgMargin,omitempty"`
	AvgMarginPct  *string  `json:"avgMarginPct,omitempty"`
}

// UPC is a UPC code record bound to an item and unit of measure.
type UPC struct {
	ID         *int                   `json:"id,omitempty"`
	Whse       *string                `json:"whse,omitempty"`
	PartNo     *string                `json:"partNo,omitempty"`
	Inventory  map[string]interface{} `json:"inventory,omitempty"`
	UOMCode    *string                `json:"uomCode,omitempty"`
	Code       *string                `json:"upc,omitempty"`
	Created    *string                `json:"created,omitempty"`
	CreatedBy  *string                `json:"createdBy,omitempty"`
	Modified   *string                `json:"modified,omitempty"`
	ModifiedBy *string                `json:"modifiedBy,omitempty"`
	Links      map[string]string      `json:"links,omitempty"`
}

// InventoryItem is an inventory master record. Pricing may arrive as a single
// object or as a per-warehouse map, and levy as a code or an object, so those
// stay loosely typed.
type InventoryItem struct {
	ID                  *int                      `json:"id,omitempty"`
	Whse                *string                   `json:"whse,omitempty"`
	PartNo              *string                   `json:"partNo,omitempty"`
	Description         *string                   `json:"description,omitempty"`
	Type                *string                   `json:"type,omitempty"`
	Status              *int                      `json:"status,omitempty"`
	LotNumbered         *bool                     `json:"lotNumbered,omitempty"`
	Serialized          *bool                     `json:"serialized,omitempty"`
	AvailableQty        *string                   `json:"availableQty,omitempty"`
	OnHandQty           *string                   `json:"onHandQty,omitempty"`
	CommittedQty        *string                   `json:"committedQty,omitempty"`
	BackorderQty        *string                   `json:"backorderQty,omitempty"`
	OnPurchaseQty       *string                   `json:"onPurchaseQty,omitempty"`
	ForegroundColor     *int                      `json:"foregroundColor,omitempty"`
	BackgroundColor     *int                      `json:"backgroundColor,omitempty"`
	PrimaryVendor       *Vendor                   `json:"primaryVendor,omitempty"`
	CurrentPONo         *string                   `json:"currentPONo,omitempty"`
	PODueDate           *string                   `json:"poDueDate,omitempty"`
	ReorderPoint        *string                   `json:"reorderPoint,omitempty"`
	MinimumBuyQty       *string                   `json:"minimumBuyQty,omitempty"`
	CurrentCost         *string                   `json:"currentCost,omitempty"`
	AverageCost         *string                   `json:"averageCost,omitempty"`
	StandardCost        *string                   `json:"standardCost,omitempty"`
	UnitOfMeasures      map[string]UnitOfMeasure  `json:"unitOfMeasures,omitempty"`
	BuyMeasureCode      *string                   `json:"buyMeasureCode,omitempty"`
	StockMeasureCode    *string                   `json:"stockMeasureCode,omitempty"`
	SellMeasureCode     *string                   `json:"sellMeasureCode,omitempty"`
	AlternatePartNo     *string                   `json:"alternatePartNo,omitempty"`
	ProductCode         *string                   `json:"productCode,omitempty"`
	GroupNo             *string                   `json:"groupNo,omitempty"`
	SalesDept           *string                   `json:"salesDept,omitempty"`
	UserDef1            *string                   `json:"userDef1,omitempty"`
	UserDef2            *string                   `json:"userDef2,omitempty"`
	Discountable        *bool                     `json:"discountable,omitempty"`
	Weight              *string                   `json:"weight,omitempty"`
	PackSize            *string                   `json:"packSize,omitempty"`
	AllowBackorders     *bool                     `json:"allowBackorders,omitempty"`
	AllowReturns        *bool                     `json:"allowReturns,omitempty"`
	DutyPct             *string                   `json:"dutyPct,omitempty"`
	FreightPct          *string                   `json:"freightPct,omitempty"`
	ManufactureCountry  *string                   `json:"manufactureCountry,omitempty"`
	HarmonizedCode      *string                   `json:"harmonizedCode,omitempty"`
	ExtendedDescription *string                   `json:"extendedDescription,omitempty"`
	Pricing             interface{}               `json:"pricing,omitempty"`
	SalesTaxFlags       map[string]interface{}    `json:"salesTaxFlags,omitempty"`
	Images              []string                  `json:"images,omitempty"`
	DefaultExpiryDate   *string                   `json:"defaultExpiryDate,omitempty"`
	LotConsumeType      *string                   `json:"lotConsumeType,omitempty"`
	Upload              *bool                     `json:"upload,omitempty"`
	ShowOptions         *bool                     `json:"showOptions,omitempty"`
	LastModified        *string                   `json:"lastModified,omitempty"`
	Levy                interface{}               `json:"levy,omitempty"`
	UDF                 map[string]interface{}    `json:"udf,omitempty"`
	CreatedBy           *string                   `json:"createdBy,omitempty"`
	ModifiedBy          *string                   `json:"modifiedBy,omitempty"`
	Created             *string                   `json:"created,omitempty"`
	Modified            *string                   `json:"modified,omitempty"`
	Links               map[string]interface{}    `json:"links,omitempty"`
}
