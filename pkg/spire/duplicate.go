package spire

import (
	"encoding/json"
	"fmt"
	"strings"
)

// baselineExclusions are stripped from every duplicated record: identifiers
// and link fields always belong to the source record, never to the copy.
var baselineExclusions = []string{
	"id",
	"linkTable",
	"linkType",
	"linkNo",
	"contact_type",
}

// normalizeExclusion rewrites numeric path segments as "*", so a rule written
// against one concrete array element applies to all of them.
func normalizeExclusion(rule string) string {
	segments := strings.Split(rule, ".")
	for i, segment := range segments {
		if isIndexSegment(segment) {
			segments[i] = "*"
		}
	}

	return strings.Join(segments, ".")
}

func isIndexSegment(segment string) bool {
	if segment == "" {
		return false
	}

	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// exclusionSet holds normalized exclusion rules. A field is excluded when its
// full normalized dotted path matches a rule, or when its bare field name
// does.
type exclusionSet map[string]struct{}

func newExclusionSet(extra []string) exclusionSet {
	set := make(exclusionSet, len(baselineExclusions)+len(extra))

	for _, rule := range baselineExclusions {
		set[rule] = struct{}{}
	}

	for _, rule := range extra {
		set[normalizeExclusion(rule)] = struct{}{}
	}

	return set
}

func (s exclusionSet) matches(path []string) bool {
	if _, ok := s[strings.Join(path, ".")]; ok {
		return true
	}

	_, ok := s[path[len(path)-1]]

	return ok
}

// prune walks a decoded JSON tree, dropping excluded keys. Array elements
// contribute a "*" path segment, so one rule covers every element.
func (s exclusionSet) prune(node interface{}, path []string) interface{} {
	switch v := node.(type) {
	case map[string]interface{}:
		for key, child := range v {
			childPath := append(append([]string{}, path...), key)
			if s.matches(childPath) {
				delete(v, key)

				continue
			}

			v[key] = s.prune(child, childPath)
		}

		return v
	case []interface{}:
		childPath := append(append([]string{}, path...), "*")
		for i, child := range v {
			v[i] = s.prune(child, childPath)
		}

		return v
	default:
		return node
	}
}

// Duplicate deep-copies a record into a fully detached copy suitable for
// creating a new entity: identifiers and link fields are stripped everywhere
// in the tree, along with any caller-supplied exclusions. Exclusions are
// dotted paths; numeric segments match any array index, and a bare field name
// matches that field at any depth.
func Duplicate[T any](src *T, exclusions ...string) (*T, error) {
	if src == nil {
		return nil, ErrNilRecord
	}

	data, err := json.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("copying %T: %w", src, err)
	}

	var tree interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("copying %T: %w", src, err)
	}

	tree = newExclusionSet(exclusions).prune(tree, nil)

	pruned, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("copying %T: %w", src, err)
	}

	return decodeRecord[T](pruned)
}

// negateAmount flips the sign of a decimal string. Zero stays zero, so a
// reversal never produces "-0".
func negateAmount(amount string) string {
	if amount == "" || amount == "0" {
		return amount
	}

	if strings.HasPrefix(amount, "-") {
		return strings.TrimPrefix(amount, "-")
	}

	return "-" + amount
}

// NewSalesOrderFromInvoice derives the open sales order that reverses an
// invoice: line quantities and freight are negated, the document is reset to
// an open order off hold, and shipment tracking fields are cleared so the new
// order carries none of the invoice's fulfilment state.
func NewSalesOrderFromInvoice(inv *Invoice) (*SalesOrder, error) {
	if inv == nil {
		return nil, ErrNilRecord
	}

	customer, err := clone(inv.Customer)
	if err != nil {
		return nil, err
	}

	currency, err := clone(inv.Currency)
	if err != nil {
		return nil, err
	}

	order := &SalesOrder{
		Customer:       customer,
		Currency:       currency,
		Status:         String(OrderStatusOpen),
		Type:           String(OrderTypeOrder),
		Hold:           Bool(false),
		OrderNo:        inv.OrderNo,
		Division:       inv.Division,
		Location:       inv.Location,
		ProfitCenter:   inv.ProfitCenter,
		OrderDate:      inv.OrderDate,
		ShipDate:       inv.ShipDate,
		CustomerPO:     inv.CustomerPO,
		FOB:            inv.FOB,
		Incoterms:      inv.Incoterms,
		IncotermsPlace: inv.IncotermsPlace,
		TermsCode:      inv.TermsCode,
		TermsText:      inv.TermsText,
		Subtotal:       inv.Subtotal,
		Total:          inv.Total,
	}

	if inv.Address != nil {
		order.Address, err = Duplicate(inv.Address)
		if err != nil {
			return nil, err
		}
	}

	if inv.ShippingAddress != nil {
		order.ShippingAddress, err = Duplicate(inv.ShippingAddress)
		if err != nil {
			return nil, err
		}
	}

	if inv.Freight != nil {
		order.Freight = String(negateAmount(*inv.Freight))
	}

	if len(inv.UDF) > 0 {
		udf, err := clone(&inv.UDF)
		if err != nil {
			return nil, err
		}

		order.UDF = *udf
	}

	order.Items = make([]SalesOrderItem, 0, len(inv.Items))

	for i := range inv.Items {
		item, err := Duplicate(&inv.Items[i])
		if err != nil {
			return nil, err
		}

		item.OrderNo = nil
		item.ReferenceNo = nil

		if item.OrderQty != nil {
			item.OrderQty = String(negateAmount(*item.OrderQty))
		}

		if item.CommittedQty != nil {
			item.CommittedQty = String(negateAmount(*item.CommittedQty))
		}

		order.Items = append(order.Items, *item)
	}

	return order, nil
}
