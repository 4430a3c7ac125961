// Package aggregator turns order drafts into persistable records and derives
// order totals. Every function here is pure.
package aggregator

import (
	"fmt"
	"strconv"
	"strings"

	"controle_pedidos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ValidDraft is a draft whose numeric fields have been coerced.
type ValidDraft struct {
	Customer string
	Items    []entities.LineItem
}

// ValidateDraft checks every field of d against the schema and returns all
// problems at once. No partial result is produced on failure.
func ValidateDraft(schema entities.Schema, d Draft) (ValidDraft, error) {
	verr := &ValidationError{}

	customer := strings.TrimSpace(d.Customer)
	if schema.RequireCustomerName && customer == "" {
		verr.add("customer", ReasonRequired)
	}

	switch {
	case schema.MultiItem && len(d.Items) == 0:
		verr.add("items", ReasonNoItems)
	case !schema.MultiItem && len(d.Items) != 1:
		verr.add("items", ReasonSingleItem)
	}

	items := make([]entities.LineItem, 0, len(d.Items))
	for i, raw := range d.Items {
		prefix := ""
		if schema.MultiItem {
			prefix = fmt.Sprintf("items[%d].", i)
		}

		item := entities.LineItem{Product: strings.TrimSpace(raw.Product)}
		if item.Product == "" {
			verr.add(prefix+productField(schema), ReasonRequired)
		}

		qty, reason := parseQuantity(raw.Quantity)
		if reason != "" {
			verr.add(prefix+FieldQuantity, reason)
		}
		item.Quantity = qty

		if schema.TrackUnitPrice {
			price, reason := parseUnitPrice(raw.UnitPrice)
			if reason != "" {
				verr.add(prefix+FieldUnitPrice, reason)
			}
			item.UnitPrice = &price
		}
		items = append(items, item)
	}

	if len(verr.Fields) > 0 {
		return ValidDraft{}, verr
	}
	return ValidDraft{Customer: customer, Items: items}, nil
}

// LineTotal is quantity × unitPrice with no rounding.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// ItemTotal returns the line total of item and whether it is priced.
func ItemTotal(item entities.LineItem) (decimal.Decimal, bool) {
	if !item.Priced() {
		return decimal.Zero, false
	}
	return LineTotal(item.Quantity, *item.UnitPrice), true
}

// OrderTotal sums the line totals of the order's priced items.
func OrderTotal(order entities.Order) decimal.Decimal {
	return itemsTotal(order.Items)
}

// RecordTotal sums the line totals of a record that has not been stored yet.
func RecordTotal(record entities.OrderRecord) decimal.Decimal {
	return itemsTotal(record.Items)
}

// GrandTotal sums OrderTotal over orders.
func GrandTotal(orders []entities.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(OrderTotal(o))
	}
	return total
}

// BuildOrderRecord projects a validated draft onto the persisted shape with
// the schema's initial status.
func BuildOrderRecord(schema entities.Schema, v ValidDraft) entities.OrderRecord {
	items := make([]entities.LineItem, len(v.Items))
	copy(items, v.Items)
	return entities.OrderRecord{
		Customer: v.Customer,
		Items:    items,
		Status:   schema.InitialStatus(),
	}
}

// StatusAllowed reports whether status may be set under schema.
func StatusAllowed(schema entities.Schema, status entities.OrderStatus) bool {
	s := entities.OrderStatus(strings.TrimSpace(string(status)))
	if s == "" {
		return false
	}
	if schema.FreeTextStatus() {
		return true
	}
	for _, allowed := range schema.Statuses {
		if allowed == s {
			return true
		}
	}
	return false
}

func itemsTotal(items []entities.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if line, ok := ItemTotal(it); ok {
			total = total.Add(line)
		}
	}
	return total
}

func productField(schema entities.Schema) string {
	if schema.MultiItem {
		return FieldProduct
	}
	return "description"
}

func parseQuantity(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ReasonRequired
	}
	q, err := strconv.Atoi(raw)
	if err != nil || q <= 0 {
		return 0, ReasonPositiveInteger
	}
	return q, ""
}

func parseUnitPrice(raw string) (decimal.Decimal, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ReasonRequired
	}
	p, err := decimal.NewFromString(raw)
	if err != nil || p.IsNegative() {
		return decimal.Zero, ReasonNonNegativePrice
	}
	return p, ""
}
