package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is a display label for the order (pedido).
//
// Transitions are unconstrained: any configured status can be set from any other.
type OrderStatus string

const (
	OrderStatusPreparo    OrderStatus = "PREPARO"
	OrderStatusFinalizado OrderStatus = "FINALIZADO"
	OrderStatusEntregue   OrderStatus = "ENTREGUE"
)

// DefaultStatuses is the status list used when none is configured.
var DefaultStatuses = []OrderStatus{OrderStatusPreparo, OrderStatusFinalizado, OrderStatusEntregue}

// LineItem is one persisted product/quantity(/price) entry of an order.
//
// UnitPrice is nil when the schema does not track pricing.
type LineItem struct {
	Product   string           `json:"product"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// Priced reports whether the item carries a unit price.
func (i LineItem) Priced() bool {
	return i.UnitPrice != nil
}

// OrderRecord is the shape handed to persistence on creation.
//
// It has no timestamp: creation time is assigned by the store at write time.
type OrderRecord struct {
	Customer string      `json:"customer,omitempty"`
	Items    []LineItem  `json:"items"`
	Status   OrderStatus `json:"status"`
}

// Order is the persisted order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (created_at-index): entity + created_at
//
// Status is the only field mutated after creation. Totals are never stored
// on the entity; they are derived from Items on every read.
type Order struct {
	ID        string      `json:"id"`
	Customer  string      `json:"customer,omitempty"`
	Items     []LineItem  `json:"items"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
