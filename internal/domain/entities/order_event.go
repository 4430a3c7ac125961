package entities

import "time"

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "OrderCreated"
	OrderEventStatusChanged OrderEventType = "OrderStatusChanged"
	OrderEventRemoved       OrderEventType = "OrderRemoved"
)

// OrderEvent describes one change to the order list.
//
// Order is nil for removals.
type OrderEvent struct {
	Type       OrderEventType `json:"type"`
	OrderID    string         `json:"order_id"`
	Order      *Order         `json:"order,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
