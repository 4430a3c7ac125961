package events

import (
	"encoding/json"
	"time"

	"controle_pedidos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const EventVersion = 1

// Envelope wraps every event published to the orders topic.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`
}

// OrderPayload is the event body. Order fields are empty for OrderRemoved.
type OrderPayload struct {
	OrderID   string              `json:"order_id"`
	Customer  string              `json:"customer,omitempty"`
	Status    string              `json:"status,omitempty"`
	Items     []entities.LineItem `json:"items,omitempty"`
	Total     *decimal.Decimal    `json:"total,omitempty"`
	CreatedAt *time.Time          `json:"created_at,omitempty"`
}
