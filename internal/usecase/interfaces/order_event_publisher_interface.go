package interfaces

import (
	"context"
	"controle_pedidos/internal/domain/entities"
)

//go:generate mockgen -source=order_event_publisher_interface.go -destination=mocks/order_event_publisher_mock.go -package=mock_interfaces

// IOrderEventPublisher forwards order lifecycle events to downstream consumers.
type IOrderEventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}
