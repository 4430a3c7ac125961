package interfaces

import (
	"context"
	"controle_pedidos/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_mock.go -package=mock_interfaces

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The store owns id and created_at assignment:
//   - Create appends a record and stamps the creation time at write time
//   - Remove deletes a whole order and returns it (empty when absent)
//   - UpdateStatus overwrites the status field only (empty when absent)
//   - List returns every order ordered by created_at ascending

type IOrderRepository interface {
	Create(ctx context.Context, record entities.OrderRecord) (entities.Order, error)
	Remove(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}
