package interfaces

import "context"

//go:generate mockgen -source=order_change_notifier_interface.go -destination=mocks/order_change_notifier_mock.go -package=mock_interfaces

// IOrderChangeNotifier signals that the order list changed.
//
// Subscribe returns a channel that receives a value after one or more changes
// and is closed once ctx is done.
type IOrderChangeNotifier interface {
	Notify(ctx context.Context) error
	Subscribe(ctx context.Context) (<-chan struct{}, error)
}
