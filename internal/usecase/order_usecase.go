package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"controle_pedidos/internal/domain/aggregator"
	"controle_pedidos/internal/domain/entities"
	"controle_pedidos/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrNotifierNotConfigured = errors.New("order change notifier not configured")
)

// PersistenceError wraps a store failure on create/remove/update/list.
//
// It is reported to the caller as is; no retry is attempted.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("order %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

//go:generate mockgen -source=order_usecase.go -destination=../adapter/http/handlers/mocks/order_usecase_mock.go -package=mocks

// IOrderUseCase exposes the order tracking operations:
//   - "Registrar Pedido" => Submit()
//   - order table => List() / Watch()
//   - status select => ChangeStatus()
//   - trash button => Remove()

type IOrderUseCase interface {
	Schema() entities.Schema
	Submit(ctx context.Context, draft aggregator.Draft) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	Remove(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	Watch(ctx context.Context) (<-chan []entities.Order, error)
}

type OrderUseCase struct {
	schema   entities.Schema
	repo     interfaces.IOrderRepository
	notifier interfaces.IOrderChangeNotifier
	events   interfaces.IOrderEventPublisher
	now      func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the use case. notifier and events may be nil.
func NewOrderUseCase(
	schema entities.Schema,
	repo interfaces.IOrderRepository,
	notifier interfaces.IOrderChangeNotifier,
	events interfaces.IOrderEventPublisher,
) *OrderUseCase {
	return &OrderUseCase{
		schema:   schema,
		repo:     repo,
		notifier: notifier,
		events:   events,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderUseCase) Schema() entities.Schema {
	return u.schema
}

func (u *OrderUseCase) Submit(ctx context.Context, draft aggregator.Draft) (entities.Order, error) {
	valid, err := aggregator.ValidateDraft(u.schema, draft)
	if err != nil {
		log.WithError(err).Debug("[order][usecase] submit rejected")
		return entities.Order{}, err
	}

	record := aggregator.BuildOrderRecord(u.schema, valid)
	created, err := u.repo.Create(ctx, record)
	if err != nil {
		log.WithError(err).Error("[order][usecase] repository create failed")
		return entities.Order{}, &PersistenceError{Op: "create", Err: err}
	}

	log.WithFields(log.Fields{
		"order_id": created.ID,
		"items":    len(created.Items),
		"total":    aggregator.OrderTotal(created).StringFixed(2),
	}).Info("[order][usecase] submit success")

	u.changed(ctx, entities.OrderEvent{Type: entities.OrderEventCreated, OrderID: created.ID, Order: &created})
	return created, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return orders, nil
}

func (u *OrderUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	removed, err := u.repo.Remove(ctx, id)
	if err != nil {
		log.WithError(err).WithField("order_id", id).Error("[order][usecase] repository remove failed")
		return &PersistenceError{Op: "remove", Err: err}
	}
	if removed.ID == "" {
		return ErrOrderNotFound
	}

	log.WithField("order_id", id).Info("[order][usecase] remove success")
	u.changed(ctx, entities.OrderEvent{Type: entities.OrderEventRemoved, OrderID: id})
	return nil
}

func (u *OrderUseCase) ChangeStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !aggregator.StatusAllowed(u.schema, status) {
		return entities.Order{}, ErrInvalidStatus
	}
	status = entities.OrderStatus(strings.TrimSpace(string(status)))

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).WithField("order_id", id).Error("[order][usecase] repository update status failed")
		return entities.Order{}, &PersistenceError{Op: "update status", Err: err}
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	log.WithFields(log.Fields{"order_id": id, "status": status}).Info("[order][usecase] status changed")
	u.changed(ctx, entities.OrderEvent{Type: entities.OrderEventStatusChanged, OrderID: id, Order: &updated})
	return updated, nil
}

// Watch streams the full order list: once immediately, then after every
// change. The channel is closed when ctx is done or the notifier stops.
func (u *OrderUseCase) Watch(ctx context.Context) (<-chan []entities.Order, error) {
	if u.notifier == nil {
		return nil, ErrNotifierNotConfigured
	}

	subCtx, cancel := context.WithCancel(ctx)
	changes, err := u.notifier.Subscribe(subCtx)
	if err != nil {
		cancel()
		return nil, &PersistenceError{Op: "subscribe", Err: err}
	}

	initial, err := u.repo.List(subCtx)
	if err != nil {
		cancel()
		return nil, &PersistenceError{Op: "list", Err: err}
	}

	out := make(chan []entities.Order, 1)
	out <- initial

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-subCtx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				orders, err := u.repo.List(subCtx)
				if err != nil {
					if subCtx.Err() != nil {
						return
					}
					log.WithError(err).Warn("[order][usecase] watch refresh failed")
					continue
				}
				select {
				case out <- orders:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// changed fans a write out to live subscribers and event consumers. Failures
// are logged and never fail the write.
func (u *OrderUseCase) changed(ctx context.Context, ev entities.OrderEvent) {
	if u.notifier != nil {
		if err := u.notifier.Notify(ctx); err != nil {
			log.WithError(err).WithField("order_id", ev.OrderID).Warn("[order][usecase] change notify failed")
		}
	}
	if u.events != nil {
		ev.OccurredAt = u.now()
		if err := u.events.Publish(ctx, ev); err != nil {
			log.WithError(err).WithField("order_id", ev.OrderID).Warn("[order][usecase] event publish failed")
		}
	}
}
