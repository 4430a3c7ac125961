package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"controle_pedidos/internal/domain/entities"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishCreated(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w, "order-api", 4)
	p.Start()

	unit := decimal.RequireFromString("10")
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:        "o-1",
		Customer:  "Ana",
		Items:     []entities.LineItem{{Product: "Caneca", Quantity: 2, UnitPrice: &unit}},
		Status:    entities.OrderStatusPreparo,
		CreatedAt: created,
	}
	err := p.Publish(context.Background(), entities.OrderEvent{
		Type:       entities.OrderEventCreated,
		OrderID:    "o-1",
		Order:      &order,
		OccurredAt: created,
	})
	require.NoError(t, err)
	p.Close()

	require.Len(t, w.msgs, 1)
	assert.True(t, w.closed)
	m := w.msgs[0]
	assert.Equal(t, "o-1", string(m.Key))
	assert.Equal(t, "x-event-type", m.Headers[0].Key)
	assert.Equal(t, "OrderCreated", string(m.Headers[0].Value))

	var env Envelope
	require.NoError(t, json.Unmarshal(m.Value, &env))
	assert.Equal(t, "OrderCreated", env.EventType)
	assert.Equal(t, "order-api", env.Producer)
	assert.Equal(t, "o-1", env.CorrelationID)
	assert.NotEmpty(t, env.EventID)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, "20", payload["total"])
	assert.Equal(t, "PREPARO", payload["status"])
}

func TestKafkaPublisher_PublishRemoved(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := NewKafkaPublisher(w, "order-api", 1)
	p.Start()

	require.NoError(t, p.Publish(context.Background(), entities.OrderEvent{Type: entities.OrderEventRemoved, OrderID: "o-1"}))
	p.Close()

	require.Len(t, w.msgs, 1)
	var env Envelope
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &env))
	var payload map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, map[string]any{"order_id": "o-1"}, payload)
}

func TestKafkaPublisher_BufferFull(t *testing.T) {
	p := NewKafkaPublisher(&fakeWriter{}, "order-api", 1)

	ev := entities.OrderEvent{Type: entities.OrderEventRemoved, OrderID: "o-1"}
	require.NoError(t, p.Publish(context.Background(), ev))
	assert.ErrorIs(t, p.Publish(context.Background(), ev), ErrPublisherBusy)
}

func TestKafkaPublisher_PublishAfterClose(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w, "order-api", 4)
	p.Start()

	ev := entities.OrderEvent{Type: entities.OrderEventRemoved, OrderID: "o-1"}
	require.NoError(t, p.Publish(context.Background(), ev))
	p.Close()

	assert.NotPanics(t, func() {
		assert.ErrorIs(t, p.Publish(context.Background(), ev), ErrPublisherClosed)
	})
	assert.NotPanics(t, p.Close)
	assert.Len(t, w.msgs, 1)
	assert.True(t, w.closed)
}

func TestKafkaPublisher_CloseWithoutStart(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w, "order-api", 1)

	done := make(chan struct{})
	go func() {
		p.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close blocked without Start")
	}
	assert.True(t, w.closed)
	assert.ErrorIs(t, p.Publish(context.Background(), entities.OrderEvent{OrderID: "o-1"}), ErrPublisherClosed)
}
