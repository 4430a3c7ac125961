package events

import (
	"context"
	"encoding/json"
	"sync"

	"controle_pedidos/internal/domain/aggregator"
	"controle_pedidos/internal/domain/entities"
	"controle_pedidos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

var (
	ErrPublisherBusy   = errors.New("event publisher buffer full")
	ErrPublisherClosed = errors.New("event publisher closed")
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher queues events and writes them from a single goroutine.
// Publish never waits for the broker, and fails with ErrPublisherClosed
// once Close has been called.
type KafkaPublisher struct {
	w        messageWriter
	producer string
	inbox    chan kafka.Message
	done     chan struct{}

	mu        sync.Mutex
	started   bool
	closed    bool
	closeOnce sync.Once
}

var _ interfaces.IOrderEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(w messageWriter, producer string, buf int) *KafkaPublisher {
	if buf <= 0 {
		buf = 1
	}
	return &KafkaPublisher{
		w:        w,
		producer: producer,
		inbox:    make(chan kafka.Message, buf),
		done:     make(chan struct{}),
	}
}

// Start runs the write loop until Close drains the queue.
func (p *KafkaPublisher) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.closed {
		return
	}
	p.started = true

	go func() {
		defer close(p.done)
		for m := range p.inbox {
			if err := p.w.WriteMessages(context.Background(), m); err != nil {
				log.WithError(err).WithField("key", string(m.Key)).Warn("[order][events] kafka write failed")
			}
		}
		if err := p.w.Close(); err != nil {
			log.WithError(err).Warn("[order][events] kafka writer close failed")
		}
	}()
}

func (p *KafkaPublisher) Publish(_ context.Context, ev entities.OrderEvent) error {
	value, err := p.encode(ev)
	if err != nil {
		return err
	}
	m := kafka.Message{
		Key:   []byte(ev.OrderID),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(ev.Type)},
			{Key: "x-event-version", Value: []byte("1")},
		},
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.inbox <- m:
		return nil
	default:
		return ErrPublisherBusy
	}
}

// Close flushes queued events and waits for the writer to close. It is safe
// to call more than once.
func (p *KafkaPublisher) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.inbox)
		started := p.started
		p.mu.Unlock()

		if !started {
			if err := p.w.Close(); err != nil {
				log.WithError(err).Warn("[order][events] kafka writer close failed")
			}
			close(p.done)
		}
	})
	<-p.done
}

func (p *KafkaPublisher) encode(ev entities.OrderEvent) ([]byte, error) {
	payload := OrderPayload{OrderID: ev.OrderID}
	if ev.Order != nil {
		total := aggregator.OrderTotal(*ev.Order)
		createdAt := ev.Order.CreatedAt
		payload.Customer = ev.Order.Customer
		payload.Status = string(ev.Order.Status)
		payload.Items = ev.Order.Items
		payload.Total = &total
		if !createdAt.IsZero() {
			payload.CreatedAt = &createdAt
		}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal event payload")
	}
	env := Envelope{
		EventID:       uuid.NewString(),
		EventType:     string(ev.Type),
		EventVersion:  EventVersion,
		OccurredAt:    ev.OccurredAt,
		Producer:      p.producer,
		CorrelationID: ev.OrderID,
		Payload:       raw,
	}
	b, err := json.Marshal(env)
	if err != nil {
		return nil, errors.Wrap(err, "marshal event envelope")
	}
	return b, nil
}
