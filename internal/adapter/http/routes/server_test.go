package routes

import (
	"context"
	"errors"
	"testing"
	"time"

	"controle_pedidos/internal/adapter/events"
	"controle_pedidos/internal/domain/entities"

	"github.com/segmentio/kafka-go"
)

type fakeServer struct {
	calls *[]string
	err   error
}

func (s fakeServer) Shutdown(ctx context.Context) error {
	*s.calls = append(*s.calls, "http")
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("shutdown without deadline")
	}
	return s.err
}

type nopWriter struct{}

func (nopWriter) WriteMessages(context.Context, ...kafka.Message) error { return nil }
func (nopWriter) Close() error                                          { return nil }

func TestShutdown_ClosesAfterServer(t *testing.T) {
	var calls []string
	closers := []func(){
		func() { calls = append(calls, "redis") },
		func() { calls = append(calls, "kafka") },
	}

	if err := shutdown(fakeServer{calls: &calls}, time.Second, closers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"http", "kafka", "redis"}
	if len(calls) != len(want) {
		t.Fatalf("unexpected order: %v", calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("unexpected order: %v", calls)
		}
	}
}

func TestShutdown_TimeoutStillClosesPublisher(t *testing.T) {
	var calls []string
	kp := events.NewKafkaPublisher(nopWriter{}, "order-api", 4)
	kp.Start()

	err := shutdown(fakeServer{calls: &calls, err: context.DeadlineExceeded}, time.Millisecond, []func(){kp.Close})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}

	// a request that outlived the server finishes its write without panicking
	pubErr := kp.Publish(context.Background(), entities.OrderEvent{Type: entities.OrderEventCreated, OrderID: "o-1"})
	if !errors.Is(pubErr, events.ErrPublisherClosed) {
		t.Fatalf("expected ErrPublisherClosed, got %v", pubErr)
	}
}
