package realtime

import (
	"context"
	"sync"

	"controle_pedidos/internal/usecase/interfaces"
)

// LocalNotifier fans change notifications out inside one process.
type LocalNotifier struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

var _ interfaces.IOrderChangeNotifier = (*LocalNotifier)(nil)

func NewLocalNotifier() *LocalNotifier {
	return &LocalNotifier{subs: make(map[chan struct{}]struct{})}
}

func (n *LocalNotifier) Notify(_ context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs {
		signal(ch)
	}
	return nil
}

func (n *LocalNotifier) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs, ch)
		close(ch)
		n.mu.Unlock()
	}()
	return ch, nil
}

// Subscribers is the number of live subscriptions.
func (n *LocalNotifier) Subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
