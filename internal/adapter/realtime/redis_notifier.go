package realtime

import (
	"context"

	"controle_pedidos/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const DefaultChannel = "orders:changed"

// RedisNotifier shares change notifications between API replicas over
// Redis PUBLISH/SUBSCRIBE.
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
}

var _ interfaces.IOrderChangeNotifier = (*RedisNotifier)(nil)

func NewRedisNotifier(rdb *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{rdb: rdb, channel: channel}
}

func (n *RedisNotifier) Notify(ctx context.Context) error {
	if err := n.rdb.Publish(ctx, n.channel, "changed").Err(); err != nil {
		return errors.Wrap(err, "redis publish")
	}
	return nil
}

// Subscribe waits for the subscription to be confirmed before returning so a
// change published right after is not missed.
func (n *RedisNotifier) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	sub := n.rdb.Subscribe(ctx, n.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, errors.Wrap(err, "redis subscribe")
	}

	out := make(chan struct{}, 1)
	msgs := sub.Channel()
	go func() {
		defer close(out)
		defer func() {
			if err := sub.Close(); err != nil {
				log.WithError(err).Warn("[order][realtime] redis unsubscribe failed")
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				signal(out)
			}
		}
	}()
	return out, nil
}

// signal coalesces bursts into a single pending notification.
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
