package routes

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"controle_pedidos/internal/adapter/events"
	"controle_pedidos/internal/adapter/http/handlers"
	"controle_pedidos/internal/adapter/persistence/repository"
	"controle_pedidos/internal/adapter/realtime"
	"controle_pedidos/internal/config"
	"controle_pedidos/internal/infrastructure/cache"
	"controle_pedidos/internal/infrastructure/database"
	"controle_pedidos/internal/infrastructure/messaging"
	"controle_pedidos/internal/usecase"
	"controle_pedidos/internal/usecase/interfaces"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	shutdownTimeout = 5 * time.Second
	eventBuffer     = 1024
)

// Run wires the order service and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	ddb, err := database.ConnectDynamoDB(ctx, dynamoOptions(cfg))
	if err != nil {
		return err
	}
	repo := repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable)

	// Released by shutdown once the HTTP server has stopped, in reverse order.
	var closers []func()
	defer func() { closeAll(closers) }()

	var notifier interfaces.IOrderChangeNotifier
	if cfg.RedisEnabled() {
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return err
		}
		closers = append(closers, func() {
			if err := rdb.Close(); err != nil {
				log.WithError(err).Warn("[order][server] redis close failed")
			}
		})
		notifier = realtime.NewRedisNotifier(rdb, cfg.RedisChannel)
		log.WithField("addr", cfg.RedisAddr).Info("[order][server] live feed on redis")
	} else {
		notifier = realtime.NewLocalNotifier()
		log.Info("[order][server] live feed in process")
	}

	var publisher interfaces.IOrderEventPublisher
	if cfg.KafkaEnabled() {
		kp := events.NewKafkaPublisher(messaging.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic), cfg.ServiceName, eventBuffer)
		kp.Start()
		closers = append(closers, kp.Close)
		publisher = kp
		log.WithFields(log.Fields{"brokers": cfg.KafkaBrokers, "topic": cfg.KafkaTopic}).Info("[order][server] lifecycle events on kafka")
	}

	orderUseCase := usecase.NewOrderUseCase(cfg.Schema(), repo, notifier, publisher)
	router := NewRouter(handlers.NewOrderHandler(orderUseCase))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Open order streams end when ctx is cancelled.
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("[order][server] HTTP listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-ctx.Done():
	}

	pending := closers
	closers = nil
	return shutdown(srv, shutdownTimeout, pending)
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// shutdown stops srv, then drains the event publisher and closes clients.
// Closers run even when Shutdown times out: a request still in flight then
// gets ErrPublisherClosed from the publisher, which the use case only logs.
func shutdown(srv shutdowner, timeout time.Duration, closers []func()) error {
	log.Info("[order][server] shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	closeAll(closers)
	if err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}

func closeAll(closers []func()) {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

// CreateTable creates the orders table when it does not exist yet.
func CreateTable(ctx context.Context, cfg config.Config) error {
	ddb, err := database.ConnectDynamoDB(ctx, dynamoOptions(cfg))
	if err != nil {
		return err
	}
	created, err := repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable).EnsureTable(ctx)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"table": cfg.OrdersTable, "created": created}).Info("[order][server] table ready")
	return nil
}

func dynamoOptions(cfg config.Config) database.Options {
	return database.Options{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.DynamoDBEndpoint,
	}
}
