package config

import (
	"strings"

	"controle_pedidos/internal/domain/entities"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is read from the environment (a local .env file is autoloaded by main).
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"order-api"`
	HTTPPort    int    `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`
	OrdersTable        string `envconfig:"ORDERS_TABLE" default:"orders"`

	// Empty RedisAddr switches the live feed to the in-process notifier.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisChannel  string `envconfig:"REDIS_CHANNEL" default:"orders:changed"`

	// Empty KafkaBrokers disables lifecycle events.
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"orders.events"`

	TrackUnitPrice      bool     `envconfig:"ORDER_TRACK_UNIT_PRICE" default:"true"`
	MultiItem           bool     `envconfig:"ORDER_MULTI_ITEM" default:"true"`
	RequireCustomerName bool     `envconfig:"ORDER_REQUIRE_CUSTOMER" default:"true"`
	Statuses            []string `envconfig:"ORDER_STATUSES" default:"PREPARO,FINALIZADO,ENTREGUE"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to load config")
	}
	if cfg.HTTPPort <= 0 {
		return Config{}, errors.Errorf("invalid HTTP_PORT %d", cfg.HTTPPort)
	}
	return cfg, nil
}

// Schema builds the order variant. An explicitly empty ORDER_STATUSES yields
// free-text statuses.
func (c Config) Schema() entities.Schema {
	statuses := make([]entities.OrderStatus, 0, len(c.Statuses))
	for _, s := range c.Statuses {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, entities.OrderStatus(s))
		}
	}
	return entities.Schema{
		TrackUnitPrice:      c.TrackUnitPrice,
		MultiItem:           c.MultiItem,
		RequireCustomerName: c.RequireCustomerName,
		Statuses:            statuses,
	}
}

func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func (c Config) RedisEnabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}
