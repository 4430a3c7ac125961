package config

import (
	"testing"

	"controle_pedidos/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "orders", cfg.OrdersTable)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, entities.DefaultSchema(), cfg.Schema())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("ORDER_TRACK_UNIT_PRICE", "false")
	t.Setenv("ORDER_MULTI_ITEM", "false")
	t.Setenv("ORDER_REQUIRE_CUSTOMER", "false")
	t.Setenv("ORDER_STATUSES", "EM PREPARO, FINALIZADO,ENTREGUE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)

	schema := cfg.Schema()
	assert.False(t, schema.TrackUnitPrice)
	assert.False(t, schema.MultiItem)
	assert.False(t, schema.RequireCustomerName)
	assert.Equal(t, []entities.OrderStatus{"EM PREPARO", "FINALIZADO", "ENTREGUE"}, schema.Statuses)
	assert.Equal(t, entities.OrderStatus("EM PREPARO"), schema.InitialStatus())
}

func TestLoad_FreeTextStatus(t *testing.T) {
	t.Setenv("ORDER_STATUSES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Schema().FreeTextStatus())
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "0")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("HTTP_PORT", "abc")
	_, err = Load()
	assert.Error(t, err)
}
