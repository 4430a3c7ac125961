package messaging

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// NewKafkaWriter builds a writer keyed by order id so events of one order
// stay on one partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
}
