package kafka

import (
	"context"

	"github.com/Shopify/sarama"
)

// Handler of one message from the mq.
type Handler func(ctx context.Context, message []byte)

// Publish a message to the mq.
type Publish func(message []byte) error

type topicHandler struct {
	partitionConsumer sarama.PartitionConsumer
	handler           Handler
}
