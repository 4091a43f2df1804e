package kafka

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
)

// Writer abstracts the kafka-go writer so tests can swap in a fake.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes quote events to a Kafka topic.
type Producer struct {
	writer Writer
}

// NewProducer initializes a Kafka writer for the given broker and topic.
// - brokerURL: address of the Kafka server (e.g., "localhost:9092").
// - topic: the topic to publish to (e.g., "quote.generated").
// LeastBytes balancing distributes messages evenly across partitions.
func NewProducer(brokerURL, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerURL),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// NewProducerWithWriter wraps an existing writer. Used by tests.
func NewProducerWithWriter(w Writer) *Producer {
	return &Producer{writer: w}
}

// Publish JSON-encodes value and sends it to the topic.
// The key keeps messages for the same quote on the same partition.
func (p *Producer) Publish(ctx context.Context, key string, value interface{}) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		log.Println("failed to marshal kafka payload:", err)
		return err
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: bytes,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Println("kafka write error:", err)
		return err
	}
	return nil
}

// Close shuts down the Kafka writer to free resources.
func (p *Producer) Close() error {
	return p.writer.Close()
}
