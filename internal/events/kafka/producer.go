// File: internal/events/kafka/producer.go
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/domain/service"
)

// CloudEvent defines the structure for CloudEvents v1.0.
type CloudEvent struct {
	SpecVersion     string                 `json:"specversion"`
	Type            string                 `json:"type"`
	Source          string                 `json:"source"`
	Subject         *string                `json:"subject,omitempty"`
	ID              string                 `json:"id"`
	Time            time.Time              `json:"time"`
	DataContentType *string                `json:"datacontenttype,omitempty"`
	Data            interface{}            `json:"data,omitempty"`
	Extensions      map[string]interface{} `json:"extensions,omitempty"`
}

// Constants for CloudEvent fields
const (
	CloudEventSpecVersion     = "1.0"
	CloudEventDataContentType = "application/json"
)

// Producer представляет собой продюсер Kafka для отправки событий CloudEvents
type Producer struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
	source   string // источник CloudEvents, например "/club-service"
}

// NewProducer создает новый экземпляр продюсера Kafka.
func NewProducer(brokers []string, logger *zap.Logger, cloudEventSource string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Flush.Frequency = 500 * time.Millisecond
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1 // required for the idempotent producer

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		logger:   logger.Named("kafka_producer"),
		source:   cloudEventSource,
	}, nil
}

var _ service.EventPublisher = (*Producer)(nil)

// Publish constructs a CloudEvent and sends it to the given topic. The
// subject, when present, is also used as the partition key so events of one
// entity stay ordered.
func (p *Producer) Publish(ctx context.Context, topic string, eventType string, subject string, payload interface{}) error {
	dataContentType := CloudEventDataContentType

	event := CloudEvent{
		SpecVersion:     CloudEventSpecVersion,
		ID:              uuid.NewString(),
		Source:          p.source,
		Type:            eventType,
		DataContentType: &dataContentType,
		Time:            time.Now().UTC(),
		Data:            payload,
	}
	if subject != "" {
		event.Subject = &subject
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		event.Extensions = map[string]interface{}{"trace_id": spanCtx.TraceID().String()}
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal CloudEvent to JSON",
			zap.Error(err), zap.String("event_type", eventType), zap.String("event_id", event.ID))
		return fmt.Errorf("failed to marshal CloudEvent to JSON: %w", err)
	}

	var messageKey sarama.Encoder
	if subject != "" {
		messageKey = sarama.StringEncoder(subject)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(eventJSON),
		Key:   messageKey,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Error("Failed to send CloudEvent to Kafka",
			zap.Error(err),
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.String("event_id", event.ID),
		)
		return fmt.Errorf("failed to send CloudEvent to Kafka: %w", err)
	}

	p.logger.Debug("CloudEvent published",
		zap.String("topic", topic),
		zap.String("event_type", eventType),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

// Close shuts down the underlying sarama producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}
