package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"kitchen_orders/internal/config"
	domain "kitchen_orders/internal/domain/order"
	"kitchen_orders/internal/infrastructure/encoding/avro"
	"kitchen_orders/pkg/logger"
)

// SyncEventProducer emits Avro-encoded finalize audit events. Publishing
// is best-effort from the workflow's point of view: the caller absorbs
// errors and the sync log table stays the authoritative record.
type SyncEventProducer struct {
	client  *kgo.Client
	encoder *avro.Encoder
	topic   string
	log     logger.Logger
}

func NewSyncEventProducer(cfg config.KafkaConfig, log logger.Logger) (*SyncEventProducer, error) {
	encoder, err := avro.NewEncoder(avro.SyncEventSchema)
	if err != nil {
		return nil, fmt.Errorf("create sync event encoder: %w", err)
	}

	log.Info("connecting kafka sync event producer",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.SyncTopic),
	)

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.SyncTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &SyncEventProducer{
		client:  client,
		encoder: encoder,
		topic:   cfg.SyncTopic,
		log:     log,
	}, nil
}

func (p *SyncEventProducer) PublishSyncEvent(ctx context.Context, event domain.SyncEvent) error {
	if event.OrderDate == "" {
		return fmt.Errorf("sync event order_date is empty")
	}

	payload, err := p.encoder.EncodeNative(avro.ToSyncEventNative(event))
	if err != nil {
		return fmt.Errorf("encode sync event: %w", err)
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(event.OrderDate),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		p.log.Error("sync event publish failed",
			logger.String("topic", p.topic),
			logger.Error(err),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	return nil
}

func (p *SyncEventProducer) Close(ctx context.Context) error {
	p.log.Info("closing kafka sync event producer", logger.String("topic", p.topic))
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
