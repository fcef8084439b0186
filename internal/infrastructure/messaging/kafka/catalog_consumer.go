package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	app "kitchen_orders/internal/application/catalog"
	"kitchen_orders/internal/config"
	"kitchen_orders/pkg/logger"
)

// CatalogConsumer reads administrative cook/dish load records and stores
// them through the catalog service.
type CatalogConsumer struct {
	reader  *kafkago.Reader
	handler *app.Service
	log     logger.Logger
}

func NewCatalogConsumer(cfg config.KafkaConfig, handler *app.Service, log logger.Logger) *CatalogConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.CatalogTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &CatalogConsumer{
		reader:  reader,
		handler: handler,
		log:     log,
	}
}

func (c *CatalogConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var rec app.Record
		if err := json.Unmarshal(msg.Value, &rec); err != nil {
			// A malformed admin record must not wedge the whole feed.
			c.log.Warn("skipping malformed catalog record", logger.Error(err))
			continue
		}

		if err := c.handler.HandleRecord(ctx, rec); err != nil {
			return fmt.Errorf("handle catalog record: %w", err)
		}
	}
}

func (c *CatalogConsumer) Close() {
	_ = c.reader.Close()
}
