package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "kitchen_orders/internal/domain/order"
	"kitchen_orders/internal/infrastructure/encoding/avro"
	"kitchen_orders/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...logger.Field)               {}
func (nopLogger) Info(string, ...logger.Field)                {}
func (nopLogger) Warn(string, ...logger.Field)                {}
func (nopLogger) Error(string, ...logger.Field)               {}
func (nopLogger) Fatal(string, ...logger.Field)               {}
func (n nopLogger) WithContext(context.Context) logger.Logger { return n }
func (n nopLogger) WithFields(...logger.Field) logger.Logger  { return n }
func (nopLogger) Sync() error                                 { return nil }

// Validation-only tests; producing against a live broker is left to
// integration runs.
func TestSyncEventProducer_PublishSyncEvent_EmptyOrderDate(t *testing.T) {
	encoder, err := avro.NewEncoder(avro.SyncEventSchema)
	require.NoError(t, err)

	producer := &SyncEventProducer{
		encoder: encoder,
		topic:   "order_sync_events",
		log:     nopLogger{},
	}

	err = producer.PublishSyncEvent(context.Background(), domain.SyncEvent{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "order_date is empty")
}

func TestSyncEventProducer_Close_NilClient(t *testing.T) {
	producer := &SyncEventProducer{
		topic: "order_sync_events",
		log:   nopLogger{},
	}

	assert.NoError(t, producer.Close(context.Background()))
}
