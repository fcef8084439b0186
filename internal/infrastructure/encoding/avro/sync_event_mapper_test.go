package avro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "kitchen_orders/internal/domain/order"
)

func TestEncodeSyncEvent_RoundTrip(t *testing.T) {
	encoder, err := NewEncoder(SyncEventSchema)
	require.NoError(t, err)

	event := domain.SyncEvent{
		OrderDate:    "2030-01-01",
		TotalDishes:  180,
		ItemsCount:   2,
		Success:      false,
		ErrorType:    domain.OutcomeConnectionError,
		ErrorMessage: "partner request failed",
		Timestamp:    "2030-01-01T08:30:00Z",
	}

	binary, err := encoder.EncodeNative(ToSyncEventNative(event))
	require.NoError(t, err)
	require.NotEmpty(t, binary)

	native, err := encoder.DecodeNative(binary)
	require.NoError(t, err)

	record, ok := native.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2030-01-01", record["order_date"])
	assert.Equal(t, int64(180), record["total_dishes"])
	assert.Equal(t, false, record["success"])
	assert.Equal(t,
		map[string]interface{}{"string": "connection_error"},
		record["error_type"],
	)
}

func TestEncodeSyncEvent_SuccessHasNullErrors(t *testing.T) {
	encoder, err := NewEncoder(SyncEventSchema)
	require.NoError(t, err)

	native := ToSyncEventNative(domain.SyncEvent{
		OrderDate:   "2030-01-01",
		TotalDishes: 10,
		ItemsCount:  1,
		Success:     true,
		Timestamp:   "2030-01-01T08:30:00Z",
	})

	assert.Nil(t, native["error_type"])
	assert.Nil(t, native["error_message"])

	_, err = encoder.EncodeNative(native)
	assert.NoError(t, err)
}
