package avro

import (
	domain "kitchen_orders/internal/domain/order"
)

// ToSyncEventNative converts a SyncEvent to the native map goavro expects.
// Union values must be wrapped as map[string]interface{}{"type": value}.
func ToSyncEventNative(event domain.SyncEvent) map[string]interface{} {
	out := map[string]interface{}{
		"order_date":   event.OrderDate,
		"total_dishes": int64(event.TotalDishes),
		"items_count":  int64(event.ItemsCount),
		"success":      event.Success,
		"timestamp":    event.Timestamp,
	}

	setOptionalString(out, "error_type", event.ErrorType)
	setOptionalString(out, "error_message", event.ErrorMessage)

	return out
}

func setOptionalString(out map[string]interface{}, key, value string) {
	if value == "" {
		out[key] = nil
		return
	}
	out[key] = map[string]interface{}{"string": value}
}
