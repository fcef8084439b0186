package avro

// SyncEventSchema is the Avro schema for finalize audit events. Optional
// fields use ["null", "type"] unions so failed and successful attempts
// share one record shape.
const SyncEventSchema = `{
	"type": "record",
	"name": "OrderSyncEvent",
	"namespace": "com.kitchen.orders",
	"fields": [
		{"name": "order_date", "type": "string"},
		{"name": "total_dishes", "type": "long"},
		{"name": "items_count", "type": "long"},
		{"name": "success", "type": "boolean"},
		{"name": "error_type", "type": ["null", "string"], "default": null},
		{"name": "error_message", "type": ["null", "string"], "default": null},
		{"name": "timestamp", "type": "string"}
	]
}`
