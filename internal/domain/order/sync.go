package order

import (
	"encoding/json"
	"time"
)

// Outcome types for one forwarding attempt. Exactly one applies.
const (
	OutcomeSkipped         = "skipped"
	OutcomeTimeout         = "timeout"
	OutcomeHTTPError       = "http_error"
	OutcomeConnectionError = "connection_error"
	OutcomeUnknown         = "unknown"
)

// PartnerItem is one line of the normalized payload the partner receives.
type PartnerItem struct {
	DishName        string `json:"dish_name"`
	Quantity        int    `json:"quantity"`
	CookName        string `json:"cook_name"`
	PreparationTime *int   `json:"preparation_time,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// PartnerPayload aggregates a whole day's order for one outbound POST.
type PartnerPayload struct {
	OrderDate   string        `json:"order_date"`
	TotalDishes int           `json:"total_dishes"`
	Items       []PartnerItem `json:"items"`
	Timestamp   string        `json:"timestamp"`
}

// SyncOutcome classifies a single forwarding attempt. It is returned as
// data so callers can always proceed to status updates and logging; the
// forwarder never lets an error escape its boundary.
type SyncOutcome struct {
	Success    bool
	Skipped    bool
	ErrorType  string
	Error      string
	StatusCode int
	Response   json.RawMessage
}

// LogStatus maps an outcome to the sync log status. Skipped counts as
// failed for logging purposes.
func (o SyncOutcome) LogStatus() string {
	if o.Success {
		return SyncSuccess
	}
	return SyncFailed
}

// SyncEvent is the audit record emitted to the event stream after each
// finalize attempt. The sync log rows remain the authoritative record.
type SyncEvent struct {
	OrderDate    string `json:"order_date"`
	TotalDishes  int    `json:"total_dishes"`
	ItemsCount   int    `json:"items_count"`
	Success      bool   `json:"success"`
	ErrorType    string `json:"error_type,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// BuildPartnerPayload flattens fetched lines into the partner format.
// Lines are expected to carry their joined dish and cook records; missing
// joins degrade to empty names rather than failing the batch.
func BuildPartnerPayload(orderDate string, lines []Line, now time.Time) PartnerPayload {
	items := make([]PartnerItem, 0, len(lines))
	total := 0

	for _, line := range lines {
		item := PartnerItem{
			Quantity: line.Quantity,
			Notes:    line.Notes,
		}
		if line.Dish != nil {
			item.DishName = line.Dish.Name
			item.PreparationTime = line.Dish.PreparationTime
		}
		if line.AssignedCook != nil {
			item.CookName = line.AssignedCook.Name
		}
		items = append(items, item)
		total += line.Quantity
	}

	return PartnerPayload{
		OrderDate:   orderDate,
		TotalDishes: total,
		Items:       items,
		Timestamp:   now.Format(time.RFC3339),
	}
}
