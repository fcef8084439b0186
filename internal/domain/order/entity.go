package order

import (
	"encoding/json"
	"time"

	"kitchen_orders/internal/domain/catalog"
)

// Line statuses. A line starts pending and leaves that state only through
// finalization; there is no way back from completed or cancelled.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Sync log statuses.
const (
	SyncSuccess = "success"
	SyncFailed  = "failed"
	SyncPending = "pending"
)

// Line is one (order_date, dish) record of a day's order. AssignedCookID
// is always concrete: resolution happens before the line is built, never
// after persistence.
type Line struct {
	ID             string         `json:"id"`
	OrderDate      string         `json:"order_date"`
	DishID         string         `json:"dish_id"`
	Dish           *catalog.Dish  `json:"dish,omitempty"`
	AssignedCookID string         `json:"assigned_cook_id"`
	AssignedCook   *catalog.Cook  `json:"assigned_cook,omitempty"`
	Quantity       int            `json:"quantity"`
	Status         string         `json:"status"`
	Notes          string         `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func NewLine(id, orderDate, dishID, cookID string, quantity int, notes string) (*Line, error) {
	if id == "" || dishID == "" || cookID == "" {
		return nil, catalog.ErrMissingField
	}
	if _, err := NewQuantity(quantity); err != nil {
		return nil, err
	}
	if err := ValidateOrderDate(orderDate, time.Now()); err != nil {
		return nil, err
	}

	return &Line{
		ID:             id,
		OrderDate:      orderDate,
		DishID:         dishID,
		AssignedCookID: cookID,
		Quantity:       quantity,
		Status:         StatusPending,
		Notes:          notes,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// SyncLog is one append-only audit row for one line of one forwarding
// attempt. Failing to write it never fails the order operation.
type SyncLog struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"order_id"`
	SyncStatus      string          `json:"sync_status"`
	RequestPayload  json.RawMessage `json:"request_payload"`
	ResponsePayload json.RawMessage `json:"response_payload,omitempty"`
	ErrorMessage    string          `json:"error_message,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
