package repository

import (
	"context"

	"kitchen_orders/internal/domain/order"
)

// LineUpdate carries the optional fields of a partial order line update.
// Nil pointers leave the column untouched.
type LineUpdate struct {
	Quantity       *int
	Notes          *string
	AssignedCookID *string
	Status         *string
}

func (u LineUpdate) Empty() bool {
	return u.Quantity == nil && u.Notes == nil && u.AssignedCookID == nil && u.Status == nil
}

type OrderRepository interface {
	// FindByDate returns a day's lines with dish and cook joined.
	FindByDate(ctx context.Context, orderDate string) ([]order.Line, error)
	// Upsert atomically inserts the line or adds its quantity to the
	// existing row for the same (order_date, dish_id) key, replacing notes.
	// The effective row is returned. The addition happens store-side so
	// concurrent merges to one key never lose an update.
	Upsert(ctx context.Context, line *order.Line) (*order.Line, error)
	// Update applies a partial update and returns (nil, nil) when the line
	// does not exist.
	Update(ctx context.Context, id string, update LineUpdate) (*order.Line, error)
	Delete(ctx context.Context, id string) error
}

type SyncLogRepository interface {
	Append(ctx context.Context, entry *order.SyncLog) error
}
