package order

import (
	"kitchen_orders/internal/domain/catalog"
)

// ResolveCook decides which cook owns an order line. A manual override
// always wins verbatim; existence of the referenced cook is the caller's
// problem. Without an override the dish default is used, and a dish with
// no default cannot be ordered.
func ResolveCook(dish *catalog.Dish, explicitCookID string) (string, error) {
	if explicitCookID != "" {
		return explicitCookID, nil
	}
	if dish != nil && dish.DefaultCookID != "" {
		return dish.DefaultCookID, nil
	}
	return "", ErrMissingDefaultCook
}

// UpsertPlan is the outcome of deciding between creating a fresh line and
// merging into an existing one for the same (order_date, dish) key.
type UpsertPlan struct {
	Create   bool
	LineID   string
	Quantity int
	Notes    string
}

// PlanUpsert merges a requested quantity into an existing line, or plans a
// fresh one. Quantities accumulate; notes are replaced by the latest
// request, even when empty.
func PlanUpsert(existing *Line, requestedQuantity int, notes string) (UpsertPlan, error) {
	if _, err := NewQuantity(requestedQuantity); err != nil {
		return UpsertPlan{}, err
	}

	if existing == nil {
		return UpsertPlan{
			Create:   true,
			Quantity: requestedQuantity,
			Notes:    notes,
		}, nil
	}

	return UpsertPlan{
		Create:   false,
		LineID:   existing.ID,
		Quantity: existing.Quantity + requestedQuantity,
		Notes:    notes,
	}, nil
}
