package order

import "time"

// Quantity bounds for a single order line.
const (
	MinQuantity = 1
	MaxQuantity = 500
)

type Quantity struct {
	value int
}

func (q Quantity) Value() int {
	return q.value
}

func NewQuantity(value int) (Quantity, error) {
	if value < MinQuantity || value > MaxQuantity {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: value}, nil
}

// ValidateOrderDate checks the YYYY-MM-DD format and rejects dates
// strictly before today (relative to `now`).
func ValidateOrderDate(orderDate string, now time.Time) error {
	d, err := time.Parse(time.DateOnly, orderDate)
	if err != nil {
		return ErrInvalidOrderDate
	}

	today, _ := time.Parse(time.DateOnly, now.Format(time.DateOnly))
	if d.Before(today) {
		return ErrPastOrderDate
	}
	return nil
}
