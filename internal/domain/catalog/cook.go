package catalog

// Cook is a kitchen worker an order line can be assigned to. Cooks arrive
// through the administrative catalog load and are read-only for the order
// workflow.
type Cook struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Floor     *int   `json:"floor,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	IsActive  bool   `json:"is_active"`
}

func NewCook(id, name string, floor *int, specialty string) (*Cook, error) {
	if id == "" || name == "" {
		return nil, ErrMissingField
	}
	if floor != nil && (*floor < 1 || *floor > 10) {
		return nil, ErrInvalidFloor
	}

	return &Cook{
		ID:        id,
		Name:      name,
		Floor:     floor,
		Specialty: specialty,
		IsActive:  true,
	}, nil
}
