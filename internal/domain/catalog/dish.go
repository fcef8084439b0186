package catalog

// Dish is one menu entry. DefaultCookID may be empty, meaning the dish has
// no default and every order for it must name a cook explicitly.
type Dish struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category,omitempty"`
	PreparationTime *int   `json:"preparation_time,omitempty"`
	DefaultCookID   string `json:"default_cook_id,omitempty"`
	DefaultCook     *Cook  `json:"default_cook,omitempty"`
	IsActive        bool   `json:"is_active"`
}

func NewDish(id, name, category string, preparationTime *int, defaultCookID string) (*Dish, error) {
	if id == "" || name == "" {
		return nil, ErrMissingField
	}

	return &Dish{
		ID:              id,
		Name:            name,
		Category:        category,
		PreparationTime: preparationTime,
		DefaultCookID:   defaultCookID,
		IsActive:        true,
	}, nil
}
