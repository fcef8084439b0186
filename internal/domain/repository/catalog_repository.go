package repository

import (
	"context"

	"kitchen_orders/internal/domain/catalog"
)

type CookRepository interface {
	// FindByID returns (nil, nil) when no cook exists with that id.
	FindByID(ctx context.Context, id string) (*catalog.Cook, error)
	Save(ctx context.Context, cook *catalog.Cook) error
}

type DishRepository interface {
	// ListActive returns active dishes with their default cook joined.
	ListActive(ctx context.Context) ([]catalog.Dish, error)
	// FindByID returns (nil, nil) when no dish exists with that id.
	FindByID(ctx context.Context, id string) (*catalog.Dish, error)
	Save(ctx context.Context, dish *catalog.Dish) error
}
