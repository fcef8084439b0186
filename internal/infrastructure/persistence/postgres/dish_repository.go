package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kitchen_orders/internal/domain/catalog"
)

type DishRepository struct {
	pool *pgxpool.Pool
}

func NewDishRepository(pool *pgxpool.Pool) *DishRepository {
	return &DishRepository{pool: pool}
}

const dishWithCookColumns = `
	d.id, d.name, d.description, d.category, d.preparation_time,
	d.default_cook_id, d.is_active,
	c.id, c.name, c.floor, c.specialty, c.email, c.phone, c.is_active
`

func (r *DishRepository) ListActive(ctx context.Context) ([]catalog.Dish, error) {
	query := `
		SELECT ` + dishWithCookColumns + `
		FROM dishes d
		LEFT JOIN cooks c ON c.id = d.default_cook_id
		WHERE d.is_active = TRUE
		ORDER BY d.name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := make([]catalog.Dish, 0)
	for rows.Next() {
		d, err := scanDishWithCook(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, *d)
	}
	return dishes, rows.Err()
}

func (r *DishRepository) FindByID(ctx context.Context, id string) (*catalog.Dish, error) {
	query := `
		SELECT ` + dishWithCookColumns + `
		FROM dishes d
		LEFT JOIN cooks c ON c.id = d.default_cook_id
		WHERE d.id = $1;
	`
	d, err := scanDishWithCook(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DishRepository) Save(ctx context.Context, dish *catalog.Dish) error {
	if dish == nil {
		return fmt.Errorf("dish is nil")
	}

	const query = `
		INSERT INTO dishes (id, name, description, category, preparation_time, default_cook_id, is_active)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			preparation_time = EXCLUDED.preparation_time,
			default_cook_id = EXCLUDED.default_cook_id,
			is_active = EXCLUDED.is_active;
	`
	_, err := r.pool.Exec(ctx, query,
		dish.ID,
		dish.Name,
		dish.Description,
		dish.Category,
		dish.PreparationTime,
		dish.DefaultCookID,
		dish.IsActive,
	)
	return err
}

// scanDishWithCook reads one dish row with the LEFT JOINed default cook;
// every cook column may be NULL when the dish has no default.
func scanDishWithCook(row pgx.Row) (*catalog.Dish, error) {
	var (
		d             catalog.Dish
		defaultCookID *string
		cookID        *string
		cookName      *string
		cookFloor     *int
		cookSpecialty *string
		cookEmail     *string
		cookPhone     *string
		cookActive    *bool
	)

	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&d.Category,
		&d.PreparationTime,
		&defaultCookID,
		&d.IsActive,
		&cookID,
		&cookName,
		&cookFloor,
		&cookSpecialty,
		&cookEmail,
		&cookPhone,
		&cookActive,
	)
	if err != nil {
		return nil, err
	}

	if defaultCookID != nil {
		d.DefaultCookID = *defaultCookID
	}
	if cookID != nil {
		d.DefaultCook = &catalog.Cook{
			ID:       *cookID,
			Name:     derefString(cookName),
			Floor:    cookFloor,
			IsActive: cookActive != nil && *cookActive,
		}
		d.DefaultCook.Specialty = derefString(cookSpecialty)
		d.DefaultCook.Email = derefString(cookEmail)
		d.DefaultCook.Phone = derefString(cookPhone)
	}
	return &d, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
