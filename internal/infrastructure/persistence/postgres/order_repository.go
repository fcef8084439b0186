package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kitchen_orders/internal/domain/catalog"
	domain "kitchen_orders/internal/domain/order"
	"kitchen_orders/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) FindByDate(ctx context.Context, orderDate string) ([]domain.Line, error) {
	const query = `
		SELECT o.id, o.order_date::text, o.dish_id, o.assigned_cook_id,
			o.quantity, o.notes, o.status, o.created_at,
			d.name, d.category, d.preparation_time,
			c.name, c.floor
		FROM daily_orders o
		JOIN dishes d ON d.id = o.dish_id
		JOIN cooks c ON c.id = o.assigned_cook_id
		WHERE o.order_date = $1::date
		ORDER BY o.created_at;
	`
	rows, err := r.pool.Query(ctx, query, orderDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.Line, 0)
	for rows.Next() {
		var (
			line      domain.Line
			dishName  string
			category  string
			prepTime  *int
			cookName  string
			cookFloor *int
		)
		err := rows.Scan(
			&line.ID,
			&line.OrderDate,
			&line.DishID,
			&line.AssignedCookID,
			&line.Quantity,
			&line.Notes,
			&line.Status,
			&line.CreatedAt,
			&dishName,
			&category,
			&prepTime,
			&cookName,
			&cookFloor,
		)
		if err != nil {
			return nil, err
		}
		line.Dish = &catalog.Dish{
			ID:              line.DishID,
			Name:            dishName,
			Category:        category,
			PreparationTime: prepTime,
		}
		line.AssignedCook = &catalog.Cook{
			ID:    line.AssignedCookID,
			Name:  cookName,
			Floor: cookFloor,
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// Upsert inserts the line, or folds it into the existing row for the same
// (order_date, dish_id) key. The increment runs inside one statement so
// two concurrent merges to the same key both land.
func (r *OrderRepository) Upsert(ctx context.Context, line *domain.Line) (*domain.Line, error) {
	if line == nil {
		return nil, fmt.Errorf("order line is nil")
	}

	const query = `
		INSERT INTO daily_orders (id, order_date, dish_id, assigned_cook_id, quantity, notes, status, created_at)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (order_date, dish_id) DO UPDATE
		SET quantity = daily_orders.quantity + EXCLUDED.quantity,
			notes = EXCLUDED.notes
		RETURNING id, order_date::text, dish_id, assigned_cook_id, quantity, notes, status, created_at;
	`
	var out domain.Line
	err := r.pool.QueryRow(ctx, query,
		line.ID,
		line.OrderDate,
		line.DishID,
		line.AssignedCookID,
		line.Quantity,
		line.Notes,
		line.Status,
		line.CreatedAt,
	).Scan(
		&out.ID,
		&out.OrderDate,
		&out.DishID,
		&out.AssignedCookID,
		&out.Quantity,
		&out.Notes,
		&out.Status,
		&out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *OrderRepository) Update(ctx context.Context, id string, update repository.LineUpdate) (*domain.Line, error) {
	const query = `
		UPDATE daily_orders
		SET quantity = COALESCE($2, quantity),
			notes = COALESCE($3, notes),
			assigned_cook_id = COALESCE($4, assigned_cook_id),
			status = COALESCE($5, status)
		WHERE id = $1
		RETURNING id, order_date::text, dish_id, assigned_cook_id, quantity, notes, status, created_at;
	`
	var out domain.Line
	err := r.pool.QueryRow(ctx, query,
		id,
		update.Quantity,
		update.Notes,
		update.AssignedCookID,
		update.Status,
	).Scan(
		&out.ID,
		&out.OrderDate,
		&out.DishID,
		&out.AssignedCookID,
		&out.Quantity,
		&out.Notes,
		&out.Status,
		&out.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM daily_orders WHERE id = $1;`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLineNotFound
	}
	return nil
}
