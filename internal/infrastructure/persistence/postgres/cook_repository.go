package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kitchen_orders/internal/domain/catalog"
)

type CookRepository struct {
	pool *pgxpool.Pool
}

func NewCookRepository(pool *pgxpool.Pool) *CookRepository {
	return &CookRepository{pool: pool}
}

func (r *CookRepository) FindByID(ctx context.Context, id string) (*catalog.Cook, error) {
	const query = `
		SELECT id, name, floor, specialty, email, phone, is_active
		FROM cooks
		WHERE id = $1;
	`
	var c catalog.Cook
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Floor,
		&c.Specialty,
		&c.Email,
		&c.Phone,
		&c.IsActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CookRepository) Save(ctx context.Context, cook *catalog.Cook) error {
	if cook == nil {
		return fmt.Errorf("cook is nil")
	}

	const query = `
		INSERT INTO cooks (id, name, floor, specialty, email, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			floor = EXCLUDED.floor,
			specialty = EXCLUDED.specialty,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			is_active = EXCLUDED.is_active;
	`
	_, err := r.pool.Exec(ctx, query,
		cook.ID,
		cook.Name,
		cook.Floor,
		cook.Specialty,
		cook.Email,
		cook.Phone,
		cook.IsActive,
	)
	return err
}
