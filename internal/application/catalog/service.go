package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	domain "kitchen_orders/internal/domain/catalog"
	"kitchen_orders/internal/domain/repository"
	"kitchen_orders/pkg/logger"
)

// Record is one administrative catalog load message: a cook or a dish to
// insert or replace.
type Record struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

const (
	KindCook = "cook"
	KindDish = "dish"
)

type cookPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Floor     *int   `json:"floor"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsActive  *bool  `json:"is_active"`
}

type dishPayload struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	PreparationTime *int   `json:"preparation_time"`
	DefaultCookID   string `json:"default_cook_id"`
	IsActive        *bool  `json:"is_active"`
}

type Service struct {
	cooks  repository.CookRepository
	dishes repository.DishRepository
	log    logger.Logger
}

func NewService(cooks repository.CookRepository, dishes repository.DishRepository, log logger.Logger) *Service {
	return &Service{cooks: cooks, dishes: dishes, log: log}
}

// HandleRecord stores one consumed catalog record.
func (s *Service) HandleRecord(ctx context.Context, rec Record) error {
	switch rec.Kind {
	case KindCook:
		return s.handleCook(ctx, rec.Data)
	case KindDish:
		return s.handleDish(ctx, rec.Data)
	default:
		return fmt.Errorf("unknown catalog record kind %q", rec.Kind)
	}
}

func (s *Service) handleCook(ctx context.Context, data json.RawMessage) error {
	var p cookPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode cook record: %w", err)
	}

	cook, err := domain.NewCook(p.ID, p.Name, p.Floor, p.Specialty)
	if err != nil {
		return fmt.Errorf("build cook: %w", err)
	}
	cook.Email = p.Email
	cook.Phone = p.Phone
	if p.IsActive != nil {
		cook.IsActive = *p.IsActive
	}

	if err := s.cooks.Save(ctx, cook); err != nil {
		return fmt.Errorf("save cook: %w", err)
	}

	s.log.Info("catalog cook stored", logger.String("cook_id", cook.ID), logger.String("name", cook.Name))
	return nil
}

func (s *Service) handleDish(ctx context.Context, data json.RawMessage) error {
	var p dishPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode dish record: %w", err)
	}

	dish, err := domain.NewDish(p.ID, p.Name, p.Category, p.PreparationTime, p.DefaultCookID)
	if err != nil {
		return fmt.Errorf("build dish: %w", err)
	}
	dish.Description = p.Description
	if p.IsActive != nil {
		dish.IsActive = *p.IsActive
	}

	if err := s.dishes.Save(ctx, dish); err != nil {
		return fmt.Errorf("save dish: %w", err)
	}

	s.log.Info("catalog dish stored", logger.String("dish_id", dish.ID), logger.String("name", dish.Name))
	return nil
}
