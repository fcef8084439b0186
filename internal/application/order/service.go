package order

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kitchen_orders/internal/domain/catalog"
	domain "kitchen_orders/internal/domain/order"
	"kitchen_orders/internal/domain/repository"
	"kitchen_orders/pkg/logger"
)

// Forwarder hands a day payload to the external partner. Outcomes come
// back as data, never as errors.
type Forwarder interface {
	SendOrder(ctx context.Context, payload domain.PartnerPayload) domain.SyncOutcome
}

type Service struct {
	dishes    repository.DishRepository
	cooks     repository.CookRepository
	orders    repository.OrderRepository
	syncLogs  repository.SyncLogRepository
	forwarder Forwarder
	log       logger.Logger
}

func NewService(
	dishes repository.DishRepository,
	cooks repository.CookRepository,
	orders repository.OrderRepository,
	syncLogs repository.SyncLogRepository,
	forwarder Forwarder,
	log logger.Logger,
) *Service {
	return &Service{
		dishes:    dishes,
		cooks:     cooks,
		orders:    orders,
		syncLogs:  syncLogs,
		forwarder: forwarder,
		log:       log,
	}
}

type AddToOrderCommand struct {
	OrderDate      string `json:"order_date"`
	DishID         string `json:"dish_id"`
	Quantity       int    `json:"quantity"`
	Unit           string `json:"unit"`
	AssignedCookID string `json:"assigned_cook_id"`
	Notes          string `json:"notes"`
}

type SubmitItem struct {
	DishID         string `json:"dish_id"`
	Quantity       int    `json:"quantity"`
	AssignedCookID string `json:"assigned_cook_id"`
	Notes          string `json:"notes"`
}

type SubmitOrderCommand struct {
	OrderDate string       `json:"order_date"`
	Items     []SubmitItem `json:"items"`
}

func (s *Service) ListDishes(ctx context.Context) ([]catalog.Dish, error) {
	dishes, err := s.dishes.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

func (s *Service) DayOrders(ctx context.Context, orderDate string) ([]domain.Line, error) {
	lines, err := s.orders.FindByDate(ctx, orderDate)
	if err != nil {
		return nil, fmt.Errorf("fetch day orders: %w", err)
	}
	return lines, nil
}

// AddToOrder merges one dish into a day's order: quantities accumulate on
// the existing (order_date, dish_id) line, notes are replaced. The merge
// itself is a single atomic store operation.
func (s *Service) AddToOrder(ctx context.Context, cmd AddToOrderCommand) (*domain.Line, error) {
	dish, err := s.dishes.FindByID(ctx, cmd.DishID)
	if err != nil {
		return nil, fmt.Errorf("fetch dish: %w", err)
	}
	if dish == nil {
		return nil, catalog.ErrDishNotFound
	}

	cookID, err := domain.ResolveCook(dish, cmd.AssignedCookID)
	if err != nil {
		return nil, err
	}
	if cmd.AssignedCookID != "" {
		if _, err := s.requireCook(ctx, cookID); err != nil {
			return nil, err
		}
	}

	line, err := domain.NewLine(
		uuid.NewString(),
		cmd.OrderDate,
		cmd.DishID,
		cookID,
		cmd.Quantity,
		foldUnitIntoNotes(cmd.Notes, cmd.Unit),
	)
	if err != nil {
		return nil, err
	}

	effective, err := s.orders.Upsert(ctx, line)
	if err != nil {
		return nil, fmt.Errorf("upsert order line: %w", err)
	}

	s.log.Info("dish added to day order",
		logger.String("order_date", cmd.OrderDate),
		logger.String("dish_id", cmd.DishID),
		logger.Int("quantity", effective.Quantity),
	)
	return effective, nil
}

// UpdateLine applies a partial update to one order line.
func (s *Service) UpdateLine(ctx context.Context, id string, update repository.LineUpdate) (*domain.Line, error) {
	if update.Empty() {
		return nil, domain.ErrEmptyUpdate
	}
	if update.Quantity != nil {
		if _, err := domain.NewQuantity(*update.Quantity); err != nil {
			return nil, err
		}
	}
	if update.AssignedCookID != nil {
		if _, err := s.requireCook(ctx, *update.AssignedCookID); err != nil {
			return nil, err
		}
	}

	line, err := s.orders.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update order line: %w", err)
	}
	if line == nil {
		return nil, domain.ErrLineNotFound
	}
	return line, nil
}

func (s *Service) DeleteLine(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("order line deleted", logger.String("order_id", id))
	return nil
}

// SubmitOrder records a whole day's order, then forwards the batch to the
// partner and writes one sync log row per line. Persistence failures are
// fatal; a failed forward is reported in the summary, never as an error.
func (s *Service) SubmitOrder(ctx context.Context, cmd SubmitOrderCommand) (domain.Summary, error) {
	if len(cmd.Items) == 0 {
		return domain.Summary{}, domain.ErrEmptyOrder
	}
	if err := domain.ValidateOrderDate(cmd.OrderDate, time.Now()); err != nil {
		return domain.Summary{}, err
	}

	created := make([]domain.Line, 0, len(cmd.Items))

	for _, item := range cmd.Items {
		dish, err := s.dishes.FindByID(ctx, item.DishID)
		if err != nil {
			return domain.Summary{}, fmt.Errorf("fetch dish: %w", err)
		}
		if dish == nil {
			return domain.Summary{}, catalog.ErrDishNotFound
		}

		cookID, err := domain.ResolveCook(dish, item.AssignedCookID)
		if err != nil {
			return domain.Summary{}, err
		}

		var cook *catalog.Cook
		if item.AssignedCookID != "" {
			cook, err = s.requireCook(ctx, cookID)
			if err != nil {
				return domain.Summary{}, err
			}
		} else {
			cook = dish.DefaultCook
		}

		line, err := domain.NewLine(uuid.NewString(), cmd.OrderDate, item.DishID, cookID, item.Quantity, item.Notes)
		if err != nil {
			return domain.Summary{}, err
		}

		effective, err := s.orders.Upsert(ctx, line)
		if err != nil {
			return domain.Summary{}, fmt.Errorf("persist order line: %w", err)
		}

		// Carry the joins so the partner payload has names to work with.
		effective.Dish = dish
		effective.AssignedCook = cook
		created = append(created, *effective)
	}

	payload := domain.BuildPartnerPayload(cmd.OrderDate, created, time.Now())

	s.log.Info("forwarding submitted order",
		logger.String("order_date", cmd.OrderDate),
		logger.Int("total_dishes", payload.TotalDishes),
	)
	outcome := s.forwarder.SendOrder(ctx, payload)

	s.appendSyncLogs(ctx, created, payload, outcome)

	summary := domain.Summary{
		OrderDate:    cmd.OrderDate,
		TotalDishes:  payload.TotalDishes,
		ItemsCount:   len(created),
		ExternalSync: outcome.Success,
	}
	if !outcome.Success {
		summary.ExternalError = outcome.Error
		s.log.Warn("order persisted but external forward failed",
			logger.String("error_type", outcome.ErrorType),
			logger.String("error", outcome.Error),
		)
	}
	return summary, nil
}

// appendSyncLogs writes one audit row per line. Failures here are
// swallowed: the sync log is never required for order correctness.
func (s *Service) appendSyncLogs(ctx context.Context, lines []domain.Line, payload domain.PartnerPayload, outcome domain.SyncOutcome) {
	request, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("encode sync log payload", logger.Error(err))
		return
	}

	for _, line := range lines {
		entry := &domain.SyncLog{
			ID:              uuid.NewString(),
			OrderID:         line.ID,
			SyncStatus:      outcome.LogStatus(),
			RequestPayload:  request,
			ResponsePayload: outcome.Response,
			ErrorMessage:    outcome.Error,
			CreatedAt:       time.Now().UTC(),
		}
		if err := s.syncLogs.Append(ctx, entry); err != nil {
			s.log.Warn("sync log write failed",
				logger.String("order_id", line.ID),
				logger.Error(err),
			)
		}
	}
}

func (s *Service) requireCook(ctx context.Context, id string) (*catalog.Cook, error) {
	cook, err := s.cooks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch cook: %w", err)
	}
	if cook == nil {
		return nil, catalog.ErrCookNotFound
	}
	return cook, nil
}

func foldUnitIntoNotes(notes, unit string) string {
	if unit == "" {
		unit = "pcs"
	}
	return strings.TrimSpace(notes + "\nunit: " + unit)
}
