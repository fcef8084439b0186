package finalize

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "kitchen_orders/internal/domain/order"
	"kitchen_orders/internal/domain/repository"
	"kitchen_orders/pkg/logger"
)

// Forwarder matches the interface in application/order; redeclared here so
// this package depends only on what it uses.
type Forwarder interface {
	SendOrder(ctx context.Context, payload domain.PartnerPayload) domain.SyncOutcome
}

// EventPublisher emits finalize audit events to the event stream. Publish
// failures never affect the finalize result.
type EventPublisher interface {
	PublishSyncEvent(ctx context.Context, event domain.SyncEvent) error
}

type Service struct {
	orders    repository.OrderRepository
	syncLogs  repository.SyncLogRepository
	forwarder Forwarder
	events    EventPublisher
	log       logger.Logger
}

func NewService(
	orders repository.OrderRepository,
	syncLogs repository.SyncLogRepository,
	forwarder Forwarder,
	events EventPublisher,
	log logger.Logger,
) *Service {
	return &Service{
		orders:    orders,
		syncLogs:  syncLogs,
		forwarder: forwarder,
		events:    events,
		log:       log,
	}
}

// Finalize closes a day's order: every line of the date is aggregated into
// one partner payload, forwarded once, and the whole batch uniformly moves
// to completed on success or cancelled on any other outcome (skipped
// included). One sync log row is appended per line; log and event failures
// are absorbed, status update failures are not.
func (s *Service) Finalize(ctx context.Context, orderDate string) (domain.Summary, error) {
	lines, err := s.orders.FindByDate(ctx, orderDate)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("fetch day orders: %w", err)
	}
	if len(lines) == 0 {
		return domain.Summary{}, domain.ErrNothingToFinalize
	}

	payload := domain.BuildPartnerPayload(orderDate, lines, time.Now())

	s.log.Info("finalizing day order",
		logger.String("order_date", orderDate),
		logger.Int("items", len(lines)),
		logger.Int("total_dishes", payload.TotalDishes),
	)

	outcome := s.forwarder.SendOrder(ctx, payload)

	newStatus := domain.StatusCancelled
	if outcome.Success {
		newStatus = domain.StatusCompleted
	}

	request, err := json.Marshal(payload)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("encode partner payload: %w", err)
	}

	for _, line := range lines {
		if _, err := s.orders.Update(ctx, line.ID, repository.LineUpdate{Status: &newStatus}); err != nil {
			// Not atomic across lines: already-updated rows stay updated.
			return domain.Summary{}, fmt.Errorf("update line %s status: %w", line.ID, err)
		}

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

	summary := domain.Summary{
		OrderDate:    orderDate,
		TotalDishes:  payload.TotalDishes,
		ItemsCount:   len(lines),
		ExternalSync: outcome.Success,
	}
	if !outcome.Success {
		summary.ExternalError = outcome.Error
		s.log.Warn("day order closed but forward failed",
			logger.String("order_date", orderDate),
			logger.String("error_type", outcome.ErrorType),
			logger.String("error", outcome.Error),
		)
	}

	s.publishEvent(ctx, payload, outcome, len(lines))

	return summary, nil
}

func (s *Service) publishEvent(ctx context.Context, payload domain.PartnerPayload, outcome domain.SyncOutcome, items int) {
	if s.events == nil {
		return
	}

	event := domain.SyncEvent{
		OrderDate:    payload.OrderDate,
		TotalDishes:  payload.TotalDishes,
		ItemsCount:   items,
		Success:      outcome.Success,
		ErrorType:    outcome.ErrorType,
		ErrorMessage: outcome.Error,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.events.PublishSyncEvent(ctx, event); err != nil {
		s.log.Warn("sync event publish failed",
			logger.String("order_date", payload.OrderDate),
			logger.Error(err),
		)
	}
}
