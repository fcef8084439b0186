package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	domain "kitchen_orders/internal/domain/order"
)

type SyncLogRepository struct {
	pool *pgxpool.Pool
}

func NewSyncLogRepository(pool *pgxpool.Pool) *SyncLogRepository {
	return &SyncLogRepository{pool: pool}
}

// Append writes one audit row. The table is append-only; nothing updates
// or deletes entries.
func (r *SyncLogRepository) Append(ctx context.Context, entry *domain.SyncLog) error {
	if entry == nil {
		return fmt.Errorf("sync log entry is nil")
	}

	const query = `
		INSERT INTO external_sync_log (id, order_id, sync_status, request_payload, response_payload, error_message, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5::jsonb, $6, $7);
	`

	var response *string
	if len(entry.ResponsePayload) > 0 {
		s := string(entry.ResponsePayload)
		response = &s
	}

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.OrderID,
		entry.SyncStatus,
		string(entry.RequestPayload),
		response,
		entry.ErrorMessage,
		entry.CreatedAt,
	)
	return err
}
