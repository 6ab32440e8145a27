// Package outboxrepo stores order events until they are relayed to the feed.
package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderEventPayload is the JSON body of an order event, both in the outbox
// and on the order feed.
type OrderEventPayload struct {
	EventID    string    `json:"event_id"`
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

// GormOutboxRepository implements OutboxRepository on the outbox table.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// AddOrderEvents stores events recorded by an order aggregate.
func (r *GormOutboxRepository) AddOrderEvents(ctx context.Context, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	insert := sq.Insert("outbox").
		Columns("id", "event_name", "aggregate_id", "payload", "occurred_at").
		PlaceholderFormat(sq.Dollar)
	for _, e := range events {
		payload, err := json.Marshal(payloadOf(e))
		if err != nil {
			return err
		}
		insert = insert.Values(e.ID.Bytes(), e.Name, e.OrderID.Bytes(), string(payload), e.OccurredAt)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Exec(query, args...).Error
}

// GetUnpublished locks up to limit pending messages, oldest first and in
// insertion order within the same instant. Rows
// locked by a concurrent relay are skipped.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	query, args, err := sq.Select("id", "event_name", "aggregate_id", "payload", "occurred_at").
		From("outbox").
		Where(sq.Eq{"published_at": nil}).
		OrderBy("occurred_at ASC", "seq ASC").
		Limit(uint64(max(limit, 1))).
		Suffix("FOR UPDATE SKIP LOCKED").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]ports.OutboxMessage, 0)
	for rows.Next() {
		var (
			id, aggregateID uuid.UUID
			msg             ports.OutboxMessage
			payload         string
		)
		if err = rows.Scan(&id, &msg.EventName, &aggregateID, &payload, &msg.OccurredAt); err != nil {
			return nil, err
		}
		if msg.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if msg.AggregateID, err = kernel.UUIDFromBytes(aggregateID[:]); err != nil {
			return nil, err
		}
		msg.Payload = []byte(payload)
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	query, args, err := sq.Update("outbox").
		Set("published_at", at).
		Where(sq.Eq{"id": id.Bytes()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}
	return nil
}

func payloadOf(e order.Event) OrderEventPayload {
	p := OrderEventPayload{
		EventID:    e.ID.String(),
		Event:      e.Name,
		OrderID:    e.OrderID.String(),
		To:         e.To.String(),
		OccurredAt: e.OccurredAt,
	}
	if e.From != order.Unknown {
		p.From = e.From.String()
	}
	return p
}
