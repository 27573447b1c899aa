package repository

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/lms-service/pkg/kafka"
)

// SaveAuditEvent is idempotent on the event id, redelivered messages are dropped.
func (r *repository) SaveAuditEvent(ctx context.Context, e kafka.AuditEvent) error {
	var table, entityColumn string
	switch e.Entity {
	case kafka.EntityBook:
		table, entityColumn = bookAuditTableName, "book_id"
	case kafka.EntityUser:
		table, entityColumn = userAuditTableName, "user_id"
	default:
		return errors.Errorf("unknown audit entity %q", e.Entity)
	}

	query, args, err := qb.Insert(table).
		Columns("event_id", entityColumn, "action", "actor_id", "details", "changed_at").
		Values(e.ID, e.EntityID, e.Action, e.ActorID, e.Details, e.Timestamp).
		Suffix("on conflict (event_id) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query, args...)
	return err
}
