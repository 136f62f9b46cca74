package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"leavedesk/internal/audit"
	"leavedesk/internal/events"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveDecisions reads leave decision events and appends them to the
// audit trail. Duplicate deliveries hit the audit table's unique index and
// are committed without a second insert.
func ConsumeLeaveDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	auditService audit.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decision")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave decision event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := auditService.RecordDecision(ctx, event); err != nil {
			if isDuplicateAuditEntry(err) {
				log.Warn("leave decision already recorded, skipping",
					zap.String("leave_id", event.LeaveID),
					zap.String("event_type", event.EventType),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("record leave decision failed",
				zap.String("leave_id", event.LeaveID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision audited",
			zap.String("leave_id", event.LeaveID),
			zap.String("status", event.Status),
		)
	}
}

func isDuplicateAuditEntry(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_audit_leave_event"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_audit_leave_event")
}
