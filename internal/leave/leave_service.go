package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"leavedesk/internal/events"
	leaveerrors "leavedesk/internal/leave/errors"
	"leavedesk/internal/messaging/kafka"
	"leavedesk/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	History(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	Balance(ctx context.Context, employeeID string) (BalanceResponse, error)
	PendingForManager(ctx context.Context, managerID string) ([]LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id, feedback string) (LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	policy *Policy
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, policy *Policy, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, policy, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	policy *Policy,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, policy: policy, outbox: outboxRepo, logger: l}
}

// Submit validates a candidate leave request against the policy and creates
// it PENDING. The balance check and the insert run in one transaction holding
// a per-employee advisory lock, so concurrent submissions for the same
// employee serialize on the balance check.
func (s *service) Submit(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.LockEmployee(ctx, employeeID); err != nil {
		s.logger.Error("submit leave lock employee failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	existing, err := qtx.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("submit leave load history failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	start, end, duration, err := s.policy.ValidateSubmission(req.StartDate, req.EndDate, req.Reason, existing)
	if err != nil {
		s.logger.Warn("submit leave validation failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	l := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		StartDate:  start,
		EndDate:    end,
		Duration:   duration,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("duration", duration),
	)

	return mapToResponse(*l), nil
}

func (s *service) History(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	leaves, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Balance(ctx context.Context, employeeID string) (BalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	leaves, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return BalanceResponse{}, err
	}
	return BalanceResponse{
		EmployeeID: employeeID,
		Allotment:  s.policy.Allotment(),
		Remaining:  s.policy.RemainingBalance(leaves),
	}, nil
}

func (s *service) PendingForManager(ctx context.Context, managerID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, leaveerrors.ErrInvalidManagerID
	}
	leaves, err := s.repo.FindPendingByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	return s.decide(ctx, actorID, id, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, actorID, id, feedback string) (LeaveResponse, error) {
	return s.decide(ctx, actorID, id, StatusRejected, feedback)
}

// decide drives the one-shot PENDING -> APPROVED/REJECTED transition. The row
// is read under FOR UPDATE so a racing decision sees the updated status. The
// balance is not re-validated here; it was checked at submission time.
func (s *service) decide(ctx context.Context, actorID, id, target, feedback string) (LeaveResponse, error) {
	s.logger.Debug("decide leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", target),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidManagerID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	switch target {
	case StatusApproved:
		err = Approve(l)
	case StatusRejected:
		err = Reject(l, feedback)
	}
	if err != nil {
		s.logger.Warn("decide leave transition refused",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", target),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	now := time.Now().UTC()
	l.DecidedBy = &actorUUID
	l.DecidedAt = &now

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if err := s.enqueueDecisionEvent(ctx, tx, l); err != nil {
		s.logger.Error("decide leave enqueue event failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("status", l.Status),
	)

	return mapToResponse(*l), nil
}

func (s *service) enqueueDecisionEvent(ctx context.Context, tx *sql.Tx, l *LeaveRequest) error {
	if s.outbox == nil {
		return nil
	}

	event := events.LeaveDecidedEvent{
		EventType:  events.LeaveDecidedEventType(l.Status),
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		Status:     l.Status,
		Feedback:   l.Feedback,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave_request",
		AggregateID:   l.ID.String(),
		EventType:     event.EventType,
		Topic:         events.LeaveDecisionTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
