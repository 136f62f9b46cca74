package audit

import (
	"context"

	"leavedesk/internal/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	RecordDecision(ctx context.Context, event events.LeaveDecidedEvent) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) RecordDecision(ctx context.Context, event events.LeaveDecidedEvent) error {
	leaveID, err := uuid.Parse(event.LeaveID)
	if err != nil {
		s.logger.Warn("audit event with malformed leave id",
			zap.String("leave_id", event.LeaveID),
		)
		return err
	}
	employeeID, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		s.logger.Warn("audit event with malformed employee id",
			zap.String("employee_id", event.EmployeeID),
		)
		return err
	}

	entry := &Entry{
		ID:         uuid.New(),
		LeaveID:    leaveID,
		EventType:  event.EventType,
		EmployeeID: employeeID,
		Status:     event.Status,
		Feedback:   event.Feedback,
		OccurredAt: event.OccurredAt,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return err
	}

	s.logger.Info("leave decision recorded",
		zap.String("leave_id", event.LeaveID),
		zap.String("status", event.Status),
	)
	return nil
}
