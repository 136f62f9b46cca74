package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "leavedesk/internal/employee/errors"
	"leavedesk/internal/events"
	"leavedesk/internal/messaging/kafka"
	"leavedesk/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByEmail(ctx context.Context, email string) (EmployeeResponse, error)
	GetManagers(ctx context.Context) ([]EmployeeResponse, error)
	GetReports(ctx context.Context, managerID string) ([]EmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

// Register creates an account. Accounts with the EMPLOYEE role must point at
// an existing MANAGER account; managers are registered without a manager link.
func (s *service) Register(ctx context.Context, req RegisterRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role != RoleEmployee && role != RoleManager {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var managerID *uuid.UUID
	if role == RoleEmployee {
		if req.ManagerID == nil || *req.ManagerID == "" {
			return EmployeeResponse{}, employeeerrors.ErrManagerRequired
		}
		mid, err := uuid.Parse(*req.ManagerID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
		}
		manager, err := qtx.FindByID(ctx, mid.String())
		if err != nil {
			if mapRepositoryError(err) == employeeerrors.ErrEmployeeNotFound {
				return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
			}
			s.logger.Error("register manager lookup failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if manager.Role != RoleManager {
			return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
		}
		managerID = &mid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register hash password failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hash),
		Role:      role,
		ManagerID: managerID,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeRegisteredEvent{
			EventType:  events.EmployeeRegisteredEventType,
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Role:       empl.Role,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeRegisteredTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("register outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("role", empl.Role),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		s.logger.Error("get employee by email failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetManagers(ctx context.Context) ([]EmployeeResponse, error) {
	managers, err := s.repo.FindByRole(ctx, RoleManager)
	if err != nil {
		s.logger.Error("get managers failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(managers), nil
}

func (s *service) GetReports(ctx context.Context, managerID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	reports, err := s.repo.FindByManager(ctx, managerID)
	if err != nil {
		s.logger.Error("get reports failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(reports), nil
}
