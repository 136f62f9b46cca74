package profile

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"leavedesk/internal/calendar"
	profileerrors "leavedesk/internal/profile/errors"
	"leavedesk/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, employeeID string) (ProfileResponse, error)
	Update(ctx context.Context, actorID, employeeID string, req UpdateProfileRequest) (ProfileResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Get returns the profile for an employee, creating an empty row on first
// read so callers never see a missing profile for a known account.
func (s *service) Get(ctx context.Context, employeeID string) (ProfileResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return ProfileResponse{}, profileerrors.ErrInvalidEmployeeID
	}

	p, err := s.repo.FindByEmployee(ctx, eid.String())
	if err == nil {
		return mapToResponse(*p), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("get profile failed", zap.Error(err))
		return ProfileResponse{}, err
	}

	exists, err := s.repo.EmployeeExists(ctx, eid.String())
	if err != nil {
		s.logger.Error("get profile employee lookup failed", zap.Error(err))
		return ProfileResponse{}, err
	}
	if !exists {
		return ProfileResponse{}, profileerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("get profile begin tx failed", zap.Error(err))
		return ProfileResponse{}, err
	}
	defer tx.Rollback()

	fresh := &Profile{
		ID:         uuid.New(),
		EmployeeID: eid,
	}
	if err := s.repo.WithTx(tx).Create(ctx, fresh); err != nil {
		if isDuplicateProfile(err) {
			// A concurrent first read inserted the row; return that one.
			winner, readErr := s.repo.FindByEmployee(ctx, eid.String())
			if readErr != nil {
				s.logger.Error("get profile refetch failed", zap.Error(readErr))
				return ProfileResponse{}, readErr
			}
			return mapToResponse(*winner), nil
		}
		s.logger.Error("get profile lazy create failed", zap.Error(err))
		return ProfileResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("get profile commit failed", zap.Error(err))
		return ProfileResponse{}, err
	}

	s.logger.Info("profile created lazily", zap.String("employee_id", eid.String()))
	return mapToResponse(*fresh), nil
}

// Update replaces every profile field with the request's values. Only the
// owning employee may update their profile.
func (s *service) Update(ctx context.Context, actorID, employeeID string, req UpdateProfileRequest) (ProfileResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return ProfileResponse{}, profileerrors.ErrInvalidEmployeeID
	}
	if actorID != eid.String() {
		return ProfileResponse{}, profileerrors.ErrNotOwner
	}

	dob, err := parseOptionalDate(req.DateOfBirth, "date_of_birth")
	if err != nil {
		return ProfileResponse{}, err
	}
	joinDate, err := parseOptionalDate(req.JoinDate, "join_date")
	if err != nil {
		return ProfileResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update profile begin tx failed", zap.Error(err))
		return ProfileResponse{}, err
	}
	defer func() { tx.Rollback() }()

	qtx := s.repo.WithTx(tx)
	p, err := qtx.FindByEmployee(ctx, eid.String())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		exists, lookupErr := qtx.EmployeeExists(ctx, eid.String())
		if lookupErr != nil {
			s.logger.Error("update profile employee lookup failed", zap.Error(lookupErr))
			return ProfileResponse{}, lookupErr
		}
		if !exists {
			return ProfileResponse{}, profileerrors.ErrEmployeeNotFound
		}
		p = &Profile{ID: uuid.New(), EmployeeID: eid}
		if createErr := qtx.Create(ctx, p); createErr != nil {
			if !isDuplicateProfile(createErr) {
				s.logger.Error("update profile lazy create failed", zap.Error(createErr))
				return ProfileResponse{}, createErr
			}
			// Lost the first-touch race. The insert aborted this
			// transaction, so restart on the row the winner created.
			tx.Rollback()
			if tx, err = s.db.BeginTx(ctx, nil); err != nil {
				s.logger.Error("update profile begin tx failed", zap.Error(err))
				return ProfileResponse{}, err
			}
			qtx = s.repo.WithTx(tx)
			if p, err = qtx.FindByEmployee(ctx, eid.String()); err != nil {
				s.logger.Error("update profile refetch failed", zap.Error(err))
				return ProfileResponse{}, err
			}
		}
	} else if err != nil {
		s.logger.Error("update profile fetch failed", zap.Error(err))
		return ProfileResponse{}, err
	}

	p.Phone = req.Phone
	p.Address = req.Address
	p.DateOfBirth = dob
	p.JoinDate = joinDate
	p.Department = req.Department
	p.Position = req.Position
	p.EmergencyContact = req.EmergencyContact
	p.EmergencyPhone = req.EmergencyPhone

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("update profile persist failed", zap.Error(err))
		return ProfileResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update profile commit failed", zap.Error(err))
		return ProfileResponse{}, err
	}

	s.logger.Info("profile updated", zap.String("employee_id", eid.String()))
	return mapToResponse(*p), nil
}

// isDuplicateProfile reports whether err is the unique violation raised when
// two requests lazily create the same employee's profile at once.
func isDuplicateProfile(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_profiles_employee"
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_profiles_employee")
}

func parseOptionalDate(v, field string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := calendar.ParseDate(v)
	if err != nil {
		return nil, apperror.InvalidField(field)
	}
	return &t, nil
}
