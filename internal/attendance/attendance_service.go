package attendance

import (
	"context"
	"strconv"
	"strings"
	"time"

	attendanceerrors "leavedesk/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	hoursCacheKeyPrefix = "attendance:hours:"
	hoursCacheTTL       = 5 * time.Minute
)

func hoursCacheKey(employeeID string) string {
	return hoursCacheKeyPrefix + employeeID
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	RecordSwipe(ctx context.Context, employeeID string, req SwipeRequest) (EventResponse, error)
	TotalHours(ctx context.Context, employeeID string) (TotalHoursResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// RecordSwipe appends a swipe. No pairing validation happens here; two
// consecutive IN events are legal and resolved by TotalHours.
func (s *service) RecordSwipe(ctx context.Context, employeeID string, req SwipeRequest) (EventResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return EventResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	swipeType := strings.ToUpper(strings.TrimSpace(req.Type))
	if swipeType != SwipeIn && swipeType != SwipeOut {
		s.logger.Warn("record swipe invalid type",
			zap.String("employee_id", employeeID),
			zap.String("type", req.Type),
		)
		return EventResponse{}, attendanceerrors.ErrInvalidSwipeType
	}

	e := &Event{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Type:       swipeType,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("record swipe persist failed", zap.Error(err))
		return EventResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, hoursCacheKey(employeeID)).Err(); err != nil {
			s.logger.Warn("record swipe cache invalidation failed",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("swipe recorded",
		zap.String("employee_id", employeeID),
		zap.String("type", swipeType),
	)
	return mapToResponse(*e), nil
}

// TotalHours returns the employee's cumulative worked hours. The value is
// cached in redis and recomputation is deduped through singleflight.
func (s *service) TotalHours(ctx context.Context, employeeID string) (TotalHoursResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return TotalHoursResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, hoursCacheKey(employeeID)).Result(); err == nil {
			if hours, parseErr := strconv.ParseFloat(val, 64); parseErr == nil {
				return TotalHoursResponse{EmployeeID: employeeID, TotalHours: hours}, nil
			}
		}
	}

	v, err, _ := s.sf.Do(hoursCacheKey(employeeID), func() (any, error) {
		events, err := s.repo.FindAllByEmployee(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		hours := TotalHours(events)

		if s.rdb != nil {
			if err := s.rdb.Set(ctx, hoursCacheKey(employeeID),
				strconv.FormatFloat(hours, 'f', -1, 64), hoursCacheTTL).Err(); err != nil {
				s.logger.Warn("total hours cache set failed",
					zap.String("employee_id", employeeID),
					zap.Error(err),
				)
			}
		}
		return hours, nil
	})
	if err != nil {
		s.logger.Error("total hours computation failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return TotalHoursResponse{}, err
	}

	return TotalHoursResponse{EmployeeID: employeeID, TotalHours: v.(float64)}, nil
}
