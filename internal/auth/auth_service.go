package auth

import (
	"context"
	"os"
	"time"

	autherrors "leavedesk/internal/auth/errors"
	"leavedesk/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req employee.RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (AuthResponse, error)
	Me(ctx context.Context, userID string) (employee.EmployeeResponse, error)
}

type service struct {
	employeeRepo    employee.Repository
	employeeService employee.Service
	logger          *zap.Logger
}

func NewService(employeeRepo employee.Repository, employeeService employee.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		employeeRepo:    employeeRepo,
		employeeService: employeeService,
		logger:          l,
	}
}

// Register creates the account through the employee service and immediately
// issues a token pair so new users land signed in.
func (s *service) Register(ctx context.Context, req employee.RegisterRequest) (AuthResponse, error) {
	resp, err := s.employeeService.Register(ctx, req)
	if err != nil {
		return AuthResponse{}, err
	}
	return s.issueTokens(resp)
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	user, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		// Same error either way so lookups cannot probe for accounts.
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	s.logger.Info("login success",
		zap.String("employee_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return s.issueTokens(mapUser(*user))
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (AuthResponse, error) {
	claims, err := parseToken(refreshToken)
	if err != nil {
		return AuthResponse{}, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}
	if _, err := uuid.Parse(userID); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	user, err := s.employeeRepo.FindByID(ctx, userID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	return s.issueTokens(mapUser(*user))
}

func (s *service) Me(ctx context.Context, userID string) (employee.EmployeeResponse, error) {
	return s.employeeService.GetByID(ctx, userID)
}

func (s *service) issueTokens(user employee.EmployeeResponse) (AuthResponse, error) {
	access, err := generateToken(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		s.logger.Error("issue access token failed", zap.Error(err))
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := generateToken(user.ID, user.Role, refreshTokenTTL)
	if err != nil {
		s.logger.Error("issue refresh token failed", zap.Error(err))
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return AuthResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func parseToken(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

func mapUser(e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:    e.ID.String(),
		Name:  e.Name,
		Email: e.Email,
		Role:  e.Role,
	}
	if e.ManagerID != nil {
		v := e.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}
