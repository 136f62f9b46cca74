package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"leavedesk/internal/auth"
	autherrors "leavedesk/internal/auth/errors"
	"leavedesk/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	findByIDFn    func(ctx context.Context, id string) (*employee.Employee, error)
	findByEmailFn func(ctx context.Context, email string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) FindByRole(ctx context.Context, role string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) FindByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return nil, nil
}

type fakeEmployeeService struct {
	registerFn func(ctx context.Context, req employee.RegisterRequest) (employee.EmployeeResponse, error)
	getByIDFn  func(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) Register(ctx context.Context, req employee.RegisterRequest) (employee.EmployeeResponse, error) {
	return f.registerFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return nil, nil
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEmployeeService) GetByEmail(ctx context.Context, email string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}
func (f *fakeEmployeeService) GetManagers(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return nil, nil
}
func (f *fakeEmployeeService) GetReports(ctx context.Context, managerID string) ([]employee.EmployeeResponse, error) {
	return nil, nil
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func account(t *testing.T, password string) *employee.Employee {
	t.Helper()
	return &employee.Employee{
		ID:       uuid.New(),
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: hashed(t, password),
		Role:     employee.RoleEmployee,
	}
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := account(t, "s3cret-pass")
	repo := &fakeEmployeeRepository{
		findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			assert.Equal(t, "ada@example.com", email)
			return user, nil
		},
	}
	svc := auth.NewService(repo, &fakeEmployeeService{})

	resp, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass")
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, employee.RoleEmployee, claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := account(t, "s3cret-pass")
	repo := &fakeEmployeeRepository{
		findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			return user, nil
		},
	}
	svc := auth.NewService(repo, &fakeEmployeeService{})

	_, err := svc.Login(context.Background(), "ada@example.com", "wrong-pass")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := auth.NewService(&fakeEmployeeRepository{}, &fakeEmployeeService{})

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever-pass")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := account(t, "s3cret-pass")
	repo := &fakeEmployeeRepository{
		findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			return user, nil
		},
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			assert.Equal(t, user.ID.String(), id)
			return user, nil
		},
	}
	svc := auth.NewService(repo, &fakeEmployeeService{})

	first, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass")
	assert.NoError(t, err)

	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), second.User.ID)
	assert.NotEmpty(t, second.AccessToken)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := auth.NewService(&fakeEmployeeRepository{}, &fakeEmployeeService{})

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestRegisterIssuesTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	id := uuid.NewString()
	empSvc := &fakeEmployeeService{
		registerFn: func(ctx context.Context, req employee.RegisterRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{ID: id, Name: req.Name, Role: employee.RoleManager}, nil
		},
	}
	svc := auth.NewService(&fakeEmployeeRepository{}, empSvc)

	resp, err := svc.Register(context.Background(), employee.RegisterRequest{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Password: "s3cret-pass",
		Role:     "MANAGER",
	})
	assert.NoError(t, err)
	assert.Equal(t, id, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}
