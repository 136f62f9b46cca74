package employee_test

import (
	"context"
	"database/sql"
	"testing"

	"leavedesk/internal/employee"
	employeeerrors "leavedesk/internal/employee/errors"
	"leavedesk/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn        func(ctx context.Context, e *employee.Employee) error
	findAllFn       func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn      func(ctx context.Context, id string) (*employee.Employee, error)
	findByEmailFn   func(ctx context.Context, email string) (*employee.Employee, error)
	findByRoleFn    func(ctx context.Context, role string) ([]employee.Employee, error)
	findByManagerFn func(ctx context.Context, managerID string) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
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
	if f.findByRoleFn != nil {
		return f.findByRoleFn(ctx, role)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	if f.findByManagerFn != nil {
		return f.findByManagerFn(ctx, managerID)
	}
	return nil, nil
}

type fakeOutboxRepository struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
	outbox  *fakeOutboxRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	outbox := &fakeOutboxRepository{}
	svc := employee.NewServiceWithOutbox(db, repo, outbox)

	return &employeeServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func managerRecord() *employee.Employee {
	return &employee.Employee{
		ID:    uuid.New(),
		Name:  "Grace Hopper",
		Email: "grace@example.com",
		Role:  employee.RoleManager,
	}
}

func TestRegisterManagerSuccess(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()
	expectTx(t, deps.sqlMock, true)

	var created *employee.Employee
	deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
		created = e
		return nil
	}

	resp, err := deps.service.Register(context.Background(), employee.RegisterRequest{
		Name:     "Grace Hopper",
		Email:    "Grace@Example.com",
		Password: "s3cret-pass",
		Role:     "manager",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, employee.RoleManager, resp.Role)
	assert.Equal(t, "grace@example.com", resp.Email)
	assert.Nil(t, resp.ManagerID)

	assert.NotEqual(t, "s3cret-pass", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pass")))

	assert.Len(t, deps.outbox.events, 1)
	assert.Equal(t, "employee.registered", deps.outbox.events[0].EventType)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestRegisterEmployeeRequiresManagerLink(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()
	expectTx(t, deps.sqlMock, false)

	_, err := deps.service.Register(context.Background(), employee.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cret-pass",
		Role:     "EMPLOYEE",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrManagerRequired)
}

func TestRegisterEmployeeManagerMustHaveManagerRole(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()
	expectTx(t, deps.sqlMock, false)

	peer := managerRecord()
	peer.Role = employee.RoleEmployee
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return peer, nil
	}

	mid := peer.ID.String()
	_, err := deps.service.Register(context.Background(), employee.RegisterRequest{
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret-pass",
		Role:      "EMPLOYEE",
		ManagerID: &mid,
	})

	assert.ErrorIs(t, err, employeeerrors.ErrManagerNotFound)
}

func TestRegisterEmployeeUnknownManager(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()
	expectTx(t, deps.sqlMock, false)

	deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return nil, gorm.ErrRecordNotFound
	}

	mid := uuid.NewString()
	_, err := deps.service.Register(context.Background(), employee.RegisterRequest{
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret-pass",
		Role:      "EMPLOYEE",
		ManagerID: &mid,
	})

	assert.ErrorIs(t, err, employeeerrors.ErrManagerNotFound)
}

func TestRegisterEmployeeWithManagerSuccess(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()
	expectTx(t, deps.sqlMock, true)

	manager := managerRecord()
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		assert.Equal(t, manager.ID.String(), id)
		return manager, nil
	}

	mid := manager.ID.String()
	resp, err := deps.service.Register(context.Background(), employee.RegisterRequest{
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret-pass",
		Role:      "employee",
		ManagerID: &mid,
	})

	assert.NoError(t, err)
	assert.Equal(t, employee.RoleEmployee, resp.Role)
	assert.NotNil(t, resp.ManagerID)
	assert.Equal(t, mid, *resp.ManagerID)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestRegisterInvalidRole(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Register(context.Background(), employee.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cret-pass",
		Role:     "ADMIN",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidRole)
}

func TestRegisterDuplicateEmailMapsToConflict(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()
	expectTx(t, deps.sqlMock, false)

	deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
		return assert.AnError
	}

	_, err := deps.service.Register(context.Background(), employee.RegisterRequest{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Password: "s3cret-pass",
		Role:     "MANAGER",
	})

	assert.Error(t, err)
}

func TestGetManagersFiltersByRole(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByRoleFn = func(ctx context.Context, role string) ([]employee.Employee, error) {
		assert.Equal(t, employee.RoleManager, role)
		return []employee.Employee{*managerRecord()}, nil
	}

	resp, err := deps.service.GetManagers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, employee.RoleManager, resp[0].Role)
}

func TestGetReportsRejectsMalformedID(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetReports(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
}

func TestGetByEmailNotFound(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
