package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockEmployee(ctx context.Context, employeeID string) error
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	FindPendingByManager(ctx context.Context, managerID string) ([]LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the session onto an open transaction so every query issued
// through the returned repository runs inside it.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

// LockEmployee takes a transaction-scoped advisory lock keyed by employee so
// concurrent submissions for the same employee serialize on the balance check.
// Released automatically at commit or rollback.
func (r *repository) LockEmployee(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", employeeID).Error
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindPendingByManager(ctx context.Context, managerID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Joins("JOIN users ON users.id = leave_requests.employee_id").
		Where("users.manager_id = ?", managerID).
		Where("leave_requests.status = ?", StatusPending).
		Order("leave_requests.created_at ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}
