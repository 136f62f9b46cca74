package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindByRole(ctx context.Context, role string) ([]Employee, error)
	FindByManager(ctx context.Context, managerID string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		First(&e, "email = ?", email).Error
	return &e, err
}

func (r *repository) FindByRole(ctx context.Context, role string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByManager(ctx context.Context, managerID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}
