package profile

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Profile) error
	FindByEmployee(ctx context.Context, employeeID string) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).
		First(&p, "employee_id = ?", employeeID).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Count(&count).Error
	return count > 0, err
}
