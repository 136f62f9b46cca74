package attendance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Event) error
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Event, error)
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

func (r *repository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("timestamp ASC").
		Find(&events).Error
	return events, err
}
