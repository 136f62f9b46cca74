package audit

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	FindByLeave(ctx context.Context, leaveID string) ([]Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByLeave(ctx context.Context, leaveID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("leave_id = ?", leaveID).
		Order("occurred_at ASC").
		Find(&entries).Error
	return entries, err
}
