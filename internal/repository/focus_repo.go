package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"gorm.io/gorm"
)

type FocusRepository interface {
	Create(ctx context.Context, session *model.FocusSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FocusSession, error)
	Save(ctx context.Context, session *model.FocusSession) error
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.FocusSession, error)
}

type focusRepository struct {
	db *gorm.DB
}

func NewFocusRepository(db *gorm.DB) FocusRepository {
	return &focusRepository{db: db}
}

func (r *focusRepository) Create(ctx context.Context, session *model.FocusSession) error {
	return storageErr(r.db.WithContext(ctx).Create(session).Error)
}

func (r *focusRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FocusSession, error) {
	var session model.FocusSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &session, nil
}

func (r *focusRepository) Save(ctx context.Context, session *model.FocusSession) error {
	return storageErr(r.db.WithContext(ctx).Save(session).Error)
}

func (r *focusRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.FocusSession, error) {
	var sessions []*model.FocusSession
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("started_at DESC, id ASC").
		Find(&sessions).Error; err != nil {
		return nil, storageErr(err)
	}

	return sessions, nil
}
