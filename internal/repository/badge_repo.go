package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"gorm.io/gorm"
)

type BadgeRepository interface {
	// FirstOrCreate unlocks the badge if the (student, badge_key) pair is
	// new, otherwise returns the existing row. The bool reports whether a
	// new badge was created.
	FirstOrCreate(ctx context.Context, badge *model.Badge) (bool, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Badge, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) FirstOrCreate(ctx context.Context, badge *model.Badge) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Badge
		err := tx.Where("student_id = ? AND badge_key = ?", badge.StudentID, badge.BadgeKey).
			First(&existing).Error
		if err == nil {
			*badge = existing
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		created = true
		return tx.Create(badge).Error
	})

	return created, storageErr(err)
}

func (r *badgeRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Badge, error) {
	var badges []*model.Badge
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("unlocked_at ASC, id ASC").
		Find(&badges).Error; err != nil {
		return nil, storageErr(err)
	}

	return badges, nil
}
