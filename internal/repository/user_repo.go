package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"gorm.io/gorm"
)

type UserRepository interface {
	// Create inserts the user and its role-matching profile in one
	// transaction. Either profile pointer may be nil (admins have none).
	Create(ctx context.Context, user *model.User, trainer *model.Trainer, student *model.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User, trainer *model.Trainer, student *model.Student) error {
	return storageErr(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).
			Where("email = ?", user.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.ErrDuplicateEmail
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if trainer != nil {
			trainer.UserID = user.ID
			if err := tx.Create(trainer).Error; err != nil {
				return err
			}
		}

		if student != nil {
			student.UserID = user.ID
			if err := tx.Create(student).Error; err != nil {
				return err
			}
		}

		return nil
	}))
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("Trainer").
		Preload("Student").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("Trainer").
		Preload("Student").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &user, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, storageErr(err)
	}
	return count, nil
}
