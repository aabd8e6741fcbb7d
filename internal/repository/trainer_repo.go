package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"gorm.io/gorm"
)

type TrainerRepository interface {
	Create(ctx context.Context, trainer *model.Trainer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Trainer, error)
	FindAllActive(ctx context.Context) ([]*model.Trainer, error)
	Save(ctx context.Context, trainer *model.Trainer) error
}

type trainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) Create(ctx context.Context, trainer *model.Trainer) error {
	return storageErr(r.db.WithContext(ctx).Create(trainer).Error)
}

func (r *trainerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	var trainer model.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &trainer, nil
}

func (r *trainerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Trainer, error) {
	var trainer model.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &trainer, nil
}

func (r *trainerRepository) FindAllActive(ctx context.Context) ([]*model.Trainer, error) {
	var trainers []*model.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_active = ?", true).
		Order("rating_average DESC, created_at ASC").
		Find(&trainers).Error; err != nil {
		return nil, storageErr(err)
	}

	return trainers, nil
}

func (r *trainerRepository) Save(ctx context.Context, trainer *model.Trainer) error {
	return storageErr(r.db.WithContext(ctx).Save(trainer).Error)
}
