package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Student, error)
	FindAll(ctx context.Context) ([]*model.Student, error)
	Save(ctx context.Context, student *model.Student) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return storageErr(r.db.WithContext(ctx).Create(student).Error)
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &student, nil
}

func (r *studentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &student, nil
}

func (r *studentRepository) FindAll(ctx context.Context) ([]*model.Student, error) {
	var students []*model.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at ASC").
		Find(&students).Error; err != nil {
		return nil, storageErr(err)
	}

	return students, nil
}

func (r *studentRepository) Save(ctx context.Context, student *model.Student) error {
	return storageErr(r.db.WithContext(ctx).Save(student).Error)
}
