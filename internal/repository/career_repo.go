package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"gorm.io/gorm"
)

type ResumeRepository interface {
	Create(ctx context.Context, resume *model.Resume) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Resume, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Resume, error)
	AddScan(ctx context.Context, scan *model.ATSScan) error
	ListScans(ctx context.Context, resumeID uuid.UUID) ([]*model.ATSScan, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, resume *model.Resume) error {
	return storageErr(r.db.WithContext(ctx).Create(resume).Error)
}

func (r *resumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &resume, nil
}

func (r *resumeRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Resume, error) {
	var resumes []*model.Resume
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&resumes).Error; err != nil {
		return nil, storageErr(err)
	}

	return resumes, nil
}

func (r *resumeRepository) AddScan(ctx context.Context, scan *model.ATSScan) error {
	return storageErr(r.db.WithContext(ctx).Create(scan).Error)
}

func (r *resumeRepository) ListScans(ctx context.Context, resumeID uuid.UUID) ([]*model.ATSScan, error) {
	var scans []*model.ATSScan
	if err := r.db.WithContext(ctx).
		Where("resume_id = ?", resumeID).
		Order("created_at ASC, id ASC").
		Find(&scans).Error; err != nil {
		return nil, storageErr(err)
	}

	return scans, nil
}

type ApplicationRepository interface {
	Create(ctx context.Context, application *model.JobApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.JobApplication, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.JobApplication, error)
	Save(ctx context.Context, application *model.JobApplication) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *model.JobApplication) error {
	return storageErr(r.db.WithContext(ctx).Create(application).Error)
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.JobApplication, error) {
	var application model.JobApplication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &application, nil
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.JobApplication, error) {
	var applications []*model.JobApplication
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at ASC, id ASC").
		Find(&applications).Error; err != nil {
		return nil, storageErr(err)
	}

	return applications, nil
}

func (r *applicationRepository) Save(ctx context.Context, application *model.JobApplication) error {
	return storageErr(r.db.WithContext(ctx).Save(application).Error)
}
