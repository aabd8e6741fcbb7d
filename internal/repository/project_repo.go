package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Project, error)
	AddLog(ctx context.Context, log *model.ProjectLog) error
	ListLogs(ctx context.Context, projectID uuid.UUID) ([]*model.ProjectLog, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return storageErr(r.db.WithContext(ctx).Create(project).Error)
}

func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &project, nil
}

func (r *projectRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Project, error) {
	var projects []*model.Project
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&projects).Error; err != nil {
		return nil, storageErr(err)
	}

	return projects, nil
}

func (r *projectRepository) AddLog(ctx context.Context, log *model.ProjectLog) error {
	return storageErr(r.db.WithContext(ctx).Create(log).Error)
}

func (r *projectRepository) ListLogs(ctx context.Context, projectID uuid.UUID) ([]*model.ProjectLog, error) {
	var logs []*model.ProjectLog
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date ASC, created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, storageErr(err)
	}

	return logs, nil
}
