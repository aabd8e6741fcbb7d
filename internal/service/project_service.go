package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/dto"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
)

const dateLayout = "2006-01-02"

type ProjectService interface {
	Create(ctx context.Context, studentUserID uuid.UUID, input dto.CreateProjectInput) (*model.Project, error)
	ListForStudent(ctx context.Context, studentUserID uuid.UUID) ([]*model.Project, error)
	// AddLog appends a journal entry. Logs are append-only and their date
	// may not be in the future.
	AddLog(ctx context.Context, projectID uuid.UUID, input dto.AddProjectLogInput) (*model.ProjectLog, error)
	ListLogs(ctx context.Context, projectID uuid.UUID) ([]*model.ProjectLog, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	studentRepo repository.StudentRepository
	now         func() time.Time
}

func NewProjectService(projectRepo repository.ProjectRepository, studentRepo repository.StudentRepository) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		studentRepo: studentRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *projectService) Create(ctx context.Context, studentUserID uuid.UUID, input dto.CreateProjectInput) (*model.Project, error) {
	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		StudentID:   student.ID,
		Title:       input.Title,
		Description: input.Description,
		TechStack:   input.TechStack,
	}

	if input.TargetDate != "" {
		target, err := time.Parse(dateLayout, input.TargetDate)
		if err != nil {
			return nil, apperror.ErrValidation
		}
		project.TargetDate = &target
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) ListForStudent(ctx context.Context, studentUserID uuid.UUID) ([]*model.Project, error) {
	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}
	return s.projectRepo.ListByStudent(ctx, student.ID)
}

func (s *projectService) AddLog(ctx context.Context, projectID uuid.UUID, input dto.AddProjectLogInput) (*model.ProjectLog, error) {
	if input.HoursSpent < 0 {
		return nil, apperror.ErrValidation
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return nil, apperror.ErrValidation
	}

	// today is UTC midnight; a same-day log equals the boundary and
	// passes, only dates strictly after it are rejected.
	today := s.now().Truncate(24 * time.Hour)
	if date.After(today) {
		return nil, apperror.ErrFutureDate
	}

	log := &model.ProjectLog{
		ProjectID:  project.ID,
		Date:       date,
		Summary:    input.Summary,
		HoursSpent: input.HoursSpent,
	}

	if err := s.projectRepo.AddLog(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *projectService) ListLogs(ctx context.Context, projectID uuid.UUID) ([]*model.ProjectLog, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.projectRepo.ListLogs(ctx, projectID)
}
