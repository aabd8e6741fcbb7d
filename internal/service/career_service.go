package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/dto"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"github.com/placementhub/placement-mentor-hub/pkg/ats"
)

type CareerService interface {
	CreateResume(ctx context.Context, studentUserID uuid.UUID, input dto.CreateResumeInput) (*model.Resume, error)
	ListResumes(ctx context.Context, studentUserID uuid.UUID) ([]*model.Resume, error)
	// ScanResume runs the pluggable scoring strategy against a job
	// description and persists the scan. Identical inputs always produce
	// identical scores and keyword lists.
	ScanResume(ctx context.Context, resumeID uuid.UUID, input dto.ScanResumeInput) (*model.ATSScan, error)
	ListScans(ctx context.Context, resumeID uuid.UUID) ([]*model.ATSScan, error)

	CreateApplication(ctx context.Context, studentUserID uuid.UUID, input dto.CreateApplicationInput) (*model.JobApplication, error)
	ListApplications(ctx context.Context, studentUserID uuid.UUID) ([]*model.JobApplication, error)
	// UpdateApplicationStatus moves an application along the pipeline.
	// Backward or skipping moves fail with ErrInvalidTransition; the ATS
	// score freezes once the application leaves TO_APPLY.
	UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, input dto.UpdateApplicationStatusInput) (*model.JobApplication, error)
}

type careerService struct {
	resumeRepo      repository.ResumeRepository
	applicationRepo repository.ApplicationRepository
	studentRepo     repository.StudentRepository
	scorer          ats.Scorer
	now             func() time.Time
}

func NewCareerService(
	resumeRepo repository.ResumeRepository,
	applicationRepo repository.ApplicationRepository,
	studentRepo repository.StudentRepository,
	scorer ats.Scorer,
) CareerService {
	return &careerService{
		resumeRepo:      resumeRepo,
		applicationRepo: applicationRepo,
		studentRepo:     studentRepo,
		scorer:          scorer,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *careerService) CreateResume(ctx context.Context, studentUserID uuid.UUID, input dto.CreateResumeInput) (*model.Resume, error) {
	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}

	resume := &model.Resume{
		StudentID: student.ID,
		Title:     input.Title,
		RawText:   input.RawText,
	}
	if input.TemplateType != "" {
		resume.TemplateType = input.TemplateType
	} else {
		resume.TemplateType = "simple"
	}

	if err := s.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}

	return resume, nil
}

func (s *careerService) ListResumes(ctx context.Context, studentUserID uuid.UUID) ([]*model.Resume, error) {
	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}
	return s.resumeRepo.ListByStudent(ctx, student.ID)
}

func (s *careerService) ScanResume(ctx context.Context, resumeID uuid.UUID, input dto.ScanResumeInput) (*model.ATSScan, error) {
	resume, err := s.resumeRepo.FindByID(ctx, resumeID)
	if err != nil {
		return nil, err
	}

	result := s.scorer.Score(resume.RawText, input.JobDescription)

	scan := &model.ATSScan{
		ResumeID:           resume.ID,
		JobTitle:           input.JobTitle,
		JobDescriptionText: input.JobDescription,
		ScoreOverall:       result.ScoreOverall,
		ScoreHardSkills:    result.ScoreHardSkills,
		ScoreSoftSkills:    result.ScoreSoftSkills,
		ScoreFormat:        result.ScoreFormat,
		MissingKeywords:    result.MissingKeywords,
		Suggestions:        result.Suggestions,
	}

	if err := s.resumeRepo.AddScan(ctx, scan); err != nil {
		return nil, err
	}

	return scan, nil
}

func (s *careerService) ListScans(ctx context.Context, resumeID uuid.UUID) ([]*model.ATSScan, error) {
	if _, err := s.resumeRepo.FindByID(ctx, resumeID); err != nil {
		return nil, err
	}
	return s.resumeRepo.ListScans(ctx, resumeID)
}

func (s *careerService) CreateApplication(ctx context.Context, studentUserID uuid.UUID, input dto.CreateApplicationInput) (*model.JobApplication, error) {
	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}

	status := model.StatusToApply
	if input.Status != "" {
		status = model.ApplicationStatus(input.Status)
		if !status.Valid() {
			return nil, apperror.ErrValidation
		}
	}

	application := &model.JobApplication{
		StudentID:       student.ID,
		Company:         input.Company,
		Role:            input.Role,
		Location:        input.Location,
		Status:          status,
		ATSScoreAtApply: input.ATSScoreAtApply,
	}

	if input.AppliedDate != "" {
		applied, err := time.Parse(dateLayout, input.AppliedDate)
		if err != nil {
			return nil, apperror.ErrValidation
		}
		application.AppliedDate = &applied
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

func (s *careerService) ListApplications(ctx context.Context, studentUserID uuid.UUID) ([]*model.JobApplication, error) {
	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}
	return s.applicationRepo.ListByStudent(ctx, student.ID)
}

func (s *careerService) UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, input dto.UpdateApplicationStatusInput) (*model.JobApplication, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	next := model.ApplicationStatus(input.Status)
	if !application.Status.CanTransition(next) {
		return nil, apperror.ErrInvalidTransition
	}

	// The score may only be set while the application is still TO_APPLY;
	// it freezes as soon as the pipeline moves on.
	if input.ATSScoreAtApply != nil {
		if application.Status != model.StatusToApply {
			return nil, apperror.ErrValidation
		}
		application.ATSScoreAtApply = input.ATSScoreAtApply
	}

	if next == model.StatusApplied && application.AppliedDate == nil {
		applied := s.now()
		application.AppliedDate = &applied
	}

	application.Status = next
	if err := s.applicationRepo.Save(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}
