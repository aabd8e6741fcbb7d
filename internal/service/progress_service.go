package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/dto"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
)

type ProgressService interface {
	// Record upserts the (student, skill, topic) row. done > total or a
	// negative count is rejected with ErrInvalidProgress; nothing is
	// written in that case.
	Record(ctx context.Context, studentUserID uuid.UUID, input dto.RecordProgressInput) (*model.SkillProgress, error)
	ListForStudent(ctx context.Context, studentUserID uuid.UUID) ([]*model.SkillProgress, error)
	// UpdateStats applies aggregate counters to the student. Counters are
	// monotonically non-decreasing unless the reset flag is set. Badge
	// thresholds are re-evaluated afterwards.
	UpdateStats(ctx context.Context, studentUserID uuid.UUID, input dto.UpdateStudentStatsInput) (*model.Student, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	studentRepo  repository.StudentRepository
	badgeSvc     BadgeService
	leaderboard  LeaderboardService
}

func NewProgressService(
	progressRepo repository.ProgressRepository,
	studentRepo repository.StudentRepository,
	badgeSvc BadgeService,
	leaderboard LeaderboardService,
) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		studentRepo:  studentRepo,
		badgeSvc:     badgeSvc,
		leaderboard:  leaderboard,
	}
}

func (s *progressService) Record(ctx context.Context, studentUserID uuid.UUID, input dto.RecordProgressInput) (*model.SkillProgress, error) {
	if input.DoneProblemCount < 0 || input.ProblemCount < 0 || input.DoneProblemCount > input.ProblemCount {
		return nil, apperror.ErrInvalidProgress
	}

	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}

	progress := &model.SkillProgress{
		StudentID:        student.ID,
		SkillName:        input.SkillName,
		TopicName:        input.TopicName,
		ProblemCount:     input.ProblemCount,
		DoneProblemCount: input.DoneProblemCount,
	}

	if err := s.progressRepo.Upsert(ctx, progress); err != nil {
		return nil, err
	}

	return progress, nil
}

func (s *progressService) ListForStudent(ctx context.Context, studentUserID uuid.UUID) ([]*model.SkillProgress, error) {
	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}
	return s.progressRepo.ListByStudent(ctx, student.ID)
}

func (s *progressService) UpdateStats(ctx context.Context, studentUserID uuid.UUID, input dto.UpdateStudentStatsInput) (*model.Student, error) {
	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}

	if err := applyCounter(&student.LeetcodeRating, input.LeetcodeRating, true); err != nil {
		return nil, err
	}
	if err := applyCounter(&student.LeetcodeProblemsSolved, input.LeetcodeProblemsSolved, input.Reset); err != nil {
		return nil, err
	}
	if err := applyCounter(&student.LeetcodeDailyStreak, input.LeetcodeDailyStreak, input.Reset); err != nil {
		return nil, err
	}
	if err := applyCounter(&student.TotalCodeHours, input.TotalCodeHours, input.Reset); err != nil {
		return nil, err
	}
	if input.ConsistencyScore != nil {
		if *input.ConsistencyScore < 0 || *input.ConsistencyScore > 100 {
			return nil, apperror.ErrValidation
		}
		student.ConsistencyScore = *input.ConsistencyScore
	}

	if err := s.studentRepo.Save(ctx, student); err != nil {
		return nil, err
	}

	if err := s.badgeSvc.Evaluate(ctx, student); err != nil {
		return nil, err
	}

	// Leaderboard reads are eventually consistent; a failed refresh is
	// logged, not surfaced.
	if s.leaderboard != nil {
		if err := s.leaderboard.Refresh(ctx); err != nil {
			log.Printf("leaderboard refresh failed: %v", err)
		}
	}

	return student, nil
}

// applyCounter updates a counter that may only move forward unless an
// explicit reset was requested. Rating is allowed to drop either way.
func applyCounter(current *int, next *int, allowDecrease bool) error {
	if next == nil {
		return nil
	}
	if *next < 0 {
		return apperror.ErrValidation
	}
	if !allowDecrease && *next < *current {
		return apperror.ErrValidation
	}
	*current = *next
	return nil
}
