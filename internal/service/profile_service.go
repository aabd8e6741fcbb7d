package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/dto"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
)

type ProfileService interface {
	// CreateTrainer attaches a trainer profile to an existing user.
	// At most one profile per user; the user's role must be TRAINER.
	CreateTrainer(ctx context.Context, userID uuid.UUID, input dto.CreateTrainerInput) (*model.Trainer, error)
	CreateStudent(ctx context.Context, userID uuid.UUID, input dto.CreateStudentInput) (*model.Student, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*model.User, error)
	ListTrainers(ctx context.Context) ([]*model.Trainer, error)
}

type profileService struct {
	userRepo    repository.UserRepository
	trainerRepo repository.TrainerRepository
	studentRepo repository.StudentRepository
}

func NewProfileService(userRepo repository.UserRepository, trainerRepo repository.TrainerRepository, studentRepo repository.StudentRepository) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		trainerRepo: trainerRepo,
		studentRepo: studentRepo,
	}
}

func (s *profileService) CreateTrainer(ctx context.Context, userID uuid.UUID, input dto.CreateTrainerInput) (*model.Trainer, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != model.RoleTrainer {
		return nil, apperror.ErrRoleMismatch
	}

	if _, err := s.trainerRepo.FindByUserID(ctx, userID); err == nil {
		return nil, apperror.ErrProfileAlreadyExists
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	trainer := &model.Trainer{
		UserID:        userID,
		PricePerMonth: input.PricePerMonth,
		Bio:           input.Bio,
		Skills:        input.Skills,
		IsActive:      true,
	}

	if err := s.trainerRepo.Create(ctx, trainer); err != nil {
		return nil, err
	}

	return trainer, nil
}

func (s *profileService) CreateStudent(ctx context.Context, userID uuid.UUID, input dto.CreateStudentInput) (*model.Student, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != model.RoleStudent {
		return nil, apperror.ErrRoleMismatch
	}

	if _, err := s.studentRepo.FindByUserID(ctx, userID); err == nil {
		return nil, apperror.ErrProfileAlreadyExists
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	student := &model.Student{UserID: userID}
	if input.GoalTitle != "" {
		student.HasGoalClarity = true
		student.GoalTitle = &input.GoalTitle
	}
	if input.SelectedTrack != "" {
		student.SelectedTrack = &input.SelectedTrack
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

func (s *profileService) GetMe(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *profileService) ListTrainers(ctx context.Context) ([]*model.Trainer, error) {
	return s.trainerRepo.FindAllActive(ctx)
}
