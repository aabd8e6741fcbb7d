package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
)

type RelationService interface {
	// Create links the student (by their user id) with a trainer. Only one
	// active relation may exist per pair.
	Create(ctx context.Context, studentUserID, trainerID uuid.UUID) (*model.TrainerStudentRelation, error)
	Close(ctx context.Context, relationID uuid.UUID) (*model.TrainerStudentRelation, error)
	Rate(ctx context.Context, studentUserID, relationID uuid.UUID, rating float64) error
	Get(ctx context.Context, relationID uuid.UUID) (*model.TrainerStudentRelation, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.TrainerStudentRelation, error)
}

type relationService struct {
	relationRepo repository.RelationRepository
	trainerRepo  repository.TrainerRepository
	studentRepo  repository.StudentRepository
	userRepo     repository.UserRepository
}

func NewRelationService(
	relationRepo repository.RelationRepository,
	trainerRepo repository.TrainerRepository,
	studentRepo repository.StudentRepository,
	userRepo repository.UserRepository,
) RelationService {
	return &relationService{
		relationRepo: relationRepo,
		trainerRepo:  trainerRepo,
		studentRepo:  studentRepo,
		userRepo:     userRepo,
	}
}

func (s *relationService) Create(ctx context.Context, studentUserID, trainerID uuid.UUID) (*model.TrainerStudentRelation, error) {
	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}

	trainer, err := s.trainerRepo.FindByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	relation := &model.TrainerStudentRelation{
		TrainerID: trainer.ID,
		StudentID: student.ID,
		StartedAt: time.Now().UTC(),
	}

	if err := s.relationRepo.CreateActive(ctx, relation); err != nil {
		return nil, err
	}

	return relation, nil
}

func (s *relationService) Close(ctx context.Context, relationID uuid.UUID) (*model.TrainerStudentRelation, error) {
	return s.relationRepo.Close(ctx, relationID, time.Now().UTC())
}

func (s *relationService) Rate(ctx context.Context, studentUserID, relationID uuid.UUID, rating float64) error {
	if rating < 0 || rating > 5 {
		return apperror.ErrValidation
	}

	relation, err := s.relationRepo.FindByID(ctx, relationID)
	if err != nil {
		return err
	}

	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return err
	}
	if relation.StudentID != student.ID {
		return apperror.ErrForbidden
	}

	return s.relationRepo.Rate(ctx, relationID, rating)
}

func (s *relationService) Get(ctx context.Context, relationID uuid.UUID) (*model.TrainerStudentRelation, error) {
	return s.relationRepo.FindByID(ctx, relationID)
}

func (s *relationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.TrainerStudentRelation, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case model.RoleStudent:
		student, err := s.studentRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.relationRepo.ListByStudent(ctx, student.ID)
	case model.RoleTrainer:
		trainer, err := s.trainerRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.relationRepo.ListByTrainer(ctx, trainer.ID)
	}

	return nil, apperror.ErrForbidden
}
