package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
)

type FocusService interface {
	Start(ctx context.Context, studentUserID uuid.UUID, label string) (*model.FocusSession, error)
	// End closes an open session and derives its duration from the two
	// timestamps. Ending a closed session fails with ErrSessionAlreadyClosed.
	End(ctx context.Context, sessionID uuid.UUID) (*model.FocusSession, error)
	ListForStudent(ctx context.Context, studentUserID uuid.UUID) ([]*model.FocusSession, error)
}

type focusService struct {
	focusRepo   repository.FocusRepository
	studentRepo repository.StudentRepository
	now         func() time.Time
}

func NewFocusService(focusRepo repository.FocusRepository, studentRepo repository.StudentRepository) FocusService {
	return &focusService{
		focusRepo:   focusRepo,
		studentRepo: studentRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *focusService) Start(ctx context.Context, studentUserID uuid.UUID, label string) (*model.FocusSession, error) {
	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}

	session := &model.FocusSession{
		StudentID: student.ID,
		StartedAt: s.now(),
		Label:     label,
	}

	if err := s.focusRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *focusService) End(ctx context.Context, sessionID uuid.UUID) (*model.FocusSession, error) {
	session, err := s.focusRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Closed() {
		return nil, apperror.ErrSessionAlreadyClosed
	}

	endedAt := s.now()
	if endedAt.Before(session.StartedAt) {
		endedAt = session.StartedAt
	}

	session.EndedAt = &endedAt
	session.DurationMinutes = int(math.Round(endedAt.Sub(session.StartedAt).Minutes()))

	if err := s.focusRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *focusService) ListForStudent(ctx context.Context, studentUserID uuid.UUID) ([]*model.FocusSession, error) {
	student, err := s.studentRepo.FindByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}
	return s.focusRepo.ListByStudent(ctx, student.ID)
}
