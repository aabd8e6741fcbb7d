package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
)

type BadgeService interface {
	// Unlock is idempotent: repeated calls for the same (student, key)
	// return the already-unlocked badge without duplicating it.
	Unlock(ctx context.Context, studentID uuid.UUID, badgeKey, title, description string) (*model.Badge, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Badge, error)
	// Evaluate checks every milestone threshold against the student's
	// current stats. Safe to call after any progress or streak update.
	Evaluate(ctx context.Context, student *model.Student) error
}

type badgeThreshold struct {
	key         string
	title       string
	description string
	reached     func(*model.Student) bool
}

var badgeThresholds = []badgeThreshold{
	{"leet_1", "First Problem", "Solved your first LeetCode problem",
		func(s *model.Student) bool { return s.LeetcodeProblemsSolved >= 1 }},
	{"leet_50", "Halfway There", "Solved 50 LeetCode problems",
		func(s *model.Student) bool { return s.LeetcodeProblemsSolved >= 50 }},
	{"leet_100", "Century", "Solved 100 LeetCode problems",
		func(s *model.Student) bool { return s.LeetcodeProblemsSolved >= 100 }},
	{"streak_3", "3-Day Streak", "Maintained 3-day coding streak",
		func(s *model.Student) bool { return s.LeetcodeDailyStreak >= 3 }},
	{"streak_7", "Week Warrior", "Maintained 7-day coding streak",
		func(s *model.Student) bool { return s.LeetcodeDailyStreak >= 7 }},
	{"hours_100", "Deep Worker", "Logged 100 hours of coding",
		func(s *model.Student) bool { return s.TotalCodeHours >= 100 }},
}

type badgeService struct {
	badgeRepo repository.BadgeRepository
}

func NewBadgeService(badgeRepo repository.BadgeRepository) BadgeService {
	return &badgeService{badgeRepo: badgeRepo}
}

func (s *badgeService) Unlock(ctx context.Context, studentID uuid.UUID, badgeKey, title, description string) (*model.Badge, error) {
	badge := &model.Badge{
		StudentID:   studentID,
		BadgeKey:    badgeKey,
		Title:       title,
		Description: description,
	}

	if _, err := s.badgeRepo.FirstOrCreate(ctx, badge); err != nil {
		return nil, err
	}

	return badge, nil
}

func (s *badgeService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Badge, error) {
	return s.badgeRepo.ListByStudent(ctx, studentID)
}

func (s *badgeService) Evaluate(ctx context.Context, student *model.Student) error {
	for _, threshold := range badgeThresholds {
		if !threshold.reached(student) {
			continue
		}
		if _, err := s.Unlock(ctx, student.ID, threshold.key, threshold.title, threshold.description); err != nil {
			return err
		}
	}
	return nil
}
