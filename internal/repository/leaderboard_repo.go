package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"gorm.io/gorm"
)

// LeaderboardEntry is a read-model row for the consistency ranking.
type LeaderboardEntry struct {
	StudentID        uuid.UUID `json:"student_id"`
	Name             string    `json:"name"`
	ConsistencyScore int       `json:"consistency_score"`
	ProblemsSolved   int       `json:"problems_solved"`
}

type LeaderboardRepository interface {
	// TopStudents ranks by consistency score, then problems solved, with
	// the student id as the deterministic tie-break.
	TopStudents(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) TopStudents(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry

	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Select("students.id as student_id, users.name as name, students.consistency_score, students.leetcode_problems_solved as problems_solved").
		Joins("JOIN users ON users.id = students.user_id").
		Order("students.consistency_score DESC, students.leetcode_problems_solved DESC, students.id ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, storageErr(err)
	}

	return entries, nil
}
