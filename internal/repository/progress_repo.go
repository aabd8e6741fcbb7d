package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	// Upsert writes the progress row keyed by (student, skill, topic).
	// The unique index serializes concurrent writers to the same row.
	Upsert(ctx context.Context, progress *model.SkillProgress) error
	Find(ctx context.Context, studentID uuid.UUID, skill, topic string) (*model.SkillProgress, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.SkillProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Upsert(ctx context.Context, progress *model.SkillProgress) error {
	return storageErr(r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "skill_name"}, {Name: "topic_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"problem_count":      progress.ProblemCount,
			"done_problem_count": progress.DoneProblemCount,
			"updated_at":         gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(progress).Error)
}

func (r *progressRepository) Find(ctx context.Context, studentID uuid.UUID, skill, topic string) (*model.SkillProgress, error) {
	var progress model.SkillProgress
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND skill_name = ? AND topic_name = ?", studentID, skill, topic).
		First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &progress, nil
}

func (r *progressRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.SkillProgress, error) {
	var rows []*model.SkillProgress
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("skill_name ASC, topic_name ASC").
		Find(&rows).Error; err != nil {
		return nil, storageErr(err)
	}

	return rows, nil
}
