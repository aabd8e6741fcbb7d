package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"gorm.io/gorm"
)

type DoubtRepository interface {
	// CreateWithCounter inserts the doubt and increments the matching
	// relation counter in one transaction so the counter never drifts
	// from the rows.
	CreateWithCounter(ctx context.Context, doubt *model.Doubt) error
	ListByRelation(ctx context.Context, relationID uuid.UUID) ([]*model.Doubt, error)
}

type doubtRepository struct {
	db *gorm.DB
}

func NewDoubtRepository(db *gorm.DB) DoubtRepository {
	return &doubtRepository{db: db}
}

func (r *doubtRepository) CreateWithCounter(ctx context.Context, doubt *model.Doubt) error {
	return storageErr(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doubt).Error; err != nil {
			return err
		}

		column := "total_doubts_asked"
		if doubt.Type == model.DoubtTypeAnswer {
			column = "total_doubts_answered"
		}

		return tx.Model(&model.TrainerStudentRelation{}).
			Where("id = ?", doubt.RelationID).
			UpdateColumn(column, gorm.Expr(column+" + 1")).Error
	}))
}

func (r *doubtRepository) ListByRelation(ctx context.Context, relationID uuid.UUID) ([]*model.Doubt, error) {
	var doubts []*model.Doubt
	if err := r.db.WithContext(ctx).
		Where("relation_id = ?", relationID).
		Order("created_at ASC, id ASC").
		Find(&doubts).Error; err != nil {
		return nil, storageErr(err)
	}

	return doubts, nil
}
