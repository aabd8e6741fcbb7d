package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"gorm.io/gorm"
)

type RelationRepository interface {
	// CreateActive inserts the relation and bumps the trainer's assisted
	// counter in one transaction. Fails with ErrDuplicateActiveRelation
	// when an ACTIVE relation already exists for the pair.
	CreateActive(ctx context.Context, relation *model.TrainerStudentRelation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TrainerStudentRelation, error)
	// Close soft-closes the relation: status CLOSED, EndedAt stamped.
	Close(ctx context.Context, id uuid.UUID, endedAt time.Time) (*model.TrainerStudentRelation, error)
	// Rate stores the student's rating and recomputes the trainer's
	// aggregate from all rated relations, in one transaction.
	Rate(ctx context.Context, id uuid.UUID, rating float64) error
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.TrainerStudentRelation, error)
	ListByTrainer(ctx context.Context, trainerID uuid.UUID) ([]*model.TrainerStudentRelation, error)
}

type relationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

func (r *relationRepository) CreateActive(ctx context.Context, relation *model.TrainerStudentRelation) error {
	return storageErr(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.TrainerStudentRelation{}).
			Where("trainer_id = ? AND student_id = ? AND status = ?",
				relation.TrainerID, relation.StudentID, model.RelationActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.ErrDuplicateActiveRelation
		}

		relation.Status = model.RelationActive
		if err := tx.Create(relation).Error; err != nil {
			return err
		}

		return tx.Model(&model.Trainer{}).
			Where("id = ?", relation.TrainerID).
			UpdateColumn("total_students_assisted", gorm.Expr("total_students_assisted + 1")).Error
	}))
}

func (r *relationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TrainerStudentRelation, error) {
	var relation model.TrainerStudentRelation
	if err := r.db.WithContext(ctx).
		Preload("Trainer").
		Preload("Student").
		Where("id = ?", id).
		First(&relation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, storageErr(err)
	}

	return &relation, nil
}

func (r *relationRepository) Close(ctx context.Context, id uuid.UUID, endedAt time.Time) (*model.TrainerStudentRelation, error) {
	var relation model.TrainerStudentRelation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&relation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}

		if relation.Status == model.RelationClosed {
			return apperror.ErrAlreadyClosed
		}

		relation.Status = model.RelationClosed
		relation.EndedAt = &endedAt
		return tx.Save(&relation).Error
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return &relation, nil
}

func (r *relationRepository) Rate(ctx context.Context, id uuid.UUID, rating float64) error {
	return storageErr(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var relation model.TrainerStudentRelation
		if err := tx.Where("id = ?", id).First(&relation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}

		relation.StudentRatingForTrainer = rating
		if err := tx.Save(&relation).Error; err != nil {
			return err
		}

		// Idempotent recomputation from all rated relations, never a delta.
		var agg struct {
			Count int64
			Sum   float64
		}
		if err := tx.Model(&model.TrainerStudentRelation{}).
			Select("COUNT(*) as count, COALESCE(SUM(student_rating_for_trainer), 0) as sum").
			Where("trainer_id = ? AND student_rating_for_trainer > 0", relation.TrainerID).
			Scan(&agg).Error; err != nil {
			return err
		}

		average := 0.0
		if agg.Count > 0 {
			average = agg.Sum / float64(agg.Count)
		}

		return tx.Model(&model.Trainer{}).
			Where("id = ?", relation.TrainerID).
			Updates(map[string]interface{}{
				"rating_average": average,
				"rating_count":   agg.Count,
			}).Error
	}))
}

func (r *relationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.TrainerStudentRelation, error) {
	var relations []*model.TrainerStudentRelation
	if err := r.db.WithContext(ctx).
		Preload("Trainer").
		Preload("Trainer.User").
		Where("student_id = ?", studentID).
		Order("started_at ASC, id ASC").
		Find(&relations).Error; err != nil {
		return nil, storageErr(err)
	}

	return relations, nil
}

func (r *relationRepository) ListByTrainer(ctx context.Context, trainerID uuid.UUID) ([]*model.TrainerStudentRelation, error) {
	var relations []*model.TrainerStudentRelation
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.User").
		Where("trainer_id = ?", trainerID).
		Order("started_at ASC, id ASC").
		Find(&relations).Error; err != nil {
		return nil, storageErr(err)
	}

	return relations, nil
}
