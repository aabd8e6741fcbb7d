package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RelationStatus string

const (
	RelationActive RelationStatus = "ACTIVE"
	RelationClosed RelationStatus = "CLOSED"
)

// TrainerStudentRelation is the mentorship link between one trainer and
// one student. At most one ACTIVE relation may exist per pair; closing is
// a soft operation that flips the status and stamps EndedAt.
type TrainerStudentRelation struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TrainerID uuid.UUID      `gorm:"type:uuid;index:idx_relation_pair;not null" json:"trainer_id"`
	Trainer   *Trainer       `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
	StudentID uuid.UUID      `gorm:"type:uuid;index:idx_relation_pair;not null" json:"student_id"`
	Student   *Student       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Status    RelationStatus `gorm:"size:20;not null;default:ACTIVE" json:"status"`
	StartedAt time.Time      `gorm:"not null" json:"started_at"`
	EndedAt   *time.Time     `json:"ended_at,omitempty"`

	TotalDoubtsAsked        int     `gorm:"default:0" json:"total_doubts_asked"`
	TotalDoubtsAnswered     int     `gorm:"default:0" json:"total_doubts_answered"`
	StudentRatingForTrainer float64 `gorm:"default:0" json:"student_rating_for_trainer"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (r *TrainerStudentRelation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now().UTC()
	}
	return nil
}

func (r *TrainerStudentRelation) IsActive() bool {
	return r.Status == RelationActive
}
