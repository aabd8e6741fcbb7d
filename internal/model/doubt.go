package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoubtType string

const (
	DoubtTypeDoubt  DoubtType = "DOUBT"
	DoubtTypeAnswer DoubtType = "ANSWER"
)

// Doubt is a message exchanged inside a relation. FromUserID/ToUserID
// must be the relation's student/trainer user pair; the relation's doubt
// counters are incremented in the same transaction as the insert.
type Doubt struct {
	ID         uuid.UUID               `gorm:"type:uuid;primaryKey" json:"id"`
	FromUserID uuid.UUID               `gorm:"type:uuid;not null" json:"from_user_id"`
	ToUserID   uuid.UUID               `gorm:"type:uuid;not null" json:"to_user_id"`
	RelationID uuid.UUID               `gorm:"type:uuid;index;not null" json:"relation_id"`
	Relation   *TrainerStudentRelation `gorm:"foreignKey:RelationID" json:"-"`
	Text       string                  `gorm:"type:text;not null" json:"text"`
	Type       DoubtType               `gorm:"size:20;not null" json:"type"`
	CreatedAt  time.Time               `gorm:"autoCreateTime;index" json:"created_at"`
}

func (d *Doubt) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
