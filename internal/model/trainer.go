package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Trainer struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User                  *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PricePerMonth         int       `gorm:"not null;default:0" json:"price_per_month"`
	Bio                   string    `gorm:"type:text" json:"bio"`
	Skills                string    `gorm:"type:text" json:"skills"`
	IsActive              bool      `gorm:"default:true" json:"is_active"`
	RatingAverage         float64   `gorm:"default:0" json:"rating_average"`
	RatingCount           int       `gorm:"default:0" json:"rating_count"`
	TotalStudentsAssisted int       `gorm:"default:0" json:"total_students_assisted"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (t *Trainer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
