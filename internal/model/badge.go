package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Badge is a one-time recognition. (StudentID, BadgeKey) is unique so a
// badge can unlock at most once per student.
type Badge struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_student_badge;not null" json:"student_id"`
	Student     *Student  `gorm:"foreignKey:StudentID" json:"-"`
	BadgeKey    string    `gorm:"size:50;uniqueIndex:idx_student_badge;not null" json:"badge_key"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	UnlockedAt  time.Time `gorm:"not null" json:"unlocked_at"`
}

func (b *Badge) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.UnlockedAt.IsZero() {
		b.UnlockedAt = time.Now().UTC()
	}
	return nil
}
