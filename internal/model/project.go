package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"student_id"`
	Student     *Student   `gorm:"foreignKey:StudentID" json:"-"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	TechStack   string     `gorm:"size:255" json:"tech_stack"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Logs []ProjectLog `gorm:"constraint:OnDelete:CASCADE" json:"logs,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProjectLog is an append-only work journal entry. Log dates may not be
// in the future.
type ProjectLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID  uuid.UUID `gorm:"type:uuid;index;not null" json:"project_id"`
	Date       time.Time `gorm:"type:date;not null" json:"date"`
	Summary    string    `gorm:"type:text;not null" json:"summary"`
	HoursSpent float64   `gorm:"not null;default:0" json:"hours_spent"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (l *ProjectLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
