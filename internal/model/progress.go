package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillProgress tracks solved problems per (student, skill, topic).
// DoneProblemCount never exceeds ProblemCount.
type SkillProgress struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID        uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_student_skill_topic;not null" json:"student_id"`
	Student          *Student  `gorm:"foreignKey:StudentID" json:"-"`
	SkillName        string    `gorm:"size:100;uniqueIndex:idx_student_skill_topic;not null" json:"skill_name"`
	TopicName        string    `gorm:"size:100;uniqueIndex:idx_student_skill_topic;not null" json:"topic_name"`
	ProblemCount     int       `gorm:"not null;default:0" json:"problem_count"`
	DoneProblemCount int       `gorm:"not null;default:0" json:"done_problem_count"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *SkillProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// FocusSession is a timed study block. It is OPEN while EndedAt is nil
// and CLOSED afterwards; DurationMinutes is always derived from the two
// timestamps, never supplied by the caller.
type FocusSession struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"student_id"`
	Student         *Student   `gorm:"foreignKey:StudentID" json:"-"`
	StartedAt       time.Time  `gorm:"not null" json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationMinutes int        `gorm:"default:0" json:"duration_minutes"`
	Label           string     `gorm:"size:100" json:"label"`
}

func (f *FocusSession) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (f *FocusSession) Closed() bool {
	return f.EndedAt != nil
}
