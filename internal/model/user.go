package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTrainer Role = "TRAINER"
	RoleStudent Role = "STUDENT"
)

// User is the identity record. Role is set once at registration and never
// changes afterwards; exactly one Trainer or Student profile hangs off it
// depending on the role.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null" json:"role"`
	College      *string   `gorm:"size:150" json:"college,omitempty"`
	YearOfStudy  *int      `json:"year_of_study,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Trainer *Trainer `gorm:"constraint:OnDelete:CASCADE" json:"trainer,omitempty"`
	Student *Student `gorm:"constraint:OnDelete:CASCADE" json:"student,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
