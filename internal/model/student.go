package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User   *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`

	HasGoalClarity bool    `gorm:"default:false" json:"has_goal_clarity"`
	GoalTitle      *string `gorm:"size:150" json:"goal_title,omitempty"`
	SelectedTrack  *string `gorm:"size:100" json:"selected_track,omitempty"`

	LeetcodeRating         int `gorm:"default:0" json:"leetcode_rating"`
	LeetcodeProblemsSolved int `gorm:"default:0" json:"leetcode_problems_solved"`
	LeetcodeDailyStreak    int `gorm:"default:0" json:"leetcode_daily_streak"`
	TotalCodeHours         int `gorm:"default:0" json:"total_code_hours"`
	ConsistencyScore       int `gorm:"default:0" json:"consistency_score"`

	DSALevel          int `gorm:"default:0" json:"dsa_level"`
	DBMSLevel         int `gorm:"default:0" json:"dbms_level"`
	OSLevel           int `gorm:"default:0" json:"os_level"`
	CNLevel           int `gorm:"default:0" json:"cn_level"`
	SystemDesignLevel int `gorm:"default:0" json:"system_design_level"`
	SoftSkillsLevel   int `gorm:"default:0" json:"soft_skills_level"`
	AptitudeLevel     int `gorm:"default:0" json:"aptitude_level"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
