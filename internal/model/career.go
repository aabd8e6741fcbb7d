package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Resume struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID    uuid.UUID `gorm:"type:uuid;index;not null" json:"student_id"`
	Student      *Student  `gorm:"foreignKey:StudentID" json:"-"`
	Title        string    `gorm:"size:150;not null" json:"title"`
	RawText      string    `gorm:"type:text;not null" json:"raw_text"`
	TemplateType string    `gorm:"size:50;default:simple" json:"template_type"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Scans []ATSScan `gorm:"constraint:OnDelete:CASCADE" json:"scans,omitempty"`
}

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ATSScan records one resume-vs-job-description scoring run. Sub-scores
// are bounded to [0,100]; keyword and suggestion lists keep their order.
type ATSScan struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ResumeID           uuid.UUID `gorm:"type:uuid;index;not null" json:"resume_id"`
	JobTitle           string    `gorm:"size:150" json:"job_title"`
	JobDescriptionText string    `gorm:"type:text" json:"job_description_text"`
	ScoreOverall       int       `gorm:"not null" json:"score_overall"`
	ScoreHardSkills    int       `gorm:"not null" json:"score_hard_skills"`
	ScoreSoftSkills    int       `gorm:"not null" json:"score_soft_skills"`
	ScoreFormat        int       `gorm:"not null" json:"score_format"`
	MissingKeywords    []string  `gorm:"serializer:json;type:text" json:"missing_keywords"`
	Suggestions        []string  `gorm:"serializer:json;type:text" json:"suggestions"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (s *ATSScan) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type ApplicationStatus string

const (
	StatusToApply    ApplicationStatus = "TO_APPLY"
	StatusApplied    ApplicationStatus = "APPLIED"
	StatusOnlineTest ApplicationStatus = "ONLINE_TEST"
	StatusInterview  ApplicationStatus = "INTERVIEW"
	StatusOffer      ApplicationStatus = "OFFER"
	StatusRejected   ApplicationStatus = "REJECTED"
	StatusWithdrawn  ApplicationStatus = "WITHDRAWN"
)

// pipelineOrder defines the forward path of the application pipeline.
// Terminal states are not part of the ordering.
var pipelineOrder = map[ApplicationStatus]int{
	StatusToApply:    0,
	StatusApplied:    1,
	StatusOnlineTest: 2,
	StatusInterview:  3,
	StatusOffer:      4,
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusToApply, StatusApplied, StatusOnlineTest, StatusInterview,
		StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

func (s ApplicationStatus) Terminal() bool {
	return s == StatusOffer || s == StatusRejected || s == StatusWithdrawn
}

// CanTransition reports whether the pipeline allows moving from s to next.
// Forward moves follow TO_APPLY -> APPLIED -> ONLINE_TEST -> INTERVIEW ->
// OFFER; REJECTED and WITHDRAWN are reachable from any non-terminal state.
func (s ApplicationStatus) CanTransition(next ApplicationStatus) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	if next == StatusRejected || next == StatusWithdrawn {
		return true
	}
	from, ok := pipelineOrder[s]
	to, ok2 := pipelineOrder[next]
	if !ok || !ok2 {
		return false
	}
	return to == from+1
}

type JobApplication struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID       uuid.UUID         `gorm:"type:uuid;index;not null" json:"student_id"`
	Student         *Student          `gorm:"foreignKey:StudentID" json:"-"`
	Company         string            `gorm:"size:150;not null" json:"company"`
	Role            string            `gorm:"size:150;not null" json:"role"`
	Location        string            `gorm:"size:150" json:"location"`
	AppliedDate     *time.Time        `gorm:"type:date" json:"applied_date,omitempty"`
	Status          ApplicationStatus `gorm:"size:20;not null;default:TO_APPLY" json:"status"`
	ATSScoreAtApply *int              `json:"ats_score_at_apply,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
