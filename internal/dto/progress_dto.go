package dto

type RecordProgressInput struct {
	SkillName        string `json:"skill_name" binding:"required,max=100"`
	TopicName        string `json:"topic_name" binding:"required,max=100"`
	DoneProblemCount int    `json:"done_problem_count"`
	ProblemCount     int    `json:"problem_count"`
}

type StartFocusInput struct {
	Label string `json:"label" binding:"max=100"`
}

type CreateProjectInput struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	TechStack   string `json:"tech_stack"`
	TargetDate  string `json:"target_date" binding:"omitempty,datetime=2006-01-02"`
}

type AddProjectLogInput struct {
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	Summary    string  `json:"summary" binding:"required"`
	HoursSpent float64 `json:"hours_spent" binding:"gte=0"`
}
